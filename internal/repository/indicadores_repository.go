package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/AgusMolinaCode/FCI_Api.git/internal/models"
)

// IndicadoresRepository maneja el bloque de indicadores financieros.
// Siempre hay a lo sumo una fila: la última versión cargada pisa a la anterior.
type IndicadoresRepository struct {
	db *sql.DB
}

func NewIndicadoresRepository(db *sql.DB) *IndicadoresRepository {
	return &IndicadoresRepository{db: db}
}

// Guardar reemplaza el bloque de indicadores almacenado
func (r *IndicadoresRepository) Guardar(ind models.Indicadores) error {
	datos, err := json.Marshal(ind)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO indicadores (id, datos, actualizado_en)
		VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			datos = excluded.datos,
			actualizado_en = CURRENT_TIMESTAMP
	`

	if _, err := r.db.Exec(query, string(datos)); err != nil {
		return fmt.Errorf("error al guardar los indicadores: %v", err)
	}

	return nil
}

// Obtener devuelve el bloque de indicadores. Si nunca se cargó devuelve
// sql.ErrNoRows para que el que llama decida si es fatal o no (los paneles
// diarios no lo necesitan).
func (r *IndicadoresRepository) Obtener() (models.Indicadores, error) {
	var datos string
	err := r.db.QueryRow("SELECT datos FROM indicadores WHERE id = 1").Scan(&datos)
	if err != nil {
		return models.Indicadores{}, err
	}

	var ind models.Indicadores
	if err := json.Unmarshal([]byte(datos), &ind); err != nil {
		return models.Indicadores{}, fmt.Errorf("el bloque de indicadores almacenado no es válido: %v", err)
	}

	return ind, nil
}
