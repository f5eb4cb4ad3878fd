package repository

import (
	"database/sql"
	"fmt"

	"github.com/AgusMolinaCode/FCI_Api.git/internal/models"
)

// PanelRepository maneja el almacenamiento de los bloques de datos de panel
type PanelRepository struct {
	db *sql.DB
}

func NewPanelRepository(db *sql.DB) *PanelRepository {
	return &PanelRepository{db: db}
}

// Guardar inserta o reemplaza un bloque de datos. El contenido tiene que ser
// un array JSON de fondos válido; un bloque que no parsea se rechaza acá para
// que el paso batch se entere en el momento de la carga.
func (r *PanelRepository) Guardar(id string, datos []byte, origen string) error {
	if _, err := models.UnmarshalFondos(datos); err != nil {
		return fmt.Errorf("el bloque %s no es un array de fondos válido: %v", id, err)
	}

	// El orden de descubrimiento se preserva: un bloque nuevo va al final,
	// un bloque existente conserva su posición original
	query := `
		INSERT INTO paneles (id, datos, orden, origen, actualizado_en)
		VALUES (?, ?, (SELECT COALESCE(MAX(orden), 0) + 1 FROM paneles), ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			datos = excluded.datos,
			origen = excluded.origen,
			actualizado_en = CURRENT_TIMESTAMP
	`

	_, err := r.db.Exec(query, id, string(datos), origen)
	if err != nil {
		return fmt.Errorf("error al guardar el bloque %s: %v", id, err)
	}

	return nil
}

// Eliminar borra un bloque por su identificador
func (r *PanelRepository) Eliminar(id string) error {
	result, err := r.db.Exec("DELETE FROM paneles WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("no existe el bloque %s", id)
	}

	return nil
}

// ObtenerBloques devuelve todos los bloques almacenados, sin parsear, en el
// orden de descubrimiento. El parseo se hace panel por panel más adelante para
// que un bloque malformado no afecte a los demás.
func (r *PanelRepository) ObtenerBloques() ([]models.Bloque, error) {
	rows, err := r.db.Query("SELECT id, datos FROM paneles ORDER BY orden")
	if err != nil {
		return nil, fmt.Errorf("error al leer los bloques de panel: %v", err)
	}
	defer rows.Close()

	var bloques []models.Bloque
	indice := 0
	for rows.Next() {
		var id, datos string
		if err := rows.Scan(&id, &datos); err != nil {
			return nil, err
		}
		bloques = append(bloques, models.Bloque{ID: id, Datos: []byte(datos), Indice: indice})
		indice++
	}

	return bloques, rows.Err()
}

// Obtener devuelve un bloque por su identificador, conservando el índice que
// tiene dentro del orden de descubrimiento
func (r *PanelRepository) Obtener(id string) (models.Bloque, error) {
	bloques, err := r.ObtenerBloques()
	if err != nil {
		return models.Bloque{}, err
	}

	for _, b := range bloques {
		if b.ID == id {
			return b, nil
		}
	}

	return models.Bloque{}, fmt.Errorf("no existe el bloque %s", id)
}

// Listar devuelve el resumen de los bloques almacenados
func (r *PanelRepository) Listar() ([]models.PanelResumen, error) {
	rows, err := r.db.Query("SELECT id, datos, actualizado_en FROM paneles ORDER BY orden")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	resumen := make([]models.PanelResumen, 0)
	for rows.Next() {
		var id, datos, actualizado string
		if err := rows.Scan(&id, &datos, &actualizado); err != nil {
			return nil, err
		}

		registros := 0
		if fondos, err := models.UnmarshalFondos([]byte(datos)); err == nil {
			registros = len(fondos)
		}

		resumen = append(resumen, models.PanelResumen{
			ID:            id,
			Registros:     registros,
			ActualizadoEn: actualizado,
		})
	}

	return resumen, rows.Err()
}
