package database

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

var DB *sql.DB

func InitDB() error {
	// Crear el directorio database si no existe
	if err := os.MkdirAll("database", 0755); err != nil {
		return err
	}

	var err error
	DB, err = sql.Open("sqlite3", filepath.Join("database", "fci.db"))
	if err != nil {
		return err
	}

	return CrearTablas(DB)
}

// CrearTablas crea el esquema si no existe. Se expone aparte de InitDB para
// poder usar una base en memoria en los tests.
func CrearTablas(db *sql.DB) error {
	// Bloques de datos de panel, tal como los sube el paso batch.
	// El id es el identificador del bloque (data_base, data_ytd_usd, etc.)
	createPanelesSQL := `
	CREATE TABLE IF NOT EXISTS paneles (
		id TEXT PRIMARY KEY,
		datos TEXT NOT NULL,
		orden INTEGER NOT NULL,
		origen TEXT DEFAULT 'batch',
		actualizado_en DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := db.Exec(createPanelesSQL); err != nil {
		return err
	}

	// Bloque de indicadores financieros (una sola fila)
	createIndicadoresSQL := `
	CREATE TABLE IF NOT EXISTS indicadores (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		datos TEXT NOT NULL,
		actualizado_en DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := db.Exec(createIndicadoresSQL); err != nil {
		return err
	}

	return nil
}
