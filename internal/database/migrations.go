package database

import (
	"log"
)

// RunMigrations ejecuta las migraciones necesarias para actualizar el esquema de la base de datos
func RunMigrations() error {
	log.Println("Ejecutando migraciones de la base de datos...")

	// Migración para añadir el campo origen a la tabla paneles (de dónde vino
	// el bloque: el batch de CAFCI o una carga manual)
	addOrigenColumnSQL := `
	ALTER TABLE paneles ADD COLUMN origen TEXT DEFAULT 'batch';
	`

	_, err := DB.Exec(addOrigenColumnSQL)
	if err != nil {
		log.Printf("Error al añadir la columna origen: %v", err)
		// No retornamos error porque SQLite puede dar error si la columna ya existe
		// y queremos que la migración continúe
	} else {
		log.Println("Columna origen añadida correctamente")
	}

	return nil
}
