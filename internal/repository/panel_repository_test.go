package repository

import (
	"database/sql"
	"testing"

	"github.com/AgusMolinaCode/FCI_Api.git/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nuevaDBDePrueba(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.CrearTablas(db))
	return db
}

var bloqueValido = []byte(`[{"Fondo_Fondo": "Fondo X", "Moneda Fondo_Moneda Fondo": "ARS", "Variac. %": 1.2}]`)

func TestGuardarYObtenerBloques(t *testing.T) {
	repo := NewPanelRepository(nuevaDBDePrueba(t))

	require.NoError(t, repo.Guardar("data_base", bloqueValido, "batch"))
	require.NoError(t, repo.Guardar("data_usd", bloqueValido, "batch"))
	require.NoError(t, repo.Guardar("data_ytd", bloqueValido, "batch"))

	bloques, err := repo.ObtenerBloques()
	require.NoError(t, err)
	require.Len(t, bloques, 3)

	// Orden de descubrimiento con índices consecutivos
	assert.Equal(t, "data_base", bloques[0].ID)
	assert.Equal(t, 0, bloques[0].Indice)
	assert.Equal(t, "data_ytd", bloques[2].ID)
	assert.Equal(t, 2, bloques[2].Indice)
}

func TestGuardarConservaElOrden(t *testing.T) {
	repo := NewPanelRepository(nuevaDBDePrueba(t))

	require.NoError(t, repo.Guardar("data_base", bloqueValido, "batch"))
	require.NoError(t, repo.Guardar("data_usd", bloqueValido, "batch"))

	// Re-cargar un bloque existente no lo mueve al final
	nuevoContenido := []byte(`[{"Fondo_Fondo": "Fondo Z", "Moneda Fondo_Moneda Fondo": "ARS", "Variac. %": 0.4}]`)
	require.NoError(t, repo.Guardar("data_base", nuevoContenido, "manual"))

	bloques, err := repo.ObtenerBloques()
	require.NoError(t, err)
	require.Len(t, bloques, 2)
	assert.Equal(t, "data_base", bloques[0].ID)
	assert.Contains(t, string(bloques[0].Datos), "Fondo Z")
}

func TestGuardarRechazaJSONInvalido(t *testing.T) {
	repo := NewPanelRepository(nuevaDBDePrueba(t))

	err := repo.Guardar("data_base", []byte(`{"no": "es un array"}`), "batch")
	assert.Error(t, err)

	bloques, err := repo.ObtenerBloques()
	require.NoError(t, err)
	assert.Empty(t, bloques)
}

func TestObtenerBloqueInexistente(t *testing.T) {
	repo := NewPanelRepository(nuevaDBDePrueba(t))

	_, err := repo.Obtener("data_fantasma")
	assert.Error(t, err)
}

func TestEliminar(t *testing.T) {
	repo := NewPanelRepository(nuevaDBDePrueba(t))

	require.NoError(t, repo.Guardar("data_base", bloqueValido, "batch"))
	require.NoError(t, repo.Eliminar("data_base"))

	bloques, err := repo.ObtenerBloques()
	require.NoError(t, err)
	assert.Empty(t, bloques)

	// Eliminar algo que no existe avisa
	assert.Error(t, repo.Eliminar("data_base"))
}

func TestListar(t *testing.T) {
	repo := NewPanelRepository(nuevaDBDePrueba(t))

	require.NoError(t, repo.Guardar("data_base", bloqueValido, "batch"))

	resumen, err := repo.Listar()
	require.NoError(t, err)
	require.Len(t, resumen, 1)
	assert.Equal(t, "data_base", resumen[0].ID)
	assert.Equal(t, 1, resumen[0].Registros)
	assert.NotEmpty(t, resumen[0].ActualizadoEn)
}
