package repository

import (
	"database/sql"
	"testing"

	"github.com/AgusMolinaCode/FCI_Api.git/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndicadoresGuardarYObtener(t *testing.T) {
	repo := NewIndicadoresRepository(nuevaDBDePrueba(t))

	indicadores := models.Indicadores{
		FechaCalculo:       "2025-04-10",
		DiasTranscurridos:  100,
		InflacionUSAYTDPct: 2.9,
		InflacionUVA: models.InflacionUVA{
			YTDPct:        18.4,
			AnualizadaPct: 41.2,
		},
		VariacionDolarBolsaPct: 12.3,
	}

	require.NoError(t, repo.Guardar(indicadores))

	leidos, err := repo.Obtener()
	require.NoError(t, err)
	assert.Equal(t, indicadores, leidos)

	// Una carga nueva pisa a la anterior
	indicadores.InflacionUSAYTDPct = 3.1
	require.NoError(t, repo.Guardar(indicadores))

	leidos, err = repo.Obtener()
	require.NoError(t, err)
	assert.Equal(t, 3.1, leidos.InflacionUSAYTDPct)
}

func TestIndicadoresSinCargar(t *testing.T) {
	repo := NewIndicadoresRepository(nuevaDBDePrueba(t))

	_, err := repo.Obtener()
	assert.Equal(t, sql.ErrNoRows, err)
}
