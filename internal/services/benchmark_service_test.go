package services

import (
	"testing"

	"github.com/AgusMolinaCode/FCI_Api.git/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcularMetricas(t *testing.T) {
	cuenta := models.CuentaRemunerada{
		TNA:    0.365,
		Limite: 1_000_000,
		Nombre: "Cuenta Remunerada Prueba 36.5% TNA",
	}

	metricas, err := CalcularMetricas(cuenta)
	require.NoError(t, err)

	assert.Equal(t, "Cuenta Remunerada Prueba 36.5% TNA", metricas.Nombre)
	// TND = 0.365 / 365 = 0.001 por día, topeado = 0.1% exacto
	assert.Equal(t, 0.1, metricas.RendimientoTopeadoPct)
	// Partiendo del monto recomendado: ((1.001^30) - 1) / 30 ≈ 0.1015% diario
	assert.InDelta(t, 0.101, metricas.RendimientoMejorPct, 0.0005)
	// El monto recomendado descuenta 30 días de interés del tope
	assert.InDelta(t, 970_460, metricas.MontoInicialRecomendado, 2)
	assert.Less(t, metricas.MontoInicialRecomendado, cuenta.Limite)
}

func TestCalcularMetricasInvalida(t *testing.T) {
	_, err := CalcularMetricas(models.CuentaRemunerada{TNA: -0.1, Limite: 100, Nombre: "Negativa"})
	assert.Error(t, err)

	_, err = CalcularMetricas(models.CuentaRemunerada{TNA: 0.3, Limite: -1, Nombre: "Tope negativo"})
	assert.Error(t, err)
}

func TestMetricasBenchmarkTablaDefault(t *testing.T) {
	metricas, err := MetricasBenchmark(CuentasRemuneradasDefault)
	require.NoError(t, err)
	require.Len(t, metricas, len(CuentasRemuneradasDefault))

	for i, m := range metricas {
		assert.Equal(t, CuentasRemuneradasDefault[i].Nombre, m.Nombre)
		assert.Greater(t, m.RendimientoMejorPct, 0.0)
		assert.GreaterOrEqual(t, m.RendimientoMejorPct, m.RendimientoTopeadoPct)
	}
}

func TestNormalizarBenchmarks(t *testing.T) {
	metricas := []models.BenchmarkMetricas{
		{Nombre: "Cuenta Remunerada A", RendimientoMejorPct: 0.095},
		{Nombre: "Cuenta Remunerada B", RendimientoMejorPct: 0.05},
	}

	fondos, err := NormalizarBenchmarks(metricas)
	require.NoError(t, err)
	require.Len(t, fondos, 2)

	// El nombre se copia textual y el rendimiento queda como variación diaria
	assert.Equal(t, "Cuenta Remunerada A", fondos[0].Nombre)
	require.NotNil(t, fondos[0].VariacionDiaria)
	assert.Equal(t, 0.095, *fondos[0].VariacionDiaria)
	assert.Nil(t, fondos[0].VariacionAnual)
	assert.Equal(t, models.TipoBenchmark, fondos[0].Tipo)
	assert.Equal(t, models.TipoBenchmark, fondos[1].Tipo)
}

func TestNormalizarBenchmarksSinNombre(t *testing.T) {
	_, err := NormalizarBenchmarks([]models.BenchmarkMetricas{
		{Nombre: "Cuenta Remunerada A", RendimientoMejorPct: 0.095},
		{Nombre: "", RendimientoMejorPct: 0.05},
	})
	assert.Error(t, err)
}

func TestArmarReferencias(t *testing.T) {
	indicadores := &models.Indicadores{
		InflacionUSAYTDPct: 2.9,
		InflacionUVA: models.InflacionUVA{
			YTDPct:        18.4,
			AnualizadaPct: 41.2,
		},
	}

	refs, err := ArmarReferencias(CuentasRemuneradasDefault, indicadores)
	require.NoError(t, err)

	assert.Len(t, refs.Benchmarks, len(CuentasRemuneradasDefault))
	assert.True(t, refs.InflacionCargada)
	assert.Equal(t, 2.9, refs.InflacionUSA)
	// La cifra doméstica es la inflación UVA anualizada
	assert.Equal(t, 41.2, refs.InflacionUVA)
}

func TestArmarReferenciasSinIndicadores(t *testing.T) {
	refs, err := ArmarReferencias(CuentasRemuneradasDefault, nil)
	require.NoError(t, err)

	assert.False(t, refs.InflacionCargada)
	assert.Len(t, refs.Benchmarks, len(CuentasRemuneradasDefault))
}
