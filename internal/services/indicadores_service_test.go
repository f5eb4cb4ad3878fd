package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcularInflacionUVA(t *testing.T) {
	puntos := []puntoUVA{
		{Fecha: "2024-12-30", Valor: 990},
		{Fecha: "2024-12-31", Valor: 1000},
		{Fecha: "2025-04-10", Valor: 1100},
	}

	uva, err := calcularInflacionUVA(puntos, "2024-12-31", "2025-04-10", 100)
	require.NoError(t, err)

	assert.Equal(t, 10.0, uva.YTDPct)
	// 10% en 100 días, anualizado a 365
	assert.Equal(t, 36.5, uva.AnualizadaPct)
}

func TestCalcularInflacionUVAFaltanPuntos(t *testing.T) {
	puntos := []puntoUVA{
		{Fecha: "2024-12-31", Valor: 1000},
	}

	_, err := calcularInflacionUVA(puntos, "2024-12-31", "2025-04-10", 100)
	assert.Error(t, err)
}

func TestCalcularVariacionBolsa(t *testing.T) {
	cotizaciones := []cotizacionDolar{
		{Casa: "oficial", Compra: 900, Fecha: "2024-12-31"},
		{Casa: "bolsa", Compra: 1000, Fecha: "2024-12-31"},
		{Casa: "bolsa", Compra: 1200, Fecha: "2025-04-10"},
		{Casa: "blue", Compra: 1300, Fecha: "2025-04-10"},
	}

	variacion, err := calcularVariacionBolsa(cotizaciones, "2024-12-31", "2025-04-10")
	require.NoError(t, err)

	// Solo cuentan las cotizaciones de la casa bolsa
	assert.Equal(t, 20.0, variacion)
}

func TestCalcularVariacionBolsaSinDatos(t *testing.T) {
	cotizaciones := []cotizacionDolar{
		{Casa: "oficial", Compra: 900, Fecha: "2024-12-31"},
	}

	_, err := calcularVariacionBolsa(cotizaciones, "2024-12-31", "2025-04-10")
	assert.Error(t, err)
}

func TestInflacionYTDDesdeCPI(t *testing.T) {
	observaciones := []observacionFRED{
		{Fecha: "2025-01-01", Valor: "100"},
		{Fecha: "2025-02-01", Valor: "."},
		{Fecha: "2025-03-01", Valor: "103"},
	}

	inflacion, err := inflacionYTDDesdeCPI(observaciones)
	require.NoError(t, err)

	// Los huecos de la serie ("." en FRED) se ignoran
	assert.Equal(t, 3.0, inflacion)
}

func TestInflacionYTDDesdeCPIInsuficiente(t *testing.T) {
	observaciones := []observacionFRED{
		{Fecha: "2025-01-01", Valor: "100"},
		{Fecha: "2025-02-01", Valor: "."},
	}

	_, err := inflacionYTDDesdeCPI(observaciones)
	assert.Error(t, err)
}
