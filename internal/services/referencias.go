package services

import (
	"github.com/AgusMolinaCode/FCI_Api.git/internal/models"
)

// ArmarReferencias construye las tablas de referencia compartidas por todos
// los paneles: la tabla de benchmarks normalizada y las cifras de inflación.
// Se llama una vez por corrida del dashboard. Un puntero nil de indicadores
// significa que el bloque nunca se cargó; los paneles diarios funcionan igual
// y los anuales fallan al inyectar.
func ArmarReferencias(cuentas []models.CuentaRemunerada, indicadores *models.Indicadores) (models.Referencias, error) {
	metricas, err := MetricasBenchmark(cuentas)
	if err != nil {
		return models.Referencias{}, err
	}

	benchmarks, err := NormalizarBenchmarks(metricas)
	if err != nil {
		return models.Referencias{}, err
	}

	refs := models.Referencias{Benchmarks: benchmarks}
	if indicadores != nil {
		refs.InflacionUSA = indicadores.InflacionUSAYTDPct
		refs.InflacionUVA = indicadores.InflacionUVA.AnualizadaPct
		refs.InflacionCargada = true
	}

	return refs, nil
}
