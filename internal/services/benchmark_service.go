package services

import (
	"fmt"
	"math"

	"github.com/AgusMolinaCode/FCI_Api.git/internal/models"
)

const (
	diasAnio = 365
	diasMes  = 30
)

// CuentasRemuneradasDefault es la tabla de cuentas remuneradas contra las que
// se comparan los fondos. Se pasa explícitamente al armar las referencias para
// poder reemplazarla en los tests.
var CuentasRemuneradasDefault = []models.CuentaRemunerada{
	{TNA: 0.228, Limite: 500_000, Nombre: "Cuenta Remunerada Banco Bica 30% TNA"},
	{TNA: 0.3564, Limite: 600_000, Nombre: "Cuenta Remunerada NaranjaX 31% TNA"},
	{TNA: 0.4082, Limite: 1_000_000, Nombre: "Cuenta Remunerada Uala 35% TNA"},
	{TNA: 0.020184, Limite: 1_000_000, Nombre: "Cuenta Remunerada IOL 2% TNA"},
	{TNA: 0.3470, Limite: 1_000_000, Nombre: "Cuenta Remunerada Uala Base 30% TNA"},
}

// CalcularMetricas calcula las métricas de una cuenta remunerada: el saldo
// inicial que llega justo al tope en 30 días y los dos rendimientos promedio
// diarios (partiendo de ese saldo y con el saldo ya topeado)
func CalcularMetricas(cuenta models.CuentaRemunerada) (models.BenchmarkMetricas, error) {
	if cuenta.TNA < 0 || cuenta.Limite < 0 {
		return models.BenchmarkMetricas{}, fmt.Errorf("la cuenta %q tiene TNA o límite negativo", cuenta.Nombre)
	}

	tnd := cuenta.TNA / diasAnio
	p0 := cuenta.Limite / math.Pow(1+tnd, diasMes)

	var rendimientoMejor float64
	if p0 > 0 {
		rendimientoMejor = ((cuenta.Limite / p0) - 1) / diasMes
	}

	return models.BenchmarkMetricas{
		Nombre:                  cuenta.Nombre,
		MontoInicialRecomendado: math.Round(p0),
		RendimientoMejorPct:     redondear3(rendimientoMejor * 100),
		RendimientoTopeadoPct:   redondear3(tnd * 100),
	}, nil
}

// MetricasBenchmark calcula las métricas de toda la tabla de cuentas
func MetricasBenchmark(cuentas []models.CuentaRemunerada) ([]models.BenchmarkMetricas, error) {
	metricas := make([]models.BenchmarkMetricas, 0, len(cuentas))
	for _, cuenta := range cuentas {
		m, err := CalcularMetricas(cuenta)
		if err != nil {
			return nil, err
		}
		metricas = append(metricas, m)
	}
	return metricas, nil
}

// NormalizarBenchmarks convierte las métricas de las cuentas remuneradas en
// registros con la misma forma que un fondo, para poder mezclarlos en los
// paneles diarios. El rendimiento ya viene en la unidad que espera el gráfico.
// Una entrada sin nombre es un defecto de configuración y corta la carga.
func NormalizarBenchmarks(metricas []models.BenchmarkMetricas) ([]models.Fondo, error) {
	fondos := make([]models.Fondo, 0, len(metricas))
	for i, m := range metricas {
		if m.Nombre == "" {
			return nil, fmt.Errorf("la entrada %d de la tabla de benchmarks no tiene nombre", i)
		}

		rendimiento := m.RendimientoMejorPct
		fondos = append(fondos, models.Fondo{
			Nombre:          m.Nombre,
			VariacionDiaria: &rendimiento,
			Tipo:            models.TipoBenchmark,
		})
	}
	return fondos, nil
}

func redondear3(valor float64) float64 {
	return math.Round(valor*1000) / 1000
}

func redondear2(valor float64) float64 {
	return math.Round(valor*100) / 100
}
