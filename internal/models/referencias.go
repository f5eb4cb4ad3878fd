package models

// CuentaRemunerada es una entrada de la tabla estática de rendimientos
// garantizados: una cuenta remunerada con su TNA y su tope de saldo
type CuentaRemunerada struct {
	TNA    float64 `json:"tna" binding:"required"`
	Limite float64 `json:"limite" binding:"required"`
	Nombre string  `json:"nombre" binding:"required"`
}

// BenchmarkMetricas contiene las métricas calculadas para una cuenta remunerada
type BenchmarkMetricas struct {
	Nombre                  string  `json:"nombre"`
	MontoInicialRecomendado float64 `json:"monto_inicial_recomendado"` // Saldo inicial que llega al tope en 30 días
	RendimientoMejorPct     float64 `json:"rendimiento_mejor_%"`       // Rendimiento promedio diario partiendo del monto recomendado
	RendimientoTopeadoPct   float64 `json:"rendimiento_topeado_%"`     // Rendimiento diario con el saldo en el tope
}

// InflacionUVA contiene la inflación doméstica medida por el índice UVA
type InflacionUVA struct {
	YTDPct        float64 `json:"ytd_%"`
	AnualizadaPct float64 `json:"anualizada_estimada_%"`
}

// Indicadores refleja el bloque de datos financieros que consume el dashboard.
// Las claves JSON son el contrato con el productor y con el front.
type Indicadores struct {
	FechaCalculo           string       `json:"calculation_date"`
	DiasTranscurridos      int          `json:"days_elapsed_current_year"`
	InflacionUSAYTDPct     float64      `json:"inflacion_usa_ytd_%"`
	InflacionUVA           InflacionUVA `json:"inflacion_uva"`
	VariacionDolarBolsaPct float64      `json:"variacion_dolar_bolsa_compra_ytd_%"`
}

// Referencias agrupa las dos tablas de referencia que comparten todos los
// paneles. Se arman una vez por corrida y después son de solo lectura.
type Referencias struct {
	Benchmarks       []Fondo // Cuentas remuneradas ya normalizadas a forma de fondo
	InflacionUSA     float64 // Inflación USA YTD en %
	InflacionUVA     float64 // Inflación doméstica (UVA) YTD en %
	InflacionCargada bool    // false si el bloque de indicadores nunca se cargó
}
