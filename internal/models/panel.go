package models

// Panel representa un bloque de datos ya parseado: un gráfico del dashboard
type Panel struct {
	ID     string  `json:"id"`
	Indice int     `json:"indice"`
	Anual  bool    `json:"anual"`
	Fondos []Fondo `json:"fondos"`
}

// PanelResumen es la vista liviana de un bloque almacenado
type PanelResumen struct {
	ID            string `json:"id"`
	Registros     int    `json:"registros"`
	ActualizadoEn string `json:"actualizado_en"`
}

// GraficoData contiene los datos formateados para un gráfico de barras
// horizontales: etiquetas, valores y colores en paralelo, más el título
type GraficoData struct {
	PanelID  string    `json:"panel_id"`
	Titulo   string    `json:"titulo"`
	Labels   []string  `json:"labels"`   // Nombres de fondos y benchmarks (eje Y)
	Values   []float64 `json:"values"`   // Variación porcentual (eje X)
	Colors   []string  `json:"colors"`   // Color por barra según la clasificación
	Tooltips []string  `json:"tooltips"` // Valores formateados a 3 decimales con "%"
	EjeX     string    `json:"eje_x"`
}
