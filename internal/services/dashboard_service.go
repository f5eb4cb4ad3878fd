package services

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/AgusMolinaCode/FCI_Api.git/internal/models"
)

// Cantidad de barras por gráfico
const TopN = 10

// Colores de barra según la clasificación del registro
const (
	ColorInflacion   = "red"
	ColorBenchmark   = "steelblue"
	ColorMoneyMarket = "lightblue"
	ColorRentaFija   = "mediumseagreen"
	ColorOtro        = "orange"
)

// Códigos de clasificación de CAFCI con color propio
const (
	codigoMoneyMarket = 3
	codigoRentaFija   = 2
)

const (
	tituloPrefijo = "Top 10 FCI"
	alcanceClaseA = "for individual investors"
	alcanceTodos  = "all funds"
	plazoAnual    = "ANNUAL"
	plazoDiario   = "DAILY"
	monedaPesos   = "PESOS"
	monedaDolares = "DOLLARS"
	tituloEjeX    = "Variation (%)"
	nombreInflUSA = models.MarcaInflacion + " USA"
	nombreInflUVA = models.MarcaInflacion + " UVA"
)

// DashboardService arma los datos de gráfico de cada panel a partir de las
// tablas de referencia. Las referencias se calculan una vez y después son de
// solo lectura, así que una misma instancia sirve para todos los paneles.
type DashboardService struct {
	refs models.Referencias
}

func NewDashboardService(refs models.Referencias) *DashboardService {
	return &DashboardService{refs: refs}
}

// ColorDe asigna el color de barra de un registro. Primero decide por el tipo
// asignado al construir el registro; para los fondos que vienen del upstream
// (que no traen tipo sintético) cae al texto del nombre y después al código de
// clasificación. Siempre devuelve un color: un código desconocido es "otro".
func ColorDe(f models.Fondo) string {
	switch f.Tipo {
	case models.TipoInflacion:
		return ColorInflacion
	case models.TipoBenchmark:
		return ColorBenchmark
	}

	if strings.Contains(f.Nombre, models.MarcaInflacion) {
		return ColorInflacion
	}
	if strings.Contains(f.Nombre, models.MarcaCuentaRemunerada) {
		return ColorBenchmark
	}

	switch f.CodigoClasificacion {
	case codigoMoneyMarket:
		return ColorMoneyMarket
	case codigoRentaFija:
		return ColorRentaFija
	default:
		return ColorOtro
	}
}

// ParsearBloque convierte un bloque almacenado en un panel. El plazo se deriva
// del identificador del bloque: si contiene el marcador anual, el panel rankea
// por la variación desde inicio de año en lugar de la diaria.
func (s *DashboardService) ParsearBloque(b models.Bloque) (models.Panel, error) {
	fondos, err := models.UnmarshalFondos(b.Datos)
	if err != nil {
		return models.Panel{}, fmt.Errorf("el bloque %s no parsea: %v", b.ID, err)
	}

	return models.Panel{
		ID:     b.ID,
		Indice: b.Indice,
		Anual:  strings.Contains(b.ID, models.MarcaAnual),
		Fondos: fondos,
	}, nil
}

// Inyectar agrega al panel los registros sintéticos de comparación:
//   - Paneles anuales: exactamente un registro de inflación, USA si el panel
//     está en dólares y UVA en el resto de los casos.
//   - Paneles diarios: la lista de cuentas remuneradas. Si el panel está en
//     dólares la lista se filtra por el marcador de broker (comportamiento
//     heredado del dashboard original, ver DESIGN.md).
//
// La moneda del panel se deriva del primer registro; un panel vacío no tiene
// moneda y falla acá. No muta ni el panel ni las referencias.
func (s *DashboardService) Inyectar(p models.Panel) ([]models.Fondo, error) {
	if len(p.Fondos) == 0 {
		return nil, fmt.Errorf("el panel %s no tiene registros: no se puede derivar la moneda", p.ID)
	}
	moneda := p.Fondos[0].Moneda

	if p.Anual {
		if !s.refs.InflacionCargada {
			return nil, fmt.Errorf("el panel %s es anual y los indicadores financieros no están cargados", p.ID)
		}

		valor := s.refs.InflacionUVA
		nombre := nombreInflUVA
		if moneda == models.MonedaUSD {
			valor = s.refs.InflacionUSA
			nombre = nombreInflUSA
		}

		inflacion := models.Fondo{
			Nombre:         nombre,
			VariacionAnual: &valor,
			Moneda:         moneda,
			Tipo:           models.TipoInflacion,
		}

		merged := make([]models.Fondo, 0, len(p.Fondos)+1)
		merged = append(merged, p.Fondos...)
		return append(merged, inflacion), nil
	}

	bancos := s.refs.Benchmarks
	if moneda == models.MonedaUSD {
		filtrados := make([]models.Fondo, 0, len(bancos))
		for _, b := range bancos {
			if strings.Contains(b.Nombre, models.MarcaBrokerUSD) {
				filtrados = append(filtrados, b)
			}
		}
		bancos = filtrados
	}

	merged := make([]models.Fondo, 0, len(p.Fondos)+len(bancos))
	merged = append(merged, p.Fondos...)
	return append(merged, bancos...), nil
}

// metrica devuelve el valor de ranking de un registro. Un registro sin la
// métrica del panel rankea como 0, sin modificar el registro.
func metrica(f models.Fondo, anual bool) float64 {
	pct := f.VariacionDiaria
	if anual {
		pct = f.VariacionAnual
	}
	if pct == nil {
		return 0
	}
	return *pct
}

// Rankear ordena los registros de mayor a menor variación y corta en TopN.
// El orden es estable: a igual valor se conserva el orden de entrada (fondos
// originales primero, sintéticos después). Devuelve una secuencia nueva.
func Rankear(fondos []models.Fondo, anual bool) []models.Fondo {
	orden := make([]models.Fondo, len(fondos))
	copy(orden, fondos)

	sort.SliceStable(orden, func(i, j int) bool {
		return metrica(orden[i], anual) > metrica(orden[j], anual)
	})

	if len(orden) > TopN {
		orden = orden[:TopN]
	}
	return orden
}

// alcance determina el público del panel mirando la lista de fondos original,
// antes de inyectar los sintéticos: si todos los nombres son "Clase A" el
// panel está restringido a inversores minoristas
func alcance(fondos []models.Fondo) string {
	for _, f := range fondos {
		if !strings.Contains(f.Nombre, models.MarcaClaseA) {
			return alcanceTodos
		}
	}
	return alcanceClaseA
}

// titulo compone el título del gráfico: prefijo + público + plazo + moneda
func titulo(alcance string, anual bool, moneda string) string {
	plazo := plazoDiario
	if anual {
		plazo = plazoAnual
	}

	divisa := monedaDolares
	if moneda == models.MonedaARS {
		divisa = monedaPesos
	}

	return fmt.Sprintf("%s - %s - %s %s", tituloPrefijo, alcance, plazo, divisa)
}

// Construir arma los datos del gráfico: etiquetas, valores, colores y tooltips
// en paralelo, en el orden del ranking
func Construir(panelID string, top []models.Fondo, anual bool, alcance, moneda string) models.GraficoData {
	grafico := models.GraficoData{
		PanelID:  panelID,
		Titulo:   titulo(alcance, anual, moneda),
		Labels:   make([]string, 0, len(top)),
		Values:   make([]float64, 0, len(top)),
		Colors:   make([]string, 0, len(top)),
		Tooltips: make([]string, 0, len(top)),
		EjeX:     tituloEjeX,
	}

	for _, f := range top {
		valor := metrica(f, anual)
		grafico.Labels = append(grafico.Labels, f.Nombre)
		grafico.Values = append(grafico.Values, valor)
		grafico.Colors = append(grafico.Colors, ColorDe(f))
		grafico.Tooltips = append(grafico.Tooltips, strconv.FormatFloat(valor, 'f', 3, 64)+"%")
	}

	return grafico
}

// ProcesarBloque corre el pipeline completo para un bloque: parsear, derivar
// el público, inyectar los sintéticos, rankear y armar el gráfico. Es una
// función pura sobre el bloque y las referencias; el que llama decide qué
// hacer con el error.
func (s *DashboardService) ProcesarBloque(b models.Bloque) (models.GraficoData, error) {
	panel, err := s.ParsearBloque(b)
	if err != nil {
		return models.GraficoData{}, err
	}

	// El público se decide sobre la lista original, sin los sintéticos
	publico := alcance(panel.Fondos)

	merged, err := s.Inyectar(panel)
	if err != nil {
		return models.GraficoData{}, err
	}
	moneda := panel.Fondos[0].Moneda

	top := Rankear(merged, panel.Anual)

	return Construir(panel.ID, top, panel.Anual, publico, moneda), nil
}

// ProcesarTodos corre el pipeline para cada bloque descubierto. Un panel que
// falla se loguea con su índice y no afecta a los demás; no hay reintentos.
func (s *DashboardService) ProcesarTodos(bloques []models.Bloque) []models.GraficoData {
	graficos := make([]models.GraficoData, 0, len(bloques))

	for _, b := range bloques {
		grafico, err := s.ProcesarBloque(b)
		if err != nil {
			log.Printf("Error al procesar el panel %d (%s): %v", b.Indice, b.ID, err)
			continue
		}
		graficos = append(graficos, grafico)
	}

	return graficos
}
