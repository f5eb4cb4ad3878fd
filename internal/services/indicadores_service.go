package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/AgusMolinaCode/FCI_Api.git/internal/models"
)

const (
	urlUVA      = "https://api.argentinadatos.com/v1/finanzas/indices/uva"
	urlDolares  = "https://api.argentinadatos.com/v1/cotizaciones/dolares"
	urlFRED     = "https://api.stlouisfed.org/fred/series/observations"
	serieCPIUSA = "CPIAUCSL"
	casaBolsa   = "bolsa"

	// Fecha de referencia del cierre del año anterior para las series YTD
	fechaInicioAnio = "2024-12-31"
)

var clienteHTTP = &http.Client{Timeout: 10 * time.Second}

// Caché de respuestas para reducir llamadas a las APIs externas
var apiCache = make(map[string]respuestaCacheada)
var apiCacheMutex sync.Mutex

type respuestaCacheada struct {
	Datos     []byte
	Timestamp time.Time
}

// puntoUVA es un punto de la serie del índice UVA de argentinadatos.com
type puntoUVA struct {
	Fecha string  `json:"fecha"`
	Valor float64 `json:"valor"`
}

// cotizacionDolar es una cotización de argentinadatos.com
type cotizacionDolar struct {
	Casa   string  `json:"casa"`
	Compra float64 `json:"compra"`
	Fecha  string  `json:"fecha"`
}

// observacionFRED es una observación de una serie de FRED (el valor viene
// como string y puede ser "." cuando falta el dato)
type observacionFRED struct {
	Fecha string `json:"date"`
	Valor string `json:"value"`
}

type respuestaFRED struct {
	Observaciones []observacionFRED `json:"observations"`
}

// fetchAPI obtiene el cuerpo de una URL, con caché de una hora
func fetchAPI(direccion string) ([]byte, error) {
	apiCacheMutex.Lock()
	if cached, exists := apiCache[direccion]; exists && time.Since(cached.Timestamp) < time.Hour {
		apiCacheMutex.Unlock()
		return cached.Datos, nil
	}
	apiCacheMutex.Unlock()

	resp, err := clienteHTTP.Get(direccion)
	if err != nil {
		return nil, fmt.Errorf("error al consultar %s: %v", direccion, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("respuesta %d de %s", resp.StatusCode, direccion)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	apiCacheMutex.Lock()
	apiCache[direccion] = respuestaCacheada{Datos: body, Timestamp: time.Now()}
	apiCacheMutex.Unlock()

	return body, nil
}

// CalcularIndicadores arma el bloque de indicadores financieros consultando
// las APIs externas: inflación USA (FRED), índice UVA y dólar bolsa
// (argentinadatos.com). Si alguna consulta falla no se devuelve un bloque
// parcial: el que llama conserva el bloque anterior.
func CalcularIndicadores() (models.Indicadores, error) {
	hoy := time.Now()
	ayer := hoy.AddDate(0, 0, -1).Format("2006-01-02")
	diasTranscurridos := hoy.YearDay()

	inflacionUSA, err := inflacionUSAYTD()
	if err != nil {
		return models.Indicadores{}, err
	}

	datosUVA, err := fetchAPI(urlUVA)
	if err != nil {
		return models.Indicadores{}, err
	}
	var puntos []puntoUVA
	if err := json.Unmarshal(datosUVA, &puntos); err != nil {
		return models.Indicadores{}, fmt.Errorf("error al parsear la serie UVA: %v", err)
	}
	inflacionUVA, err := calcularInflacionUVA(puntos, fechaInicioAnio, ayer, diasTranscurridos)
	if err != nil {
		return models.Indicadores{}, err
	}

	datosDolar, err := fetchAPI(urlDolares)
	if err != nil {
		return models.Indicadores{}, err
	}
	var cotizaciones []cotizacionDolar
	if err := json.Unmarshal(datosDolar, &cotizaciones); err != nil {
		return models.Indicadores{}, fmt.Errorf("error al parsear las cotizaciones: %v", err)
	}
	variacionBolsa, err := calcularVariacionBolsa(cotizaciones, fechaInicioAnio, ayer)
	if err != nil {
		return models.Indicadores{}, err
	}

	return models.Indicadores{
		FechaCalculo:           hoy.Format("2006-01-02"),
		DiasTranscurridos:      diasTranscurridos,
		InflacionUSAYTDPct:     inflacionUSA,
		InflacionUVA:           inflacionUVA,
		VariacionDolarBolsaPct: variacionBolsa,
	}, nil
}

// inflacionUSAYTD calcula la inflación acumulada del año en USA a partir de
// la serie CPI de FRED. Requiere FRED_API_KEY en el entorno.
func inflacionUSAYTD() (float64, error) {
	apiKey := os.Getenv("FRED_API_KEY")
	if apiKey == "" {
		return 0, fmt.Errorf("FRED_API_KEY no está configurada")
	}

	inicio := fmt.Sprintf("%d-01-01", time.Now().Year())
	direccion := fmt.Sprintf("%s?series_id=%s&api_key=%s&file_type=json&observation_start=%s",
		urlFRED, serieCPIUSA, url.QueryEscape(apiKey), inicio)

	body, err := fetchAPI(direccion)
	if err != nil {
		return 0, err
	}

	var respuesta respuestaFRED
	if err := json.Unmarshal(body, &respuesta); err != nil {
		return 0, fmt.Errorf("error al parsear la respuesta de FRED: %v", err)
	}

	return inflacionYTDDesdeCPI(respuesta.Observaciones)
}

// inflacionYTDDesdeCPI calcula la variación porcentual entre la primera y la
// última observación válida de la serie (FRED marca los huecos con ".")
func inflacionYTDDesdeCPI(observaciones []observacionFRED) (float64, error) {
	valores := make([]float64, 0, len(observaciones))
	for _, obs := range observaciones {
		valor, err := strconv.ParseFloat(obs.Valor, 64)
		if err != nil {
			continue
		}
		valores = append(valores, valor)
	}

	if len(valores) < 2 {
		return 0, fmt.Errorf("la serie CPI tiene %d puntos válidos, se necesitan al menos 2", len(valores))
	}
	if valores[0] == 0 {
		return 0, fmt.Errorf("el primer valor de la serie CPI es cero")
	}

	return redondear3(((valores[len(valores)-1] / valores[0]) - 1) * 100), nil
}

// calcularInflacionUVA calcula la inflación doméstica YTD y su versión
// anualizada a partir de la serie UVA, entre las fechas de inicio y fin
func calcularInflacionUVA(puntos []puntoUVA, inicio, fin string, diasTranscurridos int) (models.InflacionUVA, error) {
	var valorInicio, valorFin float64
	for _, p := range puntos {
		switch p.Fecha {
		case inicio:
			valorInicio = p.Valor
		case fin:
			valorFin = p.Valor
		}
	}

	if valorInicio == 0 || valorFin == 0 {
		return models.InflacionUVA{}, fmt.Errorf("faltan puntos de la serie UVA para %s o %s", inicio, fin)
	}

	total := ((valorFin / valorInicio) - 1) * 100

	var anualizada float64
	if diasTranscurridos > 0 {
		anualizada = (total / float64(diasTranscurridos)) * diasAnio
	}

	return models.InflacionUVA{
		YTDPct:        redondear2(total),
		AnualizadaPct: redondear2(anualizada),
	}, nil
}

// calcularVariacionBolsa calcula la variación YTD del dólar bolsa (compra)
func calcularVariacionBolsa(cotizaciones []cotizacionDolar, inicio, fin string) (float64, error) {
	var valorInicio, valorFin float64
	for _, c := range cotizaciones {
		if c.Casa != casaBolsa {
			continue
		}
		switch c.Fecha {
		case inicio:
			valorInicio = c.Compra
		case fin:
			valorFin = c.Compra
		}
	}

	if valorInicio == 0 || valorFin == 0 {
		return 0, fmt.Errorf("faltan cotizaciones del dólar bolsa para %s o %s", inicio, fin)
	}

	return redondear2(((valorFin / valorInicio) - 1) * 100), nil
}

// LimpiarCacheAPI vacía la caché de respuestas. Lo usa el refresco manual
// para forzar una consulta nueva a las APIs.
func LimpiarCacheAPI() {
	apiCacheMutex.Lock()
	apiCache = make(map[string]respuestaCacheada)
	apiCacheMutex.Unlock()
}
