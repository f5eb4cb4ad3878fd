package models

import "encoding/json"

// Tipo de registro dentro de un panel. Los fondos vienen del bloque de datos
// del productor batch; los benchmarks y la inflación se crean sintéticamente
// al armar el panel, así que el tipo se asigna en el momento de la construcción.
const (
	TipoFondo     = "fondo"
	TipoBenchmark = "benchmark"
	TipoInflacion = "inflacion"
)

// Marcadores de texto usados por el pipeline
const (
	MarcaClaseA           = "Clase A"
	MarcaInflacion        = "Inflación"
	MarcaCuentaRemunerada = "Cuenta Remunerada"
	// Marcador de broker usado para filtrar los benchmarks en paneles diarios en dólares
	MarcaBrokerUSD = "Cocos"
	// Los bloques anuales se identifican por este sufijo en el id del bloque
	MarcaAnual = "ytd"
)

// Monedas presentes en los datos de origen
const (
	MonedaARS = "ARS"
	MonedaUSD = "USD"
)

// Fondo representa una fila de rendimiento de un FCI tal como la produce el
// paso batch. Las claves JSON son las columnas combinadas del xlsx de CAFCI
// y se preservan textualmente (contrato con el productor, no renombrar).
type Fondo struct {
	Nombre              string   `json:"Fondo_Fondo"`
	VariacionDiaria     *float64 `json:"Variac. %"`                                       // Variación porcentual diaria
	VariacionAnual      *float64 `json:"30/12/24"`                                        // Variación porcentual desde el inicio del año
	Moneda              string   `json:"Moneda Fondo_Moneda Fondo"`                       // "ARS" o "USD"
	CodigoClasificacion int      `json:"Código de Clasificación_Código de Clasificación"` // Taxonomía de CAFCI (3 = money market)
	MinimoInversion     float64  `json:"Mínimo de Inversión_Mínimo de Inversión"`

	// Tipo distingue los fondos reales de los registros sintéticos.
	// Nunca viene del upstream.
	Tipo string `json:"-"`
}

// UnmarshalFondos parsea un bloque de datos de panel (array de fondos)
func UnmarshalFondos(data []byte) ([]Fondo, error) {
	var fondos []Fondo
	if err := json.Unmarshal(data, &fondos); err != nil {
		return nil, err
	}
	for i := range fondos {
		fondos[i].Tipo = TipoFondo
	}
	return fondos, nil
}

// Bloque es un bloque de datos de panel tal como está almacenado, todavía sin
// parsear. El índice es el orden de descubrimiento y se usa para reportar errores.
type Bloque struct {
	ID     string `json:"id"`
	Datos  []byte `json:"-"`
	Indice int    `json:"indice"`
}
