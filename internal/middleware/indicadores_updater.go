package middleware

import (
	"github.com/AgusMolinaCode/FCI_Api.git/internal/services"
)

// Variable global para almacenar la instancia del actualizador de indicadores
var indicadoresUpdaterInstance *services.IndicadoresUpdater

// SetIndicadoresUpdater establece la instancia del actualizador de indicadores
func SetIndicadoresUpdater(updater *services.IndicadoresUpdater) {
	indicadoresUpdaterInstance = updater
}

// GetIndicadoresUpdater obtiene la instancia del actualizador de indicadores
func GetIndicadoresUpdater() *services.IndicadoresUpdater {
	return indicadoresUpdaterInstance
}
