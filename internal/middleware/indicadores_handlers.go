package middleware

import (
	"database/sql"
	"net/http"

	"github.com/AgusMolinaCode/FCI_Api.git/internal/models"
	"github.com/AgusMolinaCode/FCI_Api.git/internal/services"
	"github.com/gin-gonic/gin"
)

// GetIndicadores devuelve el bloque de indicadores financieros almacenado
func GetIndicadores(c *gin.Context) {
	indicadores, err := indicadoresRepo.Obtener()
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Los indicadores todavía no se cargaron"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, indicadores)
}

// GetBenchmarks devuelve las métricas calculadas de las cuentas remuneradas
func GetBenchmarks(c *gin.Context) {
	metricas, err := services.MetricasBenchmark(cuentasRemuneradas)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, metricas)
}

// UpdateIndicadores reemplaza el bloque de indicadores con el cuerpo de la
// petición. Lo usa el paso batch cuando calcula los indicadores por su cuenta.
func UpdateIndicadores(c *gin.Context) {
	var indicadores models.Indicadores
	if err := c.ShouldBindJSON(&indicadores); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "el bloque de indicadores no es válido: " + err.Error()})
		return
	}

	if err := indicadoresRepo.Guardar(indicadores); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Indicadores guardados correctamente"})
}

// RefreshIndicadores fuerza un refresco de los indicadores consultando las
// APIs externas. Si alguna consulta falla se conserva el bloque anterior.
func RefreshIndicadores(c *gin.Context) {
	updater := GetIndicadoresUpdater()
	if updater == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "El actualizador de indicadores no está iniciado"})
		return
	}

	// Vaciar la caché para que el refresco consulte datos nuevos
	services.LimpiarCacheAPI()

	if err := updater.Refrescar(); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	indicadores, err := indicadoresRepo.Obtener()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, indicadores)
}
