package middleware

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/AgusMolinaCode/FCI_Api.git/internal/database"
	"github.com/AgusMolinaCode/FCI_Api.git/internal/models"
	"github.com/AgusMolinaCode/FCI_Api.git/internal/repository"
	"github.com/AgusMolinaCode/FCI_Api.git/internal/services"
	"github.com/gin-gonic/gin"
)

// Repositorios y configuración compartidos por los handlers
var (
	panelRepo          *repository.PanelRepository
	indicadoresRepo    *repository.IndicadoresRepository
	cuentasRemuneradas []models.CuentaRemunerada
)

// InitDashboard inicializa los repositorios y la tabla de cuentas remuneradas
func InitDashboard() {
	panelRepo = repository.NewPanelRepository(database.DB)
	indicadoresRepo = repository.NewIndicadoresRepository(database.DB)
	cuentasRemuneradas = services.CuentasRemuneradasDefault
}

// armarServicio construye las referencias y el servicio de dashboard para una
// corrida. Si el bloque de indicadores no está cargado el servicio se arma
// igual: los paneles diarios no lo necesitan y los anuales fallan uno por uno.
func armarServicio() (*services.DashboardService, error) {
	var indicadores *models.Indicadores

	ind, err := indicadoresRepo.Obtener()
	if err == nil {
		indicadores = &ind
	} else if err != sql.ErrNoRows {
		log.Printf("Error al leer los indicadores, los paneles anuales van a fallar: %v", err)
	}

	refs, err := services.ArmarReferencias(cuentasRemuneradas, indicadores)
	if err != nil {
		return nil, err
	}

	return services.NewDashboardService(refs), nil
}

// GetDashboard corre el pipeline sobre todos los paneles almacenados y
// devuelve los datos de gráfico. Los paneles que fallan se loguean y se omiten.
func GetDashboard(c *gin.Context) {
	servicio, err := armarServicio()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	bloques, err := panelRepo.ObtenerBloques()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, servicio.ProcesarTodos(bloques))
}

// GetDashboardPanel corre el pipeline para un solo panel
func GetDashboardPanel(c *gin.Context) {
	id := c.Param("id")

	servicio, err := armarServicio()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	bloque, err := panelRepo.Obtener(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	grafico, err := servicio.ProcesarBloque(bloque)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, grafico)
}
