package routes

import (
	"github.com/AgusMolinaCode/FCI_Api.git/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine) {
	// Inicializar los repositorios de los handlers
	middleware.InitDashboard()

	// Rutas públicas: el front del dashboard solo lee
	router.GET("/dashboard", middleware.GetDashboard)
	router.GET("/dashboard/:id", middleware.GetDashboardPanel)
	router.GET("/paneles", middleware.ListPaneles)
	router.GET("/indicadores", middleware.GetIndicadores)
	router.GET("/benchmarks", middleware.GetBenchmarks)

	// Configurar opciones para rutas de administración
	router.OPTIONS("/admin/*path", func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "http://localhost:3000")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, Admin-Key")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Status(200)
	})

	// Rutas de carga: las usa el paso batch que procesa el xlsx de CAFCI
	admin := router.Group("/admin")
	admin.Use(middleware.AdminAuth())
	{
		admin.PUT("/paneles/:id", middleware.UpsertPanel)
		admin.DELETE("/paneles/:id", middleware.DeletePanel)
		admin.PUT("/indicadores", middleware.UpdateIndicadores)
		admin.POST("/indicadores/refresh", middleware.RefreshIndicadores)
	}
}
