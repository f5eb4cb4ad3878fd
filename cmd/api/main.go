package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/AgusMolinaCode/FCI_Api.git/internal/database"
	"github.com/AgusMolinaCode/FCI_Api.git/internal/middleware"
	"github.com/AgusMolinaCode/FCI_Api.git/internal/repository"
	routes "github.com/AgusMolinaCode/FCI_Api.git/internal/server"
	"github.com/AgusMolinaCode/FCI_Api.git/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// Instancia global del actualizador de indicadores
var indicadoresUpdater *services.IndicadoresUpdater

func main() {
	// Cargar variables de entorno
	if err := godotenv.Load(); err != nil {
		log.Printf("No se pudo cargar el archivo .env: %v", err)
	}

	// Crear el router de Gin
	router := gin.Default()

	// Configurar CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Admin-Key"}
	config.AllowCredentials = true
	config.ExposeHeaders = []string{"Content-Length"}
	router.Use(cors.New(config))

	// Inicializar base de datos
	if err := database.InitDB(); err != nil {
		log.Fatalf("Error al inicializar la base de datos: %v", err)
	}
	defer database.DB.Close()

	// Ejecutar migraciones
	if err := database.RunMigrations(); err != nil {
		log.Fatalf("Error al ejecutar las migraciones: %v", err)
	}

	// Iniciar el servicio de actualización de indicadores (cada 6 horas por defecto)
	horas := 6
	if valor := os.Getenv("INDICADORES_REFRESH_HORAS"); valor != "" {
		if parseadas, err := strconv.Atoi(valor); err == nil && parseadas > 0 {
			horas = parseadas
		}
	}
	indicadoresRepo := repository.NewIndicadoresRepository(database.DB)
	indicadoresUpdater = services.NewIndicadoresUpdater(time.Duration(horas)*time.Hour, indicadoresRepo)
	indicadoresUpdater.Start()
	defer indicadoresUpdater.Stop()

	// Hacer disponible el actualizador para los handlers
	middleware.SetIndicadoresUpdater(indicadoresUpdater)

	// Configurar las rutas
	routes.RegisterRoutes(router)

	// Iniciar el servidor
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Error al iniciar el servidor: %v", err)
	}
}
