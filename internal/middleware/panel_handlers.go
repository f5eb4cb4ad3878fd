package middleware

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListPaneles devuelve el resumen de los bloques de panel almacenados
func ListPaneles(c *gin.Context) {
	resumen, err := panelRepo.Listar()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resumen)
}

// UpsertPanel guarda o reemplaza un bloque de datos de panel. El cuerpo es el
// array de fondos tal como lo produce el paso batch; un bloque que no parsea
// se rechaza acá para que el productor se entere en el momento de la carga.
func UpsertPanel(c *gin.Context) {
	id := c.Param("id")

	datos, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no se pudo leer el cuerpo de la petición"})
		return
	}

	origen := c.DefaultQuery("origen", "batch")

	if err := panelRepo.Guardar(id, datos, origen); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Bloque guardado correctamente", "id": id})
}

// DeletePanel elimina un bloque de datos de panel
func DeletePanel(c *gin.Context) {
	id := c.Param("id")

	if err := panelRepo.Eliminar(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Bloque eliminado correctamente", "id": id})
}
