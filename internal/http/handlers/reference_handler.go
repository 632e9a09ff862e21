package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Madhavikareddy/IRCTC-Redesign/internal/trains"
)

// ReferenceHandler serves the static lookup tables backing the search
// form.
type ReferenceHandler struct {
	Catalog *trains.StaticCatalog
}

func (h ReferenceHandler) Stations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stations": h.Catalog.Stations()})
}

func (h ReferenceHandler) Classes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"classes": trains.ClassOptions()})
}

func (h ReferenceHandler) Quotas(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"quotas": trains.QuotaOptions()})
}

// Health is the liveness probe.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
