package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/mamynavalonar-dev/FLEETPROJECT/internal/config"
	"github.com/mamynavalonar-dev/FLEETPROJECT/internal/importer"
	"github.com/mamynavalonar-dev/FLEETPROJECT/internal/rules"
	"github.com/mamynavalonar-dev/FLEETPROJECT/internal/store"
)

// Handler groups the import API endpoints.
type Handler struct {
	store *store.Store
	coord *importer.Coordinator
	cfg   *config.AppConfig
}

// NewHandler wires the coordinator with the configured business thresholds.
func NewHandler(st *store.Store, cfg *config.AppConfig) *Handler {
	engine := rules.NewEngine(rules.Thresholds{
		RefillAmount:   cfg.Business.RefillThreshold,
		DailyKmLimit:   cfg.Business.DailyKmLimit,
		ConsumptionMin: cfg.Business.ConsumptionMin,
		ConsumptionMax: cfg.Business.ConsumptionMax,
	})

	return &Handler{
		store: st,
		coord: importer.NewCoordinator(st, engine),
		cfg:   cfg,
	}
}

// RegisterRoutes mounts the endpoints on the /api group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
	rg.POST("/import", h.Import)
	rg.GET("/imports", h.ListImports)
	rg.GET("/imports/:batchId", h.GetImport)
	rg.GET("/records", h.QueryRecords)
}

// Health is the liveness probe.
// GET /api/health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
