package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mamynavalonar-dev/FLEETPROJECT/internal/store"
)

// listLimit bounds the import history, matching the capped detail list.
const listLimit = 50

// ListImports returns the most recent batch manifests.
// GET /api/imports
func (h *Handler) ListImports(c *gin.Context) {
	batches, err := h.store.ListBatches(listLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": batches, "count": len(batches)})
}

// GetImport returns one batch manifest with its records and their alerts.
// GET /api/imports/:batchId
func (h *Handler) GetImport(c *gin.Context) {
	batchID := c.Param("batchId")

	batch, err := h.store.GetBatch(batchID)
	if err != nil {
		if errors.Is(err, store.ErrBatchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "import not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	records, err := h.store.RecordsByBatch(batchID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"import":  batch,
		"records": records,
		"count":   len(records),
	})
}

// QueryRecords returns fuel records filtered by batch id, plate/equipment
// identifier, or operation date range.
// GET /api/records?batchId=...&identifier=...&from=2024-01-01&to=2024-12-31
func (h *Handler) QueryRecords(c *gin.Context) {
	if batchID := c.Query("batchId"); batchID != "" {
		records, err := h.store.RecordsByBatch(batchID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": records, "count": len(records)})
		return
	}

	if identifier := c.Query("identifier"); identifier != "" {
		records, err := h.store.RecordsByIdentifier(identifier)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": records, "count": len(records)})
		return
	}

	fromStr, toStr := c.Query("from"), c.Query("to")
	if fromStr == "" || toStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "batchId, identifier or from/to is required"})
		return
	}
	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date, expected YYYY-MM-DD"})
		return
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date, expected YYYY-MM-DD"})
		return
	}

	records, err := h.store.RecordsByDateRange(from, to.Add(24*time.Hour-time.Nanosecond))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": records, "count": len(records)})
}
