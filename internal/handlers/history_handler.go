package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type HistoryHandler struct {
	analyzer services.AnalyzerService
}

func NewHistoryHandler(analyzer services.AnalyzerService) *HistoryHandler {
	return &HistoryHandler{
		analyzer: analyzer,
	}
}

// HandleListHistory handles GET /history, newest first.
func (h *HistoryHandler) HandleListHistory(c *fiber.Ctx) error {
	records, err := h.analyzer.History()
	if err != nil {
		return errorResponse(c, err)
	}

	entries := make([]models.HistoryEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, models.HistoryEntry{
			HistoryRecord: record,
			Line:          record.Summary(),
		})
	}

	return c.JSON(models.HistoryResponse{
		Count:   len(entries),
		Records: entries,
	})
}
