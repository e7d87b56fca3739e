package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type AnalyzeHandler struct {
	analyzer      services.AnalyzerService
	uploadService services.UploadService
}

func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	uploadService services.UploadService,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:      analyzer,
		uploadService: uploadService,
	}
}

// HandleAnalyze handles POST /analyze
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	sub := services.Submission{
		Name:         c.FormValue("name"),
		Organization: c.FormValue("company"),
		Role:         c.FormValue("role"),
		Experience:   c.FormValue("experience"),
	}

	// A missing file is reported by the analyzer after the name check.
	if file, err := c.FormFile("resume"); err == nil {
		data, err := h.uploadService.ReadResume(file)
		if err != nil {
			return errorResponse(c, err)
		}
		sub.Resume = data
	}

	analysis, err := h.analyzer.Analyze(c.UserContext(), sub)
	if err != nil && (analysis == nil || !errors.Is(err, models.ErrStorage)) {
		return errorResponse(c, err)
	}

	result := analysis.Result
	response := models.AnalyzeResponse{
		SubmissionID:      analysis.SubmissionID.String(),
		Score:             result.Score,
		SkillsFound:       result.FoundSkills,
		SkillsFoundText:   skillsFoundText(result.FoundSkills),
		MissingSkills:     result.MissingSkills,
		Tips:              result.Tips,
		ATSFormat:         result.ATSFormat(),
		CareerObjective:   result.CareerObjective,
		TailoredObjective: analysis.TailoredObjective,
		ProjectNotes:      result.ProjectNotes,
		Saved:             analysis.Saved,
	}

	// The evaluation still reaches the user when only the write failed.
	if err != nil {
		response.Warning = "Your results could not be saved to history."
	}

	return c.JSON(response)
}

func skillsFoundText(found []string) string {
	if len(found) == 0 {
		return models.NoSkillsFound
	}

	return strings.Join(found, ", ")
}
