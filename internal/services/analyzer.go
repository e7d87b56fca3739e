package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
)

// Submission is one résumé sent for analysis.
type Submission struct {
	Name         string
	Organization string
	Role         string
	Experience   string
	Resume       []byte
}

type Analysis struct {
	SubmissionID      uuid.UUID
	Level             models.ExperienceLevel
	Result            *models.EvaluationResult
	TailoredObjective string
	Record            *models.HistoryRecord
	Saved             bool
}

type AnalyzerService interface {
	Analyze(ctx context.Context, sub Submission) (*Analysis, error)
	History() ([]models.HistoryRecord, error)
}

type analyzerService struct {
	historyRepo   repositories.HistoryRepository
	evaluator     EvaluatorService
	pdfParser     PDFParserService
	geminiService GeminiService
	promptBuilder *PromptBuilder

	objectiveTimeout time.Duration
}

// Upper bound on the Gemini call so a stalled request cannot hold up the
// history write.
const defaultObjectiveTimeout = 20 * time.Second

// NewAnalyzerService wires the pipeline. geminiService may be nil, in which
// case no tailored objective is generated.
func NewAnalyzerService(
	historyRepo repositories.HistoryRepository,
	evaluator EvaluatorService,
	pdfParser PDFParserService,
	geminiService GeminiService,
) AnalyzerService {
	return &analyzerService{
		historyRepo:   historyRepo,
		evaluator:     evaluator,
		pdfParser:     pdfParser,
		geminiService: geminiService,
		promptBuilder: NewPromptBuilder(),

		objectiveTimeout: defaultObjectiveTimeout,
	}
}

// Analyze runs validate, extract, evaluate and persist in order. When only the
// write fails, the analysis is returned together with an error wrapping
// models.ErrStorage.
func (a *analyzerService) Analyze(ctx context.Context, sub Submission) (*Analysis, error) {
	name := strings.TrimSpace(sub.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: please enter your name", models.ErrInvalidInput)
	}
	if len(sub.Resume) == 0 {
		return nil, fmt.Errorf("%w: please upload your resume (PDF format)", models.ErrInvalidInput)
	}
	level, err := models.ParseExperienceLevel(sub.Experience)
	if err != nil {
		return nil, err
	}

	submissionID := uuid.New()
	log.Printf("📄 Analyzing resume %s for %s / %s (%s)\n", submissionID, sub.Organization, sub.Role, level)

	text, err := a.pdfParser.ExtractText(sub.Resume)
	if err != nil {
		log.Printf("❌ Evaluation failed for %s: %v\n", submissionID, err)
		return nil, err
	}

	result := a.evaluator.Evaluate(text, sub.Organization, sub.Role, level)

	analysis := &Analysis{
		SubmissionID:      submissionID,
		Level:             level,
		Result:            result,
		TailoredObjective: a.tailoredObjective(ctx, sub, level, result),
	}

	record := &models.HistoryRecord{
		SubmissionID:    submissionID,
		SubmitterName:   name,
		Organization:    sub.Organization,
		Role:            sub.Role,
		ExperienceLevel: string(level),
		SkillsFound:     strings.Join(result.FoundSkills, ", "),
		Score:           result.Score,
		MissingSkills:   strings.Join(result.MissingSkills, ", "),
		ATSFormat:       result.ATSFormat(),
		AnalyzedAt:      time.Now(),
	}

	if err := a.historyRepo.Create(record); err != nil {
		log.Printf("💾 Persistence failed for %s (score %d was computed): %v\n", submissionID, result.Score, err)
		if !errors.Is(err, models.ErrStorage) {
			err = fmt.Errorf("%w: %v", models.ErrStorage, err)
		}
		return analysis, err
	}

	analysis.Record = record
	analysis.Saved = true

	log.Printf("✅ Resume %s scored %d%%\n", submissionID, result.Score)
	return analysis, nil
}

func (a *analyzerService) History() ([]models.HistoryRecord, error) {
	return a.historyRepo.FindAll()
}

func (a *analyzerService) tailoredObjective(ctx context.Context, sub Submission, level models.ExperienceLevel, result *models.EvaluationResult) string {
	if a.geminiService == nil || result.CareerObjective == nil {
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, a.objectiveTimeout)
	defer cancel()

	prompt := a.promptBuilder.BuildCareerObjectivePrompt(sub.Organization, sub.Role, level, result.FoundSkills)
	text, err := a.geminiService.GenerateText(ctx, prompt, 0.4)
	if err != nil {
		log.Printf("⚠️  Tailored objective unavailable: %v\n", err)
		return ""
	}

	return CleanObjective(text)
}
