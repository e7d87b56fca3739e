package services

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"alfredoptarigan/resume-analyzer/internal/catalog"
	"alfredoptarigan/resume-analyzer/internal/models"
)

const minResumeLength = 500

const (
	noteMissingObjective  = "Missing an objective or summary section."
	noteMissingExperience = "No experience section found."
	noteMissingEducation  = "No education section detected."
	noteTooShort          = "Resume content too short, consider adding more details."
	noteFormatGood        = "ATS format looks good."

	noteNoProjects      = "No projects section found. Consider adding detailed projects relevant to your desired job role."
	noteProjectsNoSkill = "Your project descriptions don't highlight key skills for the job role. Add technologies/tools used in projects."
)

var projectSectionPattern = regexp.MustCompile(`(?is)(projects|project experience|academic projects|personal projects)(.*?)(\n\n|\z)`)

type EvaluatorService interface {
	Evaluate(resumeText, organization, role string, level models.ExperienceLevel) *models.EvaluationResult
}

type evaluatorService struct {
	catalog catalog.Catalog
}

func NewEvaluatorService(c catalog.Catalog) EvaluatorService {
	return &evaluatorService{catalog: c}
}

// Evaluate implements EvaluatorService. resumeText must already be lowercase.
func (e *evaluatorService) Evaluate(resumeText, organization, role string, level models.ExperienceLevel) *models.EvaluationResult {
	required := e.catalog.Lookup(organization, role)

	found := make([]string, 0, len(required))
	missing := make([]string, 0, len(required))
	for _, skill := range required {
		if strings.Contains(resumeText, skill) {
			found = append(found, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	score := 0
	if len(required) > 0 {
		score = len(found) * 100 / len(required)
	}

	tips := make([]string, 0, len(missing))
	for _, skill := range missing {
		tips = append(tips, fmt.Sprintf("Add more details about your experience with '%s'.", skill))
	}

	result := &models.EvaluationResult{
		FoundSkills:     found,
		MissingSkills:   missing,
		Score:           score,
		Tips:            tips,
		ATSNotes:        atsNotes(resumeText, level),
		CareerObjective: e.catalog.CareerObjective(organization, role),
	}

	if level == models.LevelFresher && len(required) > 0 {
		result.ProjectNotes = []string{reviewProjects(resumeText, required)}
	}

	return result
}

func atsNotes(text string, level models.ExperienceLevel) []string {
	var notes []string

	if !strings.Contains(text, "objective") && !strings.Contains(text, "summary") {
		notes = append(notes, noteMissingObjective)
	}
	if !strings.Contains(text, "experience") && level == models.LevelExperienced {
		notes = append(notes, noteMissingExperience)
	}
	if !strings.Contains(text, "education") {
		notes = append(notes, noteMissingEducation)
	}
	if utf8.RuneCountInString(text) < minResumeLength {
		notes = append(notes, noteTooShort)
	}

	if len(notes) == 0 {
		return []string{noteFormatGood}
	}

	return notes
}

// reviewProjects checks whether the projects section mentions any required skill.
func reviewProjects(text string, required []string) string {
	section := extractProjectSection(text)
	if section == "" {
		return noteNoProjects
	}

	var mentioned []string
	for _, skill := range required {
		if strings.Contains(section, skill) {
			mentioned = append(mentioned, skill)
		}
	}

	if len(mentioned) == 0 {
		return noteProjectsNoSkill
	}

	return "Projects highlight these relevant skills: " + strings.Join(mentioned, ", ")
}

func extractProjectSection(text string) string {
	match := projectSectionPattern.FindStringSubmatch(text)
	if match == nil {
		return ""
	}

	return strings.TrimSpace(match[2])
}
