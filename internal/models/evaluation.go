package models

import (
	"fmt"
	"strings"
)

type ExperienceLevel string

const (
	LevelFresher     ExperienceLevel = "Fresher"
	LevelExperienced ExperienceLevel = "Experienced"
)

// ParseExperienceLevel accepts either level name in any letter case.
func ParseExperienceLevel(s string) (ExperienceLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fresher":
		return LevelFresher, nil
	case "experienced":
		return LevelExperienced, nil
	default:
		return "", fmt.Errorf("%w: unknown experience level %q", ErrInvalidInput, s)
	}
}

type EvaluationResult struct {
	FoundSkills     []string `json:"skills_found"`
	MissingSkills   []string `json:"missing"`
	Score           int      `json:"score"`
	Tips            []string `json:"tips"`
	ATSNotes        []string `json:"ats_notes"`
	CareerObjective *string  `json:"career_objective,omitempty"`
	ProjectNotes    []string `json:"project_notes,omitempty"`
}

// ATSFormat renders the notes as the free-text block that gets persisted.
func (r *EvaluationResult) ATSFormat() string {
	return strings.Join(r.ATSNotes, "\n")
}
