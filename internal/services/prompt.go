package services

import (
	"fmt"
	"strings"

	"alfredoptarigan/resume-analyzer/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildCareerObjectivePrompt asks for a one-sentence objective grounded in the matched skills.
func (pb *PromptBuilder) BuildCareerObjectivePrompt(organization, role string, level models.ExperienceLevel, found []string) string {
	skills := "none of the listed skills"
	if len(found) > 0 {
		skills = strings.Join(found, ", ")
	}

	return fmt.Sprintf(`You are a career coach helping a candidate write the objective line of their resume.

TARGET COMPANY: %s
TARGET ROLE: %s
CANDIDATE LEVEL: %s
SKILLS ALREADY ON THE RESUME: %s

Write exactly one sentence (at most 35 words) the candidate can use as their career objective.
Mention the role and the company, and only claim skills from the list above.
Return ONLY the sentence, no quotes, no markdown.`,
		organization, role, strings.ToLower(string(level)), skills)
}

// CleanObjective strips quoting and markdown the model sometimes adds.
func CleanObjective(text string) string {
	text = strings.ReplaceAll(text, "```", "")
	text = strings.TrimSpace(text)
	text = strings.Trim(text, "\"'*")
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}
