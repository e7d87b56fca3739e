package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alfredoptarigan/resume-analyzer/internal/models"
)

func TestBuildCareerObjectivePrompt(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildCareerObjectivePrompt("Google", "UX Designer", models.LevelFresher, []string{"figma", "prototyping"})
	assert.Contains(t, prompt, "TARGET COMPANY: Google")
	assert.Contains(t, prompt, "TARGET ROLE: UX Designer")
	assert.Contains(t, prompt, "CANDIDATE LEVEL: fresher")
	assert.Contains(t, prompt, "figma, prototyping")

	prompt = pb.BuildCareerObjectivePrompt("Google", "UX Designer", models.LevelExperienced, nil)
	assert.Contains(t, prompt, "none of the listed skills")
}

func TestCleanObjective(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "Designer ready to grow at Google.", want: "Designer ready to grow at Google."},
		{name: "quoted", input: "\"Designer ready to grow at Google.\"", want: "Designer ready to grow at Google."},
		{name: "markdown fence", input: "```\n**Designer ready.**\n```", want: "Designer ready."},
		{name: "extra lines", input: "Designer ready.\nHope this helps!", want: "Designer ready."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanObjective(tc.input))
		})
	}
}
