package models

// NoSkillsFound is rendered in place of an empty found-skills list.
const NoSkillsFound = "None found"

type AnalyzeResponse struct {
	SubmissionID      string   `json:"submission_id"`
	Score             int      `json:"score"`
	SkillsFound       []string `json:"skills_found"`
	SkillsFoundText   string   `json:"skills_found_text"`
	MissingSkills     []string `json:"missing_skills"`
	Tips              []string `json:"tips"`
	ATSFormat         string   `json:"ats_format"`
	CareerObjective   *string  `json:"career_objective,omitempty"`
	TailoredObjective string   `json:"tailored_objective,omitempty"`
	ProjectNotes      []string `json:"project_notes,omitempty"`
	Saved             bool     `json:"saved"`
	Warning           string   `json:"warning,omitempty"`
}

type HistoryEntry struct {
	HistoryRecord
	Line string `json:"line"`
}

type HistoryResponse struct {
	Count   int            `json:"count"`
	Records []HistoryEntry `json:"records"`
}

type CompanyResponse struct {
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
}
