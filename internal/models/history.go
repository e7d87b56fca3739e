package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type HistoryRecord struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SubmissionID    uuid.UUID `gorm:"type:varchar(36);uniqueIndex;not null" json:"submission_id"`
	SubmitterName   string    `gorm:"type:text;not null" json:"name"`
	Organization    string    `gorm:"type:text;not null" json:"company"`
	Role            string    `gorm:"type:text;not null" json:"role"`
	ExperienceLevel string    `gorm:"type:text;not null" json:"experience"`
	SkillsFound     string    `gorm:"type:text" json:"skills_found"`
	Score           int       `gorm:"not null" json:"score"`
	MissingSkills   string    `gorm:"type:text" json:"missing_skills"`
	ATSFormat       string    `gorm:"type:text" json:"ats_format"`
	AnalyzedAt      time.Time `gorm:"not null" json:"analyzed_at"`
}

func (HistoryRecord) TableName() string {
	return "resume_results"
}

// Summary is the single audit line shown in history listings.
func (h HistoryRecord) Summary() string {
	return fmt.Sprintf("%s - %s (%s) → %s / %s — Score: %d%%",
		h.AnalyzedAt.Format("2006-01-02 15:04"),
		h.SubmitterName,
		h.ExperienceLevel,
		h.Organization,
		h.Role,
		h.Score,
	)
}
