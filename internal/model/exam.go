package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DefaultGradingPrompt is used when an exam does not carry its own template.
const DefaultGradingPrompt = "Grade the student's answer based on the expected answer. \n" +
	"Return ONLY a numeric score between 0.0 and 1.0. \n" +
	"Expected Answer: {expected}\nStudent Answer: {actual}\nScore 0.0-1.0:"

type Exam struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	Title           string         `json:"title" gorm:"not null;index"`
	Description     string         `json:"description,omitempty"`
	Course          string         `json:"course" gorm:"not null;index"`
	DurationMinutes int            `json:"duration_minutes" gorm:"not null"`
	Metadata        datatypes.JSON `json:"metadata,omitempty"`
	GradingPrompt   *string        `json:"grading_prompt,omitempty" gorm:"type:text"`
	Questions       []Question     `json:"questions,omitempty" gorm:"foreignKey:ExamID"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
