package model

import (
	"time"

	"gorm.io/gorm"
)

// Question types. MCQ answers are scored against their options, SHORT
// answers go through the grader strategies.
const (
	QuestionTypeMCQ   = "MCQ"
	QuestionTypeShort = "SHORT"
)

type Question struct {
	ID             uint             `gorm:"primarykey" json:"id"`
	ExamID         uint             `json:"exam_id" gorm:"not null;index"`
	Type           string           `json:"type" gorm:"not null;index"` // "MCQ", "SHORT"
	Text           string           `json:"text" gorm:"type:text;not null"`
	ExpectedAnswer string           `json:"expected_answer" gorm:"type:text;not null"`
	Options        []QuestionOption `json:"options,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	DeletedAt      gorm.DeletedAt   `gorm:"index" json:"-"`
}
