package model

import (
	"time"

	"gorm.io/gorm"
)

type StudentAnswer struct {
	ID               uint            `gorm:"primarykey" json:"id"`
	SubmissionID     uint            `json:"submission_id" gorm:"not null;index:idx_submission_question"`
	QuestionID       uint            `json:"question_id" gorm:"not null;index:idx_submission_question"`
	Question         Question        `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	SelectedOptionID *uint           `json:"selected_option_id,omitempty"`
	SelectedOption   *QuestionOption `json:"selected_option,omitempty" gorm:"foreignKey:SelectedOptionID"`
	AnswerText       string          `json:"answer_text,omitempty" gorm:"type:text"`
	Score            *float64        `json:"score,omitempty"` // 0.0-1.0, set by the grading service
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	DeletedAt        gorm.DeletedAt  `gorm:"index" json:"-"`
}
