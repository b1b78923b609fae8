package model

import (
	"time"

	"gorm.io/gorm"
)

// Submission holds one student's answers for one exam. Grade and TotalScore
// are written by the grading service only; IsCompleted is monotonic, a later
// grading pass never resets it.
type Submission struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	StudentID   uint            `json:"student_id" gorm:"not null;uniqueIndex:idx_student_exam"`
	ExamID      uint            `json:"exam_id" gorm:"not null;uniqueIndex:idx_student_exam"`
	Exam        Exam            `json:"exam,omitempty" gorm:"foreignKey:ExamID"`
	TotalScore  *float64        `json:"total_score,omitempty"`
	Grade       *float64        `json:"grade,omitempty"` // percentage, 0-100
	IsCompleted bool            `json:"is_completed" gorm:"default:false;index"`
	StartedAt   time.Time       `json:"started_at" gorm:"not null;index"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
	Answers     []StudentAnswer `json:"answers,omitempty" gorm:"foreignKey:SubmissionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}
