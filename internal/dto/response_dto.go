package dto

import "time"

// OptionResponseDTO deliberately hides the is_correct flag from students.
type OptionResponseDTO struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

// QuestionResponseDTO is a question as shown to students: no expected answer.
type QuestionResponseDTO struct {
	ID      uint                `json:"id"`
	ExamID  uint                `json:"exam_id"`
	Type    string              `json:"type"`
	Text    string              `json:"text"`
	Options []OptionResponseDTO `json:"options,omitempty"`
}

// ExamResponseDTO is the full exam view for a student about to take it.
type ExamResponseDTO struct {
	ID              uint                  `json:"id"`
	Title           string                `json:"title"`
	Description     string                `json:"description,omitempty"`
	Course          string                `json:"course"`
	DurationMinutes int                   `json:"duration_minutes"`
	Questions       []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
}

// ExamSummaryDTO is used for listing available exams.
type ExamSummaryDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Course        string    `json:"course"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// AnswerResponseDTO is one graded answer inside a submission detail.
type AnswerResponseDTO struct {
	ID               uint     `json:"id"`
	QuestionID       uint     `json:"question_id"`
	SelectedOptionID *uint    `json:"selected_option_id,omitempty"`
	AnswerText       string   `json:"answer_text,omitempty"`
	Score            *float64 `json:"score,omitempty"`
}

// SubmissionDetailDTO is the full submission view including graded answers.
type SubmissionDetailDTO struct {
	ID          uint                `json:"id"`
	StudentID   uint                `json:"student_id"`
	ExamID      uint                `json:"exam_id"`
	ExamTitle   string              `json:"exam_title,omitempty"`
	TotalScore  *float64            `json:"total_score,omitempty"`
	Grade       *float64            `json:"grade,omitempty"`
	IsCompleted bool                `json:"is_completed"`
	StartedAt   time.Time           `json:"started_at"`
	CompletedAt *time.Time          `json:"completed_at,omitempty"`
	Answers     []AnswerResponseDTO `json:"answers,omitempty"`
}

// SubmissionSummaryDTO is used for listing a student's submissions.
type SubmissionSummaryDTO struct {
	ID          uint       `json:"id"`
	ExamID      uint       `json:"exam_id"`
	ExamTitle   string     `json:"exam_title,omitempty"`
	Grade       *float64   `json:"grade,omitempty"`
	IsCompleted bool       `json:"is_completed"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
