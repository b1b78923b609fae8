package dto

// QuestionOptionCreateDTO is used within QuestionCreateDTO for MCQ options.
type QuestionOptionCreateDTO struct {
	Text      string `json:"text" binding:"required"`
	IsCorrect bool   `json:"is_correct"`
}

// QuestionCreateDTO is used within ExamCreateDTO for admin exam creation.
type QuestionCreateDTO struct {
	Type           string                    `json:"type" binding:"required,oneof=MCQ SHORT"`
	Text           string                    `json:"text" binding:"required"`
	ExpectedAnswer string                    `json:"expected_answer" binding:"required"`
	Options        []QuestionOptionCreateDTO `json:"options" binding:"omitempty,dive"`
}

// ExamCreateDTO is for admin to create a new exam with all its questions.
type ExamCreateDTO struct {
	Title           string              `json:"title" binding:"required"`
	Description     string              `json:"description,omitempty"`
	Course          string              `json:"course" binding:"required"`
	DurationMinutes int                 `json:"duration_minutes" binding:"required,gt=0"`
	GradingPrompt   *string             `json:"grading_prompt"`
	Questions       []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}
