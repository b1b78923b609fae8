package dto

// StudentAnswerDTO is one answer inside a submission request. MCQ questions
// need SelectedOptionID, SHORT questions need AnswerText.
type StudentAnswerDTO struct {
	QuestionID       uint   `json:"question_id" binding:"required"`
	SelectedOptionID *uint  `json:"selected_option_id"`
	AnswerText       string `json:"answer_text"`
}

// SubmissionCreateDTO is the request body for submitting a full exam.
type SubmissionCreateDTO struct {
	StudentID uint               `json:"student_id" binding:"required"`
	ExamID    uint               `json:"exam_id" binding:"required"`
	Answers   []StudentAnswerDTO `json:"answers" binding:"required,min=1,dive"`
}
