package repository

import (
	"github.com/dqthao/Whimbrel/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	Update(answer *model.StudentAnswer) error
	FindBySubmissionID(submissionID uint) ([]model.StudentAnswer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Update(answer *model.StudentAnswer) error {
	// Save updates all fields, including the grading score.
	return r.db.Save(answer).Error
}

func (r *answerRepository) FindBySubmissionID(submissionID uint) ([]model.StudentAnswer, error) {
	var answers []model.StudentAnswer
	err := r.db.Where("submission_id = ?", submissionID).
		Preload("Question").
		Preload("SelectedOption").
		Order("question_id ASC").
		Find(&answers).Error
	return answers, err
}
