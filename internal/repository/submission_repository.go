package repository

import (
	"github.com/dqthao/Whimbrel/internal/model"
	"gorm.io/gorm"
)

type SubmissionRepository interface {
	Create(submission *model.Submission) error
	Update(submission *model.Submission) error
	FindByID(id uint) (*model.Submission, error)
	FindByIDWithDetails(id uint) (*model.Submission, error)
	FindByStudentAndExam(studentID, examID uint) (*model.Submission, error)
	FindAllByStudent(studentID uint) ([]model.Submission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(submission *model.Submission) error {
	// Associated answers are created together with the submission.
	return r.db.Create(submission).Error
}

func (r *submissionRepository) Update(submission *model.Submission) error {
	return r.db.Save(submission).Error
}

func (r *submissionRepository) FindByID(id uint) (*model.Submission, error) {
	var submission model.Submission
	if err := r.db.First(&submission, id).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) FindByIDWithDetails(id uint) (*model.Submission, error) {
	var submission model.Submission
	err := r.db.
		Preload("Exam").
		Preload("Answers.Question").
		Preload("Answers.SelectedOption").
		First(&submission, id).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) FindByStudentAndExam(studentID, examID uint) (*model.Submission, error) {
	var submission model.Submission
	err := r.db.Where("student_id = ? AND exam_id = ?", studentID, examID).First(&submission).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) FindAllByStudent(studentID uint) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.db.Where("student_id = ?", studentID).
		Preload("Exam").
		Order("started_at DESC").
		Find(&submissions).Error
	return submissions, err
}
