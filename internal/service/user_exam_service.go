package service

import (
	"fmt"

	"github.com/dqthao/Whimbrel/internal/dto"
	"github.com/dqthao/Whimbrel/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type UserExamService interface {
	GetAllExams() ([]dto.ExamSummaryDTO, error)
	GetExamDetails(examID uint) (*dto.ExamResponseDTO, error)
}

type userExamService struct {
	examRepo repository.ExamRepository
}

func NewUserExamService(examRepo repository.ExamRepository) UserExamService {
	return &userExamService{examRepo: examRepo}
}

func (s *userExamService) GetAllExams() ([]dto.ExamSummaryDTO, error) {
	examsWithCount, err := s.examRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get exams with question count from repository")
		return nil, fmt.Errorf("error fetching exams: %w", err)
	}

	var dtos []dto.ExamSummaryDTO
	for _, ewc := range examsWithCount {
		dtos = append(dtos, dto.ExamSummaryDTO{
			ID:            ewc.Exam.ID,
			Title:         ewc.Exam.Title,
			Description:   ewc.Exam.Description,
			Course:        ewc.Exam.Course,
			QuestionCount: ewc.QuestionCount,
			CreatedAt:     ewc.Exam.CreatedAt,
		})
	}
	return dtos, nil
}

// GetExamDetails returns the student view of an exam. The response DTO
// carries no expected answers and no is_correct flags.
func (s *userExamService) GetExamDetails(examID uint) (*dto.ExamResponseDTO, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(examID)
	if err != nil {
		log.Error().Err(err).Uint("examID", examID).Msg("Failed to get exam details from repository")
		return nil, fmt.Errorf("exam not found with ID %d: %w", examID, err)
	}

	var resp dto.ExamResponseDTO
	if err := copier.Copy(&resp, exam); err != nil {
		log.Error().Err(err).Msg("Failed to copy Exam model to ExamResponseDTO")
		return nil, fmt.Errorf("error preparing exam details response: %w", err)
	}
	return &resp, nil
}
