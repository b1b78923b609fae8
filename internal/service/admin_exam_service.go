package service

import (
	"fmt"

	"github.com/dqthao/Whimbrel/internal/dto"
	"github.com/dqthao/Whimbrel/internal/model"
	"github.com/dqthao/Whimbrel/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type AdminExamService interface {
	CreateExam(req dto.ExamCreateDTO) (*dto.ExamResponseDTO, error)
}

type adminExamService struct {
	examRepo repository.ExamRepository
}

func NewAdminExamService(examRepo repository.ExamRepository) AdminExamService {
	return &adminExamService{examRepo: examRepo}
}

func (s *adminExamService) CreateExam(req dto.ExamCreateDTO) (*dto.ExamResponseDTO, error) {
	var questions []model.Question
	for _, qDto := range req.Questions {
		switch qDto.Type {
		case model.QuestionTypeMCQ:
			if len(qDto.Options) < 2 {
				return nil, fmt.Errorf("MCQ question %q needs at least 2 options", qDto.Text)
			}
			correct := 0
			for _, opt := range qDto.Options {
				if opt.IsCorrect {
					correct++
				}
			}
			if correct != 1 {
				return nil, fmt.Errorf("MCQ question %q must have exactly one correct option, got %d", qDto.Text, correct)
			}
		case model.QuestionTypeShort:
			if len(qDto.Options) > 0 {
				return nil, fmt.Errorf("short-answer question %q must not carry options", qDto.Text)
			}
		}

		var question model.Question
		if err := copier.Copy(&question, &qDto); err != nil {
			return nil, fmt.Errorf("error mapping question %q: %w", qDto.Text, err)
		}
		questions = append(questions, question)
	}

	gradingPrompt := req.GradingPrompt
	if gradingPrompt == nil {
		defaultPrompt := model.DefaultGradingPrompt
		gradingPrompt = &defaultPrompt
	}

	exam := model.Exam{
		Title:           req.Title,
		Description:     req.Description,
		Course:          req.Course,
		DurationMinutes: req.DurationMinutes,
		GradingPrompt:   gradingPrompt,
		Questions:       questions,
	}

	if err := s.examRepo.Create(&exam); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create exam")
		return nil, fmt.Errorf("error creating exam: %w", err)
	}

	var resp dto.ExamResponseDTO
	if err := copier.Copy(&resp, &exam); err != nil {
		return nil, fmt.Errorf("error preparing exam response: %w", err)
	}
	return &resp, nil
}
