package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dqthao/Whimbrel/internal/dto"
	"github.com/dqthao/Whimbrel/internal/model"
	"github.com/dqthao/Whimbrel/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SubmissionService is the intake collaborator in front of the grading
// pipeline. It validates that every answer references a question of the
// target exam (and, for MCQ, an option of that question) before the grading
// service is allowed to assume those invariants.
type SubmissionService interface {
	CreateSubmission(ctx context.Context, req dto.SubmissionCreateDTO) (*dto.SubmissionDetailDTO, error)
	GetSubmissionDetails(submissionID uint) (*dto.SubmissionDetailDTO, error)
	GetStudentSubmissions(studentID uint) ([]dto.SubmissionSummaryDTO, error)
}

type submissionService struct {
	examRepo       repository.ExamRepository
	submissionRepo repository.SubmissionRepository
	gradingService GradingService
	db             *gorm.DB // transaction scope for submission + answers
}

func NewSubmissionService(
	examRepo repository.ExamRepository,
	submissionRepo repository.SubmissionRepository,
	gradingService GradingService,
	db *gorm.DB,
) SubmissionService {
	return &submissionService{
		examRepo:       examRepo,
		submissionRepo: submissionRepo,
		gradingService: gradingService,
		db:             db,
	}
}

func (s *submissionService) CreateSubmission(ctx context.Context, req dto.SubmissionCreateDTO) (*dto.SubmissionDetailDTO, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(req.ExamID)
	if err != nil {
		log.Error().Err(err).Uint("examID", req.ExamID).Msg("CreateSubmission: exam not found")
		return nil, fmt.Errorf("exam not found with ID %d: %w", req.ExamID, err)
	}

	// One submission per (student, exam); concurrent grading passes on the
	// same submission are ruled out by this uniqueness.
	if _, err := s.submissionRepo.FindByStudentAndExam(req.StudentID, req.ExamID); err == nil {
		return nil, fmt.Errorf("student %d already has a submission for exam %d", req.StudentID, req.ExamID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("error checking existing submission: %w", err)
	}

	answers, err := buildAnswers(exam, req.Answers)
	if err != nil {
		return nil, err
	}

	submission := model.Submission{
		StudentID: req.StudentID,
		ExamID:    req.ExamID,
		StartedAt: time.Now(),
		Answers:   answers,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// GORM creates the associated answers together with the submission.
		if err := tx.Create(&submission).Error; err != nil {
			return fmt.Errorf("failed to create submission record: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("CreateSubmission: transaction failed")
		return nil, err
	}

	if err := s.gradingService.GradeSubmission(ctx, &submission); err != nil {
		log.Error().Err(err).Uint("submissionID", submission.ID).Msg("CreateSubmission: grading failed")
		return nil, fmt.Errorf("error grading submission %d: %w", submission.ID, err)
	}

	return s.GetSubmissionDetails(submission.ID)
}

// buildAnswers validates the submitted answers against the exam's questions
// and converts them to models.
func buildAnswers(exam *model.Exam, reqAnswers []dto.StudentAnswerDTO) ([]model.StudentAnswer, error) {
	questionMap := make(map[uint]model.Question)
	for _, q := range exam.Questions {
		questionMap[q.ID] = q
	}

	answered := make(map[uint]bool)
	var answers []model.StudentAnswer
	for _, answerDto := range reqAnswers {
		question, exists := questionMap[answerDto.QuestionID]
		if !exists {
			return nil, fmt.Errorf("question %d does not belong to exam %d", answerDto.QuestionID, exam.ID)
		}
		if answered[question.ID] {
			return nil, fmt.Errorf("duplicate answer for question %d", question.ID)
		}
		answered[question.ID] = true

		switch question.Type {
		case model.QuestionTypeMCQ:
			if answerDto.SelectedOptionID == nil {
				return nil, fmt.Errorf("question %d is multiple choice and requires a selected option", question.ID)
			}
			optionOK := false
			for _, opt := range question.Options {
				if opt.ID == *answerDto.SelectedOptionID {
					optionOK = true
					break
				}
			}
			if !optionOK {
				return nil, fmt.Errorf("option %d does not belong to question %d", *answerDto.SelectedOptionID, question.ID)
			}
		case model.QuestionTypeShort:
			if answerDto.AnswerText == "" {
				return nil, fmt.Errorf("question %d requires answer text", question.ID)
			}
		}

		answers = append(answers, model.StudentAnswer{
			QuestionID:       question.ID,
			SelectedOptionID: answerDto.SelectedOptionID,
			AnswerText:       answerDto.AnswerText,
		})
	}
	return answers, nil
}

func (s *submissionService) GetSubmissionDetails(submissionID uint) (*dto.SubmissionDetailDTO, error) {
	submission, err := s.submissionRepo.FindByIDWithDetails(submissionID)
	if err != nil {
		log.Error().Err(err).Uint("submissionID", submissionID).Msg("GetSubmissionDetails: not found")
		return nil, fmt.Errorf("submission not found with ID %d: %w", submissionID, err)
	}

	var resp dto.SubmissionDetailDTO
	if err := copier.Copy(&resp, submission); err != nil {
		log.Error().Err(err).Msg("GetSubmissionDetails: failed to copy submission to DTO")
		return nil, fmt.Errorf("error preparing submission response: %w", err)
	}
	resp.ExamTitle = submission.Exam.Title
	return &resp, nil
}

func (s *submissionService) GetStudentSubmissions(studentID uint) ([]dto.SubmissionSummaryDTO, error) {
	submissions, err := s.submissionRepo.FindAllByStudent(studentID)
	if err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Msg("GetStudentSubmissions: query failed")
		return nil, fmt.Errorf("error fetching submissions for student %d: %w", studentID, err)
	}

	var dtos []dto.SubmissionSummaryDTO
	for _, submission := range submissions {
		var summary dto.SubmissionSummaryDTO
		if err := copier.Copy(&summary, &submission); err != nil {
			log.Error().Err(err).Uint("submissionID", submission.ID).Msg("GetStudentSubmissions: error copying summary")
			continue
		}
		summary.ExamTitle = submission.Exam.Title
		dtos = append(dtos, summary)
	}
	return dtos, nil
}
