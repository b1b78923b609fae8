package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dqthao/Whimbrel/internal/model"
	"github.com/dqthao/Whimbrel/internal/repository"
	"github.com/rs/zerolog/log"
)

// GradingService grades a whole submission: it scores every answer, writes
// the scores back, aggregates the total and percentage grade, and marks
// completion. It is safe to invoke more than once on the same submission;
// every pass recomputes all scores from scratch.
type GradingService interface {
	GradeSubmission(ctx context.Context, submission *model.Submission) error
}

type gradingService struct {
	factory        GraderFactory
	examRepo       repository.ExamRepository
	questionRepo   repository.QuestionRepository
	submissionRepo repository.SubmissionRepository
	answerRepo     repository.AnswerRepository
}

func NewGradingService(
	factory GraderFactory,
	examRepo repository.ExamRepository,
	questionRepo repository.QuestionRepository,
	submissionRepo repository.SubmissionRepository,
	answerRepo repository.AnswerRepository,
) GradingService {
	return &gradingService{
		factory:        factory,
		examRepo:       examRepo,
		questionRepo:   questionRepo,
		submissionRepo: submissionRepo,
		answerRepo:     answerRepo,
	}
}

func (s *gradingService) GradeSubmission(ctx context.Context, submission *model.Submission) error {
	// One grader instance per grading pass.
	grader := s.factory.GetGrader()

	exam, err := s.examRepo.FindByID(submission.ExamID)
	if err != nil {
		return fmt.Errorf("exam not found with ID %d: %w", submission.ExamID, err)
	}

	answers, err := s.answerRepo.FindBySubmissionID(submission.ID)
	if err != nil {
		return fmt.Errorf("error loading answers for submission %d: %w", submission.ID, err)
	}

	template := ""
	if exam.GradingPrompt != nil {
		template = *exam.GradingPrompt
	}

	totalScore := 0.0
	for i := range answers {
		score := s.scoreAnswer(ctx, grader, &answers[i], template)

		answers[i].Score = &score
		if err := s.answerRepo.Update(&answers[i]); err != nil {
			return fmt.Errorf("error saving score for answer %d: %w", answers[i].ID, err)
		}
		totalScore += score
	}

	questionCount, err := s.questionRepo.CountByExamID(submission.ExamID)
	if err != nil {
		return fmt.Errorf("error counting questions for exam %d: %w", submission.ExamID, err)
	}

	submission.TotalScore = &totalScore
	grade := 0.0
	if questionCount > 0 {
		grade = totalScore / float64(questionCount) * 100
	}
	submission.Grade = &grade

	// Completion is monotonic: once set, a later partial grading pass must
	// not reset it, and the completion timestamp is written exactly once.
	if int64(len(answers)) == questionCount && !submission.IsCompleted {
		submission.IsCompleted = true
		now := time.Now()
		submission.CompletedAt = &now
	}

	if err := s.submissionRepo.Update(submission); err != nil {
		return fmt.Errorf("error saving graded submission %d: %w", submission.ID, err)
	}

	log.Info().
		Uint("submissionID", submission.ID).
		Float64("totalScore", totalScore).
		Float64("grade", grade).
		Bool("isCompleted", submission.IsCompleted).
		Msg("Submission graded")
	return nil
}

func (s *gradingService) scoreAnswer(ctx context.Context, grader Grader, answer *model.StudentAnswer, template string) float64 {
	question := answer.Question

	switch question.Type {
	case model.QuestionTypeMCQ:
		// No grader involved: correct iff an option was selected and it is
		// flagged correct. The expected-answer/answer-ID comparison is a
		// holdover from an earlier schema, kept as a fallback only.
		if answer.SelectedOption != nil &&
			(answer.SelectedOption.IsCorrect ||
				question.ExpectedAnswer == strconv.FormatUint(uint64(answer.ID), 10)) {
			return 1.0
		}
		return 0.0
	case model.QuestionTypeShort:
		return grader.Grade(ctx, question.ExpectedAnswer, answer.AnswerText, template)
	default:
		log.Warn().
			Uint("questionID", question.ID).
			Str("type", question.Type).
			Msg("Unknown question type, scoring 0.0")
		return 0.0
	}
}
