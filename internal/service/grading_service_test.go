package service

import (
	"context"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/dqthao/Whimbrel/config"
	"github.com/dqthao/Whimbrel/internal/model"
	"github.com/dqthao/Whimbrel/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Exam{},
		&model.Question{},
		&model.QuestionOption{},
		&model.Submission{},
		&model.StudentAnswer{},
	))
	return db
}

func newTestGradingService(db *gorm.DB) GradingService {
	// Empty grading config selects the similarity engine.
	factory := NewGraderFactory(&config.Config{})
	return NewGradingService(
		factory,
		repository.NewExamRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewSubmissionRepository(db),
		repository.NewAnswerRepository(db),
	)
}

// seedExam creates one MCQ question (options "3" and "4", "4" correct) and
// one short-answer question.
func seedExam(t *testing.T, db *gorm.DB) *model.Exam {
	t.Helper()

	exam := model.Exam{
		Title:           "Test Exam",
		Course:          "CS101",
		DurationMinutes: 60,
		Questions: []model.Question{
			{
				Type:           model.QuestionTypeMCQ,
				Text:           "What is 2+2?",
				ExpectedAnswer: "4",
				Options: []model.QuestionOption{
					{Text: "3", IsCorrect: false},
					{Text: "4", IsCorrect: true},
				},
			},
			{
				Type:           model.QuestionTypeShort,
				Text:           "Define AI.",
				ExpectedAnswer: "Artificial Intelligence is simulation of human intelligence.",
			},
		},
	}
	require.NoError(t, db.Create(&exam).Error)
	return &exam
}

func correctOption(t *testing.T, exam *model.Exam) *model.QuestionOption {
	t.Helper()
	for i := range exam.Questions[0].Options {
		if exam.Questions[0].Options[i].IsCorrect {
			return &exam.Questions[0].Options[i]
		}
	}
	t.Fatal("seeded exam has no correct option")
	return nil
}

func wrongOption(t *testing.T, exam *model.Exam) *model.QuestionOption {
	t.Helper()
	for i := range exam.Questions[0].Options {
		if !exam.Questions[0].Options[i].IsCorrect {
			return &exam.Questions[0].Options[i]
		}
	}
	t.Fatal("seeded exam has no wrong option")
	return nil
}

func TestGradeSubmissionFullMarks(t *testing.T) {
	db := newTestDB(t)
	exam := seedExam(t, db)
	svc := newTestGradingService(db)

	submission := model.Submission{
		StudentID: 1,
		ExamID:    exam.ID,
		StartedAt: time.Now(),
		Answers: []model.StudentAnswer{
			{QuestionID: exam.Questions[0].ID, SelectedOptionID: &correctOption(t, exam).ID},
			{QuestionID: exam.Questions[1].ID, AnswerText: "Artificial Intelligence is simulation of human intelligence."},
		},
	}
	require.NoError(t, db.Create(&submission).Error)

	require.NoError(t, svc.GradeSubmission(context.Background(), &submission))

	require.NotNil(t, submission.TotalScore)
	assert.Equal(t, 2.0, *submission.TotalScore)
	require.NotNil(t, submission.Grade)
	assert.Equal(t, 100.0, *submission.Grade)
	assert.True(t, submission.IsCompleted)
	assert.NotNil(t, submission.CompletedAt)

	var answers []model.StudentAnswer
	require.NoError(t, db.Where("submission_id = ?", submission.ID).Find(&answers).Error)
	for _, answer := range answers {
		require.NotNil(t, answer.Score)
		assert.Equal(t, 1.0, *answer.Score)
	}
}

func TestGradeSubmissionWrongOptionScoresZero(t *testing.T) {
	db := newTestDB(t)
	exam := seedExam(t, db)
	svc := newTestGradingService(db)

	submission := model.Submission{
		StudentID: 1,
		ExamID:    exam.ID,
		StartedAt: time.Now(),
		Answers: []model.StudentAnswer{
			{QuestionID: exam.Questions[0].ID, SelectedOptionID: &wrongOption(t, exam).ID},
			{QuestionID: exam.Questions[1].ID, AnswerText: "Artificial Intelligence is simulation of human intelligence."},
		},
	}
	require.NoError(t, db.Create(&submission).Error)

	require.NoError(t, svc.GradeSubmission(context.Background(), &submission))

	require.NotNil(t, submission.TotalScore)
	assert.Equal(t, 1.0, *submission.TotalScore)
	require.NotNil(t, submission.Grade)
	assert.Equal(t, 50.0, *submission.Grade)
}

func TestGradeSubmissionNoOptionSelectedScoresZero(t *testing.T) {
	db := newTestDB(t)
	exam := seedExam(t, db)
	svc := newTestGradingService(db)

	submission := model.Submission{
		StudentID: 1,
		ExamID:    exam.ID,
		StartedAt: time.Now(),
		Answers: []model.StudentAnswer{
			{QuestionID: exam.Questions[0].ID},
		},
	}
	require.NoError(t, db.Create(&submission).Error)

	require.NoError(t, svc.GradeSubmission(context.Background(), &submission))

	require.NotNil(t, submission.TotalScore)
	assert.Equal(t, 0.0, *submission.TotalScore)
	assert.False(t, submission.IsCompleted)
}

func TestGradeSubmissionLegacyIdentifierRule(t *testing.T) {
	db := newTestDB(t)
	exam := seedExam(t, db)
	svc := newTestGradingService(db)

	submission := model.Submission{
		StudentID: 1,
		ExamID:    exam.ID,
		StartedAt: time.Now(),
		Answers: []model.StudentAnswer{
			{QuestionID: exam.Questions[0].ID, SelectedOptionID: &wrongOption(t, exam).ID},
		},
	}
	require.NoError(t, db.Create(&submission).Error)

	// Legacy fallback: the question's expected answer matching the answer's
	// own ID grants full credit even when the selected option is wrong.
	answerID := strconv.FormatUint(uint64(submission.Answers[0].ID), 10)
	require.NoError(t, db.Model(&model.Question{}).
		Where("id = ?", exam.Questions[0].ID).
		Update("expected_answer", answerID).Error)

	require.NoError(t, svc.GradeSubmission(context.Background(), &submission))

	var answer model.StudentAnswer
	require.NoError(t, db.First(&answer, submission.Answers[0].ID).Error)
	require.NotNil(t, answer.Score)
	assert.Equal(t, 1.0, *answer.Score)
}

func TestGradeSubmissionPartialAnswersNotCompleted(t *testing.T) {
	db := newTestDB(t)
	exam := seedExam(t, db)
	svc := newTestGradingService(db)

	submission := model.Submission{
		StudentID: 1,
		ExamID:    exam.ID,
		StartedAt: time.Now(),
		Answers: []model.StudentAnswer{
			{QuestionID: exam.Questions[0].ID, SelectedOptionID: &correctOption(t, exam).ID},
		},
	}
	require.NoError(t, db.Create(&submission).Error)

	require.NoError(t, svc.GradeSubmission(context.Background(), &submission))

	require.NotNil(t, submission.Grade)
	assert.Equal(t, 50.0, *submission.Grade)
	assert.False(t, submission.IsCompleted)
	assert.Nil(t, submission.CompletedAt)
}

func TestGradeSubmissionZeroQuestions(t *testing.T) {
	db := newTestDB(t)
	svc := newTestGradingService(db)

	exam := model.Exam{Title: "Empty Exam", Course: "CS101", DurationMinutes: 10}
	require.NoError(t, db.Create(&exam).Error)

	submission := model.Submission{StudentID: 1, ExamID: exam.ID, StartedAt: time.Now()}
	require.NoError(t, db.Create(&submission).Error)

	require.NoError(t, svc.GradeSubmission(context.Background(), &submission))

	require.NotNil(t, submission.Grade)
	assert.Equal(t, 0.0, *submission.Grade)
}

func TestGradeSubmissionRegradeKeepsCompletion(t *testing.T) {
	db := newTestDB(t)
	exam := seedExam(t, db)
	svc := newTestGradingService(db)
	submissionRepo := repository.NewSubmissionRepository(db)

	submission := model.Submission{
		StudentID: 1,
		ExamID:    exam.ID,
		StartedAt: time.Now(),
		Answers: []model.StudentAnswer{
			{QuestionID: exam.Questions[0].ID, SelectedOptionID: &correctOption(t, exam).ID},
			{QuestionID: exam.Questions[1].ID, AnswerText: "Artificial Intelligence is simulation of human intelligence."},
		},
	}
	require.NoError(t, db.Create(&submission).Error)

	require.NoError(t, svc.GradeSubmission(context.Background(), &submission))
	require.True(t, submission.IsCompleted)
	require.NotNil(t, submission.CompletedAt)
	firstCompletedAt := *submission.CompletedAt

	// Re-grading recomputes scores but never un-sets completion or moves
	// the completion timestamp.
	reloaded, err := submissionRepo.FindByID(submission.ID)
	require.NoError(t, err)
	require.NoError(t, svc.GradeSubmission(context.Background(), reloaded))

	assert.True(t, reloaded.IsCompleted)
	require.NotNil(t, reloaded.CompletedAt)
	assert.WithinDuration(t, firstCompletedAt, *reloaded.CompletedAt, time.Second)

	require.NotNil(t, reloaded.TotalScore)
	assert.Equal(t, 2.0, *reloaded.TotalScore)
}
