package user

import (
	"net/http"
	"strconv"

	"github.com/dqthao/Whimbrel/internal/dto"
	"github.com/dqthao/Whimbrel/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type UserExamController struct {
	userExamSvc   service.UserExamService
	submissionSvc service.SubmissionService
}

func NewUserExamController(userExamSvc service.UserExamService, submissionSvc service.SubmissionService) *UserExamController {
	return &UserExamController{userExamSvc: userExamSvc, submissionSvc: submissionSvc}
}

// GetAllExams godoc
// @Summary List exams
// @Description Retrieve all exams with their question counts
// @Tags exams
// @Produce json
// @Success 200 {array} dto.ExamSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams [get]
func (ctrl *UserExamController) GetAllExams(c *gin.Context) {
	exams, err := ctrl.userExamSvc.GetAllExams()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list exams")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve exams"})
		return
	}
	c.JSON(http.StatusOK, exams)
}

// GetExamDetails godoc
// @Summary Get an exam by ID with its questions
// @Description Retrieve an exam and its questions; expected answers and correct-option flags are not exposed
// @Tags exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.ExamResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{exam_id} [get]
func (ctrl *UserExamController) GetExamDetails(c *gin.Context) {
	examID, err := parseUintParam(c, "exam_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid exam ID format"})
		return
	}

	exam, err := ctrl.userExamSvc.GetExamDetails(examID)
	if err != nil {
		log.Error().Err(err).Uint("examID", examID).Msg("Failed to get exam")
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Exam not found"})
		return
	}
	c.JSON(http.StatusOK, exam)
}

// CreateSubmission godoc
// @Summary Submit answers for an exam
// @Description Create a submission with all answers and grade it synchronously
// @Tags submissions
// @Accept json
// @Produce json
// @Param submission body dto.SubmissionCreateDTO true "Submission with answers"
// @Success 201 {object} dto.SubmissionDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or answers"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /submissions [post]
func (ctrl *UserExamController) CreateSubmission(c *gin.Context) {
	var req dto.SubmissionCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SubmissionCreateDTO")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.submissionSvc.CreateSubmission(c.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Uint("examID", req.ExamID).Msg("Failed to create submission")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetSubmissionDetails godoc
// @Summary Get a graded submission
// @Tags submissions
// @Produce json
// @Param submission_id path int true "Submission ID"
// @Success 200 {object} dto.SubmissionDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Router /submissions/{submission_id} [get]
func (ctrl *UserExamController) GetSubmissionDetails(c *gin.Context) {
	submissionID, err := parseUintParam(c, "submission_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid submission ID format"})
		return
	}

	submission, err := ctrl.submissionSvc.GetSubmissionDetails(submissionID)
	if err != nil {
		log.Error().Err(err).Uint("submissionID", submissionID).Msg("Failed to get submission")
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Submission not found"})
		return
	}
	c.JSON(http.StatusOK, submission)
}

// GetStudentSubmissions godoc
// @Summary List a student's submissions
// @Tags submissions
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {array} dto.SubmissionSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{student_id}/submissions [get]
func (ctrl *UserExamController) GetStudentSubmissions(c *gin.Context) {
	studentID, err := parseUintParam(c, "student_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid student ID format"})
		return
	}

	submissions, err := ctrl.submissionSvc.GetStudentSubmissions(studentID)
	if err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Msg("Failed to list submissions")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve submissions"})
		return
	}
	c.JSON(http.StatusOK, submissions)
}

func parseUintParam(c *gin.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}
