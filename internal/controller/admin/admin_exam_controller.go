package admin

import (
	"net/http"

	"github.com/dqthao/Whimbrel/internal/dto"
	"github.com/dqthao/Whimbrel/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AdminExamController struct {
	adminExamSvc service.AdminExamService
}

func NewAdminExamController(adminExamSvc service.AdminExamService) *AdminExamController {
	return &AdminExamController{adminExamSvc: adminExamSvc}
}

// CreateExam godoc
// @Summary Create a new exam
// @Description Add a new exam with its questions and, for MCQ questions, their options
// @Tags admin
// @Accept json
// @Produce json
// @Param exam body dto.ExamCreateDTO true "Exam data including questions"
// @Success 201 {object} dto.ExamResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/exams [post]
func (ctrl *AdminExamController) CreateExam(c *gin.Context) {
	var req dto.ExamCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind ExamCreateDTO")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.adminExamSvc.CreateExam(req)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create exam")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}
