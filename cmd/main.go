package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/dqthao/Whimbrel/config"
	"github.com/dqthao/Whimbrel/database"
	adminctrl "github.com/dqthao/Whimbrel/internal/controller/admin"
	userctrl "github.com/dqthao/Whimbrel/internal/controller/user"
	"github.com/dqthao/Whimbrel/internal/logger"
	"github.com/dqthao/Whimbrel/internal/model"
	"github.com/dqthao/Whimbrel/internal/repository"
	"github.com/dqthao/Whimbrel/internal/service"
)

// @title Exam Assessment API
// @version 1.0
// @description API for exams, student submissions and automated grading. Free-text answers are scored by a configurable engine (local text similarity or an LLM backend).
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // *gorm.DB
			NewGinEngine,
		),

		// Repositories layer
		fx.Provide(
			repository.NewExamRepository,
			repository.NewQuestionRepository,
			repository.NewSubmissionRepository,
			repository.NewAnswerRepository,
		),

		// Services layer
		fx.Provide(
			service.NewGraderFactory,
			service.NewGradingService,
			service.NewSubmissionService,
			service.NewAdminExamService,
			service.NewUserExamService,
		),

		// API controllers layer
		fx.Provide(
			adminctrl.NewAdminExamController,
			userctrl.NewUserExamController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Route gin's request log through zerolog.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	adminExamCtrl *adminctrl.AdminExamController,
	userExamCtrl *userctrl.UserExamController,
) {
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		adminAPIGroup.POST("/exams", adminExamCtrl.CreateExam)
	}

	userAPIGroup := router.Group("/api/v1")
	{
		userAPIGroup.GET("/exams", userExamCtrl.GetAllExams)
		userAPIGroup.GET("/exams/:exam_id", userExamCtrl.GetExamDetails)

		userAPIGroup.POST("/submissions", userExamCtrl.CreateSubmission)
		userAPIGroup.GET("/submissions/:submission_id", userExamCtrl.GetSubmissionDetails)
		userAPIGroup.GET("/students/:student_id/submissions", userExamCtrl.GetStudentSubmissions)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Exam assessment API starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Exam{},
		&model.Question{},
		&model.QuestionOption{},
		&model.Submission{},
		&model.StudentAnswer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
