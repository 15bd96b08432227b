package handler

import (
	"med-estudia/internal/config"
	"med-estudia/internal/middleware"
	"med-estudia/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Routes collects the handlers mounted by Register. Learners, Scores and
// Auth are nil when learner storage is disabled.
type Routes struct {
	Generation *GenerationHandler
	Health     *HealthHandler
	Learners   *LearnerHandler
	Scores     *ScoreHandler
	Auth       service.AuthService
}

// NewApp creates the fiber app with the shared middleware chain.
func NewApp(cfg config.ServerConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(middleware.CORS())
	return app
}

func (r Routes) Register(app *fiber.App) {
	if r.Health != nil {
		app.Get("/healthz", r.Health.Healthz)
	}

	apiGroup := app.Group("/api")
	apiGroup.Post("/medical-ai", r.Generation.Generate)

	if r.Scores == nil || r.Learners == nil || r.Auth == nil {
		return
	}

	apiGroup.Post("/learners", r.Learners.Register)

	vm := middleware.NewValidationMiddleware()
	scoreGroup := apiGroup.Group("/scores", middleware.RequireLearner(r.Auth))
	scoreGroup.Get("/", r.Scores.GetScores)
	scoreGroup.Get("/stats", r.Scores.GetStats)
	scoreGroup.Post("/quiz-results", r.Scores.AddQuizResult)
	scoreGroup.Post("/saved-questions", r.Scores.SaveQuestion)
	scoreGroup.Delete("/saved-questions/:id", vm.ValidateQuestionID(), r.Scores.DeleteSavedQuestion)
}
