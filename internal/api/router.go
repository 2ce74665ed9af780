package api

import (
	"github.com/KartikSaxena19/LearnILmWorld/docs"
	"github.com/KartikSaxena19/LearnILmWorld/internal/api/handlers"
	"github.com/KartikSaxena19/LearnILmWorld/pkg/auth"
	"github.com/KartikSaxena19/LearnILmWorld/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	chatHandler *handlers.ChatHandler,
	feedbackHandler *handlers.FeedbackHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Swagger
	_ = docs.SwaggerInfo // ensure docs package is imported and init() is called
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth routes (public)
	authRoutes := api.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/refresh", authHandler.RefreshToken)

	// Chatbot routes (public, session id is the capability)
	chatbot := api.Group("/chatbot")
	chatbot.Post("/start", chatHandler.StartChat)
	chatbot.Post("/message", chatHandler.SendMessage)
	chatbot.Get("/history/:sessionId", chatHandler.History)
	chatbot.Post("/save-user", chatHandler.SaveUser)
	chatbot.Get("/memory/:sessionId", chatHandler.Memory)
	chatbot.Delete("/session/:sessionId", chatHandler.DeleteSession)

	// Feedback and careers (submission is public, listing is admin only)
	authRequired := middleware.AuthMiddleware(jwtManager, appLogger)
	adminOnly := middleware.RequireRole("admin")

	feedback := api.Group("/feedback")
	feedback.Post("", feedbackHandler.SubmitFeedback)
	feedback.Get("", authRequired, adminOnly, feedbackHandler.ListFeedback)
	feedback.Delete("/:id", authRequired, adminOnly, feedbackHandler.DeleteFeedback)

	careers := api.Group("/careers")
	careers.Post("", feedbackHandler.SubmitApplication)
	careers.Get("", authRequired, adminOnly, feedbackHandler.ListApplications)

	return app
}
