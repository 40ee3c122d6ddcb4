package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/prepai/api/http/handlers"
	"github.com/artem13815/prepai/pkg/security/jwt"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	Health    *handlers.HealthHandler
	Problem   *handlers.ProblemHandler
	Submit    *handlers.SubmissionHandler
	Interview *handlers.InterviewHandler
	Resume    *handlers.ResumeHandler
	User      *handlers.UserHandler
}

type RouteOptions struct {
	// ChatRequireAuth closes the behavioral chat to guests.
	ChatRequireAuth bool
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, h Handlers, gate *jwt.Middleware, opts RouteOptions) {
	api := app.Group("/api")
	requireAuth := gate.RequireAuth()
	optionalAuth := gate.OptionalAuth()

	// Health and readiness endpoints for probes/monitoring
	api.Get("/health", h.Health.Health)
	api.Get("/ready", h.Health.Ready)

	a := api.Group("/auth")
	a.Post("/signup", h.Auth.Signup)
	a.Post("/login", h.Auth.Login)
	a.Post("/logout", requireAuth, h.Auth.Logout)

	api.Post("/generate-problem", h.Problem.Generate)
	api.Post("/evaluate-code", requireAuth, h.Submit.Evaluate)
	chatGate := optionalAuth
	if opts.ChatRequireAuth {
		chatGate = requireAuth
	}
	api.Post("/behavioral-chat", chatGate, h.Interview.Chat)
	api.Post("/review-resume", optionalAuth, h.Resume.Review)

	u := api.Group("/user", requireAuth)
	u.Get("/progress", h.User.Progress)
	u.Post("/record-activity", h.User.RecordActivity)
	u.Get("/submissions", h.User.Submissions)
	u.Get("/resume-reviews", h.User.ResumeReviews)
	u.Get("/chat-sessions", h.User.ChatSessions)
}
