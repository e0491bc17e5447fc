package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/stoicaf/stoicaf-backend/internal/handlers"
)

func SetupRoutes(r *chi.Mux) {
	// Privacy-first auth routes
	r.Post("/api/auth/signup", handlers.Signup)
	r.Post("/api/auth/signin", handlers.Signin)
	r.Post("/api/auth/signout", handlers.Signout)
	r.Get("/api/auth/me", handlers.GetMe)
	r.Post("/api/auth/check-username", handlers.CheckUsernameAvailability)
	r.Post("/api/auth/forgot-username", handlers.ForgotUsername)
	r.Post("/api/auth/forgot-password", handlers.ForgotPassword)

	// Journal entries
	r.Post("/api/entries", handlers.CreateEntry)
	r.Get("/api/entries", handlers.ListEntries)
	r.Get("/api/entries/{id}", handlers.GetEntry)
	r.Put("/api/entries/{id}", handlers.UpdateEntry)
	r.Delete("/api/entries/{id}", handlers.DeleteEntry)

	// Dashboard analytics
	r.Get("/api/insights", handlers.GetInsights)
	r.Get("/api/insights/mood", handlers.GetMoodSeries)

	// Guided prompt tracks
	r.Get("/api/prompts/next", handlers.NextPrompt)

	// File upload (entry images)
	r.Post("/api/upload", handlers.UploadFile)

	// Feedback
	r.Post("/api/feedback", handlers.SubmitFeedback)

	// WebSocket endpoint pushing insights refresh events
	r.Get("/ws/insights", handlers.InsightsWebSocket)
}
