package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/health", handler.Health)
	app.Get("/features", handler.Features)

	auth := app.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Get("/me", handler.AuthRequired, handler.Me)
	auth.Delete("/account", handler.AuthRequired, handler.DeleteAccount)

	profile := app.Group("/profile", handler.AuthRequired)
	profile.Get("", handler.GetProfile)
	profile.Put("", handler.UpsertProfile)

	cycle := app.Group("/cycle-info", handler.AuthRequired)
	cycle.Get("", handler.GetCycleInfo)
	cycle.Put("", handler.UpsertCycleInfo)

	logs := app.Group("/symptom-logs", handler.AuthRequired)
	logs.Get("", handler.ListSymptomLogs)
	logs.Post("", handler.CreateSymptomLog)

	app.Post("/predict", handler.AuthRequired, handler.ClinicalAssessment)
	app.Get("/predictions/history", handler.AuthRequired, handler.History)

	assessments := app.Group("/assessments", handler.AuthRequired)
	assessments.Post("/lifestyle", handler.LifestyleAssessment)
	assessments.Post("/clinical", handler.ClinicalAssessment)
	assessments.Get("/history", handler.History)
}
