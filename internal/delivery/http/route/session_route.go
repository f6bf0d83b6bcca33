package route

import (
	"github.com/evandrarf/quizdrill/internal/delivery/http/handler"
	"github.com/evandrarf/quizdrill/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupSessionRoute(api fiber.Router, handler handler.SessionHandler, m *middleware.Middleware) {
	api.Post("/banks/:bank_id/sessions", handler.Start)

	router := api.Group("/sessions/:session_id", m.SessionLogger())
	{
		router.Get("/", handler.Get)
		router.Delete("/", handler.End)
		router.Post("/navigate", handler.Navigate)
		router.Post("/jump", handler.Jump)
		router.Post("/answer", handler.Answer)
		router.Post("/reveal", handler.Reveal)
		router.Post("/advance", handler.Advance)
		router.Get("/unanswered", handler.Unanswered)
		router.Post("/submit", handler.Submit)
		router.Post("/mark-wrong", handler.MarkWrong)
	}
}
