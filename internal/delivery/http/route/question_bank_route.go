package route

import (
	"github.com/evandrarf/quizdrill/internal/delivery/http/handler"
	"github.com/evandrarf/quizdrill/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupQuestionBankRoute(api fiber.Router, handler handler.QuestionBankHandler, m *middleware.Middleware) {
	router := api.Group("/banks")
	{
		router.Get("/", handler.ListBanks)
		router.Get("/last-used", handler.GetLastUsed)
		router.Put("/:bank_id/last-used", handler.SetLastUsed)
		router.Get("/:bank_id/wrong", handler.ListWrong)
		router.Delete("/:bank_id/wrong/:question_id", handler.RemoveWrong)
	}

	examRouter := api.Group("/exam-config")
	{
		examRouter.Get("/", handler.GetExamConfig)
		examRouter.Put("/", handler.UpdateExamConfig)
	}
}
