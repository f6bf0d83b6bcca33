package route

import (
	"github.com/evandrarf/quizdrill/internal/delivery/http/handler"
	"github.com/evandrarf/quizdrill/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type RouteConfig struct {
	Api                 *fiber.App
	Middleware          *middleware.Middleware
	QuestionBankHandler handler.QuestionBankHandler
	SessionHandler      handler.SessionHandler
}

func Setup(c *RouteConfig) {
	c.Api.Use(recover.New())
	c.Api.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path}\n",
		Next:   c.Middleware.SkipAccessLog,
	}))
	c.Api.Use(c.Middleware.CorsMiddleware())

	SetupQuestionBankRoute(c.Api, c.QuestionBankHandler, c.Middleware)
	SetupSessionRoute(c.Api, c.SessionHandler, c.Middleware)
}
