package config

import (
	"github.com/evandrarf/quizdrill/internal/pkg/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// NewAPI builds the fiber app. Live sessions are held in process memory, so
// api.prefork is refused.
func NewAPI(config *viper.Viper, log *logrus.Logger) *fiber.App {
	if config.GetBool("api.prefork") {
		log.Warn("api.prefork is not supported with in-memory sessions, ignoring")
	}
	api := fiber.New(fiber.Config{
		AppName:      config.GetString("app.name"),
		ErrorHandler: ErrorHandler(log),
	})
	return api
}

// ErrorHandler renders errors that escaped the handlers, e.g. unknown routes
// and recovered panics, in the response envelope.
func ErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		if code >= 500 {
			log.WithFields(logrus.Fields{"method": ctx.Method(), "path": ctx.Path()}).Error(err)
			return response.NewInternalServerError().Send(ctx)
		}

		return response.NewFailed(err.Error(), fiber.NewError(code, ""), log).Send(ctx)
	}
}
