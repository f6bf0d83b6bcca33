package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type MiddlewareConfig struct {
	Log    *logrus.Logger
	Config *viper.Viper
}

type Middleware struct {
	Log    *logrus.Logger
	Config *viper.Viper
}

func NewMiddleware(c *MiddlewareConfig) *Middleware {
	if c == nil {
		return &Middleware{}
	}

	return &Middleware{
		Log:    c.Log,
		Config: c.Config,
	}
}

// SkipAccessLog disables fiber's access log when api.access_log is false.
func (m *Middleware) SkipAccessLog(ctx *fiber.Ctx) bool {
	if m == nil || m.Config == nil || !m.Config.IsSet("api.access_log") {
		return false
	}
	return !m.Config.GetBool("api.access_log")
}

// SessionLogger traces every session intent with its session id.
func (m *Middleware) SessionLogger() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if m != nil && m.Log != nil {
			m.Log.WithFields(logrus.Fields{
				"session_id": ctx.Params("session_id"),
				"method":     ctx.Method(),
				"path":       ctx.Path(),
				"status":     ctx.Response().StatusCode(),
			}).Debug("session intent")
		}
		return err
	}
}
