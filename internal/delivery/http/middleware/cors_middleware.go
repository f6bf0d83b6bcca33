package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware reads api.cors.origins (default "*"). Credentials are only
// allowed for an explicit origin list.
func (m *Middleware) CorsMiddleware() fiber.Handler {
	allowOrigins := "*"
	credentials := false
	if m != nil && m.Config != nil {
		if v := m.Config.GetString("api.cors.origins"); v != "" {
			allowOrigins = v
		}
		credentials = allowOrigins != "*" && m.Config.GetBool("api.cors.credentials")
	}

	return cors.New(cors.Config{
		AllowHeaders:     "Origin, Content-Type, Accept, Content-Length, Accept-Encoding",
		AllowMethods:     "GET, POST, PUT, DELETE",
		AllowOrigins:     allowOrigins,
		AllowCredentials: credentials,
		ExposeHeaders:    "Content-Length, Content-Type",
	})
}
