package logger

import (
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// WithRequest trả về entry gắn sẵn context của request (requestId, method, path, ip)
// để trace log theo request.
func WithRequest(c fiber.Ctx) *logrus.Entry {
	requestID := c.Get("X-Request-ID")
	if requestID == "" {
		requestID = c.GetRespHeader("X-Request-ID")
	}
	return GetAppLogger().WithFields(logrus.Fields{
		"requestId": requestID,
		"method":    c.Method(),
		"path":      c.Path(),
		"ip":        c.IP(),
	})
}
