package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// LocalRequestID clave de Locals con el id de la petición.
const LocalRequestID = "request_id"

// RequestID asigna un identificador único a cada petición y lo devuelve en el
// header X-Request-ID. Si el cliente ya envía uno, se conserva.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalRequestID, id)
		c.Set(fiber.HeaderXRequestID, id)
		return c.Next()
	}
}

// GetRequestID devuelve el id de la petición actual.
func GetRequestID(c *fiber.Ctx) string {
	v := c.Locals(LocalRequestID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
