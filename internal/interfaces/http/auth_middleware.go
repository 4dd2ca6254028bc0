package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/application/dto"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/pkg/jwt"
)

// Claves de Locals cargadas por el middleware de auth.
const (
	LocalTrabajadorID = "idtrabajador"
	LocalUsuario      = "usuario"
	LocalRol          = "rol"
)

// AuthMiddleware valida el Bearer token JWT (tipo access) y deja la identidad
// del trabajador en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		claims, err := jwt.Parse(jwtSecret, strings.TrimSpace(parts[1]))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if claims.Type != jwt.TypeAccess {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "se requiere un access token"})
		}
		c.Locals(LocalTrabajadorID, claims.TrabajadorID)
		c.Locals(LocalUsuario, claims.Usuario)
		c.Locals(LocalRol, claims.Rol)
		return c.Next()
	}
}

// GetTrabajadorID devuelve el id del trabajador autenticado (0 si no hay).
func GetTrabajadorID(c *fiber.Ctx) int {
	v := c.Locals(LocalTrabajadorID)
	if v == nil {
		return 0
	}
	id, _ := v.(int)
	return id
}

// GetUsuario devuelve el usuario autenticado.
func GetUsuario(c *fiber.Ctx) string {
	v := c.Locals(LocalUsuario)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
