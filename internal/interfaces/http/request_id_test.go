package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/Mauricioo67/Farmacia-Vida-Sana/internal/interfaces/http"
)

func TestRequestID_GeneraUnoNuevo(t *testing.T) {
	app := fiber.New()
	app.Use(apphttp.RequestID())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(apphttp.GetRequestID(c))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestRequestID_ConservaElDelCliente(t *testing.T) {
	app := fiber.New()
	app.Use(apphttp.RequestID())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderXRequestID, "id-del-cliente")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "id-del-cliente", resp.Header.Get(fiber.HeaderXRequestID))
}
