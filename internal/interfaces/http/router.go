package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/application/auth"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/application/usecase"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/application/venta"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ArticuloUC     *usecase.ArticuloUseCase
	ClienteUC      *usecase.ClienteUseCase
	CategoriaUC    *usecase.CategoriaUseCase
	ReporteUC      *usecase.ReporteUseCase
	RegistrarVenta *venta.RegistrarVentaUseCase
	ConsultaVenta  *venta.ConsultaVentaUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/recover/check", authHandler.RecoverCheck)
	authGroup.Post("/recover/update", authHandler.RecoverUpdate)

	// Rutas protegidas (requieren Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Put("/auth/perfil", authHandler.UpdatePerfil)

	// Artículos
	articulos := protected.Group("/articulos")
	articuloHandler := NewArticuloHandler(deps.ArticuloUC)
	articulos.Get("/", articuloHandler.List)
	articulos.Get("/vendibles", articuloHandler.ListVendibles)
	articulos.Get("/:id", articuloHandler.GetByID)
	articulos.Post("/", articuloHandler.Create)
	articulos.Put("/:id", articuloHandler.Update)
	articulos.Delete("/:id", articuloHandler.Delete)

	// Clientes
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Post("/", clienteHandler.Create)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	// Categorías y presentaciones
	categorias := protected.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Get("/", categoriaHandler.List)
	categorias.Post("/", categoriaHandler.Create)
	categorias.Put("/:id", categoriaHandler.Update)
	categorias.Delete("/:id", categoriaHandler.Delete)
	protected.Get("/presentaciones", categoriaHandler.ListPresentaciones)

	// Ventas
	ventas := protected.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.RegistrarVenta, deps.ConsultaVenta)
	ventas.Post("/", ventaHandler.Registrar)
	ventas.Get("/", ventaHandler.List)
	ventas.Get("/:id", ventaHandler.GetByID)

	// Reportes
	reportes := protected.Group("/reportes")
	reporteHandler := NewReporteHandler(deps.ReporteUC)
	reportes.Get("/ventas", reporteHandler.Ventas)
	reportes.Get("/inventario", reporteHandler.Inventario)
}
