package router

import (
	"time"

	"zapastock/internal/config"
	"zapastock/internal/handler"
	"zapastock/internal/infra"
	"zapastock/internal/middleware"
	"zapastock/internal/repository"
	"zapastock/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies carries everything the router needs to assemble the app.
type Dependencies struct {
	Config      *config.Config
	DB          *gorm.DB
	Notificador service.NotificadorStockBajo
	Log         zerolog.Logger
}

// New wires repositories, services and handlers and returns the gin engine.
func New(deps Dependencies) *gin.Engine {
	cfg := deps.Config

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Repositorios
	productoRepo := repository.NewProductoRepository(deps.DB)
	historialRepo := repository.NewHistorialPrecioRepository(deps.DB)
	movimientoRepo := repository.NewMovimientoStockRepository(deps.DB)
	proveedorRepo := repository.NewProveedorRepository(deps.DB)
	clienteRepo := repository.NewClienteRepository(deps.DB)
	ventaRepo := repository.NewVentaRepository(deps.DB)
	compraRepo := repository.NewCompraRepository(deps.DB)
	encargueRepo := repository.NewEncargueRepository(deps.DB)
	usuarioRepo := repository.NewUsuarioRepository(deps.DB)

	// Servicios
	productoSvc := service.NewProductoService(
		productoRepo, historialRepo, movimientoRepo, proveedorRepo,
		deps.Notificador, cfg.StockBajoLimite, deps.Log,
	)
	cargaSvc := service.NewCargaMasivaService(
		productoRepo, proveedorRepo,
		cfg.CargaMasivaMaxFilas, cfg.CargaMasivaMaxFilasArchivo, deps.Log,
	)
	proveedorSvc := service.NewProveedorService(proveedorRepo)
	clienteSvc := service.NewClienteService(clienteRepo)
	ventaSvc := service.NewVentaService(
		ventaRepo, productoRepo, clienteRepo,
		deps.Notificador, cfg.StockBajoLimite, deps.Log,
	)
	compraSvc := service.NewCompraService(compraRepo, productoRepo, proveedorRepo)
	encargueSvc := service.NewEncargueService(encargueRepo, productoRepo, proveedorRepo)
	authSvc := service.NewAuthService(usuarioRepo, cfg.JWTSecret, cfg.JWTExpirationHours)

	// Handlers
	healthH := handler.NewHealthHandler(deps.DB)
	productoH := handler.NewProductoHandler(productoSvc)
	cargaH := handler.NewCargaMasivaHandler(cargaSvc)
	proveedorH := handler.NewProveedorHandler(proveedorSvc)
	clienteH := handler.NewClienteHandler(clienteSvc)
	ventaH := handler.NewVentaHandler(ventaSvc, infra.NewTicketPDF("ZapaStock"))
	compraH := handler.NewCompraHandler(compraSvc)
	encargueH := handler.NewEncargueHandler(encargueSvc)
	authH := handler.NewAuthHandler(authSvc)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(deps.Log),
		middleware.Recovery(deps.Log),
		middleware.CORS(),
		middleware.RateLimiter(300, time.Minute),
	)

	r.GET("/health", healthH.Check)

	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/v1")

	// Publico, con limite mas agresivo contra fuerza bruta
	v1.POST("/auth/login", middleware.RateLimiter(10, time.Minute), authH.Login)

	autenticado := v1.Group("")
	autenticado.Use(middleware.Auth(cfg.JWTSecret))

	// El rol empleado opera el mostrador: lecturas, ventas y ajustes de
	// stock. El resto de las escrituras queda reservado al admin.
	soloAdmin := middleware.RequireRol("admin")
	{
		productos := autenticado.Group("/productos")
		{
			productos.POST("", soloAdmin, productoH.Crear)
			productos.GET("", productoH.Listar)
			productos.GET("/buscar", productoH.Buscar)
			productos.GET("/stock-bajo", productoH.StockBajo)
			productos.GET("/movimientos", productoH.Movimientos)
			productos.POST("/carga-masiva", soloAdmin, cargaH.Inline)
			productos.POST("/carga-masiva/archivo", soloAdmin, cargaH.Archivo)
			productos.GET("/:id", productoH.Obtener)
			productos.PUT("/:id", soloAdmin, productoH.Actualizar)
			productos.DELETE("/:id", soloAdmin, productoH.Eliminar)
			productos.POST("/:id/ajuste-stock", productoH.AjustarStock)
			productos.POST("/:id/precio", soloAdmin, productoH.CambiarPrecio)
			productos.GET("/:id/historial-precios", productoH.HistorialPrecios)
			productos.POST("/:id/imagenes", soloAdmin, productoH.AgregarImagen)
		}

		proveedores := autenticado.Group("/proveedores")
		{
			proveedores.POST("", soloAdmin, proveedorH.Crear)
			proveedores.GET("", proveedorH.Listar)
			proveedores.GET("/:id", proveedorH.Obtener)
			proveedores.PUT("/:id", soloAdmin, proveedorH.Actualizar)
			proveedores.DELETE("/:id", soloAdmin, proveedorH.Eliminar)
			proveedores.GET("/:id/productos", productoH.PorProveedor)
		}

		ventas := autenticado.Group("/ventas")
		{
			ventas.POST("", ventaH.Registrar)
			ventas.GET("", ventaH.Listar)
			ventas.GET("/:id", ventaH.Obtener)
			ventas.GET("/:id/ticket", ventaH.Ticket)
		}

		compras := autenticado.Group("/compras")
		{
			compras.POST("", soloAdmin, compraH.Registrar)
			compras.GET("", compraH.Listar)
			compras.GET("/:id", compraH.Obtener)
		}

		encargues := autenticado.Group("/encargues")
		{
			encargues.POST("", soloAdmin, encargueH.Crear)
			encargues.GET("", encargueH.Listar)
			encargues.GET("/:id", encargueH.Obtener)
			encargues.PATCH("/:id/recibido", soloAdmin, encargueH.MarcarRecibido)
		}

		clientes := autenticado.Group("/clientes")
		{
			clientes.POST("", soloAdmin, clienteH.Crear)
			clientes.GET("", clienteH.Listar)
			clientes.GET("/:id", clienteH.Obtener)
			clientes.PUT("/:id", soloAdmin, clienteH.Actualizar)
			clientes.POST("/:id/deudas", soloAdmin, clienteH.CrearDeuda)
			clientes.GET("/:id/deudas", clienteH.ListarDeudas)
		}

		deudas := autenticado.Group("/deudas")
		{
			deudas.GET("/pendientes", clienteH.DeudasPendientes)
			deudas.PATCH("/:deudaId/pagar", soloAdmin, clienteH.PagarDeuda)
		}

		admin := autenticado.Group("/auth")
		admin.Use(middleware.RequireRol("admin"))
		{
			admin.POST("/usuarios", authH.CrearUsuario)
			admin.GET("/usuarios", authH.ListarUsuarios)
			admin.DELETE("/usuarios/:id", authH.DesactivarUsuario)
		}
	}

	return r
}
