package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/sms"
	"github.com/jhoicas/tienda-api/internal/application/upload"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/infrastructure/storage"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	SMSUC      *sms.UseCase
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	BannerUC   *usecase.BannerUseCase
	OrderUC    *usecase.OrderUseCase
	UserUC     *usecase.UserUseCase
	PaymentUC  *usecase.PaymentUseCase
	OplogUC    *usecase.OperationLogUseCase
	UploadUC   *upload.UseCase
	Storage    *storage.Local
	JWTSecret  string
	Logger     *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	smsHandler := NewSMSHandler(deps.SMSUC)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	productHandler := NewProductHandler(deps.ProductUC)
	bannerHandler := NewBannerHandler(deps.BannerUC)
	orderHandler := NewOrderHandler(deps.OrderUC)
	userHandler := NewUserHandler(deps.UserUC)
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	oplogHandler := NewOperationLogHandler(deps.OplogUC)
	uploadHandler := NewUploadHandler(deps.UploadUC)
	mediaHandler := NewMediaHandler(deps.Storage)
	menuHandler := NewMenuHandler()

	// Archivos subidos (público, cacheable)
	app.Get("/uploads/*", mediaHandler.Serve)

	api := app.Group("/api")

	// Auth y SMS (público)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	api.Post("/sms/send", smsHandler.SendCode)

	// Vitrina de la tienda (público)
	shop := api.Group("/shop")
	shop.Get("/banners", bannerHandler.ListActive)
	shop.Get("/products", productHandler.ListVisible)
	shop.Get("/products/:id", productHandler.GetByID)
	shop.Get("/categories", categoryHandler.List)
	api.Get("/payment", paymentHandler.Get)

	// Rutas con sesión (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/menu", menuHandler.Get)
	protected.Get("/me", userHandler.Me)
	protected.Get("/me/stats", userHandler.Stats)
	protected.Put("/auth/password", authHandler.ChangePassword)

	// Favoritos del usuario de la sesión
	favorites := protected.Group("/favorites")
	favorites.Post("/", productHandler.AddFavorite)
	favorites.Get("/", productHandler.ListFavorites)
	favorites.Delete("/:id", productHandler.DeleteFavorite)

	// Órdenes del usuario de la sesión
	orders := protected.Group("/orders")
	orders.Post("/", orderHandler.Place)
	orders.Get("/", orderHandler.ListMine)
	orders.Get("/:id", orderHandler.GetMine)
	orders.Get("/:id/receipt", orderHandler.ReceiptMine)

	// Back office: toda mutación queda en el registro de operaciones.
	// Solo SUPERADMIN administra catálogo, banners, usuarios y pagos;
	// VENDOR además gestiona órdenes.
	admin := protected.Group("/admin", OperationLog(deps.OplogUC, deps.Logger))
	super := admin.Group("/", RequireRole(entity.RoleSuperAdmin))
	sales := admin.Group("/", RequireRole(entity.RoleSuperAdmin, entity.RoleVendor))

	categories := super.Group("/categories")
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/", categoryHandler.DeleteMany)
	categories.Delete("/:id", categoryHandler.Delete)

	products := super.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/", productHandler.DeleteMany)
	products.Delete("/:id", productHandler.Delete)

	banners := super.Group("/banners")
	banners.Post("/", bannerHandler.Create)
	banners.Get("/", bannerHandler.List)
	banners.Get("/:id", bannerHandler.GetByID)
	banners.Put("/:id", bannerHandler.Update)
	banners.Delete("/", bannerHandler.DeleteMany)
	banners.Delete("/:id", bannerHandler.Delete)

	adminOrders := sales.Group("/orders")
	adminOrders.Get("/", orderHandler.List)
	adminOrders.Get("/:id", orderHandler.GetByID)
	adminOrders.Get("/:id/receipt", orderHandler.Receipt)
	adminOrders.Put("/:id/status", orderHandler.UpdateStatus)
	adminOrders.Delete("/", orderHandler.DeleteMany)
	adminOrders.Delete("/:id", orderHandler.Delete)

	users := super.Group("/users")
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/", userHandler.DeleteMany)
	users.Delete("/:id", userHandler.Delete)

	payment := super.Group("/payment")
	payment.Post("/", paymentHandler.Upload)
	payment.Delete("/:id", paymentHandler.Delete)

	logs := super.Group("/logs")
	logs.Get("/", oplogHandler.List)
	logs.Delete("/", oplogHandler.DeleteMany)

	uploads := super.Group("/uploads")
	uploads.Post("/image", uploadHandler.UploadImage)
	uploads.Post("/images", uploadHandler.UploadImages)
	uploads.Post("/video", uploadHandler.UploadVideo)
}
