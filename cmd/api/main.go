package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/sms"
	"github.com/jhoicas/tienda-api/internal/application/upload"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/tienda-api/internal/infrastructure/pdf"
	"github.com/jhoicas/tienda-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/tienda-api/internal/infrastructure/redis"
	"github.com/jhoicas/tienda-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/tienda-api/internal/interfaces/http"
	"github.com/jhoicas/tienda-api/pkg/config"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	redisClient, err := infraredis.Connect(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer redisClient.Close()

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	bannerRepo := postgres.NewBannerRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	favoriteRepo := postgres.NewFavoriteRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	oplogRepo := postgres.NewOperationLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	codeStore := infraredis.NewCodeStore(redisClient)
	store := storage.NewLocal(cfg.Uploads.Dir)
	receipts := infrapdf.NewReceiptGenerator(cfg.App.Name)

	smsUC := sms.NewUseCase(codeStore, sms.Config{
		CodeTTL:     cfg.SMS.CodeTTL,
		ResendWait:  cfg.SMS.ResendWait,
		Development: cfg.App.IsDevelopment(),
	}, log.Component("sms"))
	authUC := auth.NewAuthUseCase(userRepo, smsUC, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	uploadUC := upload.NewUseCase(store)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, favoriteRepo)
	bannerUC := usecase.NewBannerUseCase(bannerRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, productRepo, userRepo, txRunner, receipts)
	userUC := usecase.NewUserUseCase(userRepo, favoriteRepo, orderRepo)
	paymentUC := usecase.NewPaymentUseCase(paymentRepo, uploadUC)
	oplogUC := usecase.NewOperationLogUseCase(oplogRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    32 * 1024 * 1024, // subidas base64
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		SMSUC:      smsUC,
		CategoryUC: categoryUC,
		ProductUC:  productUC,
		BannerUC:   bannerUC,
		OrderUC:    orderUC,
		UserUC:     userUC,
		PaymentUC:  paymentUC,
		OplogUC:    oplogUC,
		UploadUC:   uploadUC,
		Storage:    store,
		JWTSecret:  cfg.JWT.Secret,
		Logger:     log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
