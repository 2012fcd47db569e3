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

	"github.com/kmutombo/redpos-api/internal/application/auth"
	"github.com/kmutombo/redpos-api/internal/application/catalog"
	"github.com/kmutombo/redpos-api/internal/application/forecast"
	"github.com/kmutombo/redpos-api/internal/application/ledger"
	"github.com/kmutombo/redpos-api/internal/application/report"
	"github.com/kmutombo/redpos-api/internal/application/shop"
	infrapdf "github.com/kmutombo/redpos-api/internal/infrastructure/pdf"
	"github.com/kmutombo/redpos-api/internal/infrastructure/postgres"
	httpRouter "github.com/kmutombo/redpos-api/internal/interfaces/http"
	"github.com/kmutombo/redpos-api/pkg/config"
	"github.com/kmutombo/redpos-api/pkg/jwt"
	"github.com/kmutombo/redpos-api/pkg/logger"
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

	shopRepo := postgres.NewShopRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	invitationRepo := postgres.NewInvitationRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	tokens := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)

	authUC := auth.NewUseCase(userRepo, shopRepo, invitationRepo, tokens)
	shopUC := shop.NewUseCase(shopRepo)
	categoryUC := catalog.NewCategoryUseCase(categoryRepo)
	productUC := catalog.NewProductUseCase(productRepo, categoryRepo)
	saleUC := ledger.NewSaleUseCase(txRunner, saleRepo, productRepo)
	purchaseUC := ledger.NewPurchaseUseCase(txRunner, purchaseRepo, productRepo)
	forecastUC := forecast.NewDashboardUseCase(productRepo, reportRepo)
	reportUC := report.NewUseCase(reportRepo, productRepo)

	// PDF: ticket de caisse
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := ledger.NewReceiptUseCase(saleRepo, shopRepo, productRepo, userRepo, receiptGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "RedPOS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ShopUC:     shopUC,
		CategoryUC: categoryUC,
		ProductUC:  productUC,
		SaleUC:     saleUC,
		ReceiptUC:  receiptUC,
		PurchaseUC: purchaseUC,
		ForecastUC: forecastUC,
		ReportUC:   reportUC,
		JWTSecret:  cfg.JWT.Secret,
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
