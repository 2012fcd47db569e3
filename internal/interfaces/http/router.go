package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kmutombo/redpos-api/internal/application/auth"
	"github.com/kmutombo/redpos-api/internal/application/catalog"
	"github.com/kmutombo/redpos-api/internal/application/forecast"
	"github.com/kmutombo/redpos-api/internal/application/ledger"
	"github.com/kmutombo/redpos-api/internal/application/report"
	"github.com/kmutombo/redpos-api/internal/application/shop"
	"github.com/kmutombo/redpos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	ShopUC     *shop.UseCase
	CategoryUC *catalog.CategoryUseCase
	ProductUC  *catalog.ProductUseCase
	SaleUC     *ledger.SaleUseCase
	ReceiptUC  *ledger.ReceiptUseCase
	PurchaseUC *ledger.PurchaseUseCase
	ForecastUC *forecast.DashboardUseCase
	ReportUC   *report.UseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Todo lo que no es auth exige Bearer
// Token; las rutas de gestión exigen además rol manager.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	managerOnly := RequireRole(entity.RoleManager)

	// Boutique (lectura para todos; configuración solo manager)
	shopHandler := NewShopHandler(deps.ShopUC)
	protected.Get("/shop", shopHandler.Get)
	protected.Put("/shop", managerOnly, shopHandler.Update)

	// Equipo e invitaciones (solo manager)
	protected.Post("/invitations", managerOnly, authHandler.CreateInvitation)
	protected.Get("/invitations", managerOnly, authHandler.ListInvitations)
	protected.Get("/users", managerOnly, authHandler.ListUsers)

	// Categorías (gestión solo manager; lectura para la caisse)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", managerOnly, categoryHandler.Create)
	categories.Put("/:id", managerOnly, categoryHandler.Update)
	categories.Delete("/:id", managerOnly, categoryHandler.Delete)

	// Productos (gestión solo manager; búsqueda y lectura para la caisse)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", managerOnly, productHandler.Create)
	products.Put("/:id", managerOnly, productHandler.Update)

	// Ventas (caissier y manager); anulación solo manager
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.ReceiptUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Get("/:id/receipt.pdf", saleHandler.Receipt)
	sales.Post("/:id/cancel", managerOnly, saleHandler.Cancel)

	// Compras (solo manager)
	purchases := protected.Group("/purchases", managerOnly)
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Post("/:id/toggle-received", purchaseHandler.ToggleReceived)

	// Predicción y reportes (solo manager)
	forecastHandler := NewForecastHandler(deps.ForecastUC)
	protected.Get("/forecast/dashboard", managerOnly, forecastHandler.Dashboard)

	reports := protected.Group("/reports", managerOnly)
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/dashboard", reportHandler.Dashboard)
	reports.Get("/sales", reportHandler.Sales)
}
