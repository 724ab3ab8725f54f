package router

import (
	"time"

	"renascer/internal/config"
	"renascer/internal/handler"
	"renascer/internal/middleware"
	"renascer/internal/repository"
	"renascer/internal/service"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB, version string) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute))
	r.Use(middleware.Metrics())

	// ── Repositories ─────────────────────────────────────────────────────────
	supplierRepo := repository.NewSupplierRepository(db)
	clientRepo := repository.NewClientRepository(db)
	pointRepo := repository.NewCollectionPointRepository(db)
	productTypeRepo := repository.NewProductTypeRepository(db)
	collectionRepo := repository.NewCollectionRepository(db)
	saleRepo := repository.NewSaleRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	supplierSvc := service.NewSupplierService(supplierRepo)
	clientSvc := service.NewClientService(clientRepo)
	pointSvc := service.NewCollectionPointService(pointRepo)
	productTypeSvc := service.NewProductTypeService(productTypeRepo)
	collectionSvc := service.NewCollectionService(collectionRepo, supplierRepo, productTypeRepo)
	saleSvc := service.NewSaleService(saleRepo, clientRepo, productTypeRepo)
	dashboardSvc := service.NewDashboardService(collectionRepo, saleRepo, supplierRepo, productTypeRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	clientsH := handler.NewClientsHandler(clientSvc)
	pointsH := handler.NewCollectionPointsHandler(pointSvc)
	productTypesH := handler.NewProductTypesHandler(productTypeSvc)
	collectionsH := handler.NewCollectionsHandler(collectionSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/", handler.Root(version))
	r.GET("/healthz", handler.Health(db))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	suppliers := r.Group("/suppliers")
	{
		suppliers.POST("", suppliersH.Create)
		suppliers.GET("", suppliersH.List)
		suppliers.GET("/:id", suppliersH.GetByID)
		suppliers.PUT("/:id", suppliersH.Update)
		suppliers.DELETE("/:id", suppliersH.Delete)
	}

	clients := r.Group("/clients")
	{
		clients.POST("", clientsH.Create)
		clients.GET("", clientsH.List)
		clients.GET("/:id", clientsH.GetByID)
		clients.PUT("/:id", clientsH.Update)
		clients.DELETE("/:id", clientsH.Delete)
	}

	points := r.Group("/collection-points")
	{
		points.POST("", pointsH.Create)
		points.GET("", pointsH.List)
		points.GET("/:id", pointsH.GetByID)
		points.PUT("/:id", pointsH.Update)
		points.DELETE("/:id", pointsH.Delete)
	}

	productTypes := r.Group("/product-types")
	{
		productTypes.POST("", productTypesH.Create)
		productTypes.GET("", productTypesH.List)
		productTypes.GET("/:id", productTypesH.GetByID)
		productTypes.PUT("/:id", productTypesH.Update)
		productTypes.DELETE("/:id", productTypesH.Delete)
	}

	collections := r.Group("/collections")
	{
		collections.POST("", collectionsH.Create)
		collections.GET("", collectionsH.List)
		collections.GET("/by-date/:date", collectionsH.ByDate)
		collections.GET("/:id", collectionsH.GetByID)
		collections.PUT("/:id", collectionsH.Update)
		collections.PATCH("/:id/status", collectionsH.UpdateStatus)
		collections.DELETE("/:id", collectionsH.Delete)
	}

	sales := r.Group("/sales")
	{
		sales.POST("", salesH.Create)
		sales.GET("", salesH.List)
		sales.GET("/:id", salesH.GetByID)
		sales.PUT("/:id", salesH.Update)
		sales.DELETE("/:id", salesH.Delete)
	}

	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/indicators", dashboardH.Indicators)
		dashboard.GET("/monthly-movement", dashboardH.MonthlyMovement)
		dashboard.GET("/collections-by-supplier", dashboardH.CollectionsBySupplier)
		dashboard.GET("/sales-by-product-type", dashboardH.SalesByProductType)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
