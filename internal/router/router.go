package router

import (
	"time"

	"github.com/4supreme/business-application/internal/config"
	"github.com/4supreme/business-application/internal/handler"
	"github.com/4supreme/business-application/internal/middleware"
	"github.com/4supreme/business-application/internal/repository"
	"github.com/4supreme/business-application/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
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
	r.Use(middleware.RateLimiter(cfg.RateLimit, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	productRepo := repository.NewProductRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	movementRepo := repository.NewStockMovementRepository(db)
	treasuryRepo := repository.NewTreasuryRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	productSvc := service.NewProductService(productRepo)
	documentSvc := service.NewDocumentService(documentRepo, productRepo, movementRepo)
	treasurySvc := service.NewTreasuryService(treasuryRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productsH := handler.NewProductsHandler(productSvc)
	documentsH := handler.NewDocumentsHandler(documentSvc)
	movementsH := handler.NewMovementsHandler(movementRepo)
	treasuryH := handler.NewTreasuryHandler(treasurySvc)
	priceH := handler.NewPriceLookupHandler(productRepo, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		v1.POST("/products", productsH.Create)
		v1.GET("/products", productsH.List)
		v1.GET("/products/:id", productsH.Get)
		v1.GET("/stock", productsH.Stock)
		v1.GET("/price/:barcode", priceH.GetByBarcode)

		v1.POST("/documents", documentsH.Create)
		v1.GET("/documents", documentsH.List)
		v1.GET("/documents/:id", documentsH.Get)
		v1.POST("/documents/:id/post", documentsH.Post)
		v1.POST("/documents/:id/unpost", documentsH.Unpost)
		v1.DELETE("/documents/:id", documentsH.Delete)

		v1.GET("/vendors/recent", documentsH.RecentVendors)
		v1.GET("/vendors/history", documentsH.VendorHistory)

		v1.GET("/movements", movementsH.List)

		v1.POST("/treasury/transactions", treasuryH.Record)
		v1.GET("/treasury/balance", treasuryH.Balance)
		v1.GET("/treasury/recent", treasuryH.Recent)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
