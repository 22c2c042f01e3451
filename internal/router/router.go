package router

import (
	"time"

	"github.com/munjed80/Fancy-foods-app/internal/config"
	"github.com/munjed80/Fancy-foods-app/internal/handler"
	"github.com/munjed80/Fancy-foods-app/internal/infra"
	"github.com/munjed80/Fancy-foods-app/internal/middleware"
	"github.com/munjed80/Fancy-foods-app/internal/repository"
	"github.com/munjed80/Fancy-foods-app/internal/service"
	"github.com/munjed80/Fancy-foods-app/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
// Settings and the job dispatcher are built in main (composition root) because
// the worker pool shares them.
func New(
	cfg *config.Config,
	db *gorm.DB,
	rdb *redis.Client,
	settingsSvc service.SettingsService,
	dispatcher *worker.Dispatcher,
	attachments *infra.AttachmentStore,
	archive *infra.EmailArchive,
) *gin.Engine {
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
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	dealRepo := repository.NewDealRepository(db)
	shipmentRepo := repository.NewShipmentRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	clientRepo := repository.NewClientRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	templateRepo := repository.NewTemplateRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	dealSvc := service.NewDealService(dealRepo, shipmentRepo, attachments)
	shipmentSvc := service.NewShipmentService(shipmentRepo)
	orderSvc := service.NewOrderService(orderRepo)
	productSvc := service.NewProductService(productRepo)
	clientSvc := service.NewClientService(clientRepo)
	supplierSvc := service.NewSupplierService(supplierRepo)
	documentSvc := service.NewDocumentService(dealRepo, settingsSvc, cfg.PDFStoragePath)
	emailSvc := service.NewEmailService(templateRepo, dealRepo, documentSvc, settingsSvc, archive, dispatcher)
	workflowSvc := service.NewWorkflowService(
		dealRepo, orderRepo, productRepo, clientRepo, supplierRepo,
		rdb, time.Duration(cfg.SnapshotCacheTTL)*time.Second,
	)

	// ── Handlers ─────────────────────────────────────────────────────────────
	dealsH := handler.NewDealsHandler(dealSvc, documentSvc, emailSvc, attachments)
	shipmentsH := handler.NewShipmentsHandler(shipmentSvc)
	ordersH := handler.NewOrdersHandler(orderSvc)
	productsH := handler.NewProductsHandler(productSvc)
	clientsH := handler.NewClientsHandler(clientSvc)
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	emailsH := handler.NewEmailsHandler(emailSvc)
	settingsH := handler.NewSettingsHandler(settingsSvc)
	workflowH := handler.NewWorkflowHandler(workflowSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		deals := v1.Group("/deals")
		{
			deals.POST("", dealsH.Create)
			deals.GET("", dealsH.List)
			deals.GET("/:id", dealsH.Get)
			deals.PUT("/:id", dealsH.Update)
			deals.PATCH("/:id/stage", dealsH.UpdateStage)
			deals.DELETE("/:id", dealsH.Delete)

			deals.POST("/:id/pdf", dealsH.GeneratePDF)
			deals.POST("/:id/email", dealsH.SendEmail)

			deals.GET("/:id/attachments", dealsH.ListAttachments)
			deals.POST("/:id/attachments", dealsH.AddAttachment)
			deals.DELETE("/:id/attachments/:name", dealsH.RemoveAttachment)
		}

		shipments := v1.Group("/shipments")
		{
			shipments.POST("", shipmentsH.Create)
			shipments.GET("", shipmentsH.List)
			shipments.GET("/:id", shipmentsH.Get)
			shipments.PUT("/:id", shipmentsH.Update)
			shipments.DELETE("/:id", shipmentsH.Delete)
		}

		orders := v1.Group("/orders")
		{
			orders.POST("", ordersH.Create)
			orders.GET("", ordersH.List)
			orders.GET("/:id", ordersH.Get)
			orders.PUT("/:id", ordersH.Update)
			orders.DELETE("/:id", ordersH.Delete)
		}

		products := v1.Group("/products")
		{
			products.POST("", productsH.Create)
			products.GET("", productsH.List)
			products.GET("/:id", productsH.Get)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Delete)
		}

		clients := v1.Group("/clients")
		{
			clients.POST("", clientsH.Create)
			clients.GET("", clientsH.List)
			clients.GET("/:id", clientsH.Get)
			clients.PUT("/:id", clientsH.Update)
			clients.DELETE("/:id", clientsH.Delete)
		}

		suppliers := v1.Group("/suppliers")
		{
			suppliers.POST("", suppliersH.Create)
			suppliers.GET("", suppliersH.List)
			suppliers.GET("/:id", suppliersH.Get)
			suppliers.PUT("/:id", suppliersH.Update)
			suppliers.DELETE("/:id", suppliersH.Delete)
		}

		templates := v1.Group("/templates")
		{
			templates.POST("", emailsH.CreateTemplate)
			templates.GET("", emailsH.ListTemplates)
			templates.PUT("/:id", emailsH.UpdateTemplate)
			templates.DELETE("/:id", emailsH.DeleteTemplate)
		}

		v1.GET("/emails/sent", emailsH.ListSent)

		v1.GET("/settings", settingsH.Get)
		v1.PUT("/settings", settingsH.Save)

		v1.GET("/workflow", workflowH.GetSnapshot)
	}

	return r
}
