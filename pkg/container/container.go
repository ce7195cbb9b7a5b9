package container

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"freedaiy-backend/internal/config"
	"freedaiy-backend/internal/infrastructure/database"

	"freedaiy-backend/internal/domains/blog"
	blogHandler "freedaiy-backend/internal/domains/blog/handler"
	blogService "freedaiy-backend/internal/domains/blog/service"
	"freedaiy-backend/internal/domains/lead"
	leadHandler "freedaiy-backend/internal/domains/lead/handler"
	leadService "freedaiy-backend/internal/domains/lead/service"
	"freedaiy-backend/internal/domains/product"
	productHandler "freedaiy-backend/internal/domains/product/handler"
	productService "freedaiy-backend/internal/domains/product/service"
)

// Container chứa TẤT CẢ dependencies của application
// Struct này là "root" của dependency graph
type Container struct {
	// Infrastructure - shared across all domains, singleton lifecycle
	Config *config.Config
	Store  database.Store

	// Service layer (business logic)
	LeadService    lead.Service
	BlogService    blog.Service
	ProductService product.Service

	// Handler layer (HTTP)
	LeadHandler    *leadHandler.LeadHandler
	BlogHandler    *blogHandler.BlogHandler
	ProductHandler *productHandler.ProductHandler
}

// NewContainer tạo và initialize toàn bộ dependency graph
//
// Thứ tự initialization: Config → Store → Services → Handlers.
// Store connect thất bại KHÔNG chặn startup: store chuyển sang disabled mode
// và mọi insert/query fail với STORE_UNAVAILABLE cho tới khi restart.
func NewContainer() (*Container, error) {
	log.Info().Msg("🔧 Initializing DI Container...")

	c := &Container{}

	// STEP 1: LOAD CONFIGURATION
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("✅ Config loaded")

	// STEP 2: INITIALIZE DOCUMENT STORE
	store := database.NewMongoStore(cfg.Mongo)
	if err := store.Connect(context.Background()); err != nil {
		log.Warn().Err(err).Msg("⚠️  Document store unavailable, running in degraded mode")
	} else {
		log.Info().Msg("✅ Document store connected")
	}
	c.Store = store

	// STEP 3: INITIALIZE SERVICES
	c.LeadService = leadService.NewLeadService(c.Store)
	c.BlogService = blogService.NewBlogService(c.Store)
	c.ProductService = productService.NewProductService(c.Store)

	// STEP 4: INITIALIZE HANDLERS
	c.LeadHandler = leadHandler.NewLeadHandler(c.LeadService)
	c.BlogHandler = blogHandler.NewBlogHandler(c.BlogService)
	c.ProductHandler = productHandler.NewProductHandler(c.ProductService)

	log.Info().Msg("✅ DI Container ready")
	return c, nil
}

// Cleanup giải phóng long-lived resources khi shutdown
func (c *Container) Cleanup() {
	if c.Store != nil {
		if err := c.Store.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to disconnect document store")
		}
	}
}
