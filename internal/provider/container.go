package provider

import (
	"github.com/mebel-next/internal/cache"
	"github.com/mebel-next/internal/config"
	"github.com/mebel-next/internal/logger"
	"github.com/mebel-next/internal/models"
	"github.com/mebel-next/internal/queue"
	"github.com/mebel-next/internal/repository"
	"github.com/mebel-next/internal/service"
)

// Container is the dependency injection container.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	ProductRepo   repository.ProductRepository
	CartRepo      repository.CartRepository
	CartStateRepo repository.CartStateRepository
	FavoriteRepo  repository.FavoriteRepository

	// Services
	SessionService   *service.SessionService
	RegistryService  *service.RegistryService
	CatalogService   *service.CatalogService
	CartService      *service.CartService
	CheckoutService  *service.CheckoutService
	FavoritesService *service.FavoritesService
}

// NewContainer initializes the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.CartStateRepo = repository.NewCartStateRepository(db)
	c.FavoriteRepo = repository.NewFavoriteRepository(db)
}

func (c *Container) initServices() {
	c.SessionService = service.NewSessionService(&c.Config.Session)
	c.RegistryService = service.NewRegistryService(c.Config.Store)
	c.CatalogService = service.NewCatalogService(
		c.ProductRepo,
		c.Config.Catalog.CountCacheTTLSeconds,
		c.Config.Catalog.PriceRangeDebounceMS,
		c.Config.Catalog.PriceRangeTTLSeconds,
	)
	c.CartService = service.NewCartService(c.CartRepo, c.CartStateRepo, c.ProductRepo, c.RegistryService)
	c.CheckoutService = service.NewCheckoutService(
		c.CartService,
		c.RegistryService,
		c.QueueClient,
		c.Config.Checkout.ConfirmDelaySeconds,
	)
	c.FavoritesService = service.NewFavoritesService(c.FavoriteRepo, c.ProductRepo)
}
