package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/vpndash/vpndash/internal/infrastructure/config"
	"github.com/vpndash/vpndash/internal/interfaces/http/middleware"
	"github.com/vpndash/vpndash/internal/shared/logger"
)

// Container holds all infrastructure components, repositories, use cases and
// handlers, wires them together and releases them in Shutdown.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client // nil when redis is disabled

	repos *repositories
	svc   *infraServices
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware  *middleware.AuthMiddleware
	authRateLimiter *middleware.RateLimiter
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, Repositories, Services, Middlewares
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Use cases
	c.initUseCases()

	// Section 3: Handlers
	if err := c.initHandlers(); err != nil {
		c.Shutdown()
		return nil, err
	}

	return c, nil
}

// Engine returns the Gin engine
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

const emailDrainTimeout = 10 * time.Second

type drainer interface {
	Drain(ctx context.Context) error
}

// Shutdown waits for queued emails and releases connections owned by the container.
// The database is owned by the caller.
func (c *Container) Shutdown() {
	if c.svc != nil {
		if d, ok := c.svc.email.(drainer); ok {
			ctx, cancel := context.WithTimeout(context.Background(), emailDrainTimeout)
			if err := d.Drain(ctx); err != nil {
				c.log.Warnw("pending emails not delivered before shutdown", "error", err)
			}
			cancel()
		}
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
