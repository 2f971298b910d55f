package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vpndash/vpndash/internal/infrastructure/auth"
	"github.com/vpndash/vpndash/internal/infrastructure/catalog"
	"github.com/vpndash/vpndash/internal/infrastructure/config"
	"github.com/vpndash/vpndash/internal/infrastructure/email"
	"github.com/vpndash/vpndash/internal/infrastructure/ratelimit"
	"github.com/vpndash/vpndash/internal/infrastructure/telemetry"
	"github.com/vpndash/vpndash/internal/interfaces/http/middleware"
	"github.com/vpndash/vpndash/internal/shared/biztime"
	"github.com/vpndash/vpndash/internal/shared/db"
	"github.com/vpndash/vpndash/internal/shared/logger"
	"github.com/vpndash/vpndash/internal/shared/services/markdown"
)

const redisPingTimeout = 5 * time.Second

// infraServices holds the infrastructure services shared by use cases and middleware.
type infraServices struct {
	txManager *db.TransactionManager
	clock     biztime.Clock
	hasher    *auth.BcryptPasswordHasher
	jwtSvc    *auth.JWTService
	revoker   auth.TokenRevoker
	limiter   ratelimit.Limiter
	email     email.Service
	telemetry *telemetry.RandomGenerator
	catalog   *catalog.StaticCatalog
	markdown  markdown.Service
}

func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	redisClient, err := initRedis(cfg, log)
	if err != nil {
		return err
	}
	c.redis = redisClient

	c.repos = newRepositories(c.db, log)

	svc := &infraServices{
		txManager: db.NewTransactionManager(c.db),
		clock:     biztime.SystemClock{},
		hasher:    auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		jwtSvc:    auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays),
		email:     email.NewService(cfg.Email, log.Named("email")),
		telemetry: telemetry.NewRandomGenerator(),
		markdown:  markdown.NewService(),
	}

	// Without redis, revocations and rate limits are per process.
	if c.redis != nil {
		svc.revoker = auth.NewRedisTokenRevoker(c.redis)
		svc.limiter = ratelimit.NewRedisRateLimiter(c.redis, cfg.RateLimit.Requests, cfg.RateLimit.Window())
	} else {
		svc.revoker = auth.NewMemoryTokenRevoker()
		svc.limiter = ratelimit.NewMemoryRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window())
	}

	svc.catalog, err = catalog.New(cfg.Servers.CatalogPath, svc.telemetry, svc.markdown, log)
	if err != nil {
		return fmt.Errorf("failed to load server catalog: %w", err)
	}

	c.svc = svc
	c.authMiddleware = middleware.NewAuthMiddleware(svc.jwtSvc, svc.revoker, log)
	c.authRateLimiter = middleware.NewRateLimiter(svc.limiter, "auth", log)

	return nil
}

// initRedis creates and tests the Redis client connection. It returns nil when redis is disabled.
func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	if !cfg.Redis.Enabled {
		log.Infow("redis disabled, using in-process rate limiting and token revocation")
		return nil, nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.GetAddr(), err)
	}
	log.Infow("redis connection established", "addr", cfg.Redis.GetAddr())

	return redisClient, nil
}
