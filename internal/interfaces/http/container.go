package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/orris-inc/casedesk/internal/application/cases/usecases"
	"github.com/orris-inc/casedesk/internal/infrastructure/auth"
	"github.com/orris-inc/casedesk/internal/infrastructure/config"
	"github.com/orris-inc/casedesk/internal/infrastructure/lock"
	"github.com/orris-inc/casedesk/internal/interfaces/http/middleware"
	shareddb "github.com/orris-inc/casedesk/internal/shared/db"
	"github.com/orris-inc/casedesk/internal/shared/logger"
)

// Container holds the infrastructure components, repositories, use cases and
// handlers, and wires them together.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	txManager *shareddb.TransactionManager
	locker    usecases.SequenceLocker

	jwtSvc         *auth.JWTService
	tokenIssuer    *tokenIssuerAdapter
	authMiddleware *middleware.AuthMiddleware
}

// NewContainer creates a Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, lock, repositories, auth
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Use cases
	c.ucs = newUseCases(c)

	// Section 3: Handlers
	c.hdlrs = newHandlers(c.ucs, log)

	return c, nil
}

func (c *Container) initInfrastructure() error {
	cfg := c.cfg

	c.repos = newRepositories(c.db, c.log)
	c.txManager = shareddb.NewTransactionManager(c.db)

	if cfg.Redis.Enabled {
		client, err := initRedis(cfg)
		if err != nil {
			return err
		}
		c.redis = client
		ttl := time.Duration(cfg.Business.LockTTLSeconds) * time.Second
		c.locker = lock.NewRedisLocker(client, ttl)
		c.log.Infow("using redis sequence locks", "addr", cfg.Redis.GetAddr(), "ttl", ttl)
	} else {
		c.locker = lock.NewMemoryLocker()
		c.log.Infow("using in-process sequence locks")
	}

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	c.tokenIssuer = &tokenIssuerAdapter{c.jwtSvc}
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)

	return nil
}

// initRedis creates and tests the Redis client connection.
func initRedis(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// Shutdown releases the connections the container opened itself.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
