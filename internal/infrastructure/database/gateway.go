package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/johnquangdev/hcp-crm/internal/domain/entities"
	"github.com/johnquangdev/hcp-crm/pkg/config"
)

// ErrPoolUnavailable is returned for every storage request when the pool
// failed to initialize at startup.
var ErrPoolUnavailable = errors.New("database connection pool is not available")

// Gateway owns the bounded connection pool. It is built once at startup and
// remembers whether initialization succeeded.
type Gateway struct {
	db      *gorm.DB
	initErr error
}

// NewGateway opens the pool described by cfg. It never fails: an
// initialization error is recorded and reported by every later WithConn.
func NewGateway(ctx context.Context, cfg config.DatabaseConfig, production bool, log *zap.Logger) *Gateway {
	if log == nil {
		log = zap.NewNop()
	}

	if missing := cfg.MissingSettings(); len(missing) > 0 {
		err := fmt.Errorf("missing settings: %s", strings.Join(missing, ", "))
		log.Error("❌ Database pool not created", zap.Error(err))
		return Unavailable(err)
	}

	attempts := 0
	var db *gorm.DB
	connect := func() error {
		attempts++
		var err error
		db, err = open(cfg, production)
		if err != nil {
			log.Warn("database connection attempt failed",
				zap.Int("attempt", attempts),
				zap.String("driver", cfg.Driver),
				zap.Error(err),
			)
		}
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Second
	bo.MaxInterval = 10 * time.Second
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, cfg.ConnectRetries), ctx)

	if err := backoff.Retry(connect, policy); err != nil {
		log.Error("❌ Error creating connection pool", zap.Int("attempts", attempts), zap.Error(err))
		return Unavailable(err)
	}

	log.Info("✅ Successfully created database connection pool",
		zap.String("driver", cfg.Driver),
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Name),
		zap.Int("pool_size", cfg.PoolSize),
	)
	return &Gateway{db: db}
}

// NewGatewayFromDB wraps an already opened gorm handle
func NewGatewayFromDB(db *gorm.DB) *Gateway {
	return &Gateway{db: db}
}

// Unavailable returns a gateway that fails every request with ErrPoolUnavailable
func Unavailable(cause error) *Gateway {
	if cause == nil {
		cause = errors.New("pool not initialized")
	}
	return &Gateway{initErr: cause}
}

func open(cfg config.DatabaseConfig, production bool) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverMySQL:
		dialector = mysql.Open(cfg.DSN())
	default:
		dialector = postgres.Open(cfg.DSN())
	}

	gormLogger := logger.Default.LogMode(logger.Info)
	if production {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.PoolSize)
	sqlDB.SetMaxIdleConns(cfg.PoolSize)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// Err returns the initialization failure, or nil when the pool is usable
func (g *Gateway) Err() error {
	if g == nil {
		return ErrPoolUnavailable
	}
	if g.initErr != nil {
		return fmt.Errorf("%w: %w", ErrPoolUnavailable, g.initErr)
	}
	return nil
}

// WithConn acquires one pooled connection, blocking until one is free or ctx
// ends, runs fn on it and always returns it to the pool, including when fn
// fails or panics.
func (g *Gateway) WithConn(ctx context.Context, fn func(conn *gorm.DB) error) error {
	if err := g.Err(); err != nil {
		return err
	}
	return g.db.WithContext(ctx).Connection(fn)
}

// Stats reports pool usage; the zero value when the pool is unavailable
func (g *Gateway) Stats() sql.DBStats {
	if g.Err() != nil {
		return sql.DBStats{}
	}
	sqlDB, err := g.db.DB()
	if err != nil {
		return sql.DBStats{}
	}
	return sqlDB.Stats()
}

// AutoMigrate creates the interactions table when it does not exist.
// Development bootstrap only.
func (g *Gateway) AutoMigrate(ctx context.Context) error {
	return g.WithConn(ctx, func(conn *gorm.DB) error {
		return conn.AutoMigrate(&entities.Interaction{})
	})
}

// Close closes the pool
func (g *Gateway) Close() error {
	if g.Err() != nil {
		return nil
	}
	sqlDB, err := g.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
