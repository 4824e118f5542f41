package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/socialcli/internal/client/client"
	"github.com/dmitrijs2005/socialcli/internal/client/config"
	"github.com/dmitrijs2005/socialcli/internal/client/tokens"
	"github.com/dmitrijs2005/socialcli/internal/filex"
	"github.com/redis/go-redis/v9"
)

// openStore builds the credential store selected by cfg.StoreBackend and
// returns a func releasing it.
func openStore(ctx context.Context, cfg *config.Config) (tokens.Store, func() error, error) {
	switch cfg.StoreBackend {
	case config.StoreMemory:
		return tokens.NewMemoryStore(), func() error { return nil }, nil

	case config.StoreSQLite:
		if _, err := filex.EnsureDir(cfg.DataDir); err != nil {
			return nil, nil, err
		}
		db, err := client.InitDatabase(ctx, cfg.DatabasePath())
		if err != nil {
			return nil, nil, fmt.Errorf("error initializing database: %w", err)
		}
		return tokens.NewSQLStore(db), db.Close, nil

	case config.StoreRedis:
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("redis %s: %w", cfg.RedisAddr, err)
		}
		return tokens.NewRedisStore(rdb, cfg.RedisPrefix), rdb.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
