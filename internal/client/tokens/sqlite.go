package tokens

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/socialcli/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/socialcli/internal/dbx"
)

// SQLStore keeps slots in the metadata table of the local sqlite file.
// The schema is created by client.InitDatabase.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Get(ctx context.Context, slot Slot) (string, error) {
	v, _, err := metadata.NewSQLiteRepository(s.db).Get(ctx, string(slot))
	return v, err
}

func (s *SQLStore) Set(ctx context.Context, values map[Slot]string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		for k, v := range values {
			if err := repo.Set(ctx, string(k), v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLStore) Delete(ctx context.Context, slots ...Slot) error {
	keys := make([]string, len(slots))
	for i, k := range slots {
		keys[i] = string(k)
	}
	return metadata.NewSQLiteRepository(s.db).Delete(ctx, keys...)
}
