package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tpi-backend/e-commerce-api/internal/infrastructure/config"
)

// Connect dials MongoDB, verifies the connection with a ping, and prepares
// the database the repositories run against. The partial unique index
// guarding email uniqueness among active users is created here, before the
// database is handed out, so no repository ever writes to an unindexed users
// collection. cfg.Timeout bounds the whole startup sequence.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	dialCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(dialCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(dialCtx, nil); err != nil {
		_ = client.Disconnect(dialCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	if err := NewUserRepository(db).EnsureIndexes(dialCtx); err != nil {
		_ = client.Disconnect(dialCtx)
		return nil, nil, err
	}

	return client, db, nil
}
