package docstore

import (
	"context"

	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Connect opens a client and verifies the primary is reachable within cfg.Timeout.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, func(context.Context) error, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.Timeout).
		SetServerSelectionTimeout(cfg.Timeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to connect to mongo")
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, errs.Wrap(err, "failed to ping mongo")
	}

	return client, client.Disconnect, nil
}
