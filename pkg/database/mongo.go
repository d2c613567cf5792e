package database

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Config struct {
	URI      string
	Database string
	MaxConns uint64
	Timeout  time.Duration
}

// ConfigFromEnv reads Mongo config from environment variables
func ConfigFromEnv() Config {
	uri := os.Getenv("MONGO_URI_STRING")
	if uri == "" {
		// default local
		uri = "mongodb://localhost:27017"
	}
	dbs := os.Getenv("DBS")
	if dbs == "" {
		dbs = "accounts"
	}
	return Config{URI: uri, Database: dbs, MaxConns: 5, Timeout: 5 * time.Second}
}

// Connect opens a *mongo.Client and verifies connectivity with a ping
func Connect(cfg Config) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxConns).
		SetConnectTimeout(cfg.Timeout)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}
