package client

import (
	"context"
	"time"

	"hoteldesk/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Client struct {
	Mongo *mongo.Client
}

func NewClient() *Client {
	return &Client{}
}

// SetMongo establishes the shared MongoDB client. An unreachable store is
// logged but does not abort startup: the server listens anyway and requests
// fail individually until the store comes back.
func (c *Client) SetMongo(log *logger.Logger, mongoURI string, connTimeout time.Duration, maxPoolSize uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), connTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(mongoURI).
		SetMaxPoolSize(maxPoolSize).
		SetConnectTimeout(connTimeout)

	mongoClient, err := mongo.Connect(ctx, opts)
	if err != nil {
		// Only malformed options reach this branch; nothing can recover it.
		log.Fatal("Invalid MongoDB configuration", "error", err)
	}

	if err := mongoClient.Ping(ctx, nil); err != nil {
		log.Error("MongoDB unreachable at startup, continuing without connectivity",
			"error", err,
		)
	} else {
		log.Info("Successfully connected to MongoDB")
	}

	c.Mongo = mongoClient
}

func (c *Client) GracefulShutdown(log *logger.Logger) {
	if c.Mongo == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := c.Mongo.Disconnect(ctx); err != nil {
		log.Error("Failed to disconnect MongoDB client", "error", err)
		return
	}
	log.Info("MongoDB client disconnected")
}
