package config

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Development fallback so a local checkout runs without any env file.
// Production deployments must set MONGODB_URI.
const devMongoURI = "mongodb://localhost:27017"

var (
	db     *mongo.Database
	client *mongo.Client
	once   sync.Once
)

// ConnectDB initializes and returns the MongoDB database handle. A
// missing or unreachable store does not kill the process: the handle
// stays nil and the store layer reports unavailable, so the API keeps
// serving its degraded responses.
func ConnectDB() *mongo.Database {
	once.Do(func() {
		mongoURI := os.Getenv("MONGODB_URI")
		if mongoURI == "" {
			log.Println("MONGODB_URI not set, using development fallback")
			mongoURI = devMongoURI
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		c, err := mongo.NewClient(options.Client().ApplyURI(mongoURI))
		if err != nil {
			log.Printf("Failed to create MongoDB client: %v", err)
			return
		}

		if err := c.Connect(ctx); err != nil {
			log.Printf("Failed to connect to MongoDB: %v", err)
			return
		}

		name := os.Getenv("MONGO_DB")
		if name == "" {
			name = "bolbharat"
		}

		log.Println("Connected to MongoDB!")

		client = c
		db = client.Database(name)
	})

	return db
}

// GetCollection returns a MongoDB collection by name, or nil when the
// store never came up.
func GetCollection(name string) *mongo.Collection {
	d := ConnectDB()
	if d == nil {
		return nil
	}
	return d.Collection(name)
}
