package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	MongoClient *mongo.Client
	DB          *mongo.Database

	Users    *mongo.Collection
	Products *mongo.Collection
	Carts    *mongo.Collection
)

func InitDB() {
	uri := os.Getenv("MONGO_URL")
	if uri == "" {
		uri = "mongodb://localhost:27017"
		log.Println("⚠️  MONGO_URL not set, using local MongoDB:", uri)
	}
	dbName := getEnv("MONGO_DB", "mercato")

	ctx, cancel := WithTimeout()
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("❌ Unable to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("❌ MongoDB ping failed: %v", err)
	}

	MongoClient = client
	DB = client.Database(dbName)
	Users = DB.Collection("users")
	Products = DB.Collection("products")
	Carts = DB.Collection("carts")

	if err := ensureIndexes(ctx); err != nil {
		log.Fatalf("❌ Failed to create indexes: %v", err)
	}

	log.Println("✅ MongoDB connected:", dbName)
}

// ensureIndexes creates the text index backing free-text product search plus
// the compound indexes for the common filter combinations, and the unique
// email index on users. CreateMany is idempotent for identical definitions.
func ensureIndexes(ctx context.Context) error {
	productIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: "text"}, {Key: "description", Value: "text"}, {Key: "tags", Value: "text"}}},
		{Keys: bson.D{{Key: "categoryId", Value: 1}, {Key: "price", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "delivery.freeShipping", Value: 1}, {Key: "price", Value: 1}}},
		{Keys: bson.D{{Key: "shopLocation", Value: 1}, {Key: "categoryId", Value: 1}}},
		{Keys: bson.D{{Key: "shopId", Value: 1}, {Key: "categoryId", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "price", Value: 1}}},
		{Keys: bson.D{{Key: "shopId", Value: 1}, {Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	if _, err := Products.Indexes().CreateMany(ctx, productIndexes); err != nil {
		return err
	}

	userIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := Users.Indexes().CreateMany(ctx, userIndexes); err != nil {
		return err
	}

	cartIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	_, err := Carts.Indexes().CreateMany(ctx, cartIndexes)
	return err
}

func CloseDB() {
	if MongoClient == nil {
		return
	}
	ctx, cancel := WithTimeout()
	defer cancel()
	if err := MongoClient.Disconnect(ctx); err != nil {
		log.Printf("⚠️  MongoDB disconnect failed: %v", err)
		return
	}
	log.Println("✅ MongoDB connection closed")
}

// WithTimeout returns a background context with the standard 10s deadline.
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// WithRequestTimeout bounds a request-scoped context so cancellation reaches
// every store operation issued for that request.
func WithRequestTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, 10*time.Second)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
