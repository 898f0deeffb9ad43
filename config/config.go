package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"yippee/internal/secrets"
)

// MustLoadCodec builds the process-wide secret codec from SECRET_KEY
// (base64-encoded 32-byte key). A missing or invalid key is fatal.
func MustLoadCodec() *secrets.Codec {
	raw := os.Getenv("SECRET_KEY")
	if raw == "" {
		log.Fatal("Missing SECRET_KEY environment variable")
	}
	codec, err := secrets.NewCodecFromBase64(raw)
	if err != nil {
		log.Fatal("Invalid SECRET_KEY:", err)
	}
	return codec
}

func MustInitPostgres() *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

// InitRedis returns nil when REDIS_HOST is unset; the catalog cache is
// optional and services run without it.
func InitRedis() *redis.Client {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: host + ":" + os.Getenv("REDIS_PORT"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("[config] redis unavailable, running without catalog cache: %v", err)
		return nil
	}

	return client
}

// NewKafkaWriter returns nil when KAFKA_BROKER is unset; order events are
// optional and publishing never blocks an order.
func NewKafkaWriter(topic string) *kafka.Writer {
	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		return nil
	}
	return &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}
