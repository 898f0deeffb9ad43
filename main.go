package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"

	"yippee/config"
	"yippee/internal/cli"
	"yippee/internal/service"
	"yippee/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[yippee] no .env file found, using process environment")
	}

	codec := config.MustLoadCodec()

	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}
	if err := repo.SeedRestaurants(); err != nil {
		log.Fatal("Failed to seed restaurants:", err)
	}

	var catalogCache service.CatalogCache
	if client := config.InitRedis(); client != nil {
		defer client.Close()
		catalogCache = storage.NewRedisCache(client, 10*time.Minute)
	}

	var publisher service.OrderPublisher
	if writer := config.NewKafkaWriter("orders"); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	accounts := service.NewAccountService(repo, codec)
	payments := service.NewPaymentService(repo, codec)
	catalog := service.NewCatalogService(repo, catalogCache)
	orders := service.NewOrderService(repo, publisher, service.ReceiptQRGenerator{})

	app := cli.NewApp(accounts, payments, catalog, orders)
	if err := app.Run(); err != nil {
		log.Fatal("[yippee] session ended with error:", err)
	}
}
