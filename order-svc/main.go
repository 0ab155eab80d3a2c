package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodhub/config"
	httpapi "foodhub/order-svc/internal/api/http"
	"foodhub/order-svc/internal/billing"
	"foodhub/order-svc/internal/service"
	"foodhub/order-svc/internal/storage"
)

func main() {
	log.SetPrefix("[order-svc] ")

	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	billingConfig := billing.DefaultConfig()
	billingConfig.Stages.Commission, billingConfig.Stages.Tax = config.BillingStages()
	log.Printf("billing stages: commission=%t tax=%t", billingConfig.Stages.Commission, billingConfig.Stages.Tax)

	var idempotency service.IdempotencyStore
	if config.GetEnv("REDIS_HOST", "") != "" {
		rdb := config.MustInitRedis()
		defer rdb.Close()
		idempotency = storage.NewIdempotencyCache(rdb, 24*time.Hour)
	} else {
		log.Println("REDIS_HOST not set, Idempotency-Key headers are ignored")
	}

	writer := config.NewKafkaWriter(config.OrdersTopic)
	defer writer.Close()

	orders := service.NewOrderService(
		repo,
		repo,
		service.NewPriceOracle(repo),
		billing.NewCalculator(billingConfig),
		storage.NewKafkaPublisher(writer),
		idempotency,
		service.DefaultQRGenerator{BaseURL: config.GetEnv("PUBLIC_BASE_URL", "http://localhost:8080")},
	)
	reports := service.NewReportService(repo, repo)

	handler := httpapi.NewRouter(httpapi.NewHandler(orders, reports))
	srv := httpapi.NewServer(config.GetEnv("HTTP_ADDR", ":8081"), handler)

	go func() {
		log.Printf("Order Service starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	log.Println("Order Service stopped")
}
