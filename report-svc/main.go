package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"foodhub/config"
	httpapi "foodhub/report-svc/internal/api/http"
	"foodhub/report-svc/internal/service"
	"foodhub/report-svc/internal/storage"
)

func main() {
	log.SetPrefix("[report-svc] ")

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader(config.OrdersTopic, "report-svc")
	defer reader.Close()

	store := storage.NewStore(rdb, 48*time.Hour)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := service.NewConsumer(reader, store)
	go consumer.Start(ctx)

	handler := httpapi.NewRouter(httpapi.NewHandler(service.NewAnalyticsService(store)))
	srv := httpapi.NewServer(config.GetEnv("HTTP_ADDR", ":8082"), handler)

	go func() {
		log.Printf("Report Service starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed:", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	log.Println("Report Service stopped")
}
