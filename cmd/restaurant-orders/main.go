package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	cataloghandlers "restaurant-orders/internal/catalog/handlers"
	catalogrepo "restaurant-orders/internal/catalog/repository"
	catalogservice "restaurant-orders/internal/catalog/service"
	"restaurant-orders/internal/common/httpx"
	"restaurant-orders/internal/common/logger"
	"restaurant-orders/internal/config"
	dbconn "restaurant-orders/internal/connections/database"
	"restaurant-orders/internal/connections/rabbitmq"
	"restaurant-orders/internal/database"
	"restaurant-orders/internal/events"
	orderhandlers "restaurant-orders/internal/order/handlers"
	orderrepo "restaurant-orders/internal/order/repository"
	orderservice "restaurant-orders/internal/order/service"
)

func main() {
	var (
		cfgPath       = flag.String("config", "config.yaml", "path to config file")
		port          = flag.Int("port", 0, "http port (overrides config)")
		migrationsDir = flag.String("migrations", "migrations", "path to SQL migrations")
	)
	flag.Parse()

	lg := logger.New("restaurant-orders")

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.HTTP.Port = *port
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	db, err := dbconn.Connect(ctx, cfg.DatabaseDSN())
	if err != nil {
		lg.Error("db_connect_failed", "", err, nil)
		os.Exit(1)
	}
	defer db.Close()
	lg.Info("db_connected", "", map[string]any{
		"host": cfg.Database.Host, "database": cfg.Database.Database,
	})

	if err := database.RunMigrations(ctx, db, *migrationsDir); err != nil {
		lg.Error("migrations_failed", "", err, nil)
		os.Exit(1)
	}
	if err := database.Seed(ctx, db); err != nil {
		lg.Error("seed_failed", "", err, nil)
		os.Exit(1)
	}

	rmq, err := rabbitmq.Dial(cfg.RabbitMQURL())
	if err != nil {
		lg.Error("rabbitmq_connect_failed", "", err, nil)
		os.Exit(1)
	}
	defer rmq.Close()
	if err := rmq.DeclareTopology(); err != nil {
		lg.Error("rabbitmq_declare_failed", "", err, nil)
		os.Exit(1)
	}
	lg.Info("rabbitmq_connected", "", map[string]any{"host": cfg.RabbitMQ.Host})

	catalogRepo := catalogrepo.New(db)
	catalogSvc := catalogservice.New(catalogRepo)
	catalogHandler := cataloghandlers.New(catalogSvc)

	publisher := events.NewOrderPublisher(rmq)
	orderRepo := orderrepo.New(db)
	orderSvc := orderservice.New(catalogRepo, orderRepo, publisher, lg)
	orderHandler := orderhandlers.New(orderSvc, lg)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/menu", catalogHandler.ListMenu)
	mux.HandleFunc("POST /api/menu", catalogHandler.CreateMenuItem)
	mux.HandleFunc("PUT /api/menu/{id}", catalogHandler.UpdateMenuItem)
	mux.HandleFunc("DELETE /api/menu/{id}", catalogHandler.DeleteMenuItem)
	mux.HandleFunc("GET /api/settings", catalogHandler.GetSettings)
	mux.HandleFunc("PUT /api/settings", catalogHandler.UpdateSettings)
	mux.HandleFunc("POST /api/orders", orderHandler.PlaceOrder)
	mux.HandleFunc("GET /api/orders", orderHandler.ListOrders)
	mux.HandleFunc("GET /api/orders/{id}", orderHandler.GetOrder)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	})

	srv := httpx.New(":"+strconv.Itoa(cfg.HTTP.Port), httpx.WithLogging(lg, mux))
	lg.Info("service_started", "", map[string]any{"port": cfg.HTTP.Port})

	if err := srv.Run(ctx); err != nil {
		lg.Error("server_failed", "", err, nil)
		os.Exit(1)
	}
	lg.Info("service_stopped", "", nil)
}
