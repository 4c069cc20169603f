package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/caarlos0/env/v11"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel"
	stdouttrace "go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"bkstore/pkg/logger"
	"bkstore/pkg/storage"
	"bkstore/pkg/storage/memory"
	pgstore "bkstore/pkg/storage/postgres"
	redisstore "bkstore/pkg/storage/redis"
	"bkstore/pkg/store"
)

type config struct {
	Addr        string `env:"ADDR" envDefault:":8080"`
	Env         string `env:"APP_ENV" envDefault:"production"`
	Backend     string `env:"STORAGE_BACKEND" envDefault:"memory"`
	DatabaseURL string `env:"DATABASE_URL"`
	RedisAddr   string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	CompanyName string `env:"COMPANY_NAME" envDefault:"BK Distribution"`
}

var (
	cfg         config
	redisClient *redis.Client
	st          *store.Store
	tracer      trace.Tracer
)

// @title BK Storefront API
// @version 1.0
// @description Catalog, cart and order API for the BK storefront
// @host localhost:8080
// @BasePath /
func main() {
	if err := env.Parse(&cfg); err != nil {
		panic(fmt.Sprintf("parse env: %v", err))
	}
	logger.Init(cfg.Env)
	defer logger.Log.Sync()

	exp, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		logger.Log.Fatal("init tracing", zap.Error(err))
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp))
	otel.SetTracerProvider(tp)
	defer tp.Shutdown(context.Background())
	tracer = tp.Tracer("bkstore")

	redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	kv, err := newBackend(context.Background(), cfg)
	if err != nil {
		logger.Log.Fatal("init storage", zap.String("backend", cfg.Backend), zap.Error(err))
	}
	st = store.New(kv)
	if err := st.Seed(context.Background()); err != nil {
		logger.Log.Fatal("seed store", zap.Error(err))
	}

	r := mux.NewRouter()
	r.Use(traceMiddleware)
	r.HandleFunc("/login", loginHandler).Methods(http.MethodPost)
	r.HandleFunc("/logout", logoutHandler).Methods(http.MethodPost)

	api := r.NewRoute().Subrouter()
	api.Use(authMiddleware)
	api.HandleFunc("/products", listProductsHandler).Methods(http.MethodGet)
	api.HandleFunc("/products", addProductHandler).Methods(http.MethodPost)
	api.HandleFunc("/products/{id}", getProductHandler).Methods(http.MethodGet)
	api.HandleFunc("/cart", getCartHandler).Methods(http.MethodGet)
	api.HandleFunc("/cart", addToCartHandler).Methods(http.MethodPost)
	api.HandleFunc("/cart", clearCartHandler).Methods(http.MethodDelete)
	api.HandleFunc("/cart/{productId}", removeFromCartHandler).Methods(http.MethodDelete)
	api.HandleFunc("/orders", listOrdersHandler).Methods(http.MethodGet)
	api.HandleFunc("/orders", createOrderHandler).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}", getOrderHandler).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}/status", updateOrderStatusHandler).Methods(http.MethodPut)
	api.HandleFunc("/orders/{id}/invoice", convertToInvoiceHandler).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}/pdf", orderPDFHandler).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}/share", shareOrderHandler).Methods(http.MethodGet)
	api.HandleFunc("/stats", orderStatsHandler).Methods(http.MethodGet)
	api.HandleFunc("/profile", getProfileHandler).Methods(http.MethodGet)
	api.HandleFunc("/profile", updateProfileHandler).Methods(http.MethodPut)
	api.HandleFunc("/profile/password", changePasswordHandler).Methods(http.MethodPut)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	logger.Log.Info("listening", zap.String("addr", cfg.Addr), zap.String("backend", cfg.Backend))
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		logger.Log.Fatal("server closed", zap.Error(err))
	}
}

// newBackend selects the persistence backend from configuration. The redis
// backend shares the session client under its own key prefix.
func newBackend(ctx context.Context, cfg config) (storage.KV, error) {
	switch cfg.Backend {
	case "memory":
		return memory.New(), nil
	case "redis":
		return redisstore.New(redisClient, "bk:"), nil
	case "postgres":
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("db connect: %w", err)
		}
		kv := pgstore.New(db)
		if err := kv.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return kv, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

func traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), r.Method+" "+r.URL.Path)
		defer span.End()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
