package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/marqedonuts/backoffice/internal/auth"
	"github.com/marqedonuts/backoffice/internal/backoffice"
	"github.com/marqedonuts/backoffice/internal/config"
	"github.com/marqedonuts/backoffice/internal/db"
	web "github.com/marqedonuts/backoffice/internal/http"
	"github.com/marqedonuts/backoffice/internal/http/handlers"
	rl "github.com/marqedonuts/backoffice/internal/http/ratelimit"
	"github.com/marqedonuts/backoffice/internal/http/restock"
	"github.com/marqedonuts/backoffice/internal/redissvc"
	"github.com/marqedonuts/backoffice/internal/repo"
)

var ctx = context.Background()

// @title Donut Shop Back Office API
// @version 1.0
// @description REST API for dashboard reporting, product catalog, inventory and sales of a donut shop.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Could not load configuration: %v", err)
	}

	auth.SetSecret(cfg.JWTSecret)

	loc, err := cfg.Timezone()
	if err != nil {
		log.Fatalf("❌ Invalid SHOP_TIMEZONE %q: %v", cfg.TimezoneName, err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	defer rdb.Close()

	redisService := redissvc.NewRedisService(rdb, ctx)
	handlers.SetRedisService(redisService)
	auth.SetRedisService(redisService)
	restock.SetRedisService(redisService)
	restock.SetConfig(cfg)

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer database.Close()

	svc := backoffice.NewService(
		repo.NewPostgresProductRepository(database),
		repo.NewPostgresInventoryRepository(database),
		repo.NewPostgresSaleRepository(database),
		repo.NewPostgresEmployeeRepository(database),
		repo.NewPostgresCustomerRepository(database),
	)
	handlers.SetService(svc)
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))
	handlers.SetTimezone(loc)
	handlers.SetOverviewCacheTTL(cfg.OverviewCacheTTL)

	go restock.StartDailySummary(24 * time.Hour)
	go rl.StartVisitorCleanupLoop()

	r := web.NewRouter(cfg.CORSOrigins)
	log.Println("✅ Server running on", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
