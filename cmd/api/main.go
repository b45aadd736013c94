package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/Moustafa-Elbaloty/souq-backend/internal/dbx"
	"github.com/Moustafa-Elbaloty/souq-backend/internal/logging"
	"github.com/Moustafa-Elbaloty/souq-backend/internal/migrations"
	"github.com/Moustafa-Elbaloty/souq-backend/internal/modules/auth"
	"github.com/Moustafa-Elbaloty/souq-backend/internal/modules/cart"
	"github.com/Moustafa-Elbaloty/souq-backend/internal/modules/product"
	"github.com/Moustafa-Elbaloty/souq-backend/internal/modules/user"
	"github.com/Moustafa-Elbaloty/souq-backend/internal/modules/vendor"
	"github.com/Moustafa-Elbaloty/souq-backend/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	ctx := context.Background()
	logger := logging.NewDefault()

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal(err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		log.Fatal(err)
	}

	jwtKey := []byte(os.Getenv("JWT_SECRET"))
	if len(jwtKey) == 0 {
		log.Fatal("JWT_SECRET is required")
	}

	// ── Artifact store ──────────────────────────────────────
	var remover storage.Remover = storage.NopRemover{}
	if bucket := os.Getenv("STORAGE_BUCKET"); bucket != "" {
		remover, err = storage.NewS3Remover(ctx, storage.Options{
			Bucket:   bucket,
			Region:   os.Getenv("STORAGE_REGION"),
			Endpoint: os.Getenv("STORAGE_ENDPOINT"),
		})
		if err != nil {
			log.Fatal(err)
		}
	} else {
		logger.Warn(ctx, "STORAGE_BUCKET not set, artifact cleanup disabled")
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Handle("/metrics", promhttp.Handler())

	// ── Phase 1: Identity ───────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	user.NewHandler(userService).RegisterRoutes(router)

	authService := auth.NewService(userRepo, jwtKey)
	auth.NewHandler(authService).RegisterRoutes(router)

	// ── Phase 2: Vendor Lifecycle ───────────────────────────
	txRunner := dbx.NewRunner(db)
	productRepo := product.NewPostgresRepository(db)
	vendorRepo := vendor.NewPostgresRepository(db)
	vendorService := vendor.NewService(vendorRepo, productRepo, userRepo, txRunner, remover, logger)
	vendor.NewHandler(vendorService, jwtKey).RegisterRoutes(router)

	// ── Phase 3: Catalog ────────────────────────────────────
	productService := product.NewService(productRepo, vendorService, remover, logger)
	product.NewHandler(productService, jwtKey).RegisterRoutes(router)

	// ── Phase 4: Cart ───────────────────────────────────────
	cartRepo := cart.NewPostgresRepository(db)
	cartService := cart.NewService(cartRepo, productRepo)
	cart.NewHandler(cartService, jwtKey).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Souq API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
