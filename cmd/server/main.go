package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"skyward/farecast/internal/common"
	"skyward/farecast/internal/constants"
	"skyward/farecast/internal/db"
	"skyward/farecast/internal/engine"
	"skyward/farecast/internal/logging"
	gormModels "skyward/farecast/internal/models/gorm"
	"skyward/farecast/internal/routes"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Initialize structured logging
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "development"
	}

	if err := logging.Init(appEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Farecast starting up",
		"environment", appEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	// Connect to DB with sqlx
	if err := db.InitPostgres(); err != nil {
		logging.Error("Failed to connect to Postgres (sqlx)", "error", err.Error())
		log.Fatalf("❌ Failed to connect to Postgres (sqlx): %v", err)
	}
	logging.Info("Connected to Postgres (sqlx)")

	// Connect to DB with GORM
	if _, err := db.InitPostgresORM(db.PostgresDSN()); err != nil {
		logging.Error("Failed to connect to Postgres (GORM)", "error", err.Error())
		log.Fatalf("❌ Failed to connect to Postgres (GORM): %v", err)
	}
	logging.Info("Connected to Postgres (GORM)")

	if err := db.PgDB.AutoMigrate(&gormModels.Airport{}); err != nil {
		log.Fatalf("❌ Failed to migrate airports table: %v", err)
	}
	if _, err := db.DB.Exec(constants.CreateBookingsTable); err != nil {
		log.Fatalf("❌ Failed to migrate bookings table: %v", err)
	}

	eng := buildEngine()
	upSince := time.Now()

	// Initialize router with Chi
	// Note: metricsReg is created in RegisterRoutes and applied as global middleware
	router := routes.RegisterRoutes(eng, upSince)

	// Setup metrics endpoint outside of Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router) // Mount Chi router at root
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logging.Info("Server starting",
		"port", port,
		"environment", appEnv,
	)

	log.Printf("Starting server on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, mux))
}

// buildEngine assembles the search engine from the airports table when it
// has data, falling back to the built-in world set. The directory is fixed
// for the life of the process; imports land on the next restart.
func buildEngine() *engine.Engine {
	loader := common.NewAirportLoaderService(db.PgDB)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dir, ok, err := loader.Directory(ctx)
	if err != nil {
		logging.Warn("Failed to load airports from database, using built-in set", "error", err.Error())
		dir = engine.DefaultDirectory()
	} else if !ok {
		logging.Info("Airports table empty, using built-in set")
		dir = engine.DefaultDirectory()
	} else {
		logging.Info("Loaded airport directory from database", "airports", dir.Len())
	}

	opts := []engine.Option{}
	from := os.Getenv("DEFAULT_ORIGIN")
	to := os.Getenv("DEFAULT_DESTINATION")
	if from != "" && to != "" {
		opts = append(opts, engine.WithDefaultRoute(from, to))
	}

	return engine.New(dir, opts...)
}
