package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "modernc.org/sqlite"

	"github.com/fruitvolt/fruitvolt/internal/api"
	"github.com/fruitvolt/fruitvolt/internal/catalog"
	"github.com/fruitvolt/fruitvolt/internal/engine"
	"github.com/fruitvolt/fruitvolt/internal/store"
	"github.com/fruitvolt/fruitvolt/internal/weather"
)

func main() {
	dbPath := flag.String("db", "data/fruitvolt.db", "path to SQLite database")
	port := flag.String("port", "8080", "HTTP server port")
	mock := flag.Bool("mock", false, "serve mock weather data even when API keys are configured")
	flag.Parse()

	db, err := sql.Open("sqlite", *dbPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")

	st := store.New(db)
	if err := st.Migrate(); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	log.Println("database migrated")

	cat := catalog.Default()
	log.Printf("catalog loaded: %d fruits, %d device categories", cat.NumFruits(), len(cat.DeviceCategories()))

	source := weather.NewSource(weather.Config{
		OpenWeatherKey: os.Getenv("OPENWEATHER_API_KEY"),
		WeatherAPIKey:  os.Getenv("WEATHERAPI_KEY"),
		UseMock:        *mock,
	}, st)
	if !source.HasLiveProvider() {
		log.Println("no weather API keys configured, serving mock data")
	}

	server := api.NewServer(engine.New(cat), source, st, *port)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Printf("starting server on :%s", *port)
	if err := server.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
