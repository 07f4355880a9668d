package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"flight-offers-service/internal/adapters/amadeus"
	"flight-offers-service/internal/api"
	"flight-offers-service/internal/platform/ratelimit"
)

// main is the application composition root.
// It wires the rate gate and the Amadeus adapter behind the FlightProvider
// port and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	clientID := strings.TrimSpace(os.Getenv("AMADEUS_CLIENT_ID"))
	clientSecret := strings.TrimSpace(os.Getenv("AMADEUS_CLIENT_SECRET"))
	if clientID == "" || clientSecret == "" {
		logger.Fatal("AMADEUS_CLIENT_ID and AMADEUS_CLIENT_SECRET are required")
	}

	env := getEnv("AMADEUS_ENV", "test")
	port := getEnv("PORT", "8080")
	origins := strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ",")

	// Quota profiles mirror the upstream plans: the test environment gets one
	// dispatch per 100ms, production a reservoir of 40 tokens refilled every
	// second. Both cap in-flight calls at 50.
	var gate *ratelimit.Gate
	if env == "production" {
		gate = ratelimit.NewReservoirGate(40, time.Second, 50)
	} else {
		gate = ratelimit.NewIntervalGate(100*time.Millisecond, 50)
	}

	provider, err := amadeus.NewClient(clientID, clientSecret, env, gate)
	if err != nil {
		logger.Fatal("init amadeus client", zap.Error(err))
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})

	// The write timeout covers a worst-case calendar scan: 49 gated upstream
	// queries plus upstream latency.
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           corsHandler.Handler(api.NewRouter(provider)),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("server listening", zap.String("addr", srv.Addr), zap.String("amadeus_env", env))
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("listen and serve", zap.Error(err))
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
