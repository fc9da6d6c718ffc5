package server

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/trivialabs/trivia-api/internal/config"
	"github.com/trivialabs/trivia-api/internal/trivia"
)

// NewHTTPServer wires the trivia routes plus health and metrics endpoints.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, pool *pgxpool.Pool, redisClient *redis.Client, handlers *trivia.HTTPHandlers) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := pingDependencies(r.Context(), pool, redisClient); err != nil {
			logger.Error().Err(err).Msg("dependency ping failed")
			http.Error(w, "upstream error", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ready"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	// The literal /questions/search pattern wins over /questions/{id}.
	mux.HandleFunc("/api/v1/categories", handlers.Categories)
	mux.HandleFunc("/api/v1/categories/{id}/questions", handlers.CategoryQuestions)
	mux.HandleFunc("/api/v1/questions", handlers.Questions)
	mux.HandleFunc("/api/v1/questions/search", handlers.SearchQuestions)
	mux.HandleFunc("/api/v1/questions/{id}", handlers.QuestionByID)
	mux.HandleFunc("/api/v1/quizzes", handlers.Quizzes)

	handler := requestLogging(logger, withCORS(cfg.CORS, withMetrics(withTimeout(cfg.Quiz.RequestTimeout, mux))))

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler,
	}
}

func pingDependencies(ctx context.Context, pool *pgxpool.Pool, redisClient *redis.Client) error {
	if err := pool.Ping(ctx); err != nil {
		return err
	}
	return redisClient.Ping(ctx).Err()
}
