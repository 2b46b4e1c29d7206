package save

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"pool-quote/http-server/response"
	"pool-quote/internal/storage"
)

type QuoteCreator interface {
	CreateQuote(ctx context.Context, projectID string) (*storage.Quote, error)
}

// CreateQuote фиксирует снимок цен по проекту в новое предложение-черновик.
func CreateQuote(log *slog.Logger, creator QuoteCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.quotes.CreateQuote"

		projectID := chi.URLParam(r, "id")
		if _, err := uuid.Parse(projectID); err != nil {
			http.Error(w, "invalid project id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		quote, err := creator.CreateQuote(ctx, projectID)
		if err != nil {
			response.Error(w, log, op, err, "ошибка создания предложения")
			return
		}

		log.Info("предложение создано", slog.String("op", op), slog.String("id", quote.ID), slog.String("project_id", projectID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, quote)
	}
}
