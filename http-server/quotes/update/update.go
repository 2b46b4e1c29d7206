package update

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"pool-quote/http-server/response"
)

type QuoteStatusUpdater interface {
	UpdateQuoteStatus(ctx context.Context, id string, status string) error
}

type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft sent accepted"`
}

func UpdateQuoteStatus(log *slog.Logger, updater QuoteStatusUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.quotes.UpdateQuoteStatus"

		id := chi.URLParam(r, "id")
		if _, err := uuid.Parse(id); err != nil {
			http.Error(w, "invalid quote id", http.StatusBadRequest)
			return
		}

		var req StatusRequest
		if err := response.Decode(r, &req); err != nil {
			response.BadRequest(w, r, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.UpdateQuoteStatus(ctx, id, req.Status); err != nil {
			response.Error(w, log, op, err, "ошибка смены статуса предложения")
			return
		}

		log.Info("статус предложения изменён", slog.String("op", op), slog.String("id", id), slog.String("status", req.Status))

		w.WriteHeader(http.StatusNoContent)
	}
}
