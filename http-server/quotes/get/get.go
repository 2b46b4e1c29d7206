package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"pool-quote/http-server/response"
	"pool-quote/internal/service/quote"
	"pool-quote/internal/storage"
)

type QuoteProvider interface {
	GetQuote(ctx context.Context, id string) (*storage.Quote, error)
}

type QuotePricer interface {
	PriceQuote(ctx context.Context, quoteID string) (*quote.PricedQuote, error)
}

func GetQuote(log *slog.Logger, p QuoteProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.quotes.GetQuote"

		id := chi.URLParam(r, "id")
		if _, err := uuid.Parse(id); err != nil {
			http.Error(w, "invalid quote id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		q, err := p.GetQuote(ctx, id)
		if err != nil {
			response.Error(w, log, op, err, "ошибка получения предложения")
			return
		}

		render.JSON(w, r, q)
	}
}

func PriceQuote(log *slog.Logger, pricer QuotePricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.quotes.PriceQuote"

		id := chi.URLParam(r, "id")
		if _, err := uuid.Parse(id); err != nil {
			http.Error(w, "invalid quote id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		priced, err := pricer.PriceQuote(ctx, id)
		if err != nil {
			response.Error(w, log, op, err, "ошибка расчёта предложения")
			return
		}

		render.JSON(w, r, priced)
	}
}
