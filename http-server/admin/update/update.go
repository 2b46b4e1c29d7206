package update

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"pool-quote/http-server/response"
	"pool-quote/internal/storage"
)

type UpdateFunc[T any] func(ctx context.Context, id int64, item T) error

func Update[T any](log *slog.Logger, op string, update UpdateFunc[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := response.IDParam(r, "id")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var item T
		if err := response.Decode(r, &item); err != nil {
			response.BadRequest(w, r, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := update(ctx, id, item); err != nil {
			response.Error(w, log, op, err, "ошибка обновления записи")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

type PoolMarginProvider interface {
	UpsertPoolMargin(ctx context.Context, m storage.PoolMargin) error
}

// UpsertPoolMargin: PUT /pools/{id}/margin, id бассейна берётся из URL.
func UpsertPoolMargin(log *slog.Logger, p PoolMarginProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.UpsertPoolMargin"

		poolID, err := response.IDParam(r, "id")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var margin storage.PoolMargin
		if err := render.DecodeJSON(r.Body, &margin); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		margin.PoolSpecificationID = poolID

		if err := response.Validate(margin); err != nil {
			response.BadRequest(w, r, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := p.UpsertPoolMargin(ctx, margin); err != nil {
			response.Error(w, log, op, err, "ошибка сохранения маржи")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
