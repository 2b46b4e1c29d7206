package save

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"pool-quote/http-server/response"
)

type CreateFunc[T any] func(ctx context.Context, item T) (int64, error)

// Create валидирует тело и отвечает 201 с id новой записи.
func Create[T any](log *slog.Logger, op string, create CreateFunc[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item T
		if err := response.Decode(r, &item); err != nil {
			response.BadRequest(w, r, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := create(ctx, item)
		if err != nil {
			response.Error(w, log, op, err, "ошибка создания записи")
			return
		}

		log.Info("запись создана", slog.String("op", op), slog.Int64("id", id))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, response.Created{ID: id})
	}
}
