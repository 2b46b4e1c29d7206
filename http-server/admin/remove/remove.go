package remove

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"pool-quote/http-server/response"
)

type DeleteFunc func(ctx context.Context, id int64) error

// Delete отвечает 409, если на запись ещё ссылаются другие таблицы.
func Delete(log *slog.Logger, op string, del DeleteFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := response.IDParam(r, "id")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := del(ctx, id); err != nil {
			response.Error(w, log, op, err, "ошибка удаления записи")
			return
		}

		log.Info("запись удалена", slog.String("op", op), slog.Int64("id", id))

		w.WriteHeader(http.StatusNoContent)
	}
}
