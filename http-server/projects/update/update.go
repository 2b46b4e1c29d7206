package update

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"pool-quote/http-server/response"
	"pool-quote/internal/storage"
)

type ProjectUpdater interface {
	UpdatePoolProject(ctx context.Context, id string, p storage.PoolProject) error
}

// UpdateProject меняет проект целиком. Уже созданные предложения не пересчитываются.
func UpdateProject(log *slog.Logger, updater ProjectUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.projects.UpdateProject"

		id := chi.URLParam(r, "id")
		if _, err := uuid.Parse(id); err != nil {
			http.Error(w, "invalid project id", http.StatusBadRequest)
			return
		}

		var project storage.PoolProject
		if err := response.Decode(r, &project); err != nil {
			response.BadRequest(w, r, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.UpdatePoolProject(ctx, id, project); err != nil {
			response.Error(w, log, op, err, "ошибка обновления проекта")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
