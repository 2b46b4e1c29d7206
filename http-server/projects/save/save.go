package save

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"pool-quote/http-server/response"
	"pool-quote/internal/storage"
)

type ProjectCreator interface {
	CreatePoolProject(ctx context.Context, p storage.PoolProject) (string, error)
}

func CreateProject(log *slog.Logger, creator ProjectCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.projects.CreateProject"

		var project storage.PoolProject
		if err := response.Decode(r, &project); err != nil {
			response.BadRequest(w, r, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := creator.CreatePoolProject(ctx, project)
		if err != nil {
			response.Error(w, log, op, err, "ошибка создания проекта")
			return
		}

		log.Info("проект создан", slog.String("op", op), slog.String("id", id))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, response.Created{ID: id})
	}
}
