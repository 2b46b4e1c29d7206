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
	"pool-quote/internal/storage"
)

type ProjectProvider interface {
	GetPoolProject(ctx context.Context, id string) (*storage.PoolProject, error)
	ListPoolProjects(ctx context.Context, search string) ([]storage.PoolProject, error)
	ListProjectQuotes(ctx context.Context, projectID string) ([]storage.Quote, error)
}

func GetProject(log *slog.Logger, p ProjectProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.projects.GetProject"

		id := chi.URLParam(r, "id")
		if _, err := uuid.Parse(id); err != nil {
			http.Error(w, "invalid project id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		project, err := p.GetPoolProject(ctx, id)
		if err != nil {
			response.Error(w, log, op, err, "ошибка получения проекта")
			return
		}

		render.JSON(w, r, project)
	}
}

// ListProjects ищет по имени владельца, email и адресу (?search=).
func ListProjects(log *slog.Logger, p ProjectProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.projects.ListProjects"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		projects, err := p.ListPoolProjects(ctx, r.URL.Query().Get("search"))
		if err != nil {
			response.Error(w, log, op, err, "ошибка получения списка проектов")
			return
		}

		render.JSON(w, r, projects)
	}
}

func ListProjectQuotes(log *slog.Logger, p ProjectProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.projects.ListProjectQuotes"

		id := chi.URLParam(r, "id")
		if _, err := uuid.Parse(id); err != nil {
			http.Error(w, "invalid project id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		quotes, err := p.ListProjectQuotes(ctx, id)
		if err != nil {
			response.Error(w, log, op, err, "ошибка получения предложений проекта")
			return
		}

		render.JSON(w, r, quotes)
	}
}
