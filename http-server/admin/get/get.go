package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"pool-quote/http-server/response"
	"pool-quote/internal/storage"
)

// Справочники однотипные, поэтому хендлеры принимают метод хранилища, а не интерфейс.

type ListFunc[T any] func(ctx context.Context) ([]T, error)

type ListByParentFunc[T any] func(ctx context.Context, parentID int64) ([]T, error)

type GetFunc[T any] func(ctx context.Context, id int64) (*T, error)

func List[T any](log *slog.Logger, op string, list ListFunc[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		items, err := list(ctx)
		if err != nil {
			response.Error(w, log, op, err, "ошибка получения списка")
			return
		}

		render.JSON(w, r, items)
	}
}

// ListByParent отдаёт дочерние строки, parent: имя параметра в URL.
func ListByParent[T any](log *slog.Logger, op, parent string, list ListByParentFunc[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parentID, err := response.IDParam(r, parent)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		items, err := list(ctx, parentID)
		if err != nil {
			response.Error(w, log, op, err, "ошибка получения списка")
			return
		}

		render.JSON(w, r, items)
	}
}

func ByID[T any](log *slog.Logger, op string, get GetFunc[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := response.IDParam(r, "id")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		item, err := get(ctx, id)
		if err != nil {
			response.Error(w, log, op, err, "ошибка получения записи")
			return
		}

		render.JSON(w, r, item)
	}
}

type FiltrationComponentsProvider interface {
	ListFiltrationComponents(ctx context.Context, typeID string) ([]storage.FiltrationComponent, error)
}

// FiltrationComponents поддерживает фильтр ?type=pump|filter|...
func FiltrationComponents(log *slog.Logger, p FiltrationComponentsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.FiltrationComponents"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		items, err := p.ListFiltrationComponents(ctx, r.URL.Query().Get("type"))
		if err != nil {
			response.Error(w, log, op, err, "ошибка получения компонентов фильтрации")
			return
		}

		render.JSON(w, r, items)
	}
}
