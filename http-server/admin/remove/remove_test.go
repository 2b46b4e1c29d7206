package remove

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pool-quote/internal/storage"
)

type MockDeleter struct {
	mock.Mock
}

func (m *MockDeleter) DeleteFiltrationComponent(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func serve(target string, h http.HandlerFunc) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Delete("/filtration-components/{id}", h)

	req := httptest.NewRequest(http.MethodDelete, target, nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		status int
	}{
		{name: "success", target: "/filtration-components/1", status: http.StatusNoContent},
		{name: "not found", target: "/filtration-components/2", err: storage.ErrNotFound, status: http.StatusNotFound},
		{name: "still referenced", target: "/filtration-components/3", err: storage.ErrForeignKey, status: http.StatusConflict},
		{name: "storage error", target: "/filtration-components/4", err: assert.AnError, status: http.StatusInternalServerError},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(MockDeleter)
			m.On("DeleteFiltrationComponent", mock.Anything, int64(i+1)).Return(tt.err)

			rr := serve(tt.target, Delete(slog.Default(), "test.Delete", m.DeleteFiltrationComponent))

			assert.Equal(t, tt.status, rr.Code)
			m.AssertExpectations(t)
		})
	}
}

func TestDelete_InvalidID(t *testing.T) {
	m := new(MockDeleter)

	rr := serve("/filtration-components/0", Delete(slog.Default(), "test.Delete", m.DeleteFiltrationComponent))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	m.AssertNotCalled(t, "DeleteFiltrationComponent", mock.Anything, mock.Anything)
}
