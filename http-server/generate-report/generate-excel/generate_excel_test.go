package generate_excel

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

const quoteID = "5d1c7a8e-8a8b-4b43-a3c2-1f7f6f9d2c10"

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateQuoteExcel(ctx context.Context, quoteID string) ([]byte, error) {
	args := m.Called(ctx, quoteID)
	if args.Get(0) != nil {
		return args.Get(0).([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(m *MockGenerator, id string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Get("/api/quotes/{id}/excel", QuoteExcel(slog.Default(), m))

	req := httptest.NewRequest(http.MethodGet, "/api/quotes/"+id+"/excel", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestQuoteExcel(t *testing.T) {
	m := new(MockGenerator)
	m.On("GenerateQuoteExcel", mock.Anything, quoteID).Return([]byte("PK\x03\x04"), nil)

	rr := serve(m, quoteID)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "Quote_5d1c7a8e_")
	assert.Equal(t, "PK\x03\x04", rr.Body.String())
}

func TestQuoteExcel_NotFound(t *testing.T) {
	m := new(MockGenerator)
	m.On("GenerateQuoteExcel", mock.Anything, quoteID).Return(nil, storage.ErrNotFound)

	rr := serve(m, quoteID)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestQuoteExcel_InvalidID(t *testing.T) {
	m := new(MockGenerator)

	rr := serve(m, "nope")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	m.AssertNotCalled(t, "GenerateQuoteExcel", mock.Anything, mock.Anything)
}
