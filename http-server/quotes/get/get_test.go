package get

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pool-quote/internal/service/pricing"
	"pool-quote/internal/service/quote"
	"pool-quote/internal/storage"
)

const quoteID = "5d1c7a8e-8a8b-4b43-a3c2-1f7f6f9d2c10"

type MockQuotes struct {
	mock.Mock
}

func (m *MockQuotes) GetQuote(ctx context.Context, id string) (*storage.Quote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*storage.Quote), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuotes) PriceQuote(ctx context.Context, id string) (*quote.PricedQuote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*quote.PricedQuote), args.Error(1)
	}
	return nil, args.Error(1)
}

func newRouter(m *MockQuotes) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/quotes/{id}", GetQuote(slog.Default(), m))
	r.Get("/api/quotes/{id}/price", PriceQuote(slog.Default(), m))
	return r
}

func do(h http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestGetQuote(t *testing.T) {
	buy := 42000.0
	m := new(MockQuotes)
	m.On("GetQuote", mock.Anything, quoteID).Return(&storage.Quote{
		ID:       quoteID,
		Status:   storage.QuoteStatusSent,
		Snapshot: storage.ProposalSnapshot{PoolName: "Bellagio", PoolBuyPrice: &buy},
	}, nil)

	rr := do(newRouter(m), "/api/quotes/"+quoteID)

	require.Equal(t, http.StatusOK, rr.Code)

	var q storage.Quote
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &q))
	assert.Equal(t, "Bellagio", q.Snapshot.PoolName)
	assert.Equal(t, 42000.0, *q.Snapshot.PoolBuyPrice)
}

func TestGetQuote_NotFound(t *testing.T) {
	m := new(MockQuotes)
	m.On("GetQuote", mock.Anything, quoteID).Return(nil, storage.ErrNotFound)

	rr := do(newRouter(m), "/api/quotes/"+quoteID)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestPriceQuote(t *testing.T) {
	b := pricing.Breakdown{ContractSubtotal: 10700, ContractGrandTotal: 11000, GrandTotal: 11000}
	m := new(MockQuotes)
	m.On("PriceQuote", mock.Anything, quoteID).Return(&quote.PricedQuote{
		Quote:     &storage.Quote{ID: quoteID},
		Breakdown: b,
		Summary:   pricing.ContractSummaryLineItems(b),
	}, nil)

	rr := do(newRouter(m), "/api/quotes/"+quoteID+"/price")

	require.Equal(t, http.StatusOK, rr.Code)

	var resp quote.PricedQuote
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 10700.0, resp.Breakdown.ContractSubtotal)
	assert.Equal(t, 11000.0, resp.Summary.ContractTotal)
}

func TestPriceQuote_ServiceError(t *testing.T) {
	m := new(MockQuotes)
	m.On("PriceQuote", mock.Anything, quoteID).Return(nil, assert.AnError)

	rr := do(newRouter(m), "/api/quotes/"+quoteID+"/price")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Internal error")
}
