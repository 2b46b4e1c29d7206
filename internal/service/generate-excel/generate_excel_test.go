package generate_excel

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"pool-quote/internal/service/pricing"
	"pool-quote/internal/service/quote"
	"pool-quote/internal/storage"
)

type MockPricer struct {
	mock.Mock
}

func (m *MockPricer) PriceQuote(ctx context.Context, quoteID string) (*quote.PricedQuote, error) {
	args := m.Called(ctx, quoteID)
	if v := args.Get(0); v != nil {
		return v.(*quote.PricedQuote), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) GetPoolProject(ctx context.Context, id string) (*storage.PoolProject, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*storage.PoolProject), args.Error(1)
	}
	return nil, args.Error(1)
}

func pricedQuote() *quote.PricedQuote {
	buy, margin := 10000.0, 0.0
	snap := storage.ProposalSnapshot{PoolName: "Bellagio", PoolBuyPrice: &buy, MarginPercent: &margin}
	b := pricing.Calculate(snap, pricing.DefaultOptions())

	return &quote.PricedQuote{
		Quote:     &storage.Quote{ID: "q-1", ProjectID: "p-1", Status: storage.QuoteStatusDraft, Snapshot: snap},
		Breakdown: b,
		Summary:   pricing.ContractSummaryLineItems(b),
	}
}

func TestGenerateQuoteExcel(t *testing.T) {
	pricer := new(MockPricer)
	st := new(MockStorage)

	pricer.On("PriceQuote", mock.Anything, "q-1").Return(pricedQuote(), nil)
	st.On("GetPoolProject", mock.Anything, "p-1").Return(&storage.PoolProject{ID: "p-1", OwnerName: "Jane Citizen"}, nil)

	svc := NewGenerateService(pricer, st)

	data, err := svc.GenerateQuoteExcel(context.Background(), "q-1")
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{summarySheet, breakdownSheet}, f.GetSheetList())

	customer, err := f.GetCellValue(summarySheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Jane Citizen", customer)

	// первая строка договора идёт сразу после шапки раздела
	code, err := f.GetCellValue(summarySheet, "A10")
	require.NoError(t, err)
	assert.Equal(t, "POOL_SHELL", code)

	category, err := f.GetCellValue(breakdownSheet, "A4")
	require.NoError(t, err)
	assert.Equal(t, "Pool shell", category)
}

func TestGenerateQuoteExcel_QuoteNotFound(t *testing.T) {
	pricer := new(MockPricer)
	st := new(MockStorage)

	pricer.On("PriceQuote", mock.Anything, "missing").Return(nil, storage.ErrNotFound)

	svc := NewGenerateService(pricer, st)

	_, err := svc.GenerateQuoteExcel(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	st.AssertNotCalled(t, "GetPoolProject", mock.Anything, mock.Anything)
}
