package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pool-quote/http-server/response"
	"pool-quote/internal/storage"
)

type MockCreator struct {
	mock.Mock
}

func (m *MockCreator) CreateDigType(ctx context.Context, d storage.DigType) (int64, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCreator) CreatePoolCost(ctx context.Context, c storage.PoolCost) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func TestCreate_Success(t *testing.T) {
	m := new(MockCreator)
	m.On("CreateDigType", mock.Anything, storage.DigType{
		Name:                 "Standard dig",
		TruckQuantity:        2,
		TruckHourlyRate:      110,
		TruckHours:           4,
		ExcavationHourlyRate: 150,
		ExcavationHours:      8,
	}).Return(int64(7), nil)

	handler := Create(slog.Default(), "test.Create", m.CreateDigType)

	reqBody := `{
		"name": "Standard dig",
		"truck_quantity": 2,
		"truck_hourly_rate": 110,
		"truck_hours": 4,
		"excavation_hourly_rate": 150,
		"excavation_hours": 8
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/dig-types", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, int64(7), created.ID)

	m.AssertExpectations(t)
}

func TestCreate_ValidationFailed(t *testing.T) {
	m := new(MockCreator)
	handler := Create(slog.Default(), "test.Create", m.CreateDigType)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/dig-types", strings.NewReader(`{"truck_hours": -1}`))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp response.ValidationResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "required", resp.Fields["name"])
	assert.Equal(t, "gte", resp.Fields["truck_hours"])

	m.AssertNotCalled(t, "CreateDigType", mock.Anything, mock.Anything)
}

func TestCreate_InvalidJSON(t *testing.T) {
	m := new(MockCreator)
	handler := Create(slog.Default(), "test.Create", m.CreateDigType)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/dig-types", strings.NewReader(`{`))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreate_ForeignKey(t *testing.T) {
	m := new(MockCreator)
	m.On("CreatePoolCost", mock.Anything, mock.Anything).Return(int64(0), storage.ErrForeignKey)

	handler := Create(slog.Default(), "test.Create", m.CreatePoolCost)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/pool-costs", strings.NewReader(`{"pool_id": 404, "name": "Coping", "amount": 500}`))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
}
