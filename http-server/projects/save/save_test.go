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

type MockProjectCreator struct {
	mock.Mock
}

func (m *MockProjectCreator) CreatePoolProject(ctx context.Context, p storage.PoolProject) (string, error) {
	args := m.Called(ctx, p)
	return args.String(0), args.Error(1)
}

func TestCreateProject_Success(t *testing.T) {
	m := new(MockProjectCreator)
	m.On("CreatePoolProject", mock.Anything, mock.MatchedBy(func(p storage.PoolProject) bool {
		return p.OwnerName == "Jane Citizen" &&
			p.PoolSpecificationID == 3 &&
			p.Selections.ConcreteCost != nil && *p.Selections.ConcreteCost == 2500
	})).Return("0b6f3c52-3c1e-4f0e-9c1a-1d2a7f9e0c11", nil)

	handler := CreateProject(slog.Default(), m)

	reqBody := `{
		"owner1": "Jane Citizen",
		"email": "jane@example.com",
		"phone": "0400 000 000",
		"site_address": "1 Example St",
		"pool_specification_id": 3,
		"selections": {"concrete_cost": 2500}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), "0b6f3c52-3c1e-4f0e-9c1a-1d2a7f9e0c11")
	m.AssertExpectations(t)
}

func TestCreateProject_ValidationFailed(t *testing.T) {
	m := new(MockProjectCreator)
	handler := CreateProject(slog.Default(), m)

	reqBody := `{
		"owner1": "Jane Citizen",
		"email": "not-an-email",
		"selections": {"discounts": [{"discount_name": "x", "discount_type": "bogus"}], "margin_override": 120}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(reqBody))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp response.ValidationResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "email", resp.Fields["email"])
	assert.Equal(t, "required", resp.Fields["phone"])
	assert.Equal(t, "required", resp.Fields["pool_specification_id"])
	assert.Equal(t, "oneof", resp.Fields["selections.discounts[0].discount_type"])
	assert.Equal(t, "lt", resp.Fields["selections.margin_override"])

	m.AssertNotCalled(t, "CreatePoolProject", mock.Anything, mock.Anything)
}

func TestCreateProject_NegativeSelectionsRejected(t *testing.T) {
	m := new(MockProjectCreator)
	handler := CreateProject(slog.Default(), m)

	reqBody := `{
		"owner1": "Jane Citizen",
		"email": "jane@example.com",
		"phone": "0400 000 000",
		"pool_specification_id": 3,
		"selections": {
			"bobcat_cost": -100,
			"paving_cost": -1,
			"site_requirements": [{"name": "Tree removal", "amount": -400}],
			"discounts": [
				{"discount_name": "Cash", "discount_type": "dollar", "value": -5000},
				{"discount_name": "Promo", "discount_type": "percentage", "value": 101}
			]
		}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(reqBody))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp response.ValidationResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "gte", resp.Fields["selections.bobcat_cost"])
	assert.Equal(t, "gte", resp.Fields["selections.paving_cost"])
	assert.Equal(t, "gte", resp.Fields["selections.site_requirements[0].amount"])
	assert.Equal(t, "gte", resp.Fields["selections.discounts[0].value"])
	assert.Equal(t, "lte", resp.Fields["selections.discounts[1].value"])

	m.AssertNotCalled(t, "CreatePoolProject", mock.Anything, mock.Anything)
}

func TestCreateProject_StorageError(t *testing.T) {
	m := new(MockProjectCreator)
	m.On("CreatePoolProject", mock.Anything, mock.Anything).Return("", assert.AnError)

	handler := CreateProject(slog.Default(), m)

	reqBody := `{"owner1": "Jane", "email": "jane@example.com", "phone": "1", "pool_specification_id": 3}`
	req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(reqBody))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
