package quote

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pool-quote/internal/service/pricing"
	"pool-quote/internal/storage"
)

type MockQuoteStorage struct {
	mock.Mock
}

func (m *MockQuoteStorage) GetPoolProject(ctx context.Context, id string) (*storage.PoolProject, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*storage.PoolProject), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuoteStorage) GetPoolSpecification(ctx context.Context, id int64) (*storage.PoolSpecification, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*storage.PoolSpecification), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuoteStorage) ListPoolSpecifications(ctx context.Context) ([]storage.PoolSpecification, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]storage.PoolSpecification), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuoteStorage) ListPoolCosts(ctx context.Context, poolID int64) ([]storage.PoolCost, error) {
	args := m.Called(ctx, poolID)
	if v := args.Get(0); v != nil {
		return v.([]storage.PoolCost), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuoteStorage) ListAllPoolCosts(ctx context.Context) (map[int64][]storage.PoolCost, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(map[int64][]storage.PoolCost), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuoteStorage) GetPoolMargin(ctx context.Context, poolID int64) (*storage.PoolMargin, error) {
	args := m.Called(ctx, poolID)
	if v := args.Get(0); v != nil {
		return v.(*storage.PoolMargin), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuoteStorage) ListPoolMargins(ctx context.Context) ([]storage.PoolMargin, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]storage.PoolMargin), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuoteStorage) ListFixedCosts(ctx context.Context) ([]storage.FixedCost, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]storage.FixedCost), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuoteStorage) GetCraneCost(ctx context.Context, id int64) (*storage.CraneCost, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*storage.CraneCost), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuoteStorage) GetDigType(ctx context.Context, id int64) (*storage.DigType, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*storage.DigType), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuoteStorage) ListDigTypes(ctx context.Context) ([]storage.DigType, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]storage.DigType), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuoteStorage) GetFiltrationPackageDetails(ctx context.Context, id int64) (*storage.FiltrationPackageDetails, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*storage.FiltrationPackageDetails), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuoteStorage) GetHeatPump(ctx context.Context, id int64) (*storage.HeatPump, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*storage.HeatPump), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuoteStorage) HeatPumpCompatible(ctx context.Context, poolID, heatPumpID int64) (bool, error) {
	args := m.Called(ctx, poolID, heatPumpID)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuoteStorage) ListPoolGeneralExtras(ctx context.Context, poolID int64) ([]storage.PoolGeneralExtra, error) {
	args := m.Called(ctx, poolID)
	if v := args.Get(0); v != nil {
		return v.([]storage.PoolGeneralExtra), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuoteStorage) CreateQuote(ctx context.Context, projectID string, snapshot storage.ProposalSnapshot) (*storage.Quote, error) {
	args := m.Called(ctx, projectID, snapshot)
	if v := args.Get(0); v != nil {
		return v.(*storage.Quote), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuoteStorage) GetQuote(ctx context.Context, id string) (*storage.Quote, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*storage.Quote), args.Error(1)
	}
	return nil, args.Error(1)
}

func ptr[T any](v T) *T { return &v }

const projectID = "0b6f3c52-3c1e-4f0e-9c1a-1d2a7f9e0c11"

func testProject() *storage.PoolProject {
	return &storage.PoolProject{
		ID:                  projectID,
		OwnerName:           "Jane Citizen",
		Email:               "jane@example.com",
		Phone:               "0400 000 000",
		PoolSpecificationID: 1,
		CraneCostID:         ptr(int64(2)),
		Selections: storage.ProjectSelections{
			ConcreteCost: ptr(1000.0),
			Discounts: []storage.Discount{
				{Name: "Spring", Type: storage.DiscountDollar, Value: ptr(250.0)},
			},
		},
	}
}

// mockReferenceData настраивает справочники: бассейн 20 000, маржа 20%,
// копка 1800, фильтрация 500, кран 900, в комплекте бассейна лестница 350.
func mockReferenceData(m *MockQuoteStorage) {
	m.On("ListPoolGeneralExtras", mock.Anything, int64(1)).Return([]storage.PoolGeneralExtra{
		{ID: 1, PoolSpecificationID: 1, GeneralExtraID: 5, Quantity: 1, Name: "Ladder", RRP: 350},
	}, nil)
	m.On("GetPoolSpecification", mock.Anything, int64(1)).Return(&storage.PoolSpecification{
		ID:                  1,
		Name:                "Bellagio",
		BuyPriceIncGST:      20000,
		DigTypeID:           ptr(int64(3)),
		FiltrationPackageID: ptr(int64(4)),
	}, nil)
	m.On("ListPoolCosts", mock.Anything, int64(1)).Return([]storage.PoolCost{
		{ID: 1, PoolSpecificationID: 1, Name: "Coping", Amount: 500},
	}, nil)
	m.On("ListFixedCosts", mock.Anything).Return([]storage.FixedCost{
		{ID: 1, Name: "Fire Ant", Price: 100},
		{ID: 2, Name: "Form 15", Price: 200},
	}, nil)
	m.On("GetCraneCost", mock.Anything, int64(2)).Return(&storage.CraneCost{ID: 2, Name: "Franna", Price: 900}, nil)
	m.On("GetDigType", mock.Anything, int64(3)).Return(&storage.DigType{
		ID:                   3,
		Name:                 "Standard dig",
		ExcavationHours:      10,
		ExcavationHourlyRate: 100,
		TruckQuantity:        2,
		TruckHours:           5,
		TruckHourlyRate:      80,
	}, nil)
	m.On("GetFiltrationPackageDetails", mock.Anything, int64(4)).Return(&storage.FiltrationPackageDetails{
		FiltrationPackage: storage.FiltrationPackage{ID: 4, Name: "Option 1"},
		Pump:              &storage.FiltrationComponent{ID: 10, Name: "Pump", TypeID: storage.ComponentPump, Price: 500},
	}, nil)
}

func TestBuildSnapshot_MergesReferenceDataAndSelections(t *testing.T) {
	m := new(MockQuoteStorage)
	m.On("GetPoolProject", mock.Anything, projectID).Return(testProject(), nil)
	m.On("GetPoolMargin", mock.Anything, int64(1)).Return(&storage.PoolMargin{PoolSpecificationID: 1, MarginPercentage: 20}, nil)
	mockReferenceData(m)

	svc := NewQuoteService(m, pricing.DefaultOptions())

	snap, err := svc.BuildSnapshot(context.Background(), projectID)
	require.NoError(t, err)

	assert.Equal(t, "Bellagio", snap.PoolName)
	assert.Equal(t, 20000.0, *snap.PoolBuyPrice)
	assert.Equal(t, 20.0, *snap.MarginPercent)
	assert.Equal(t, 900.0, *snap.CraneCost)
	assert.Equal(t, "Standard dig", snap.DigName)
	assert.Equal(t, 2.0, *snap.DigTruckQuantity)
	assert.Equal(t, "Option 1", snap.FiltrationPackageName)
	assert.Equal(t, 500.0, *snap.PumpPrice)
	assert.Nil(t, snap.FilterPrice)
	require.Len(t, snap.IndividualCosts, 1)
	require.Len(t, snap.FixedCosts, 2)
	assert.Equal(t, 1000.0, *snap.ConcreteCost)
	require.Len(t, snap.Discounts, 1)
	assert.False(t, snap.HeatPumpIncluded)

	m.AssertExpectations(t)
}

func TestBuildSnapshot_ProjectOverridesDefaults(t *testing.T) {
	project := testProject()
	project.DigTypeID = ptr(int64(7))
	project.HeatPumpID = ptr(int64(9))
	project.Selections.MarginOverride = ptr(30.0)

	m := new(MockQuoteStorage)
	m.On("GetPoolProject", mock.Anything, projectID).Return(project, nil)
	m.On("GetPoolMargin", mock.Anything, int64(1)).Return(&storage.PoolMargin{PoolSpecificationID: 1, MarginPercentage: 20}, nil)
	m.On("GetDigType", mock.Anything, int64(7)).Return(&storage.DigType{ID: 7, Name: "Rock dig"}, nil)
	m.On("GetHeatPump", mock.Anything, int64(9)).Return(&storage.HeatPump{ID: 9, Name: "HP 13kW", RRP: 4200}, nil)
	m.On("HeatPumpCompatible", mock.Anything, int64(1), int64(9)).Return(true, nil)
	mockReferenceData(m)

	svc := NewQuoteService(m, pricing.DefaultOptions())

	snap, err := svc.BuildSnapshot(context.Background(), projectID)
	require.NoError(t, err)

	assert.Equal(t, "Rock dig", snap.DigName)
	assert.Equal(t, 30.0, *snap.MarginPercent)
	assert.True(t, snap.HeatPumpIncluded)
	assert.Equal(t, 4200.0, *snap.HeatPumpPrice)
	m.AssertNotCalled(t, "GetDigType", mock.Anything, int64(3))
}

func TestBuildSnapshot_IncompatibleHeatPump(t *testing.T) {
	project := testProject()
	project.HeatPumpID = ptr(int64(9))

	m := new(MockQuoteStorage)
	m.On("GetPoolProject", mock.Anything, projectID).Return(project, nil)
	m.On("GetPoolMargin", mock.Anything, int64(1)).Return(&storage.PoolMargin{PoolSpecificationID: 1, MarginPercentage: 20}, nil)
	m.On("GetHeatPump", mock.Anything, int64(9)).Return(&storage.HeatPump{ID: 9, Name: "HP 13kW", RRP: 4200}, nil)
	m.On("HeatPumpCompatible", mock.Anything, int64(1), int64(9)).Return(false, nil)
	mockReferenceData(m)

	svc := NewQuoteService(m, pricing.DefaultOptions())

	_, err := svc.BuildSnapshot(context.Background(), projectID)
	assert.ErrorIs(t, err, storage.ErrHeatPumpIncompatible)
	m.AssertNotCalled(t, "GetDigType", mock.Anything, mock.Anything)
}

func TestBuildSnapshot_PoolExtrasComeBeforeProjectExtras(t *testing.T) {
	project := testProject()
	project.Selections.GeneralExtras = []storage.ExtraLine{{Name: "Solar cover", Price: ptr(900.0)}}

	m := new(MockQuoteStorage)
	m.On("GetPoolProject", mock.Anything, projectID).Return(project, nil)
	m.On("GetPoolMargin", mock.Anything, int64(1)).Return(&storage.PoolMargin{PoolSpecificationID: 1}, nil)
	mockReferenceData(m)

	svc := NewQuoteService(m, pricing.DefaultOptions())

	snap, err := svc.BuildSnapshot(context.Background(), projectID)
	require.NoError(t, err)

	require.Len(t, snap.GeneralExtras, 2)
	assert.Equal(t, "Ladder", snap.GeneralExtras[0].Name)
	assert.Equal(t, 350.0, *snap.GeneralExtras[0].Price)
	assert.Equal(t, 1.0, *snap.GeneralExtras[0].Quantity)
	assert.Equal(t, "Solar cover", snap.GeneralExtras[1].Name)

	b, _ := svc.Calculate(snap)
	assert.Equal(t, 1250.0, b.GeneralExtrasPrice)
}

func TestBuildSnapshot_MissingMarginMeansZero(t *testing.T) {
	m := new(MockQuoteStorage)
	m.On("GetPoolProject", mock.Anything, projectID).Return(testProject(), nil)
	m.On("GetPoolMargin", mock.Anything, int64(1)).Return(nil, storage.ErrNotFound)
	mockReferenceData(m)

	svc := NewQuoteService(m, pricing.DefaultOptions())

	snap, err := svc.BuildSnapshot(context.Background(), projectID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, *snap.MarginPercent)
}

func TestBuildSnapshot_ProjectNotFound(t *testing.T) {
	m := new(MockQuoteStorage)
	m.On("GetPoolProject", mock.Anything, projectID).Return(nil, storage.ErrNotFound)

	svc := NewQuoteService(m, pricing.DefaultOptions())

	_, err := svc.BuildSnapshot(context.Background(), projectID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestBuildSnapshot_ReferenceLoadFails(t *testing.T) {
	dbErr := errors.New("connection reset")

	m := new(MockQuoteStorage)
	m.On("GetPoolProject", mock.Anything, projectID).Return(testProject(), nil)
	m.On("GetPoolSpecification", mock.Anything, int64(1)).Return(nil, dbErr)
	m.On("ListPoolCosts", mock.Anything, int64(1)).Return([]storage.PoolCost{}, nil).Maybe()
	m.On("GetPoolMargin", mock.Anything, int64(1)).Return(&storage.PoolMargin{}, nil).Maybe()
	m.On("ListFixedCosts", mock.Anything).Return([]storage.FixedCost{}, nil).Maybe()
	m.On("GetCraneCost", mock.Anything, int64(2)).Return(&storage.CraneCost{}, nil).Maybe()
	m.On("ListPoolGeneralExtras", mock.Anything, int64(1)).Return([]storage.PoolGeneralExtra{}, nil).Maybe()

	svc := NewQuoteService(m, pricing.DefaultOptions())

	_, err := svc.BuildSnapshot(context.Background(), projectID)
	assert.ErrorIs(t, err, dbErr)
}

func TestCreateQuote_StoresBuiltSnapshot(t *testing.T) {
	m := new(MockQuoteStorage)
	m.On("GetPoolProject", mock.Anything, projectID).Return(testProject(), nil)
	m.On("GetPoolMargin", mock.Anything, int64(1)).Return(&storage.PoolMargin{PoolSpecificationID: 1, MarginPercentage: 20}, nil)
	mockReferenceData(m)

	created := &storage.Quote{ID: "q-1", ProjectID: projectID, Status: storage.QuoteStatusDraft}
	m.On("CreateQuote", mock.Anything, projectID, mock.MatchedBy(func(s storage.ProposalSnapshot) bool {
		return s.PoolName == "Bellagio" && s.CraneCost != nil && *s.CraneCost == 900
	})).Return(created, nil)

	svc := NewQuoteService(m, pricing.DefaultOptions())

	q, err := svc.CreateQuote(context.Background(), projectID)
	require.NoError(t, err)
	assert.Equal(t, "q-1", q.ID)
	assert.Equal(t, storage.QuoteStatusDraft, q.Status)
	m.AssertExpectations(t)
}

func TestPriceQuote(t *testing.T) {
	m := new(MockQuoteStorage)
	m.On("GetQuote", mock.Anything, "q-1").Return(&storage.Quote{
		ID:       "q-1",
		Snapshot: storage.ProposalSnapshot{PoolBuyPrice: ptr(10000.0), MarginPercent: ptr(0.0)},
	}, nil)

	svc := NewQuoteService(m, pricing.DefaultOptions())

	priced, err := svc.PriceQuote(context.Background(), "q-1")
	require.NoError(t, err)

	assert.Equal(t, 10000.0, priced.Breakdown.BasePoolPrice)
	assert.Equal(t, 700.0, priced.Breakdown.CranePrice)
	assert.Equal(t, 10700.0, priced.Breakdown.ContractSubtotal)
	assert.Equal(t, priced.Breakdown.ContractGrandTotal, priced.Summary.ContractTotal)
}

func TestPriceQuote_NotFound(t *testing.T) {
	m := new(MockQuoteStorage)
	m.On("GetQuote", mock.Anything, "missing").Return(nil, storage.ErrNotFound)

	svc := NewQuoteService(m, pricing.DefaultOptions())

	_, err := svc.PriceQuote(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPoolPricing(t *testing.T) {
	m := new(MockQuoteStorage)
	m.On("ListPoolSpecifications", mock.Anything).Return([]storage.PoolSpecification{
		{ID: 1, Name: "Bellagio", BuyPriceIncGST: 20000, DigTypeID: ptr(int64(3)), FiltrationPackageID: ptr(int64(4))},
		{ID: 2, Name: "Florentina", BuyPriceIncGST: 10000},
	}, nil)
	m.On("ListAllPoolCosts", mock.Anything).Return(map[int64][]storage.PoolCost{
		1: {{ID: 1, PoolSpecificationID: 1, Name: "Coping", Amount: 500}},
	}, nil)
	m.On("ListPoolMargins", mock.Anything).Return([]storage.PoolMargin{{PoolSpecificationID: 1, MarginPercentage: 20}}, nil)
	m.On("ListFixedCosts", mock.Anything).Return([]storage.FixedCost{{Name: "Fire Ant", Price: 100}, {Name: "Form 15", Price: 200}}, nil)
	m.On("ListDigTypes", mock.Anything).Return([]storage.DigType{
		{ID: 3, ExcavationHours: 10, ExcavationHourlyRate: 100, TruckQuantity: 2, TruckHours: 5, TruckHourlyRate: 80},
	}, nil)
	m.On("GetFiltrationPackageDetails", mock.Anything, int64(4)).Return(&storage.FiltrationPackageDetails{
		FiltrationPackage: storage.FiltrationPackage{ID: 4},
		Pump:              &storage.FiltrationComponent{Price: 500},
	}, nil).Once()

	svc := NewQuoteService(m, pricing.DefaultOptions())

	rows, err := svc.PoolPricing(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// 20000 + 500 + 300 + 500 + 1800 + 700
	assert.Equal(t, 23800.0, rows[0].TotalCost)
	assert.Equal(t, 29750.0, rows[0].WebPrice)

	assert.Equal(t, 11000.0, rows[1].TotalCost)
	assert.Equal(t, 11000.0, rows[1].WebPrice)

	m.AssertExpectations(t)
}
