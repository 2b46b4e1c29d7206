package mysql

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pool-quote/internal/storage"
)

func TestMapError(t *testing.T) {
	err := mapError("op", sql.ErrNoRows)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = mapError("op", &mysql.MySQLError{Number: 1452, Message: "fk"})
	assert.ErrorIs(t, err, storage.ErrForeignKey)

	err = mapError("op", &mysql.MySQLError{Number: 1451, Message: "fk parent"})
	assert.ErrorIs(t, err, storage.ErrForeignKey)

	other := errors.New("boom")
	err = mapError("op", other)
	assert.ErrorIs(t, err, other)
	assert.NotErrorIs(t, err, storage.ErrNotFound)
}

func TestStorage_CraneCostsCRUD(t *testing.T) {
	s := requireDB(t)
	cleanupTables(t, "crane_costs")
	ctx := context.Background()

	id, err := s.CreateCraneCost(ctx, storage.CraneCost{Name: "Franna 20t", Price: 1100, DisplayOrder: 2})
	require.NoError(t, err)
	_, err = s.CreateCraneCost(ctx, storage.CraneCost{Name: "Franna 15t", Price: 700, DisplayOrder: 1})
	require.NoError(t, err)

	costs, err := s.ListCraneCosts(ctx)
	require.NoError(t, err)
	require.Len(t, costs, 2)
	assert.Equal(t, "Franna 15t", costs[0].Name)

	require.NoError(t, s.UpdateCraneCost(ctx, id, storage.CraneCost{Name: "Franna 20t", Price: 1250, DisplayOrder: 2}))

	got, err := s.GetCraneCost(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1250.0, got.Price)

	// обновление без изменений не должно давать 404
	require.NoError(t, s.UpdateCraneCost(ctx, id, *got))

	require.NoError(t, s.DeleteCraneCost(ctx, id))
	_, err = s.GetCraneCost(ctx, id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.ErrorIs(t, s.DeleteCraneCost(ctx, id), storage.ErrNotFound)
}

func TestStorage_FiltrationPackageDetails(t *testing.T) {
	s := requireDB(t)
	cleanupTables(t, "filtration_packages", "handover_kit_package_components", "handover_kit_packages", "filtration_components")
	ctx := context.Background()

	pumpID, err := s.CreateFiltrationComponent(ctx, storage.FiltrationComponent{Name: "Pump", TypeID: storage.ComponentPump, Price: 500})
	require.NoError(t, err)
	filterID, err := s.CreateFiltrationComponent(ctx, storage.FiltrationComponent{Name: "Filter", TypeID: storage.ComponentFilter, Price: 300})
	require.NoError(t, err)
	kitItemID, err := s.CreateFiltrationComponent(ctx, storage.FiltrationComponent{Name: "Test kit", TypeID: storage.ComponentHandoverKit, Price: 50})
	require.NoError(t, err)

	kitID, err := s.CreateHandoverKitPackage(ctx, storage.HandoverKitPackage{
		Name:       "Standard",
		Components: []storage.HandoverKitPackageComponent{{ComponentID: kitItemID, Quantity: 2}},
	})
	require.NoError(t, err)

	pkgID, err := s.CreateFiltrationPackage(ctx, storage.FiltrationPackage{
		Name:          "Option 1",
		PumpID:        &pumpID,
		FilterID:      &filterID,
		HandoverKitID: &kitID,
	})
	require.NoError(t, err)

	details, err := s.GetFiltrationPackageDetails(ctx, pkgID)
	require.NoError(t, err)
	require.NotNil(t, details.Pump)
	assert.Equal(t, 500.0, details.Pump.Price)
	assert.Nil(t, details.Light)
	require.NotNil(t, details.HandoverKit)
	require.Len(t, details.HandoverKit.Components, 1)
	assert.Equal(t, 50.0, details.HandoverKit.Components[0].ComponentPrice)
	assert.Equal(t, "Test kit", details.HandoverKit.Components[0].ComponentName)
}

func TestStorage_GetPoolProject_NotFound(t *testing.T) {
	s := requireDB(t)

	_, err := s.GetPoolProject(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestLikeEscaper(t *testing.T) {
	assert.Equal(t, `\_`, likeEscaper.Replace("_"))
	assert.Equal(t, `100\%`, likeEscaper.Replace("100%"))
	assert.Equal(t, `a\\b`, likeEscaper.Replace(`a\b`))
	assert.Equal(t, "Smith", likeEscaper.Replace("Smith"))
}

func TestStorage_ListPoolProjects_SearchIsLiteral(t *testing.T) {
	s := requireDB(t)
	cleanupTables(t, "quotes", "pool_projects")
	ctx := context.Background()

	poolID, err := s.CreatePoolSpecification(ctx, storage.PoolSpecification{Name: "Search test pool"})
	require.NoError(t, err)

	_, err = s.CreatePoolProject(ctx, storage.PoolProject{
		OwnerName: "Jane Citizen", Email: "jane@example.com", Phone: "1", PoolSpecificationID: poolID,
	})
	require.NoError(t, err)
	_, err = s.CreatePoolProject(ctx, storage.PoolProject{
		OwnerName: "John Doe", Email: "john_doe@example.com", Phone: "2", PoolSpecificationID: poolID,
	})
	require.NoError(t, err)

	projects, err := s.ListPoolProjects(ctx, "_")
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "John Doe", projects[0].OwnerName)

	projects, err = s.ListPoolProjects(ctx, "%")
	require.NoError(t, err)
	assert.Empty(t, projects)

	projects, err = s.ListPoolProjects(ctx, "citizen")
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Jane Citizen", projects[0].OwnerName)
}

func TestStorage_HeatPumpCompatibleAndPoolExtras(t *testing.T) {
	s := requireDB(t)
	ctx := context.Background()

	poolID, err := s.CreatePoolSpecification(ctx, storage.PoolSpecification{Name: "Compat test pool"})
	require.NoError(t, err)
	fitsID, err := s.CreateHeatPump(ctx, storage.HeatPump{ProductCode: "HP-13", Name: "HP 13kW", RRP: 4200})
	require.NoError(t, err)
	otherID, err := s.CreateHeatPump(ctx, storage.HeatPump{ProductCode: "HP-21", Name: "HP 21kW", RRP: 5200})
	require.NoError(t, err)

	_, err = s.CreateHeatPumpCompatibility(ctx, storage.HeatPumpCompatibility{PoolSpecificationID: poolID, HeatPumpID: fitsID})
	require.NoError(t, err)

	ok, err := s.HeatPumpCompatible(ctx, poolID, fitsID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.HeatPumpCompatible(ctx, poolID, otherID)
	require.NoError(t, err)
	assert.False(t, ok)

	extraID, err := s.CreateGeneralExtra(ctx, storage.GeneralExtra{Name: "Ladder", RRP: 350})
	require.NoError(t, err)
	_, err = s.CreatePoolGeneralExtra(ctx, storage.PoolGeneralExtra{PoolSpecificationID: poolID, GeneralExtraID: extraID, Quantity: 2})
	require.NoError(t, err)

	extras, err := s.ListPoolGeneralExtras(ctx, poolID)
	require.NoError(t, err)
	require.Len(t, extras, 1)
	assert.Equal(t, "Ladder", extras[0].Name)
	assert.Equal(t, 350.0, extras[0].RRP)
	assert.Equal(t, 2.0, extras[0].Quantity)
}
