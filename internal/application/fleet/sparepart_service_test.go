package fleetapp

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetcare/backend/internal/domain/fleet"
	"github.com/fleetcare/backend/internal/infrastructure/kvstore"
)

func TestSparePartCreate(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	svc := NewSparePartService(store)
	svc.now = func() time.Time { return testNow }

	part, err := svc.Create(ctx, CreateSparePartRequest{
		PartNumber:    "ELPLP97",
		PartName:      "Replacement Lamp",
		StockQuantity: 10,
		MinStock:      3,
		UnitCost:      7200,
	})
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("SP-%d", testNow.UnixMilli()), part.ID)
	assert.Equal(t, fleet.PartStatusInStock, part.Status)
	assert.NotNil(t, part.CompatibleModels)
	assert.Equal(t, "2024-02-01T10:00:00Z", part.CreatedAt)
}

func TestSparePartUpdate(t *testing.T) {
	ctx := context.Background()
	svc := NewSparePartService(seedStore(t))
	svc.now = func() time.Time { return testNow }

	qty := 0
	status := fleet.PartStatusOutOfStock
	updated, err := svc.Update(ctx, "SP-001", SparePartPatch{
		StockQuantity: &qty,
		Status:        &status,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.StockQuantity)
	assert.Equal(t, fleet.PartStatusOutOfStock, updated.Status)
	assert.Equal(t, "ELPLP96", updated.PartNumber)
	assert.Equal(t, "2024-02-01T10:00:00Z", updated.UpdatedAt)
}

func TestSparePartUpdateNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewSparePartService(seedStore(t))

	_, err := svc.Update(ctx, "SP-999", SparePartPatch{})
	assert.ErrorIs(t, err, fleet.ErrSparePartNotFound)
}

func TestSparePartLowStock(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	svc := NewSparePartService(store)
	svc.now = func() time.Time { return testNow }

	// A spread of random parts, half of them below threshold
	gofakeit.Seed(11)
	lowCount := 0
	for i := 0; i < 20; i++ {
		stock := gofakeit.Number(0, 10)
		min := 5
		if stock <= min {
			lowCount++
		}
		_, err := svc.Create(ctx, CreateSparePartRequest{
			PartNumber:    fmt.Sprintf("PN-%03d", i),
			PartName:      gofakeit.ProductName(),
			Brand:         gofakeit.Company(),
			StockQuantity: stock,
			MinStock:      min,
		})
		require.NoError(t, err)
		// Distinct create timestamps keep the generated ids unique
		svc.now = nextMilli(svc.now)
	}

	low, err := svc.LowStock(ctx)
	require.NoError(t, err)
	assert.Len(t, low, lowCount)
	for _, p := range low {
		assert.LessOrEqual(t, p.StockQuantity, p.MinStock)
	}
}

// nextMilli returns a clock one millisecond after the given one
func nextMilli(now func() time.Time) func() time.Time {
	next := now().Add(time.Millisecond)
	return func() time.Time { return next }
}
