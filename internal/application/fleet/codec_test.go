package fleetapp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fleetcare/backend/internal/domain/fleet"
)

func TestSortByDateDescNewestFirst(t *testing.T) {
	records := []fleet.ServiceRecord{
		{ID: "SRV-1", Date: "2024-01-15"},
		{ID: "SRV-3", Date: "2024-03-01"},
		{ID: "SRV-2", Date: "2024-02-10"},
	}

	sortByDateDesc(records, func(r fleet.ServiceRecord) string { return r.Date })

	assert.Equal(t, "SRV-3", records[0].ID)
	assert.Equal(t, "SRV-2", records[1].ID)
	assert.Equal(t, "SRV-1", records[2].ID)
}

func TestSortByDateDescUnparseableDatesSortLast(t *testing.T) {
	records := []fleet.ServiceRecord{
		{ID: "SRV-BAD2", Date: "pending"},
		{ID: "SRV-1", Date: "2024-01-15"},
		{ID: "SRV-BAD1", Date: "unknown"},
		{ID: "SRV-2", Date: "2024-02-10"},
	}

	sortByDateDesc(records, func(r fleet.ServiceRecord) string { return r.Date })

	// Dated records stay newest-first; undated ones trail in string order
	assert.Equal(t, "SRV-2", records[0].ID)
	assert.Equal(t, "SRV-1", records[1].ID)
	assert.Equal(t, "SRV-BAD1", records[2].ID)
	assert.Equal(t, "SRV-BAD2", records[3].ID)
}
