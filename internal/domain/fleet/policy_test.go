package fleet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.January, d.Month())

	d, err = ParseDate("2024-01-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, d.Hour())

	_, err = ParseDate("not-a-date")
	assert.Error(t, err)
}

func TestDaysUntilWarrantyEnd(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		warrantyEnd string
		wantDays    int
		wantOK      bool
	}{
		{"ten days out", "2024-06-11", 10, true},
		{"already expired", "2024-05-01", -30, true},
		{"missing", "", 0, false},
		{"unparseable", "soon", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Projector{WarrantyEnd: tt.warrantyEnd}
			days, ok := DaysUntilWarrantyEnd(p, now)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantDays, days)
			}
		})
	}
}

func TestWarrantyExpiringSoon(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		warrantyEnd string
		want        bool
	}{
		{"exactly 30 days out is alerting", "2024-07-01", true},
		{"31 days out is not", "2024-07-02", false},
		{"already expired is not", "2024-05-30", false},
		{"ends today is not", "2024-06-01", false},
		{"one day out is alerting", "2024-06-02", true},
		{"no warranty date", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Projector{WarrantyEnd: tt.warrantyEnd}
			assert.Equal(t, tt.want, WarrantyExpiringSoon(p, now))
		})
	}
}

func TestCompatibleWith(t *testing.T) {
	p := &Projector{Model: "Epson EB-2250U"}

	assert.True(t, p.CompatibleWith(&SparePart{CompatibleModels: []string{"Epson EB-2250U"}}))
	assert.False(t, p.CompatibleWith(&SparePart{CompatibleModels: []string{"Sony VPL-FHZ120"}}))
	assert.False(t, p.CompatibleWith(&SparePart{}))
}

func TestIsLowStock(t *testing.T) {
	assert.True(t, (&SparePart{StockQuantity: 2, MinStock: 3}).IsLowStock())
	assert.True(t, (&SparePart{StockQuantity: 3, MinStock: 3}).IsLowStock())
	assert.False(t, (&SparePart{StockQuantity: 4, MinStock: 3}).IsLowStock())
}
