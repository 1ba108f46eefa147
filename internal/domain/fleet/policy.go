package fleet

import (
	"math"
	"time"
)

// WarrantyAlertWindowDays is the look-ahead window for warranty alerts
const WarrantyAlertWindowDays = 30

// ParseDate parses the date formats records carry: calendar dates first,
// then RFC3339 timestamps
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// DaysUntilWarrantyEnd returns the whole-day count (rounded up) until the
// projector's warranty ends, relative to now. The second return is false
// when warranty_end is absent or unparseable.
func DaysUntilWarrantyEnd(p *Projector, now time.Time) (int, bool) {
	if p.WarrantyEnd == "" {
		return 0, false
	}
	end, err := ParseDate(p.WarrantyEnd)
	if err != nil {
		return 0, false
	}
	days := int(math.Ceil(end.Sub(now).Hours() / 24))
	return days, true
}

// WarrantyExpiringSoon reports whether the projector's warranty ends within
// the alert window. Already-expired warranties are excluded: the alert is
// for warranties that can still be acted on.
func WarrantyExpiringSoon(p *Projector, now time.Time) bool {
	days, ok := DaysUntilWarrantyEnd(p, now)
	if !ok {
		return false
	}
	return days > 0 && days <= WarrantyAlertWindowDays
}
