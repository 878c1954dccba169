package report

import (
	"fmt"
	"sort"
	"time"

	"spbu-monitor-backend/internal/model"
)

// Period is a calendar month. The zero Period matches everything.
type Period struct {
	Month time.Month
	Year  int
}

// CurrentPeriod returns the month containing now.
func CurrentPeriod(now time.Time) Period {
	return Period{Month: now.Month(), Year: now.Year()}
}

// NewPeriod validates month (1-12) and year.
func NewPeriod(month, year int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("invalid month %d", month)
	}
	if year < 1 || year > 9999 {
		return Period{}, fmt.Errorf("invalid year %d", year)
	}
	return Period{Month: time.Month(month), Year: year}, nil
}

// IsZero reports whether p is the unrestricted period.
func (p Period) IsZero() bool {
	return p.Year == 0
}

// Contains reports whether ts falls within p when seen in loc. Undated
// values only match the zero Period.
func (p Period) Contains(ts model.Timestamp, loc *time.Location) bool {
	if p.IsZero() {
		return true
	}
	if !ts.Valid {
		return false
	}
	t := ts.In(loc)
	return t.Month() == p.Month && t.Year() == p.Year
}

func (p Period) String() string {
	if p.IsZero() {
		return "semua periode"
	}
	return fmt.Sprintf("%s %d", monthNames[p.Month-1], p.Year)
}

// FilterSales returns the sales inside p, preserving order.
func FilterSales(sales []model.FuelSale, p Period, loc *time.Location) []model.FuelSale {
	out := make([]model.FuelSale, 0, len(sales))
	for _, s := range sales {
		if p.Contains(s.Date, loc) {
			out = append(out, s)
		}
	}
	return out
}

// FilterChecklists returns the entries inside p, preserving order.
func FilterChecklists(items []TaggedChecklist, p Period, loc *time.Location) []TaggedChecklist {
	out := make([]TaggedChecklist, 0, len(items))
	for _, item := range items {
		if p.Contains(item.Date, loc) {
			out = append(out, item)
		}
	}
	return out
}

// TotalRevenue sums the total price of sales.
func TotalRevenue(sales []model.FuelSale) float64 {
	var sum float64
	for _, s := range sales {
		sum += s.TotalPrice.Float64()
	}
	return sum
}

// The sort helpers return copies ordered newest first as seen in loc; undated
// records go last.
func sortSales(sales []model.FuelSale, loc *time.Location) []model.FuelSale {
	out := append([]model.FuelSale(nil), sales...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date, loc) })
	return out
}

func sortedDamage(reports []model.EquipmentDamageReport, loc *time.Location) []model.EquipmentDamageReport {
	out := append([]model.EquipmentDamageReport(nil), reports...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date, loc) })
	return out
}

func sortedIssues(issues []model.IssueReport, loc *time.Location) []model.IssueReport {
	out := append([]model.IssueReport(nil), issues...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date, loc) })
	return out
}

func sortedDeliveries(deliveries []model.StockDelivery, loc *time.Location) []model.StockDelivery {
	out := append([]model.StockDelivery(nil), deliveries...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt, loc) })
	return out
}
