package report

import (
	"strings"

	"spbu-monitor-backend/internal/model"
)

// DetailView is the dashboard's station detail payload.
type DetailView struct {
	Station    model.StationSummary `json:"station"`
	Tanks      []TankLevel          `json:"tanks"`
	Financial  FinancialView        `json:"financial"`
	Reports    ReportsView          `json:"reports"`
	Checklists ChecklistView        `json:"checklists"`
	Operations OperationsView       `json:"operations"`
}

// TankLevel is a tank with its computed fill level.
type TankLevel struct {
	model.Tank
	FillPercent *float64 `json:"fill_percent"`
	FillText    string   `json:"fill_text"`
}

// FinancialView holds the sales of the selected period.
type FinancialView struct {
	Month            int       `json:"month"`
	Year             int       `json:"year"`
	TotalRevenue     float64   `json:"total_revenue"`
	TotalRevenueText string    `json:"total_revenue_text"`
	Sales            []SaleRow `json:"sales"`
}

// SaleRow is one displayed sale.
type SaleRow struct {
	model.FuelSale
	DateText       string `json:"tanggal_text"`
	TotalPriceText string `json:"totalHarga_text"`
}

// ReportsView holds the incident reports, newest first.
type ReportsView struct {
	EquipmentDamage []ReportRow `json:"equipment_damage"`
	Issues          []ReportRow `json:"issues"`
}

// ReportRow is a displayed damage or issue report.
type ReportRow struct {
	ID          int64           `json:"id"`
	Date        model.Timestamp `json:"date"`
	DateText    string          `json:"date_text"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
}

// ChecklistView holds the merged checklist log of the selected period.
type ChecklistView struct {
	Month int            `json:"month"`
	Year  int            `json:"year"`
	Items []ChecklistRow `json:"items"`
}

// ChecklistRow is one displayed checklist entry.
type ChecklistRow struct {
	ID           int64           `json:"id"`
	Date         model.Timestamp `json:"tanggal"`
	DateText     string          `json:"tanggal_text"`
	Category     Category        `json:"type"`
	Description  string          `json:"description"`
	ReporterName string          `json:"reporter_name"`
	ReporterRole string          `json:"reporter_role"`
	Status       string          `json:"status"`
}

// OperationsView holds staff, pumps and stock deliveries.
type OperationsView struct {
	Staff      []model.User     `json:"staff"`
	Pumps      []model.PumpUnit `json:"pumps"`
	Deliveries []DeliveryRow    `json:"deliveries"`
}

// DeliveryRow is one displayed stock delivery.
type DeliveryRow struct {
	model.StockDelivery
	DateText     string `json:"createdAt_text"`
	ProductsText string `json:"products_text"`
}

// BuildDetailView assembles the station detail payload for the periods in opts.
func BuildDetailView(st *model.Station, opts Options) DetailView {
	loc := opts.location()
	view := DetailView{
		Station: st.Summary(),
		Tanks:   make([]TankLevel, 0, len(st.Tanks)),
	}

	for _, tank := range st.Tanks {
		level := TankLevel{Tank: tank, FillText: FormatPercent(tank)}
		if pct, ok := tank.FillPercent(); ok {
			level.FillPercent = &pct
		}
		view.Tanks = append(view.Tanks, level)
	}

	sales := sortSales(FilterSales(st.FuelSales, opts.SalesPeriod, loc), loc)
	total := TotalRevenue(sales)
	view.Financial = FinancialView{
		Month:            int(opts.SalesPeriod.Month),
		Year:             opts.SalesPeriod.Year,
		TotalRevenue:     total,
		TotalRevenueText: FormatCurrency(total),
		Sales:            make([]SaleRow, 0, len(sales)),
	}
	for _, s := range sales {
		view.Financial.Sales = append(view.Financial.Sales, SaleRow{
			FuelSale:       s,
			DateText:       FormatDate(s.Date, loc),
			TotalPriceText: FormatCurrency(s.TotalPrice.Float64()),
		})
	}

	view.Reports = ReportsView{EquipmentDamage: []ReportRow{}, Issues: []ReportRow{}}
	for _, r := range sortedDamage(st.EquipmentDamageReports, loc) {
		view.Reports.EquipmentDamage = append(view.Reports.EquipmentDamage, ReportRow{
			ID: r.ID, Date: r.Date, DateText: FormatDate(r.Date, loc), Title: r.Unit, Description: r.Description,
		})
	}
	for _, r := range sortedIssues(st.IssueReports, loc) {
		view.Reports.Issues = append(view.Reports.Issues, ReportRow{
			ID: r.ID, Date: r.Date, DateText: FormatDate(r.Date, loc), Title: r.Title, Description: r.Description,
		})
	}

	checklists := FilterChecklists(MergeChecklists(st, loc), opts.ChecklistPeriod, loc)
	view.Checklists = ChecklistView{
		Month: int(opts.ChecklistPeriod.Month),
		Year:  opts.ChecklistPeriod.Year,
		Items: make([]ChecklistRow, 0, len(checklists)),
	}
	for _, c := range checklists {
		view.Checklists.Items = append(view.Checklists.Items, ChecklistRow{
			ID:           c.ID,
			Date:         c.Date,
			DateText:     FormatDate(c.Date, loc),
			Category:     c.Category,
			Description:  strings.ReplaceAll(Description(c.ChecklistItem), "_", " "),
			ReporterName: c.ReporterName(),
			ReporterRole: c.ReporterRole(),
			Status:       Status(c.ChecklistItem),
		})
	}

	view.Operations = OperationsView{
		Staff:      append([]model.User{}, st.Users...),
		Pumps:      append([]model.PumpUnit{}, st.PumpUnits...),
		Deliveries: []DeliveryRow{},
	}
	for _, d := range sortedDeliveries(st.StockDeliveries, loc) {
		view.Operations.Deliveries = append(view.Operations.Deliveries, DeliveryRow{
			StockDelivery: d,
			DateText:      FormatDate(d.CreatedAt, loc),
			ProductsText:  FormatVolumes(d),
		})
	}
	return view
}
