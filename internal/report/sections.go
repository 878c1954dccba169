package report

import (
	"fmt"
	"time"

	"spbu-monitor-backend/internal/model"
)

// Table titles.
const (
	TitleSales      = "Laporan Keuangan"
	TitleTanks      = "Status Tangki BBM"
	TitleDamage     = "Laporan Kerusakan Peralatan"
	TitleIssues     = "Laporan Masalah Umum (Issue)"
	TitleChecklist  = "Log Aktivitas Checklist"
	TitleStaff      = "Data Karyawan"
	TitlePumps      = "Unit Pompa"
	TitleDeliveries = "Riwayat Pengiriman Stok"
)

const (
	titleFullPrefix  = "Laporan Lengkap SPBU: "
	titleTabTemplate = "Laporan %s SPBU: %s"
)

// The activity column takes whatever width is left.
var checklistWidths = []float64{35, 25, 0, 40, 30, 30}

// Options select the periods applied to filtered tables and the display timezone.
type Options struct {
	SalesPeriod     Period
	ChecklistPeriod Period
	Location        *time.Location
}

func (o Options) location() *time.Location {
	if o.Location == nil {
		return time.UTC
	}
	return o.Location
}

// FinancialSection builds the sales table and, when the station has tanks,
// the tank status table.
func FinancialSection(st *model.Station, sales []model.FuelSale, loc *time.Location) []Table {
	sorted := sortSales(sales, loc)
	salesTable := Table{
		Title: TitleSales,
		Head:  []string{"Tanggal", "Shift", "Liter", "Total Harga"},
	}
	for _, s := range sorted {
		salesTable.Rows = append(salesTable.Rows, []string{
			FormatDate(s.Date, loc),
			s.Shift,
			FormatLiters(s.Liters),
			FormatCurrency(s.TotalPrice.Float64()),
		})
	}
	tables := []Table{salesTable}

	if len(st.Tanks) > 0 {
		tanks := Table{
			Title: TitleTanks,
			Head:  []string{"Jenis BBM", "Kapasitas (L)", "Volume (L)", "Persentase (%)"},
		}
		for _, tank := range st.Tanks {
			tanks.Rows = append(tanks.Rows, []string{
				tank.FuelType,
				tank.Capacity.String(),
				tank.CurrentVolume.String(),
				FormatPercent(tank),
			})
		}
		tables = append(tables, tanks)
	}
	return tables
}

// IncidentSection builds the equipment damage and issue tables, each only when non-empty.
func IncidentSection(st *model.Station, loc *time.Location) []Table {
	var tables []Table

	if len(st.EquipmentDamageReports) > 0 {
		t := Table{Title: TitleDamage, Head: []string{"Tanggal", "Unit", "Deskripsi Kerusakan"}}
		for _, r := range sortedDamage(st.EquipmentDamageReports, loc) {
			t.Rows = append(t.Rows, []string{FormatDate(r.Date, loc), r.Unit, r.Description})
		}
		tables = append(tables, t)
	}

	if len(st.IssueReports) > 0 {
		t := Table{Title: TitleIssues, Head: []string{"Tanggal", "Judul Laporan", "Deskripsi"}}
		for _, r := range sortedIssues(st.IssueReports, loc) {
			t.Rows = append(t.Rows, []string{FormatDate(r.Date, loc), r.Title, r.Description})
		}
		tables = append(tables, t)
	}
	return tables
}

// ChecklistSection builds the checklist log from already merged entries.
func ChecklistSection(items []TaggedChecklist, loc *time.Location) []Table {
	t := Table{
		Title:  TitleChecklist,
		Head:   []string{"Tanggal", "Tipe", "Aktivitas", "Nama Pelapor", "Jabatan", "Status"},
		Widths: checklistWidths,
	}
	for _, item := range items {
		t.Rows = append(t.Rows, []string{
			FormatDate(item.Date, loc),
			string(item.Category),
			Description(item.ChecklistItem),
			item.ReporterName(),
			item.ReporterRole(),
			Status(item.ChecklistItem),
		})
	}
	return []Table{t}
}

// OperationalSection builds the staff, pump and stock delivery tables, each only when non-empty.
func OperationalSection(st *model.Station, loc *time.Location) []Table {
	var tables []Table

	if len(st.Users) > 0 {
		t := Table{Title: TitleStaff, Head: []string{"Nama", "Jabatan (Role)"}}
		for _, u := range st.Users {
			t.Rows = append(t.Rows, []string{u.Name, u.Role})
		}
		tables = append(tables, t)
	}

	if len(st.PumpUnits) > 0 {
		t := Table{Title: TitlePumps, Head: []string{"Kode Pompa"}}
		for _, p := range st.PumpUnits {
			t.Rows = append(t.Rows, []string{p.Code})
		}
		tables = append(tables, t)
	}

	if len(st.StockDeliveries) > 0 {
		t := Table{Title: TitleDeliveries, Head: []string{"Tanggal Kirim", "Produk & Volume (L)"}}
		for _, d := range sortedDeliveries(st.StockDeliveries, loc) {
			t.Rows = append(t.Rows, []string{FormatDate(d.CreatedAt, loc), FormatVolumes(d)})
		}
		tables = append(tables, t)
	}
	return tables
}

// BuildFull assembles the complete station report: every section, unfiltered.
func BuildFull(st *model.Station, opts Options, now time.Time) Document {
	loc := opts.location()
	doc := Document{
		Title:     titleFullPrefix + st.Code,
		Address:   st.Address,
		PrintedAt: now.In(loc),
	}
	doc.Tables = append(doc.Tables, FinancialSection(st, st.FuelSales, loc)...)
	doc.Tables = append(doc.Tables, IncidentSection(st, loc)...)
	doc.Tables = append(doc.Tables, ChecklistSection(MergeChecklists(st, loc), loc)...)
	doc.Tables = append(doc.Tables, OperationalSection(st, loc)...)
	return doc
}

// BuildTab assembles the report for a single tab. Sales and checklists are
// restricted to the periods in opts.
func BuildTab(st *model.Station, tab Tab, opts Options, now time.Time) (Document, error) {
	loc := opts.location()
	doc := Document{
		Title:     fmt.Sprintf(titleTabTemplate, tab.Title(), st.Code),
		Address:   st.Address,
		PrintedAt: now.In(loc),
	}

	switch tab {
	case TabSummary:
		doc.Tables = FinancialSection(st, FilterSales(st.FuelSales, opts.SalesPeriod, loc), loc)
	case TabReports:
		doc.Tables = IncidentSection(st, loc)
	case TabChecklist:
		doc.Tables = ChecklistSection(FilterChecklists(MergeChecklists(st, loc), opts.ChecklistPeriod, loc), loc)
	case TabOperational:
		doc.Tables = OperationalSection(st, loc)
	default:
		return Document{}, fmt.Errorf("unknown tab %q", tab)
	}
	return doc, nil
}
