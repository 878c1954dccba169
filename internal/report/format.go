package report

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"spbu-monitor-backend/internal/model"
)

var monthNames = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

var monthAbbr = [12]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatDate renders ts as "02 Jan 2025, 14.30" in loc, or "-" when absent.
func FormatDate(ts model.Timestamp, loc *time.Location) string {
	if !ts.Valid {
		return "-"
	}
	t := ts.In(loc)
	return fmt.Sprintf("%02d %s %d, %02d.%02d", t.Day(), monthAbbr[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

// FormatPrintedAt renders the document print time, e.g. "1/3/2025, 14.30.05".
func FormatPrintedAt(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d, %02d.%02d.%02d", t.Day(), int(t.Month()), t.Year(), t.Hour(), t.Minute(), t.Second())
}

// FormatCurrency renders amount as whole Rupiah with Indonesian digit grouping: "Rp 1.234.567".
func FormatCurrency(amount float64) string {
	rounded := int64(math.Round(amount))
	if rounded < 0 {
		return "-Rp " + idPrinter.Sprintf("%d", -rounded)
	}
	return "Rp " + idPrinter.Sprintf("%d", rounded)
}

// FormatLiters renders a volume as "1200.5 L".
func FormatLiters(v model.Decimal) string {
	return v.String() + " L"
}

// FormatPercent renders a tank fill level with one decimal, or "-" for tanks without capacity.
func FormatPercent(tank model.Tank) string {
	pct, ok := tank.FillPercent()
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%.1f %%", pct)
}

// FormatVolumes lists the positive product volumes of a delivery: "Pertalite: 8000 L, Solar: 5000 L".
func FormatVolumes(d model.StockDelivery) string {
	out := ""
	for _, v := range d.Volumes {
		if v.Liters <= 0 {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += fmt.Sprintf("%s: %s L", v.Product, v.Liters)
	}
	return out
}
