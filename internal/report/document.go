package report

import (
	"fmt"
	"strings"
	"time"
)

// Tab identifies one section of the station detail page.
type Tab string

const (
	TabSummary     Tab = "ringkasan"
	TabReports     Tab = "laporan"
	TabChecklist   Tab = "checklist"
	TabOperational Tab = "operasional"
)

// Tabs lists every tab in page order.
var Tabs = []Tab{TabSummary, TabReports, TabChecklist, TabOperational}

// ParseTab validates a tab name.
func ParseTab(s string) (Tab, error) {
	for _, t := range Tabs {
		if string(t) == strings.ToLower(strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tab %q", s)
}

// Title returns the capitalised tab name used in document titles.
func (t Tab) Title() string {
	if t == "" {
		return ""
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

// Document is a printable report: a header followed by titled tables.
type Document struct {
	Title     string
	Address   string
	PrintedAt time.Time
	Tables    []Table
}

// Table is one titled grid. Widths are in millimetres; a zero width shares
// the remaining page width. A nil Widths splits the page evenly.
type Table struct {
	Title  string
	Head   []string
	Rows   [][]string
	Widths []float64
}

// EmptyNote is printed in place of a table without rows.
func (t Table) EmptyNote() string {
	return fmt.Sprintf("(Tidak ada data untuk \"%s\")", t.Title)
}

// FullFileName is the download name of a complete station report.
func FullFileName(code string) string {
	return fmt.Sprintf("Laporan_Lengkap_SPBU_%s.pdf", fileSafeCode(code))
}

// TabFileName is the download name of a single-tab report.
func TabFileName(tab Tab, code string) string {
	return fmt.Sprintf("Laporan_%s_SPBU_%s.pdf", tab.Title(), fileSafeCode(code))
}

var fileCodeReplacer = strings.NewReplacer(".", "-", "/", "-", "\\", "-")

func fileSafeCode(code string) string {
	return fileCodeReplacer.Replace(code)
}
