package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"spbu-monitor-backend/internal/report"
)

func exportCmd(a *app) *cobra.Command {
	var (
		all    bool
		tab    string
		month  int
		year   int
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "export [station-id]",
		Short: "Export station reports as PDF",
		Long: "Export the complete report of a station, a single tab with --tab, " +
			"or the complete reports of every station with --all.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outDir == "" {
				outDir = a.cfg.Report.OutputDir
			}
			out := cmd.OutOrStdout()

			if all {
				if len(args) > 0 || tab != "" {
					return errors.New("--all takes no station ID or --tab")
				}
				paths, err := a.exporter.All(cmd.Context(), outDir)
				if err != nil {
					return fmt.Errorf("gagal mengekspor PDF: %w", err)
				}
				for _, p := range paths {
					fmt.Fprintln(out, p)
				}
				return nil
			}

			if len(args) != 1 {
				return errors.New("station ID required (or use --all)")
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid station ID %q", args[0])
			}

			var (
				t    report.Tab
				opts report.Options
			)
			if tab != "" {
				if t, err = report.ParseTab(tab); err != nil {
					return err
				}
				period, err := periodFlags(month, year, time.Now().In(a.exporter.Location()))
				if err != nil {
					return err
				}
				opts = report.Options{SalesPeriod: period, ChecklistPeriod: period}
			}

			f, err := a.exporter.Station(cmd.Context(), id, t, opts)
			if err != nil {
				return fmt.Errorf("gagal mengekspor PDF: %w", err)
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}
			path := filepath.Join(outDir, f.Name)
			if err := os.WriteFile(path, f.Data, 0o644); err != nil {
				return err
			}
			fmt.Fprintln(out, path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "export the complete report of every station")
	cmd.Flags().StringVar(&tab, "tab", "", "export one tab: ringkasan, laporan, checklist or operasional")
	cmd.Flags().IntVar(&month, "month", 0, "month (1-12) for the ringkasan and checklist tabs (default current)")
	cmd.Flags().IntVar(&year, "year", 0, "year for the ringkasan and checklist tabs (default current)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default report.output_dir)")
	return cmd
}

// periodFlags fills unset month/year flags from now.
func periodFlags(month, year int, now time.Time) (report.Period, error) {
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	return report.NewPeriod(month, year)
}
