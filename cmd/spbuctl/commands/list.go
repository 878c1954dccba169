package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"spbu-monitor-backend/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2980B9")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

func listCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stations, err := a.store.ListStations(cmd.Context())
			if err != nil {
				return fmt.Errorf("gagal memuat daftar SPBU: %w", err)
			}
			renderStations(cmd.OutOrStdout(), stations)
			return nil
		},
	}
}

func renderStations(w io.Writer, stations []model.StationSummary) {
	if len(stations) == 0 {
		fmt.Fprintln(w, "Tidak ada SPBU.")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("ID", "Kode SPBU", "Alamat").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, s := range stations {
		t.Row(strconv.FormatInt(s.ID, 10), s.Code, s.Address)
	}
	fmt.Fprintln(w, t.String())
}
