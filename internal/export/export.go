package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"spbu-monitor-backend/internal/model"
	"spbu-monitor-backend/internal/report"
	"spbu-monitor-backend/internal/store"
)

// File is a rendered PDF report with its download name.
type File struct {
	Name string
	Data []byte
}

// Exporter renders station reports from store snapshots.
type Exporter struct {
	store   store.Store
	loc     *time.Location
	workers int
	now     func() time.Time
}

// NewExporter creates an exporter that formats dates in loc and runs at most
// workers renders at once in All.
func NewExporter(s store.Store, loc *time.Location, workers int) *Exporter {
	if loc == nil {
		loc = time.UTC
	}
	if workers < 1 {
		workers = 1
	}
	return &Exporter{
		store:   s,
		loc:     loc,
		workers: workers,
		now:     time.Now,
	}
}

// Location returns the timezone reports are rendered in.
func (e *Exporter) Location() *time.Location {
	return e.loc
}

// Station fetches the station snapshot and renders its report. An empty tab
// renders the complete report, ignoring the periods in opts.
func (e *Exporter) Station(ctx context.Context, id int64, tab report.Tab, opts report.Options) (*File, error) {
	st, err := e.store.GetStation(ctx, id)
	if err != nil {
		return nil, err
	}
	if opts.Location == nil {
		opts.Location = e.loc
	}

	var (
		doc  report.Document
		name string
	)
	if tab == "" {
		doc = report.BuildFull(st, opts, e.now())
		name = report.FullFileName(st.Code)
	} else {
		doc, err = report.BuildTab(st, tab, opts, e.now())
		if err != nil {
			return nil, err
		}
		name = report.TabFileName(tab, st.Code)
	}

	var buf bytes.Buffer
	if err := report.Render(doc, &buf); err != nil {
		return nil, fmt.Errorf("station %d: %w", id, err)
	}
	log.WithField("station_id", id).Debugf("rendered %s (%d bytes)", name, buf.Len())
	return &File{Name: name, Data: buf.Bytes()}, nil
}

// All writes the complete report of every station into dir and returns the
// written paths in list order. The first failure cancels the remaining exports.
func (e *Exporter) All(ctx context.Context, dir string) ([]string, error) {
	stations, err := e.store.ListStations(ctx)
	if err != nil {
		return nil, err
	}
	names, err := exportNames(stations)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	paths := make([]string, len(stations))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, s := range stations {
		i, s := i, s
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			f, err := e.Station(gctx, s.ID, "", report.Options{})
			if err != nil {
				return fmt.Errorf("export station %d: %w", s.ID, err)
			}
			path := filepath.Join(dir, names[i])
			if err := os.WriteFile(path, f.Data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Printf("Exported %d station reports to %s", len(paths), dir)
	return paths, nil
}

// exportNames assigns each station a distinct file name. Codes that collapse
// to the same name are told apart by the station ID.
func exportNames(stations []model.StationSummary) ([]string, error) {
	counts := make(map[string]int, len(stations))
	for _, s := range stations {
		counts[report.FullFileName(s.Code)]++
	}

	names := make([]string, len(stations))
	taken := make(map[string]bool, len(stations))
	for i, s := range stations {
		name := report.FullFileName(s.Code)
		if counts[name] > 1 {
			name = fmt.Sprintf("%s_%d.pdf", strings.TrimSuffix(name, ".pdf"), s.ID)
		}
		if taken[name] {
			return nil, fmt.Errorf("station %d: file name %s already in use", s.ID, name)
		}
		taken[name] = true
		names[i] = name
	}
	return names, nil
}
