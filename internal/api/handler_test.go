package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spbu-monitor-backend/config"
	"spbu-monitor-backend/internal/export"
	"spbu-monitor-backend/internal/model"
	"spbu-monitor-backend/internal/upstream"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockStore struct {
	listErr  error
	stations map[int64]*model.Station
	getErr   error
}

func (m *mockStore) ListStations(ctx context.Context) ([]model.StationSummary, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []model.StationSummary{}
	for _, st := range m.stations {
		out = append(out, st.Summary())
	}
	return out, nil
}

func (m *mockStore) GetStation(ctx context.Context, id int64) (*model.Station, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	st, ok := m.stations[id]
	if !ok {
		return nil, &upstream.APIError{StatusCode: http.StatusNotFound, Message: "SPBU tidak ditemukan"}
	}
	return st, nil
}

func ts(year int, month time.Month, day int) model.Timestamp {
	return model.NewTimestamp(time.Date(year, month, day, 3, 0, 0, 0, time.UTC))
}

func newMockStore() *mockStore {
	return &mockStore{stations: map[int64]*model.Station{
		7: {
			ID:      7,
			Code:    "34.123.01",
			Address: "Jl. Merdeka No. 1",
			Users:   []model.User{{ID: 1, Name: "Budi", Role: "OPERATOR"}},
			Tanks:   []model.Tank{{ID: 1, FuelType: "Pertalite", Capacity: 20000, CurrentVolume: 5000}},
			FuelSales: []model.FuelSale{
				{ID: 1, Date: ts(2025, time.February, 10), Shift: "Pagi", Liters: 100, TotalPrice: 1000000},
				{ID: 2, Date: ts(2025, time.March, 2), Shift: "Siang", Liters: 200, TotalPrice: 2000000},
			},
			ChecklistOffice: []model.ChecklistItem{
				{ID: 5, Date: ts(2025, time.February, 11), UserID: 1, Fields: map[string]any{"aktifitasOffice": "Rapikan_meja"}},
			},
		},
	}}
}

func newTestRouter(s *mockStore) *gin.Engine {
	e := export.NewExporter(s, time.UTC, 1)
	return NewRouter(s, e, &config.ServerConfig{RateLimitPerSec: 1000, RateLimitBurst: 1000})
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestListStations(t *testing.T) {
	w := get(newTestRouter(newMockStore()), "/api/stations")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":7,"code_spbu":"34.123.01","address":"Jl. Merdeka No. 1"}]`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestListStations_UpstreamFailure(t *testing.T) {
	s := newMockStore()
	s.listErr = errors.New("dial tcp: connection refused")

	w := get(newTestRouter(s), "/api/stations")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"title":"Gagal Memuat Daftar SPBU","error":"dial tcp: connection refused"}`, w.Body.String())
}

func TestGetStation(t *testing.T) {
	w := get(newTestRouter(newMockStore()), "/api/stations/7?sales_month=3&sales_year=2025&checklist_month=2&checklist_year=2025")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Station   model.StationSummary `json:"station"`
		Financial struct {
			Month        int     `json:"month"`
			Year         int     `json:"year"`
			TotalRevenue float64 `json:"total_revenue"`
			Sales        []struct {
				ID int64 `json:"id"`
			} `json:"sales"`
		} `json:"financial"`
		Checklists struct {
			Items []struct {
				Type        string `json:"type"`
				Description string `json:"description"`
				Reporter    string `json:"reporter_name"`
			} `json:"items"`
		} `json:"checklists"`
		Tanks []struct {
			FillText string `json:"fill_text"`
		} `json:"tanks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "34.123.01", body.Station.Code)
	assert.Equal(t, 3, body.Financial.Month)
	assert.Equal(t, 2000000.0, body.Financial.TotalRevenue)
	require.Len(t, body.Financial.Sales, 1)
	assert.Equal(t, int64(2), body.Financial.Sales[0].ID)

	require.Len(t, body.Checklists.Items, 1)
	assert.Equal(t, "Office", body.Checklists.Items[0].Type)
	assert.Equal(t, "Rapikan meja", body.Checklists.Items[0].Description)
	assert.Equal(t, "Budi", body.Checklists.Items[0].Reporter)

	require.Len(t, body.Tanks, 1)
	assert.Equal(t, "25.0 %", body.Tanks[0].FillText)
}

func TestGetStation_DefaultsToCurrentMonth(t *testing.T) {
	s := newMockStore()
	h := NewHandler(s, export.NewExporter(s, time.UTC, 1))
	h.now = func() time.Time { return time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC) }

	r := gin.New()
	r.GET("/api/stations/:id", h.GetStation)
	w := get(r, "/api/stations/7")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	financial := body["financial"].(map[string]any)
	assert.Equal(t, float64(2), financial["month"])
	assert.Equal(t, float64(2025), financial["year"])
	assert.Equal(t, float64(1000000), financial["total_revenue"])
	assert.Len(t, body["checklists"].(map[string]any)["items"], 1)
}

func TestGetStation_Errors(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		getErr   error
		wantCode int
		wantBody string
	}{
		{
			name:     "not found",
			target:   "/api/stations/99",
			wantCode: http.StatusNotFound,
			wantBody: `{"title":"Gagal Memuat Detail SPBU 99","error":"SPBU tidak ditemukan"}`,
		},
		{
			name:     "upstream error",
			target:   "/api/stations/7",
			getErr:   &upstream.APIError{StatusCode: http.StatusInternalServerError, Message: "Internal server error"},
			wantCode: http.StatusBadGateway,
			wantBody: `{"title":"Gagal Memuat Detail SPBU 7","error":"Internal server error"}`,
		},
		{
			name:     "bad month",
			target:   "/api/stations/7?sales_month=13",
			wantCode: http.StatusBadRequest,
			wantBody: `{"title":"Gagal Memuat Detail SPBU 7","error":"invalid month 13"}`,
		},
		{
			name:     "bad year",
			target:   "/api/stations/7?checklist_year=abc",
			wantCode: http.StatusBadRequest,
			wantBody: `{"title":"Gagal Memuat Detail SPBU 7","error":"invalid checklist_year \"abc\""}`,
		},
		{
			name:     "bad id",
			target:   "/api/stations/abc",
			wantCode: http.StatusBadRequest,
			wantBody: `{"title":"Permintaan Tidak Valid","error":"invalid station ID \"abc\""}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newMockStore()
			s.getErr = tt.getErr
			w := get(newTestRouter(s), tt.target)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestExportStation(t *testing.T) {
	w := get(newTestRouter(newMockStore()), "/api/stations/7/export")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Laporan_Lengkap_SPBU_34-123-01.pdf"`, w.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestExportTab(t *testing.T) {
	w := get(newTestRouter(newMockStore()), "/api/stations/7/export/ringkasan?month=3&year=2025")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="Laporan_Ringkasan_SPBU_34-123-01.pdf"`, w.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestExport_Errors(t *testing.T) {
	r := newTestRouter(newMockStore())

	w := get(r, "/api/stations/7/export/keuangan")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"title":"Gagal Mengekspor PDF","error":"unknown tab \"keuangan\""}`, w.Body.String())

	w = get(r, "/api/stations/99/export")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"title":"Gagal Mengekspor PDF","error":"SPBU tidak ditemukan"}`, w.Body.String())

	w = get(r, "/api/stations/7/export/checklist?month=0")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthz(t *testing.T) {
	w := get(newTestRouter(newMockStore()), "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
