package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stationJSON = `{
  "id": 7,
  "code_spbu": "34.123.01",
  "address": "Jl. Merdeka No. 1",
  "users": [{"id": 1, "name": "Budi", "role": "OPERATOR"}],
  "tanks": [{"id": 3, "fuel_type": "Pertalite", "capacity": "20000.00", "current_volume": 5000}],
  "fuelSale": [{"id": 9, "tanggal": "2025-03-01T08:00:00.000Z", "shift": "Pagi", "jumlahLiter": 1200.5, "totalHarga": "12000000.00"}],
  "checklistToilet": [{"id": 11, "tanggal": "2025-03-02T09:00:00.000Z", "userId": 1, "aktifitasToilet": "Bersihkan lantai", "checklistStatus": "SUDAH_DIKERJAKAN"}],
  "equipmentDamageReport": [{"id": 4, "tanggalKerusakan": "2025-02-10T10:00:00Z", "namaUnit": "Dispenser 2", "deskripsiKerusakan": "Nozzle bocor"}],
  "issueReport": [{"id": 5, "tanggal": null, "judulLaporan": "Listrik padam", "deskripsiLaporan": "Padam 2 jam"}],
  "pumpUnit": [{"id": 6, "kodePompa": "P-01"}],
  "stockDelivery": [{"id": 8, "createdAt": "2025-03-03T07:00:00Z", "spbuId": 7, "volumeSolar": "5000", "volumePertalite": 8000, "volumePertamax": "0"}]
}`

func TestStation_Unmarshal(t *testing.T) {
	var st Station
	require.NoError(t, json.Unmarshal([]byte(stationJSON), &st))

	assert.Equal(t, int64(7), st.ID)
	assert.Equal(t, "34.123.01", st.Code)
	require.Len(t, st.Tanks, 1)
	assert.Equal(t, Decimal(20000), st.Tanks[0].Capacity)
	assert.Equal(t, Decimal(5000), st.Tanks[0].CurrentVolume)

	require.Len(t, st.FuelSales, 1)
	assert.True(t, st.FuelSales[0].Date.Valid)
	assert.Equal(t, Decimal(12000000), st.FuelSales[0].TotalPrice)
	assert.Equal(t, Decimal(1200.5), st.FuelSales[0].Liters)

	require.Len(t, st.ChecklistToilet, 1)
	item := st.ChecklistToilet[0]
	assert.Equal(t, int64(11), item.ID)
	assert.Equal(t, int64(1), item.UserID)
	assert.Equal(t, "Bersihkan lantai", item.Text("aktifitasToilet"))
	assert.Equal(t, "", item.Text("aktifitasMushola"))

	require.Len(t, st.IssueReports, 1)
	assert.False(t, st.IssueReports[0].Date.Valid)

	require.Len(t, st.StockDeliveries, 1)
	assert.Equal(t, []ProductVolume{
		{Product: "Solar", Liters: 5000},
		{Product: "Pertalite", Liters: 8000},
		{Product: "Pertamax", Liters: 0},
	}, st.StockDeliveries[0].Volumes)

	assert.Equal(t, StationSummary{ID: 7, Code: "34.123.01", Address: "Jl. Merdeka No. 1"}, st.Summary())
}

func TestTank_FillPercent(t *testing.T) {
	pct, ok := Tank{Capacity: 20000, CurrentVolume: 5000}.FillPercent()
	assert.True(t, ok)
	assert.InDelta(t, 25.0, pct, 1e-9)

	_, ok = Tank{Capacity: 0, CurrentVolume: 5000}.FillPercent()
	assert.False(t, ok)
}

func TestTimestamp_ZoneHandling(t *testing.T) {
	wib := time.FixedZone("WIB", 7*3600)

	var zoned, local Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2025-03-01T08:00:00Z"`), &zoned))
	require.NoError(t, json.Unmarshal([]byte(`"2025-03-01 08:00:00"`), &local))

	assert.Equal(t, 15, zoned.In(wib).Hour(), "zoned values convert into the location")
	assert.Equal(t, 8, local.In(wib).Hour(), "zone-less values keep their wall clock")

	var bad Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"not a date"`), &bad))
	assert.False(t, bad.Valid)
	assert.True(t, zoned.After(bad, time.UTC))
	assert.False(t, bad.After(zoned, time.UTC))

	// 08.00Z is 15.00 WIB, later than the zone-less 08.00 WIB; in UTC they tie.
	assert.True(t, zoned.After(local, wib))
	assert.False(t, local.After(zoned, wib))
	assert.False(t, zoned.After(local, time.UTC))
}

func TestChecklistItem_MarshalRoundTripKeepsFields(t *testing.T) {
	var item ChecklistItem
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"tanggal":"2025-03-01T08:00:00Z","userId":2,"keterangan":"ok"}`), &item))

	b, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"tanggal":"2025-03-01T08:00:00Z","userId":2,"keterangan":"ok"}`, string(b))
}
