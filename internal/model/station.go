package model

// StationSummary is a station entry as returned by the list endpoint.
type StationSummary struct {
	ID      int64  `json:"id"`
	Code    string `json:"code_spbu"`
	Address string `json:"address"`
}

// Station is a fully populated station record with its nested operational collections.
type Station struct {
	ID      int64  `json:"id"`
	Code    string `json:"code_spbu"`
	Address string `json:"address"`

	Users     []User     `json:"users,omitempty"`
	Tanks     []Tank     `json:"tanks,omitempty"`
	FuelSales []FuelSale `json:"fuelSale,omitempty"`

	ChecklistMushola   []ChecklistItem `json:"checklistMushola,omitempty"`
	ChecklistAwalShift []ChecklistItem `json:"checklistAwalShift,omitempty"`
	ChecklistToilet    []ChecklistItem `json:"checklistToilet,omitempty"`
	ChecklistOffice    []ChecklistItem `json:"checklistOffice,omitempty"`
	ChecklistGarden    []ChecklistItem `json:"checklistGarden,omitempty"`
	ChecklistDriveway  []ChecklistItem `json:"checklistDriveway,omitempty"`

	EquipmentDamageReports []EquipmentDamageReport `json:"equipmentDamageReport,omitempty"`
	IssueReports           []IssueReport           `json:"issueReport,omitempty"`
	PumpUnits              []PumpUnit              `json:"pumpUnit,omitempty"`
	StockDeliveries        []StockDelivery         `json:"stockDelivery,omitempty"`
}

// Summary returns the list-level view of the station.
func (s *Station) Summary() StationSummary {
	return StationSummary{ID: s.ID, Code: s.Code, Address: s.Address}
}

// User is a station staff member.
type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// Tank is an underground fuel tank.
type Tank struct {
	ID            int64   `json:"id"`
	FuelType      string  `json:"fuel_type"`
	Capacity      Decimal `json:"capacity"`
	CurrentVolume Decimal `json:"current_volume"`
}

// FillPercent returns the current fill level in percent. ok is false when the
// capacity is not positive.
func (t Tank) FillPercent() (pct float64, ok bool) {
	if t.Capacity <= 0 {
		return 0, false
	}
	return float64(t.CurrentVolume) / float64(t.Capacity) * 100, true
}

// FuelSale is one shift's fuel sale record.
type FuelSale struct {
	ID         int64     `json:"id"`
	Date       Timestamp `json:"tanggal"`
	Shift      string    `json:"shift"`
	Liters     Decimal   `json:"jumlahLiter"`
	TotalPrice Decimal   `json:"totalHarga"`
}

// EquipmentDamageReport records a damaged piece of station equipment.
type EquipmentDamageReport struct {
	ID          int64     `json:"id"`
	Date        Timestamp `json:"tanggalKerusakan"`
	Unit        string    `json:"namaUnit"`
	Description string    `json:"deskripsiKerusakan"`
}

// IssueReport is a general issue raised by station staff.
type IssueReport struct {
	ID          int64     `json:"id"`
	Date        Timestamp `json:"tanggal"`
	Title       string    `json:"judulLaporan"`
	Description string    `json:"deskripsiLaporan"`
}

// PumpUnit is a fuel dispenser unit.
type PumpUnit struct {
	ID   int64  `json:"id"`
	Code string `json:"kodePompa"`
}
