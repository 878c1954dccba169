package report

import (
	"sort"
	"strings"
	"time"

	"spbu-monitor-backend/internal/model"
)

// Category tags a checklist entry with the collection it came from.
type Category string

const (
	CategoryMushola   Category = "Mushola"
	CategoryAwalShift Category = "Awal Shift"
	CategoryToilet    Category = "Toilet"
	CategoryOffice    Category = "Office"
	CategoryGarden    Category = "Taman"
	CategoryDriveway  Category = "Driveway"
)

const noDescription = "Tidak ada keterangan"

// descriptionKeys are the category-specific activity fields, in lookup order.
var descriptionKeys = []string{
	"aktifitasMushola",
	"keterangan",
	"aktifitasToilet",
	"aktifitasOffice",
	"aktifitasGarden",
	"aktifitasDriveway",
}

// TaggedChecklist is a checklist entry annotated with its category and reporter.
type TaggedChecklist struct {
	model.ChecklistItem
	Category Category
	Reporter *model.User
}

// ReporterName returns the reporter's name or "N/A".
func (c TaggedChecklist) ReporterName() string {
	if c.Reporter == nil || c.Reporter.Name == "" {
		return "N/A"
	}
	return c.Reporter.Name
}

// ReporterRole returns the reporter's role or "N/A".
func (c TaggedChecklist) ReporterRole() string {
	if c.Reporter == nil || c.Reporter.Role == "" {
		return "N/A"
	}
	return c.Reporter.Role
}

// MergeChecklists combines the six checklist collections of st into one list,
// newest first as seen in loc. Entries with equal dates keep collection order;
// undated entries go last.
func MergeChecklists(st *model.Station, loc *time.Location) []TaggedChecklist {
	if st == nil {
		return nil
	}

	users := make(map[int64]*model.User, len(st.Users))
	for i := range st.Users {
		users[st.Users[i].ID] = &st.Users[i]
	}

	sources := []struct {
		category Category
		items    []model.ChecklistItem
	}{
		{CategoryMushola, st.ChecklistMushola},
		{CategoryAwalShift, st.ChecklistAwalShift},
		{CategoryToilet, st.ChecklistToilet},
		{CategoryOffice, st.ChecklistOffice},
		{CategoryGarden, st.ChecklistGarden},
		{CategoryDriveway, st.ChecklistDriveway},
	}

	var merged []TaggedChecklist
	for _, src := range sources {
		for _, item := range src.items {
			merged = append(merged, TaggedChecklist{
				ChecklistItem: item,
				Category:      src.category,
				Reporter:      users[item.UserID],
			})
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.After(merged[j].Date, loc)
	})
	return merged
}

// Description returns the activity text of a checklist entry.
func Description(item model.ChecklistItem) string {
	for _, key := range descriptionKeys {
		if v := item.Text(key); v != "" {
			return v
		}
	}
	return noDescription
}

// Status returns the checklist status with underscores turned into spaces.
func Status(item model.ChecklistItem) string {
	if v := item.Text("checklistStatus"); v != "" {
		return strings.ReplaceAll(v, "_", " ")
	}
	return noDescription
}
