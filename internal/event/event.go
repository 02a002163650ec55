package event

import "slices"

// Funding sources.
const (
	FundingLibraryBudget = "Library Budget"
	FundingDonation      = "Donation"
	FundingOther         = "Other"
)

var categories = []string{
	"Book Club",
	"Author Talk",
	"Children's Storytime",
	"Workshop",
	"Reading Group",
	"Computer Class",
	"Film Screening",
	"Art Exhibition",
	"Community Meeting",
	"Educational Program",
}

var fundingSources = []string{FundingLibraryBudget, FundingDonation, FundingOther}

// Categories returns the fixed event category list in display order.
func Categories() []string {
	return slices.Clone(categories)
}

// FundingSources returns the fixed funding source list in display order.
func FundingSources() []string {
	return slices.Clone(fundingSources)
}

// IsCategory reports whether name is one of the known categories.
func IsCategory(name string) bool {
	return slices.Contains(categories, name)
}

// IsFundingSource reports whether name is one of the known funding sources.
func IsFundingSource(name string) bool {
	return slices.Contains(fundingSources, name)
}

// Attendees holds the head count of an event.
type Attendees struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

// Total returns adults plus children.
func (a Attendees) Total() int {
	return a.Adults + a.Children
}

// Event represents one library program occurrence.
type Event struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Library       string    `json:"library"` // Library.Name, not Library.ID
	Category      string    `json:"category"`
	Date          Date      `json:"date"`
	Attendees     Attendees `json:"attendees"`
	Cost          float64   `json:"cost"`
	FundingSource string    `json:"fundingSource"`
	Description   string    `json:"description"`
}

// TotalAttendees returns the combined adult and child attendance.
func (e Event) TotalAttendees() int {
	return e.Attendees.Total()
}

// IsUpcoming reports whether the event falls on or after today.
func (e Event) IsUpcoming(today Date) bool {
	return !e.Date.Before(today)
}

// Library represents a branch location.
type Library struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
}

// LibraryNames returns the names of libs in order.
func LibraryNames(libs []Library) []string {
	names := make([]string, len(libs))
	for i, lib := range libs {
		names[i] = lib.Name
	}
	return names
}

// FindLibrary returns the first library named name.
func FindLibrary(libs []Library, name string) (Library, bool) {
	for _, lib := range libs {
		if lib.Name == name {
			return lib, true
		}
	}
	return Library{}, false
}
