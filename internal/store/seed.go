package store

import "github.com/pfrederiksen/library-events/internal/event"

// SeedLibraries returns the libraries written on a fresh install.
func SeedLibraries() []event.Library {
	return []event.Library{
		{ID: 1, Name: "Central Library", Location: "123 Main Street", Capacity: 200},
		{ID: 2, Name: "Westside Branch", Location: "456 West Avenue", Capacity: 100},
		{ID: 3, Name: "Eastside Branch", Location: "789 East Boulevard", Capacity: 80},
	}
}

// SeedEvents returns the events written on a fresh install.
func SeedEvents() []event.Event {
	return []event.Event{
		{
			ID:            1,
			Title:         "Children's Storytime: Winter Tales",
			Library:       "Central Library",
			Category:      "Children's Storytime",
			Date:          event.MustParseDate("2024-12-15"),
			Attendees:     event.Attendees{Adults: 8, Children: 25},
			Cost:          150,
			FundingSource: event.FundingLibraryBudget,
			Description:   "Winter themed stories for children aged 3-7",
		},
		{
			ID:            2,
			Title:         "Author Talk: Local History",
			Library:       "Westside Branch",
			Category:      "Author Talk",
			Date:          event.MustParseDate("2024-12-20"),
			Attendees:     event.Attendees{Adults: 45, Children: 0},
			Cost:          500,
			FundingSource: event.FundingDonation,
			Description:   "Meet local author discussing city heritage",
		},
		{
			ID:            3,
			Title:         "Digital Literacy Workshop",
			Library:       "Central Library",
			Category:      "Computer Class",
			Date:          event.MustParseDate("2025-01-10"),
			Attendees:     event.Attendees{Adults: 20, Children: 0},
			Cost:          200,
			FundingSource: event.FundingLibraryBudget,
			Description:   "Basic computer skills for seniors",
		},
		{
			ID:            4,
			Title:         "Book Club: Modern Fiction",
			Library:       "Eastside Branch",
			Category:      "Book Club",
			Date:          event.MustParseDate("2025-01-15"),
			Attendees:     event.Attendees{Adults: 15, Children: 0},
			Cost:          50,
			FundingSource: event.FundingOther,
			Description:   "Monthly book discussion group",
		},
		{
			ID:            5,
			Title:         "Children's Art Workshop",
			Library:       "Westside Branch",
			Category:      "Workshop",
			Date:          event.MustParseDate("2025-01-20"),
			Attendees:     event.Attendees{Adults: 5, Children: 18},
			Cost:          300,
			FundingSource: event.FundingDonation,
			Description:   "Creative arts for ages 8-12",
		},
	}
}
