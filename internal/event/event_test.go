package event

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_JSONFieldNames(t *testing.T) {
	evt := Event{
		ID:            3,
		Title:         "Digital Literacy Workshop",
		Library:       "Central Library",
		Category:      "Computer Class",
		Date:          NewDate(2025, time.January, 10),
		Attendees:     Attendees{Adults: 20, Children: 0},
		Cost:          200,
		FundingSource: FundingLibraryBudget,
		Description:   "Basic computer skills for seniors",
	}

	data, err := json.Marshal(evt)
	require.NoError(t, err)

	want := `{"id":3,"title":"Digital Literacy Workshop","library":"Central Library","category":"Computer Class",` +
		`"date":"2025-01-10","attendees":{"adults":20,"children":0},"cost":200,"fundingSource":"Library Budget",` +
		`"description":"Basic computer skills for seniors"}`
	assert.JSONEq(t, want, string(data))
}

func TestEvent_IsUpcoming(t *testing.T) {
	today := NewDate(2025, time.January, 10)
	evt := Event{Date: today}

	assert.True(t, evt.IsUpcoming(today), "same day counts as upcoming")
	assert.False(t, Event{Date: NewDate(2025, time.January, 9)}.IsUpcoming(today))
	assert.True(t, Event{Date: NewDate(2025, time.February, 1)}.IsUpcoming(today))
}

func TestCategories_ReturnsCopy(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 10)
	cats[0] = "changed"

	assert.Equal(t, "Book Club", Categories()[0])
	assert.True(t, IsCategory("Children's Storytime"))
	assert.False(t, IsCategory("children's storytime"))
}

func TestFindLibrary(t *testing.T) {
	libs := []Library{{ID: 1, Name: "Central Library"}, {ID: 2, Name: "Westside Branch"}}

	lib, ok := FindLibrary(libs, "Westside Branch")
	assert.True(t, ok)
	assert.Equal(t, 2, lib.ID)

	_, ok = FindLibrary(libs, "Northside")
	assert.False(t, ok)

	assert.Equal(t, []string{"Central Library", "Westside Branch"}, LibraryNames(libs))
}
