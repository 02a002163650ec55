package event

import (
	"math"
	"strconv"
	"strings"
)

// Payload is an event as submitted by a form: every field is raw text.
type Payload struct {
	Title         string `json:"title" validate:"required"`
	Library       string `json:"library" validate:"required"`
	Category      string `json:"category" validate:"required,category"`
	Date          string `json:"date" validate:"required,isodate"`
	Adults        string `json:"adults"`
	Children      string `json:"children"`
	Cost          string `json:"cost"`
	FundingSource string `json:"fundingSource" validate:"omitempty,funding"`
	Description   string `json:"description"`
}

// LibraryPayload is a library as submitted by a form.
type LibraryPayload struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location"`
	Capacity string `json:"capacity"`
}

// ToEvent validates p and converts it into an Event with a zero ID.
// Numeric fields never fail: unparseable or negative input becomes 0.
func (p Payload) ToEvent() (Event, error) {
	p = p.normalized()
	if err := validate(p); err != nil {
		return Event{}, err
	}

	date, _ := ParseDate(p.Date) // checked by the isodate rule

	funding := p.FundingSource
	if funding == "" {
		funding = FundingLibraryBudget
	}

	return Event{
		Title:    p.Title,
		Library:  p.Library,
		Category: p.Category,
		Date:     date,
		Attendees: Attendees{
			Adults:   ParseCount(p.Adults),
			Children: ParseCount(p.Children),
		},
		Cost:          ParseAmount(p.Cost),
		FundingSource: funding,
		Description:   p.Description,
	}, nil
}

func (p Payload) normalized() Payload {
	p.Title = strings.TrimSpace(p.Title)
	p.Library = strings.TrimSpace(p.Library)
	p.Category = strings.TrimSpace(p.Category)
	p.Date = strings.TrimSpace(p.Date)
	p.FundingSource = strings.TrimSpace(p.FundingSource)
	return p
}

// PayloadOf returns the payload that reproduces e.
func PayloadOf(e Event) Payload {
	return Payload{
		Title:         e.Title,
		Library:       e.Library,
		Category:      e.Category,
		Date:          e.Date.String(),
		Adults:        strconv.Itoa(e.Attendees.Adults),
		Children:      strconv.Itoa(e.Attendees.Children),
		Cost:          strconv.FormatFloat(e.Cost, 'f', -1, 64),
		FundingSource: e.FundingSource,
		Description:   e.Description,
	}
}

// ToLibrary validates p and converts it into a Library with a zero ID.
func (p LibraryPayload) ToLibrary() (Library, error) {
	p.Name = strings.TrimSpace(p.Name)
	if err := validate(p); err != nil {
		return Library{}, err
	}
	return Library{
		Name:     p.Name,
		Location: strings.TrimSpace(p.Location),
		Capacity: ParseCount(p.Capacity),
	}, nil
}

// LibraryPayloadOf returns the payload that reproduces lib.
func LibraryPayloadOf(lib Library) LibraryPayload {
	return LibraryPayload{
		Name:     lib.Name,
		Location: lib.Location,
		Capacity: strconv.Itoa(lib.Capacity),
	}
}

// ParseCount reads a non-negative whole number from form input.
// Like a browser's parseInt, it reads the leading numeric prefix ("12 people"
// is 12) and truncates fractions. Anything else, including negatives, is 0.
func ParseCount(s string) int {
	v := parseNumber(s, false)
	if v >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}

// ParseAmount reads a non-negative decimal amount from form input.
// Like parseFloat, it accepts an exponent ("2.5e2" is 250).
// Unparseable, negative or non-finite input is 0.
func ParseAmount(s string) float64 {
	return parseNumber(s, true)
}

func parseNumber(s string, exponent bool) float64 {
	prefix := numericPrefix(strings.TrimSpace(s), exponent)
	if prefix == "" {
		return 0
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// numericPrefix returns the longest leading [+-]digits[.digits] run of s,
// extended by [eE][+-]digits when exponent is set.
func numericPrefix(s string, exponent bool) string {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
		digits++
	}
	if end < len(s) && s[end] == '.' {
		frac := end + 1
		for frac < len(s) && s[frac] >= '0' && s[frac] <= '9' {
			frac++
		}
		if frac > end+1 {
			digits += frac - end - 1
			end = frac
		}
	}
	if digits == 0 {
		return ""
	}
	if exponent && end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		if exp < len(s) && (s[exp] == '+' || s[exp] == '-') {
			exp++
		}
		start := exp
		for exp < len(s) && s[exp] >= '0' && s[exp] <= '9' {
			exp++
		}
		if exp > start {
			end = exp
		}
	}
	return s[:end]
}
