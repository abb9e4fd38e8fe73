package domain

import "time"

// Section represents a toggleable block of the wedding site
type Section struct {
	ID        string
	Name      string
	Visible   bool
	Order     int
	UpdatedAt *time.Time
}

// SectionUpdate represents the editable section fields, nil means unchanged
type SectionUpdate struct {
	Visible *bool
	Order   *int
	Name    *string
}

// SectionPatch is one entry of a batch section update
type SectionPatch struct {
	ID     string
	Update SectionUpdate
}

// DefaultSections returns the site sections in display order
func DefaultSections() []Section {
	return []Section{
		{ID: "hero", Name: "Hero Section", Visible: true, Order: 1},
		{ID: "countdown", Name: "Countdown Timer", Visible: true, Order: 2},
		{ID: "wishes", Name: "Wishbook", Visible: true, Order: 3},
		{ID: "wishes-wall", Name: "Beautiful Wishes Wall", Visible: true, Order: 4},
		{ID: "wishes-artwork", Name: "Wish Artwork Generation", Visible: true, Order: 5},
		{ID: "events", Name: "Wedding Events", Visible: true, Order: 6},
		{ID: "events-gallery", Name: "Events Gallery", Visible: true, Order: 7},
		{ID: "captured-gallery", Name: "Captured Moments", Visible: true, Order: 8},
		{ID: "streaming", Name: "Live Streaming", Visible: true, Order: 9},
		{ID: "invitation", Name: "Digital Invitation", Visible: true, Order: 10},
		{ID: "footer", Name: "Footer", Visible: true, Order: 11},
	}
}
