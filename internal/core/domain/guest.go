package domain

import "time"

// DefaultGuestName is used when a guest never supplied a name
const DefaultGuestName = "Guest"

// Guest represents a guest profile keyed by device
type Guest struct {
	DeviceID    string
	Name        string
	PhoneNumber string
	UploadCount int
	CreatedAt   time.Time
	LastActive  time.Time
	UpdatedAt   *time.Time
}

// MergeProfile overwrites name and phone only with non-empty values
func (g *Guest) MergeProfile(name, phoneNumber string) {
	if name != "" {
		g.Name = name
	}
	if g.Name == "" {
		g.Name = DefaultGuestName
	}
	if phoneNumber != "" {
		g.PhoneNumber = phoneNumber
	}
}
