package domain

// WeddingSettingsCategory is the category seeded on first read
const WeddingSettingsCategory = "wedding"

// SettingFields is the free-form content of one settings category
type SettingFields map[string]any

// DefaultWeddingSettings returns the settings seeded when none exist
func DefaultWeddingSettings() SettingFields {
	return SettingFields{
		"liveStreamUrl":      "https://youtube.com/watch?v=example2",
		"weddingDate":        "October 11, 2025",
		"weddingTime":        "7 PM IST",
		"coupleNames":        "Safalya & Praneet",
		"isLiveStreamActive": false,
		"streamTitle":        "Wedding Ceremony Live",
		"streamDescription":  "Witness the sacred moment as Safalya & Praneet exchange vows in this beautiful ceremony. Join us virtually for this once-in-a-lifetime celebration of love.",
	}
}
