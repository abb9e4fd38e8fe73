package domain

import (
	"strings"
	"unicode"
)

const (
	// AdminPortalDeviceID marks uploads coming from the admin panel
	AdminPortalDeviceID = "admin_portal"
	// CaptureYourMomentsCategory marks uploads coming from the capture moments page
	CaptureYourMomentsCategory = "captureYourMoments"
	// UncategorizedCategory is used when no category is supplied
	UncategorizedCategory = "uncategorized"

	adminUploadsFolder   = "admin-uploads"
	capturedMomentsDir   = "capturedMoments"
	generalUploadsFolder = "general-uploads"
)

// NormalizeCategory lowercases, trims and strips every whitespace rune.
// Empty input maps to UncategorizedCategory.
func NormalizeCategory(category string) string {
	normalized := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(category)))

	if normalized == "" {
		return UncategorizedCategory
	}
	return normalized
}

// ResolveFolder maps an upload source and category to its storage folder.
// The capture moments category matches in raw or normalized form.
func ResolveFolder(deviceID, category string) string {
	if deviceID == AdminPortalDeviceID {
		return adminUploadsFolder + "/" + NormalizeCategory(category)
	}
	if category == CaptureYourMomentsCategory || category == strings.ToLower(CaptureYourMomentsCategory) {
		return capturedMomentsDir
	}
	return generalUploadsFolder
}
