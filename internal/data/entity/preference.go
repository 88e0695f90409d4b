package entity

// PreferencePlaceholder is the combo-box prompt. It is shown at index 0
// and is never a valid preference value.
const PreferencePlaceholder = "Select Traveler Preference"

// Preferences lists the traveler preference catalogue in display order,
// placeholder first.
var Preferences = []string{
	PreferencePlaceholder,
	"Adventure", "Cultural", "Luxury", "Budget", "Wildlife", "Hiking",
	"Beach", "Historical", "Religious", "Culinary", "Photography", "Snow/Skiing",
	"Wellness", "Road Trips", "SoloTravel", "Family Friendly", "Others",
}

// ValidPreference reports whether p is a selectable preference. The
// placeholder does not count.
func ValidPreference(p string) bool {
	if p == PreferencePlaceholder {
		return false
	}
	for _, v := range Preferences[1:] {
		if v == p {
			return true
		}
	}
	return false
}
