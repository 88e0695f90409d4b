package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreferenceCatalogue(t *testing.T) {
	assert.Len(t, Preferences, 18, "placeholder plus 17 categories")
	assert.Equal(t, PreferencePlaceholder, Preferences[0])
	assert.Equal(t, "Others", Preferences[len(Preferences)-1])
}

func TestValidPreference(t *testing.T) {
	assert.True(t, ValidPreference("Hiking"))
	assert.True(t, ValidPreference("Snow/Skiing"))
	assert.True(t, ValidPreference("Others"))
	assert.False(t, ValidPreference(PreferencePlaceholder))
	assert.False(t, ValidPreference(""))
	assert.False(t, ValidPreference("hiking"), "values are case sensitive")
	assert.False(t, ValidPreference("Skydiving"))
}
