package validation

import (
	"strings"
	"testing"

	"travelease/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() FormInput {
	return FormInput{
		TravelerName:    "John Traveler",
		CNIC:            "12345-6789012-3",
		Username:        "johndoe1",
		Email:           "john@x.co",
		ContactNumber:   "03001234567",
		Password:        "Password1",
		ConfirmPassword: "Password1",
		Preference:      "Hiking",
	}
}

func TestCheckFormValid(t *testing.T) {
	assert.Nil(t, CheckForm(validInput()))
}

func TestCheckFormatName(t *testing.T) {
	in := validInput()

	in.TravelerName = "Jonathan"
	assert.Nil(t, CheckFormat(FieldName, in))

	in.TravelerName = "Jonatha" // 7
	err := CheckFormat(FieldName, in)
	require.NotNil(t, err)
	assert.Equal(t, MsgInvalidName, err.Notification.Message)
	assert.Equal(t, TitleInvalidInput, err.Notification.Title)

	in.TravelerName = strings.Repeat("a", 21)
	assert.NotNil(t, CheckFormat(FieldName, in))

	in.TravelerName = "John Traveler 9"
	assert.NotNil(t, CheckFormat(FieldName, in), "digits are outside the name charset")
}

func TestCheckFormatNameCountsRunes(t *testing.T) {
	in := validInput()

	// Two bytes per letter: lengths must be counted in characters.
	in.TravelerName = strings.Repeat("Ë", 11)
	assert.Nil(t, CheckFormat(FieldName, in))

	in.TravelerName = strings.Repeat("Ë", 7)
	err := CheckFormat(FieldName, in)
	require.NotNil(t, err)
	assert.Equal(t, MsgInvalidName, err.Notification.Message)

	in.TravelerName = strings.Repeat("Ë", 20)
	assert.Nil(t, CheckFormat(FieldName, in))

	in.TravelerName = strings.Repeat("Ë", 21)
	assert.NotNil(t, CheckFormat(FieldName, in))
}

func TestCheckFormatCNIC(t *testing.T) {
	in := validInput()
	assert.Nil(t, CheckFormat(FieldCNIC, in))

	in.CNIC = "12345-6789012" // 13 chars
	err := CheckFormat(FieldCNIC, in)
	require.NotNil(t, err)
	assert.Equal(t, MsgInvalidCNIC, err.Notification.Message)
	assert.Equal(t, TitleInvalidCNIC, err.Notification.Title)

	in.CNIC = "12345x6789012x3"
	assert.NotNil(t, CheckFormat(FieldCNIC, in))
}

func TestCheckFormatUsernameLengths(t *testing.T) {
	in := validInput()
	for length, wantValid := range map[int]bool{7: false, 8: true, 20: true, 21: false} {
		in.Username = strings.Repeat("a", length)
		got := CheckFormat(FieldUsername, in)
		if wantValid {
			assert.Nil(t, got, "length %d", length)
		} else {
			require.NotNil(t, got, "length %d", length)
			assert.Equal(t, MsgInvalidUsername, got.Notification.Message)
		}
	}

	in.Username = "JohnDoe1"
	assert.NotNil(t, CheckFormat(FieldUsername, in), "uppercase is outside the username charset")
}

func TestCheckFormatEmail(t *testing.T) {
	in := validInput()
	assert.Nil(t, CheckFormat(FieldEmail, in))

	cases := map[string]string{
		"no at sign":     "johnx.co" + "x", // 9 chars, no '@'
		"no dot":         "john@xcox",
		"too short":      "j@x.co",
		"too long":       "a@b." + strings.Repeat("c", 17),
		"uppercase":      "John@x.co",
		"double at sign": "jo@hn@x.co",
	}
	for name, email := range cases {
		in.Email = email
		err := CheckFormat(FieldEmail, in)
		require.NotNil(t, err, name)
		assert.Equal(t, MsgInvalidEmail, err.Notification.Message, name)
		assert.Equal(t, TitleInvalidEmail, err.Notification.Title, name)
	}
}

func TestCheckFormatContact(t *testing.T) {
	in := validInput()
	assert.Nil(t, CheckFormat(FieldContact, in))

	in.ContactNumber = "0300123456" // 10 digits
	err := CheckFormat(FieldContact, in)
	require.NotNil(t, err)
	assert.Equal(t, MsgInvalidContact, err.Notification.Message)

	in.ContactNumber = "0300-123456"
	assert.NotNil(t, CheckFormat(FieldContact, in))
}

func TestCheckFormatPassword(t *testing.T) {
	in := validInput()
	for pw, wantValid := range map[string]bool{
		"Passwd1":          false, // 7
		"Password":         true,  // 8
		"Password1234567":  true,  // 15
		"Password12345678": false, // 16
		"Password!":        false, // symbol
		"Pässwörter":       true,  // 10 letters, 12 bytes
		"Pässwör":          false, // 7 letters
	} {
		in.Password = pw
		got := CheckFormat(FieldPassword, in)
		if wantValid {
			assert.Nil(t, got, pw)
		} else {
			require.NotNil(t, got, pw)
			assert.Equal(t, MsgInvalidPassword, got.Notification.Message, pw)
		}
	}
}

func TestCheckFormatConfirmPassword(t *testing.T) {
	in := validInput()
	assert.Nil(t, CheckFormat(FieldConfirmPassword, in))

	in.ConfirmPassword = "Password2"
	err := CheckFormat(FieldConfirmPassword, in)
	require.NotNil(t, err)
	assert.Equal(t, MsgInvalidConfirm, err.Notification.Message)

	in.ConfirmPassword = ""
	assert.NotNil(t, CheckFormat(FieldConfirmPassword, in))
}

func TestCheckFormatPreference(t *testing.T) {
	in := validInput()
	assert.Nil(t, CheckFormat(FieldPreference, in))

	for _, p := range []string{entity.PreferencePlaceholder, "", "Skydiving"} {
		in.Preference = p
		err := CheckFormat(FieldPreference, in)
		require.NotNil(t, err, p)
		assert.Equal(t, MsgMissingPreference, err.Notification.Message)
		assert.Equal(t, TitleMissingPreference, err.Notification.Title)
	}
}

func TestCheckFormFirstFailureWins(t *testing.T) {
	in := validInput()
	in.TravelerName = "x"
	in.Username = "x"
	in.Preference = entity.PreferencePlaceholder

	err := CheckForm(in)
	require.NotNil(t, err)
	assert.Equal(t, FieldName, err.Field, "name is checked before username and preference")
}

func TestHasData(t *testing.T) {
	assert.False(t, FormInput{}.HasData())
	assert.False(t, FormInput{Preference: entity.PreferencePlaceholder}.HasData())
	assert.True(t, FormInput{Username: "j"}.HasData())
	assert.True(t, FormInput{Preference: "Hiking"}.HasData())
	assert.True(t, FormInput{ConfirmPassword: "x"}.HasData())
}
