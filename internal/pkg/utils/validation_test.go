package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePasswordRule(t *testing.T) {
	type subject struct {
		Password string `validate:"password"`
	}

	cases := []struct {
		name     string
		password string
		valid    bool
	}{
		{"all character classes present", "Chai@2024", true},
		{"too short", "Ch@i1", false},
		{"missing uppercase", "chai@2024", false},
		{"missing lowercase", "CHAI@2024", false},
		{"missing digit", "Chai@Time", false},
		{"missing special character", "ChaiTime24", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStruct(&subject{Password: tc.password})
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateRoomNumberRule(t *testing.T) {
	type subject struct {
		RoomNumber string `validate:"room_number"`
	}

	cases := []struct {
		name  string
		room  string
		valid bool
	}{
		{"plain number", "204", true},
		{"wing prefix", "B12", true},
		{"four digits", "1104", true},
		{"too many digits", "12045", false},
		{"letters only", "AB", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStruct(&subject{RoomNumber: tc.room})
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
