package utils

import (
	"chaipoint-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterStudentRequest(t *testing.T) {
	t.Run("Email Sanitization", func(t *testing.T) {
		request := &requests.RegisterStudent{
			FullName:    "Priya Sharma",
			Email:       "  PRIYA@CAMPUS.EDU  ",
			HostelBlock: "a",
			RoomNumber:  "b214",
		}

		SanitizeRegisterStudentRequest(request)

		assert.Equal(t, "priya@campus.edu", request.Email, "email should be lowercase and trimmed")
	})

	t.Run("Block And Room Uppercased", func(t *testing.T) {
		request := &requests.RegisterStudent{
			FullName:    "  Rohan Mehta ",
			Email:       "rohan@campus.edu",
			HostelBlock: " c ",
			RoomNumber:  " d110 ",
		}

		SanitizeRegisterStudentRequest(request)

		assert.Equal(t, "Rohan Mehta", request.FullName)
		assert.Equal(t, "C", request.HostelBlock)
		assert.Equal(t, "D110", request.RoomNumber)
	})
}

func TestSanitizeCreateMenuItemRequest(t *testing.T) {
	request := &requests.CreateMenuItem{
		Name:        "  Masala Chai ",
		Description: " hot and sweet  ",
		Category:    " Chai ",
	}

	SanitizeCreateMenuItemRequest(request)

	assert.Equal(t, "Masala Chai", request.Name)
	assert.Equal(t, "hot and sweet", request.Description)
	assert.Equal(t, "chai", request.Category)
}
