package utils

import (
	"chaipoint-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	hasSpecialChar = regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar)
	hasUppercase   = regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase)
	hasLowercase   = regexp.MustCompile(constvars.RegexContainAtLeastOneLowercase)
	hasDigit       = regexp.MustCompile(constvars.RegexContainAtLeastOneDigit)
	roomNumber     = regexp.MustCompile(constvars.RegexRoomNumber)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("room_number", validateRoomNumber)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	return len(password) >= 8 &&
		hasSpecialChar.MatchString(password) &&
		hasUppercase.MatchString(password) &&
		hasLowercase.MatchString(password) &&
		hasDigit.MatchString(password)
}

// validateRoomNumber accepts hostel room labels like "204" or "B12".
func validateRoomNumber(fl validator.FieldLevel) bool {
	return roomNumber.MatchString(fl.Field().String())
}
