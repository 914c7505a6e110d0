package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":    "is required",
	"email":       "must be a valid email",
	"alphanum":    "must contain only alphanumeric characters",
	"min":         "must be at least %s characters long",
	"max":         "maximum at %s characters long",
	"eqfield":     "must match %s",
	"password":    "must be at least 8 characters long and contain an uppercase letter, a lowercase letter, a digit, and a special character",
	"room_number": "must be a valid room label such as 204 or B12",
	"numeric":     "must be a number",
	"len":         "must be %s characters long",
	"oneof":       "must be one of [%s]",
	"gt":          "must be greater than %s",
	"gte":         "must be greater than or equal to %s",
	"lt":          "must be less than %s",
	"lte":         "must be less than or equal to %s",
	"url":         "must be a valid URL",
	"uuid":        "must be a valid UUID",
	"base64":      "must be a valid base64 string",
	"datetime":    "must be a valid timestamp",
	"dive":        "contains an invalid entry",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"len":     true,
	"eqfield": true,
	"gt":      true,
	"gte":     true,
	"lt":      true,
	"lte":     true,
	"oneof":   true,
}
