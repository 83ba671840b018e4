package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":    "is required",
	"required_if": "is required when %s",
	"url":         "must be a valid URL",
	"oneof":       "must be one of [%s]",
	"min":         "must be at least %s",
	"max":         "must be at most %s",
	"gt":          "must be greater than %s",
	"gte":         "must be greater than or equal to %s",
	"dive":        "has an invalid element",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"required_if": true,
	"oneof":       true,
	"min":         true,
	"max":         true,
	"gt":          true,
	"gte":         true,
}
