package validator

const fallbackMessage = "{field} is invalid"

var (
	messages = map[string]string{
		"required":   "{field} is required",
		"gte":        "{field} must be greater than or equal to {param}",
		"lte":        "{field} must be less than or equal to {param}",
		"oneof":      "{field} must be one of {param}",
		"max":        "{field} must be at most {param} characters",
		"min":        "{field} must be at least {param} characters",
		"len":        "{field} must be exactly {param} characters",
		"digits":     "{field} must contain digits only",
		"email":      "{field} must be a valid email address",
		"isodate":    "{field} must use the YYYY-MM-DD format",
		"cardexpiry": "{field} must use the MM/YY format",
	}
)
