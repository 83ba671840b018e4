package constvars

const (
	RegexDateCompactDays = `^\d{8}$`
)
