package utils

import (
	"time"
)

func CalculateAge(birthDate string) int {
	if birthDate == "" {
		return 0
	}

	layout := "2006-01-02"
	dob, err := time.Parse(layout, birthDate)
	if err != nil {
		return 0
	}

	today := time.Now()
	age := today.Year() - dob.Year()
	if today.YearDay() < dob.YearDay() {
		age--
	}

	return age
}

// MonthLabel groups timeline entries; record dates are YYYY-MM-DD.
func MonthLabel(date string) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "Unknown"
	}
	return parsed.Format("January 2006")
}
