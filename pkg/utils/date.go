package utils

import (
	"strconv"
	"strings"
	"time"
)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// SplitReportDay separa uma data no formato DD-MM-YYYY em dia, mês e ano.
// Partes ausentes ficam nil e um ano não numérico vira nil sem invalidar a linha.
func SplitReportDay(value string) (day *string, month *string, year *int) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil, nil
	}

	parts := strings.SplitN(value, "-", 3)

	day = NullIfEmpty(parts[0])
	if len(parts) > 1 {
		month = NullIfEmpty(parts[1])
	}
	if len(parts) > 2 {
		if y, err := strconv.Atoi(strings.TrimSpace(parts[2])); err == nil {
			year = &y
		}
	}

	return day, month, year
}
