package utils

import "time"

// ParseDate interpreta uma data no formato YYYY-MM-DD
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(time.DateOnly, dateStr)
}

// Yesterday devolve a data de ontem relativa a now, truncada para o dia
func Yesterday(now time.Time) time.Time {
	year, month, day := now.AddDate(0, 0, -1).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, now.Location())
}
