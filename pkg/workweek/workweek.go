package workweek

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Normalize - оставляет только дату (без времени)
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// WeekRange - возвращает неделю Пн..Вс, содержащую ref
func WeekRange(ref time.Time) (time.Time, time.Time) {
	day := Normalize(ref)

	// Monday = 0 .. Sunday = 6
	offset := (int(day.Weekday()) + 6) % 7

	start := day.AddDate(0, 0, -offset)
	end := start.AddDate(0, 0, 6)
	return start, end
}

// ParseDate - парсит дату в формате YYYY-MM-DD
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected format %s", value, dateLayout)
	}
	return Normalize(t), nil
}

// FormatDate - форматирует дату для отображения
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
