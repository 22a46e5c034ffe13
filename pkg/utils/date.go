package utils

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// layouts aceitos nas planilhas de origem, em ordem de tentativa
var dateLayouts = []string{
	DateLayout,
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// ParseDate interpreta datas de query string (YYYY-MM-DD). String vazia retorna nil.
func ParseDate(dateStr string) (*time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// ParseCalendarDate aceita qualquer um dos layouts conhecidos e devolve a data à meia-noite UTC
func ParseCalendarDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return TruncateToDay(parsed), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
