package domain

import "time"

type DatePreset string

const (
	PresetCustom      DatePreset = "custom"
	PresetLast7Days   DatePreset = "last_7_days"
	PresetLast30Days  DatePreset = "last_30_days"
	PresetLastQuarter DatePreset = "last_quarter"
	PresetAllTime     DatePreset = "all_time"
)

// DashboardFilters é o recorte aplicado sobre a série combinada (datas inclusivas)
type DashboardFilters struct {
	Preset    DatePreset `json:"preset"`
	StartDate time.Time  `json:"start_date"`
	EndDate   time.Time  `json:"end_date"`
	Platforms []Platform `json:"platforms"`
}

// Contains indica se a data está dentro do período do filtro
func (f DashboardFilters) Contains(date time.Time) bool {
	return !date.Before(f.StartDate) && !date.After(f.EndDate)
}
