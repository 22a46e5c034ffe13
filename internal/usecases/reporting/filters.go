package reporting

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/Sensei3747/Market-Intelligence/internal/domain"
	"github.com/Sensei3747/Market-Intelligence/pkg/utils"
)

var ErrInvalidFilter = errors.New("invalid filter")

var validate = validator.New(validator.WithRequiredStructEnabled())

// FilterQuery são os parâmetros de filtro aceitos pela API e pela CLI
type FilterQuery struct {
	Preset    string `validate:"omitempty,oneof=custom last_7_days last_30_days last_quarter all_time"`
	StartDate string `validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `validate:"omitempty,datetime=2006-01-02"`
	Platforms string `validate:"omitempty,max=64"`
}

// ResolveFilters converte a query em um período concreto ancorado nas datas do dataset.
// Sem preset e sem datas o período é o dataset inteiro.
func ResolveFilters(query FilterQuery, minDate, maxDate time.Time) (*domain.DashboardFilters, error) {
	query.Preset = strings.ToLower(strings.TrimSpace(query.Preset))
	if err := validate.Struct(query); err != nil {
		return nil, errors.Wrap(ErrInvalidFilter, err.Error())
	}

	platforms, err := domain.ParsePlatforms(query.Platforms)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidFilter, err.Error())
	}

	preset := domain.DatePreset(query.Preset)
	if preset == "" {
		preset = domain.PresetAllTime
		if query.StartDate != "" || query.EndDate != "" {
			preset = domain.PresetCustom
		}
	}

	filters := &domain.DashboardFilters{Preset: preset, Platforms: platforms}

	switch preset {
	case domain.PresetAllTime:
		filters.StartDate, filters.EndDate = minDate, maxDate
	case domain.PresetLast7Days:
		filters.StartDate, filters.EndDate = maxDate.AddDate(0, 0, -6), maxDate
	case domain.PresetLast30Days:
		filters.StartDate, filters.EndDate = maxDate.AddDate(0, 0, -29), maxDate
	case domain.PresetLastQuarter:
		filters.StartDate, filters.EndDate = PreviousQuarter(maxDate)
	case domain.PresetCustom:
		filters.StartDate, filters.EndDate = minDate, maxDate
		if start, _ := utils.ParseDate(query.StartDate); start != nil {
			filters.StartDate = *start
		}
		if end, _ := utils.ParseDate(query.EndDate); end != nil {
			filters.EndDate = *end
		}
	}

	if filters.EndDate.Before(filters.StartDate) {
		return nil, errors.Wrapf(ErrInvalidFilter, "start_date %s is after end_date %s",
			utils.FormatDate(filters.StartDate), utils.FormatDate(filters.EndDate))
	}

	return filters, nil
}

// PreviousQuarter devolve o trimestre civil completo anterior ao trimestre que contém a data
func PreviousQuarter(date time.Time) (time.Time, time.Time) {
	currentStart := quarterStart(date)
	lastEnd := currentStart.AddDate(0, 0, -1)
	return quarterStart(lastEnd), lastEnd
}

func quarterStart(date time.Time) time.Time {
	month := time.Month((int(date.Month())-1)/3*3 + 1)
	return time.Date(date.Year(), month, 1, 0, 0, 0, 0, time.UTC)
}

// Filter mantém as linhas dentro do período, na ordem original
func Filter(rows []domain.CombinedRecord, filters *domain.DashboardFilters) []domain.CombinedRecord {
	filtered := make([]domain.CombinedRecord, 0, len(rows))
	for _, row := range rows {
		if filters.Contains(row.Date) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
