package processing

import (
	"time"

	"github.com/pkg/errors"

	"github.com/Sensei3747/Market-Intelligence/internal/domain"
	"github.com/Sensei3747/Market-Intelligence/pkg/utils"
)

// SourceBusiness identifica o CSV de negócio no relatório de limpeza
const SourceBusiness = "business"

// CleanBusiness converte a tabela de negócio. Valores numéricos inválidos viram 0
// e são contabilizados no relatório; data inválida interrompe a carga.
func CleanBusiness(table domain.RawTable, report *domain.CleaningReport) ([]domain.BusinessRecord, error) {
	records := make([]domain.BusinessRecord, 0, len(table.Rows))

	for i, row := range table.Rows {
		date, err := parseDate(table.Source, i, row[domain.BusinessColumnDate])
		if err != nil {
			return nil, err
		}

		number := func(column string) float64 {
			return parseNumber(report, SourceBusiness, column, row[column])
		}

		records = append(records, domain.BusinessRecord{
			Date:         date,
			Orders:       number(domain.BusinessColumnOrders),
			NewOrders:    number(domain.BusinessColumnNewOrders),
			NewCustomers: number(domain.BusinessColumnNewCustomers),
			TotalRevenue: number(domain.BusinessColumnRevenue),
			GrossProfit:  number(domain.BusinessColumnProfit),
		})
	}

	report.BusinessRows = len(records)
	return records, nil
}

// CleanMarketing converte a tabela de uma plataforma e marca cada linha com a plataforma de origem
func CleanMarketing(platform domain.Platform, table domain.RawTable, report *domain.CleaningReport) ([]domain.MarketingRecord, error) {
	records := make([]domain.MarketingRecord, 0, len(table.Rows))

	for i, row := range table.Rows {
		date, err := parseDate(table.Source, i, row[domain.MarketingColumnDate])
		if err != nil {
			return nil, err
		}

		number := func(column string) float64 {
			return parseNumber(report, platform.String(), column, row[column])
		}

		records = append(records, domain.MarketingRecord{
			Date:     date,
			Platform: platform,
			Tactic:   row[domain.MarketingColumnTactic],
			State:    row[domain.MarketingColumnState],
			Campaign: row[domain.MarketingColumnCampaign],
			MarketingMetrics: domain.MarketingMetrics{
				Impressions:       number(domain.MarketingColumnImpressions),
				Clicks:            number(domain.MarketingColumnClicks),
				Spend:             number(domain.MarketingColumnSpend),
				AttributedRevenue: number(domain.MarketingColumnAttributedRevenue),
			},
		})
	}

	if report.MarketingRows == nil {
		report.MarketingRows = make(map[domain.Platform]int)
	}
	report.MarketingRows[platform] = len(records)
	return records, nil
}

// Clean aplica a limpeza no dataset bruto inteiro. As linhas de marketing saem na ordem das plataformas.
func Clean(raw *domain.RawDataset) ([]domain.BusinessRecord, []domain.MarketingRecord, domain.CleaningReport, error) {
	report := domain.CleaningReport{MarketingRows: make(map[domain.Platform]int)}

	business, err := CleanBusiness(raw.Business, &report)
	if err != nil {
		return nil, nil, report, err
	}

	var marketing []domain.MarketingRecord
	for _, platform := range domain.Platforms {
		table, ok := raw.Marketing[platform]
		if !ok {
			continue
		}
		rows, err := CleanMarketing(platform, table, &report)
		if err != nil {
			return nil, nil, report, err
		}
		marketing = append(marketing, rows...)
	}

	return business, marketing, report, nil
}

func parseDate(source string, row int, value string) (date time.Time, err error) {
	date, err = utils.ParseCalendarDate(value)
	if err != nil {
		// linha 1 é o cabeçalho
		return date, errors.Wrapf(ErrInvalidDate, "%s row %d: %q", source, row+2, value)
	}
	return date, nil
}

func parseNumber(report *domain.CleaningReport, source, column, value string) float64 {
	number, ok := utils.ParseNumber(value)
	if !ok {
		report.AddMissing(source, column)
		return 0
	}
	return number
}
