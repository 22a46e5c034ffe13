package exporter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Sensei3747/Market-Intelligence/internal/domain"
	"github.com/Sensei3747/Market-Intelligence/pkg/utils"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

const (
	sheetDaily     = "Daily"
	sheetSummary   = "Summary"
	sheetPlatforms = "Platforms"
)

// Report é o conteúdo exportado: linhas filtradas mais os agregados do período
type Report struct {
	Platforms    []domain.Platform
	Rows         []domain.CombinedRecord
	Summary      domain.SummaryStats
	Performances []domain.PlatformPerformance
}

func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, value)
	}
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

func (f Format) FileName() string {
	return "marketing_report." + string(f)
}

func Write(w io.Writer, format Format, report Report) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, report)
	case FormatXLSX:
		return WriteXLSX(w, report)
	default:
		return ErrUnsupportedFormat
	}
}

// WriteCSV exporta apenas a tabela diária combinada
func WriteCSV(w io.Writer, report Report) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(domain.CombinedColumns(report.Platforms)); err != nil {
		return err
	}

	for _, row := range report.Rows {
		values := row.Values(report.Platforms)
		record := make([]string, 0, len(values)+1)
		record = append(record, utils.FormatDate(row.Date))
		for _, v := range values {
			record = append(record, strconv.FormatFloat(v, 'f', -1, 64))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteXLSX exporta as abas Daily, Summary e Platforms
func WriteXLSX(w io.Writer, report Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetDaily); err != nil {
		return err
	}
	if err := writeDailySheet(f, report); err != nil {
		return err
	}

	if _, err := f.NewSheet(sheetSummary); err != nil {
		return err
	}
	if err := writeSummarySheet(f, report.Summary); err != nil {
		return err
	}

	if _, err := f.NewSheet(sheetPlatforms); err != nil {
		return err
	}
	if err := writePlatformsSheet(f, report.Performances); err != nil {
		return err
	}

	return f.Write(w)
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func writeDailySheet(f *excelize.File, report Report) error {
	columns := domain.CombinedColumns(report.Platforms)
	header := make([]interface{}, len(columns))
	for i, column := range columns {
		header[i] = column
	}
	if err := setRow(f, sheetDaily, 1, header); err != nil {
		return err
	}

	for i, row := range report.Rows {
		values := row.Values(report.Platforms)
		record := make([]interface{}, 0, len(values)+1)
		record = append(record, utils.FormatDate(row.Date))
		for _, v := range values {
			record = append(record, v)
		}
		if err := setRow(f, sheetDaily, i+2, record); err != nil {
			return err
		}
	}

	return nil
}

func writeSummarySheet(f *excelize.File, stats domain.SummaryStats) error {
	rows := [][]interface{}{
		{"metric", "value"},
		{"date_range", stats.DateRange},
		{"days", stats.Days},
		{"total_spend", stats.TotalSpend},
		{"total_attributed_revenue", stats.TotalAttributedRevenue},
		{"total_business_revenue", stats.TotalBusinessRevenue},
		{"overall_roas", utils.RoundWithTwoDecimalPlace(stats.OverallROAS)},
		{"attribution_gap", utils.RoundWithTwoDecimalPlace(stats.AttributionGap)},
	}

	for i, row := range rows {
		if err := setRow(f, sheetSummary, i+1, row); err != nil {
			return err
		}
	}
	return nil
}

func writePlatformsSheet(f *excelize.File, performances []domain.PlatformPerformance) error {
	if err := setRow(f, sheetPlatforms, 1, []interface{}{"platform", "spend", "attributed_revenue", "clicks", "impressions", "roas", "ctr", "cpc"}); err != nil {
		return err
	}

	for i, p := range performances {
		row := []interface{}{
			p.Platform.String(),
			p.Spend,
			p.Revenue,
			p.Clicks,
			p.Impressions,
			utils.RoundWithTwoDecimalPlace(p.ROAS),
			utils.RoundWithTwoDecimalPlace(p.CTR),
			utils.RoundWithTwoDecimalPlace(p.CPC),
		}
		if err := setRow(f, sheetPlatforms, i+2, row); err != nil {
			return err
		}
	}
	return nil
}
