package processing

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sensei3747/Market-Intelligence/internal/domain"
)

func businessRow(date, orders, revenue string) map[string]string {
	return map[string]string{
		domain.BusinessColumnDate:         date,
		domain.BusinessColumnOrders:       orders,
		domain.BusinessColumnNewOrders:    "10",
		domain.BusinessColumnNewCustomers: "5",
		domain.BusinessColumnRevenue:      revenue,
		domain.BusinessColumnProfit:       "300",
	}
}

func TestCleanBusiness(t *testing.T) {
	table := domain.RawTable{
		Source: "business.csv",
		Rows: []map[string]string{
			businessRow("2025-05-16", "20", "1,000"),
			businessRow("05/17/2025", "", "NaN"),
		},
	}
	report := domain.CleaningReport{}

	records, err := CleanBusiness(table, &report)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, time.Date(2025, time.May, 16, 0, 0, 0, 0, time.UTC), records[0].Date)
	assert.Equal(t, 1000.0, records[0].TotalRevenue)
	assert.Equal(t, 20.0, records[0].Orders)

	assert.Equal(t, time.Date(2025, time.May, 17, 0, 0, 0, 0, time.UTC), records[1].Date)
	assert.Zero(t, records[1].Orders)
	assert.Zero(t, records[1].TotalRevenue)

	assert.Equal(t, 2, report.BusinessRows)
	assert.Equal(t, 1, report.MissingValues[SourceBusiness][domain.BusinessColumnOrders])
	assert.Equal(t, 1, report.MissingValues[SourceBusiness][domain.BusinessColumnRevenue])
	assert.Equal(t, 2, report.TotalMissing())
}

func TestCleanBusiness_InvalidDate(t *testing.T) {
	table := domain.RawTable{
		Source: "business.csv",
		Rows:   []map[string]string{businessRow("2025-05-16", "1", "1"), businessRow("yesterday", "1", "1")},
	}

	_, err := CleanBusiness(table, &domain.CleaningReport{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDate))
	assert.Contains(t, err.Error(), "business.csv row 3")
	assert.Contains(t, err.Error(), "yesterday")
}

func TestCleanMarketing(t *testing.T) {
	table := domain.RawTable{
		Source: "TikTok.csv",
		Rows: []map[string]string{{
			domain.MarketingColumnDate:              "2025-05-16",
			domain.MarketingColumnTactic:            "Spark Ads",
			domain.MarketingColumnState:             "NY",
			domain.MarketingColumnCampaign:          "Launch",
			domain.MarketingColumnImpressions:       "10,000",
			domain.MarketingColumnClicks:            "150",
			domain.MarketingColumnSpend:             "$200.50",
			domain.MarketingColumnAttributedRevenue: "",
		}},
	}
	report := domain.CleaningReport{}

	records, err := CleanMarketing(domain.PlatformTikTok, table, &report)
	require.NoError(t, err)
	require.Len(t, records, 1)

	record := records[0]
	assert.Equal(t, domain.PlatformTikTok, record.Platform)
	assert.Equal(t, "Spark Ads", record.Tactic)
	assert.Equal(t, 10000.0, record.Impressions)
	assert.Equal(t, 200.5, record.Spend)
	assert.Zero(t, record.AttributedRevenue)

	assert.Equal(t, 1, report.MarketingRows[domain.PlatformTikTok])
	assert.Equal(t, 1, report.MissingValues["TikTok"][domain.MarketingColumnAttributedRevenue])
}

func TestClean_PlatformOrder(t *testing.T) {
	row := func(date string) map[string]string {
		return map[string]string{
			domain.MarketingColumnDate:              date,
			domain.MarketingColumnImpressions:       "1",
			domain.MarketingColumnClicks:            "1",
			domain.MarketingColumnSpend:             "1",
			domain.MarketingColumnAttributedRevenue: "1",
		}
	}
	raw := &domain.RawDataset{
		Business: domain.RawTable{Rows: []map[string]string{businessRow("2025-01-01", "1", "1")}},
		Marketing: map[domain.Platform]domain.RawTable{
			domain.PlatformTikTok:   {Rows: []map[string]string{row("2025-01-01")}},
			domain.PlatformFacebook: {Rows: []map[string]string{row("2025-01-01")}},
		},
	}

	business, marketing, report, err := Clean(raw)
	require.NoError(t, err)

	assert.Len(t, business, 1)
	require.Len(t, marketing, 2)
	assert.Equal(t, domain.PlatformFacebook, marketing[0].Platform)
	assert.Equal(t, domain.PlatformTikTok, marketing[1].Platform)
	assert.Equal(t, 0, report.MarketingRows[domain.PlatformGoogle])
}

func TestClean_HeaderOnlyPlatformIsZeroFilled(t *testing.T) {
	row := map[string]string{
		domain.MarketingColumnDate:              "2025-01-01",
		domain.MarketingColumnImpressions:       "100",
		domain.MarketingColumnClicks:            "5",
		domain.MarketingColumnSpend:             "10",
		domain.MarketingColumnAttributedRevenue: "30",
	}
	columns := []string{
		domain.MarketingColumnDate,
		domain.MarketingColumnImpressions,
		domain.MarketingColumnClicks,
		domain.MarketingColumnSpend,
		domain.MarketingColumnAttributedRevenue,
	}
	raw := &domain.RawDataset{
		Business: domain.RawTable{Rows: []map[string]string{businessRow("2025-01-01", "1", "100")}},
		Marketing: map[domain.Platform]domain.RawTable{
			domain.PlatformFacebook: {Source: "Facebook.csv", Columns: columns, Rows: []map[string]string{row}},
			domain.PlatformGoogle:   {Source: "Google.csv", Columns: columns, Rows: []map[string]string{row}},
			domain.PlatformTikTok:   {Source: "TikTok.csv", Columns: columns, Rows: []map[string]string{}},
		},
	}

	business, marketing, report, err := Clean(raw)
	require.NoError(t, err)
	assert.Equal(t, 0, report.MarketingRows[domain.PlatformTikTok])

	combined := Combine(ComputeBusinessKPIs(business), ComputeMarketingKPIs(marketing))
	require.Len(t, combined, 1)
	assert.Equal(t, domain.PlatformDay{}, combined[0].Platform(domain.PlatformTikTok))
	assert.Equal(t, 10.0, combined[0].Platform(domain.PlatformGoogle).Spend)
}
