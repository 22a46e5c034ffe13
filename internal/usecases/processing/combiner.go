package processing

import (
	"time"

	"github.com/Sensei3747/Market-Intelligence/internal/domain"
)

// ComputeBusinessKPIs calcula AOV, margem e taxa de novos clientes por dia
func ComputeBusinessKPIs(records []domain.BusinessRecord) []domain.BusinessDay {
	days := make([]domain.BusinessDay, len(records))
	for i, record := range records {
		days[i] = domain.BusinessDay{
			BusinessRecord: record,
			BusinessKPIs:   domain.CalculateBusinessKPIs(record),
		}
	}
	return days
}

// ComputeMarketingKPIs calcula CTR, CPC, CPM e ROAS de cada linha de campanha
func ComputeMarketingKPIs(records []domain.MarketingRecord) []domain.MarketingRow {
	rows := make([]domain.MarketingRow, len(records))
	for i, record := range records {
		rows[i] = domain.MarketingRow{
			MarketingRecord: record,
			MarketingKPIs:   domain.CalculateMarketingKPIs(record.MarketingMetrics),
		}
	}
	return rows
}

type dayKey struct {
	date     time.Time
	platform domain.Platform
}

// kpiMean guarda a média corrente dos KPIs por linha. A média incremental não estoura
// mesmo quando a soma dos valores passaria de math.MaxFloat64.
type kpiMean struct {
	ctr, cpc, cpm, roas float64
}

func runningMean(mean, value float64, n int) float64 {
	count := float64(n)
	return mean + value/count - mean/count
}

// Combine agrupa o marketing por (data, plataforma) e faz left join sobre as linhas de negócio.
// A saída tem exatamente uma linha por linha de negócio, na mesma ordem. Datas de marketing
// sem linha de negócio são descartadas e plataformas sem dados no dia ficam zeradas.
func Combine(business []domain.BusinessDay, marketing []domain.MarketingRow) []domain.CombinedRecord {
	metrics := make(map[dayKey]domain.MarketingMetrics)
	kpis := make(map[dayKey]kpiMean)
	counts := make(map[dayKey]int)

	for _, row := range marketing {
		key := dayKey{date: row.Date, platform: row.Platform}

		m := metrics[key]
		m.Add(row.MarketingMetrics)
		metrics[key] = m

		counts[key]++
		n := counts[key]

		k := kpis[key]
		k.ctr = runningMean(k.ctr, row.CTR, n)
		k.cpc = runningMean(k.cpc, row.CPC, n)
		k.cpm = runningMean(k.cpm, row.CPM, n)
		k.roas = runningMean(k.roas, row.ROAS, n)
		kpis[key] = k
	}

	combined := make([]domain.CombinedRecord, len(business))
	for i, day := range business {
		platforms := make(map[domain.Platform]domain.PlatformDay, len(domain.Platforms))

		for _, platform := range domain.Platforms {
			key := dayKey{date: day.Date, platform: platform}
			n := counts[key]
			if n == 0 {
				platforms[platform] = domain.PlatformDay{}
				continue
			}

			k := kpis[key]
			platforms[platform] = domain.PlatformDay{
				MarketingMetrics: metrics[key],
				MarketingKPIs: domain.MarketingKPIs{
					CTR:  k.ctr,
					CPC:  k.cpc,
					CPM:  k.cpm,
					ROAS: k.roas,
				},
				Rows: n,
			}
		}

		combined[i] = domain.CombinedRecord{BusinessDay: day, Platforms: platforms}
	}

	return combined
}
