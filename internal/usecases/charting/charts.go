package charting

import (
	"errors"
	"io"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/gonum/stat"

	"github.com/Sensei3747/Market-Intelligence/internal/domain"
)

var (
	ErrUnknownChart   = errors.New("unknown chart")
	ErrUnknownMetric  = errors.New("unknown comparison metric")
	ErrNotEnoughData  = errors.New("not enough data to render chart")
	errDegenerateData = errors.New("all points share the same x value")
)

const (
	ChartRevenueTrend       = "revenue-trend"
	ChartAttributionGap     = "attribution-gap"
	ChartPlatformComparison = "platform-comparison"
	ChartSpendVsRevenue     = "spend-vs-revenue"
)

// Charts lista os gráficos disponíveis
var Charts = []string{ChartRevenueTrend, ChartAttributionGap, ChartPlatformComparison, ChartSpendVsRevenue}

const (
	MetricROAS  = "roas"
	MetricCTR   = "ctr"
	MetricCPC   = "cpc"
	MetricSpend = "spend"
)

var comparisonMetrics = map[string]struct {
	title string
	color string
	value func(domain.PlatformPerformance) float64
}{
	MetricROAS:  {"ROAS by Platform", "2ca02c", func(p domain.PlatformPerformance) float64 { return p.ROAS }},
	MetricCTR:   {"CTR (%) by Platform", "1f77b4", func(p domain.PlatformPerformance) float64 { return p.CTR }},
	MetricCPC:   {"CPC ($) by Platform", "d62728", func(p domain.PlatformPerformance) float64 { return p.CPC }},
	MetricSpend: {"Spend ($) by Platform", "ff7f0e", func(p domain.PlatformPerformance) float64 { return p.Spend }},
}

const (
	defaultWidth  = 1024
	defaultHeight = 480
)

var (
	colorBusiness   = drawing.ColorFromHex("1f77b4")
	colorAttributed = drawing.ColorFromHex("ff7f0e")
	colorGap        = drawing.Color{R: 220, G: 20, B: 60, A: 178}
	colorTrend      = drawing.ColorFromHex("ff0000")
)

func platformColor(p domain.Platform) drawing.Color {
	return drawing.ColorFromHex(domain.PlatformColors[p])
}

func sortedByDate(rows []domain.CombinedRecord) []domain.CombinedRecord {
	sorted := append([]domain.CombinedRecord(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// valueRange evita o erro de intervalo zero do go-chart e sempre inclui o zero
func valueRange(values ...[]float64) *chart.ContinuousRange {
	lo, hi := 0.0, 0.0
	for _, series := range values {
		for _, v := range series {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if hi == lo {
		hi = lo + 1
	}

	padding := (hi - lo) * 0.05
	if lo < 0 {
		lo -= padding
	}
	return &chart.ContinuousRange{Min: lo, Max: hi + padding}
}

// timeAxisRows ordena por data e exige ao menos duas datas distintas
func timeAxisRows(rows []domain.CombinedRecord) ([]domain.CombinedRecord, error) {
	if len(rows) < 2 {
		return nil, ErrNotEnoughData
	}
	sorted := sortedByDate(rows)
	if sorted[0].Date.Equal(sorted[len(sorted)-1].Date) {
		return nil, ErrNotEnoughData
	}
	return sorted, nil
}

// RevenueTrend desenha a receita do negócio contra a receita atribuída às plataformas
func RevenueTrend(w io.Writer, rows []domain.CombinedRecord, platforms []domain.Platform) error {
	sorted, err := timeAxisRows(rows)
	if err != nil {
		return err
	}
	dates := make([]time.Time, len(sorted))
	business := make([]float64, len(sorted))
	attributed := make([]float64, len(sorted))
	for i, row := range sorted {
		dates[i] = row.Date
		business[i] = row.TotalRevenue
		attributed[i] = row.AttributedRevenue(platforms)
	}

	graph := chart.Chart{
		Title:  "Revenue Trends: Business vs Attributed",
		Width:  defaultWidth,
		Height: defaultHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{Name: "Date", ValueFormatter: chart.TimeDateValueFormatter},
		YAxis: chart.YAxis{Name: "Revenue ($)", Range: valueRange(business, attributed)},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Business Revenue",
				XValues: dates,
				YValues: business,
				Style:   chart.Style{StrokeColor: colorBusiness, StrokeWidth: 3},
			},
			chart.TimeSeries{
				Name:    "Attributed Revenue",
				XValues: dates,
				YValues: attributed,
				Style:   chart.Style{StrokeColor: colorAttributed, StrokeWidth: 3},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(chart.PNG, w)
}

// AttributionGap desenha o percentual diário de receita não atribuída como área
func AttributionGap(w io.Writer, rows []domain.CombinedRecord, platforms []domain.Platform) error {
	sorted, err := timeAxisRows(rows)
	if err != nil {
		return err
	}
	dates := make([]time.Time, len(sorted))
	gaps := make([]float64, len(sorted))
	for i, row := range sorted {
		dates[i] = row.Date
		gaps[i] = row.AttributionGapPct(platforms)
	}

	graph := chart.Chart{
		Title:  "Daily Attribution Gap (Unattributed Revenue %)",
		Width:  defaultWidth,
		Height: defaultHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{Name: "Date", ValueFormatter: chart.TimeDateValueFormatter},
		YAxis: chart.YAxis{Name: "Attribution Gap (%)", Range: valueRange(gaps)},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Attribution Gap %",
				XValues: dates,
				YValues: gaps,
				Style:   chart.Style{StrokeColor: colorGap, StrokeWidth: 1, FillColor: colorGap.WithAlpha(120)},
			},
		},
	}

	return graph.Render(chart.PNG, w)
}

// PlatformComparison desenha uma barra por plataforma para a métrica pedida
func PlatformComparison(w io.Writer, performances []domain.PlatformPerformance, metric string) error {
	metric = strings.ToLower(strings.TrimSpace(metric))
	if metric == "" {
		metric = MetricROAS
	}
	definition, ok := comparisonMetrics[metric]
	if !ok {
		return ErrUnknownMetric
	}
	if len(performances) == 0 {
		return ErrNotEnoughData
	}

	bars := make([]chart.Value, len(performances))
	values := make([]float64, len(performances))
	for i, p := range performances {
		values[i] = definition.value(p)
		color := drawing.ColorFromHex(definition.color)
		bars[i] = chart.Value{
			Label: p.Platform.String(),
			Value: values[i],
			Style: chart.Style{FillColor: color, StrokeColor: color},
		}
	}

	graph := chart.BarChart{
		Title:    definition.title,
		Width:    640,
		Height:   defaultHeight,
		BarWidth: 120,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		YAxis: chart.YAxis{Range: valueRange(values)},
		Bars:  bars,
	}

	return graph.Render(chart.PNG, w)
}

// TrendLine ajusta uma reta por mínimos quadrados, y = alpha + beta*x
func TrendLine(xs, ys []float64) (alpha, beta float64, err error) {
	if len(xs) < 2 || len(xs) != len(ys) {
		return 0, 0, ErrNotEnoughData
	}
	if floats(xs).constant() {
		return 0, 0, errDegenerateData
	}

	alpha, beta = stat.LinearRegression(xs, ys, nil, false)
	return alpha, beta, nil
}

type floats []float64

func (f floats) constant() bool {
	for _, v := range f[1:] {
		if v != f[0] {
			return false
		}
	}
	return true
}

func (f floats) bounds() (float64, float64) {
	lo, hi := f[0], f[0]
	for _, v := range f[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// SpendVsRevenue desenha os pontos diários (investimento, receita atribuída) de cada plataforma
// e a reta de tendência. Só entram dias com investimento e receita positivos.
func SpendVsRevenue(w io.Writer, rows []domain.CombinedRecord, platforms []domain.Platform) error {
	var series []chart.Series
	var allSpend, allRevenue []float64

	for _, platform := range platforms {
		var spend, revenue []float64
		for _, row := range rows {
			day := row.Platform(platform)
			if day.Spend > 0 && day.AttributedRevenue > 0 {
				spend = append(spend, day.Spend)
				revenue = append(revenue, day.AttributedRevenue)
			}
		}
		if len(spend) == 0 {
			continue
		}

		color := platformColor(platform)
		series = append(series, chart.ContinuousSeries{
			Name:    platform.String(),
			XValues: spend,
			YValues: revenue,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    4,
				DotColor:    color.WithAlpha(178),
			},
		})
		allSpend = append(allSpend, spend...)
		allRevenue = append(allRevenue, revenue...)
	}

	if len(allSpend) < 2 {
		return ErrNotEnoughData
	}

	minSpend, maxSpend := floats(allSpend).bounds()
	if alpha, beta, err := TrendLine(allSpend, allRevenue); err == nil {
		series = append(series, chart.ContinuousSeries{
			Name:    "Trend Line",
			XValues: []float64{minSpend, maxSpend},
			YValues: []float64{alpha + beta*minSpend, alpha + beta*maxSpend},
			Style: chart.Style{
				StrokeColor:     colorTrend,
				StrokeWidth:     2,
				StrokeDashArray: []float64{5, 5},
			},
		})
	}

	xRange := &chart.ContinuousRange{Min: minSpend, Max: maxSpend}
	if maxSpend == minSpend {
		xRange.Max = minSpend + 1
	}

	graph := chart.Chart{
		Title:  "Spend vs Attributed Revenue by Platform",
		Width:  defaultWidth,
		Height: defaultHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis:  chart.XAxis{Name: "Daily Spend ($)", Range: xRange},
		YAxis:  chart.YAxis{Name: "Attributed Revenue ($)", Range: valueRange(allRevenue)},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(chart.PNG, w)
}
