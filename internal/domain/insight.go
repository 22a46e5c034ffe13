package domain

// StrategicInsights são os insights e recomendações baseados em regras
type StrategicInsights struct {
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
}

// AIInsights agrupa a análise narrativa exibida na aba de inteligência
type AIInsights struct {
	Performance         string                `json:"performance"`
	Recommendations     []string              `json:"recommendations"`
	Trends              string                `json:"trends"`
	Attribution         string                `json:"attribution"`
	ExecutiveSummary    string                `json:"executive_summary"`
	PlatformPerformance []PlatformPerformance `json:"platform_performance"`
}
