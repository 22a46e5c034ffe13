package main

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Sensei3747/Market-Intelligence/infrastructure/dataset/csvloader"
	"github.com/Sensei3747/Market-Intelligence/infrastructure/llm"
	"github.com/Sensei3747/Market-Intelligence/internal/api"
	"github.com/Sensei3747/Market-Intelligence/internal/config"
	"github.com/Sensei3747/Market-Intelligence/internal/scheduler"
	"github.com/Sensei3747/Market-Intelligence/internal/usecases/charting"
	"github.com/Sensei3747/Market-Intelligence/internal/usecases/chatting"
	"github.com/Sensei3747/Market-Intelligence/internal/usecases/insighting"
	"github.com/Sensei3747/Market-Intelligence/internal/usecases/processing"
	"github.com/Sensei3747/Market-Intelligence/internal/usecases/reporting"
	"github.com/Sensei3747/Market-Intelligence/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	loader := csvloader.New(csvloader.Files{
		Business:  cfg.Dataset.BusinessPath(),
		Platforms: cfg.Dataset.PlatformPaths(),
	})
	datasetService := processing.NewService(loader)

	reloadService := scheduler.NewDatasetReloadService(datasetService, cfg.DatasetReload, registry)

	// Sem dataset a API sobe mesmo assim e responde 503 até a próxima recarga
	if _, err := reloadService.TriggerManualReload(ctx); err != nil {
		log.L.WithError(err).Error("main: initial dataset load failed")
	}

	if err := reloadService.Start(ctx); err != nil {
		log.L.WithError(err).Error("main: error starting dataset reload scheduler")
	}

	reportService := reporting.NewService(datasetService)

	var generator insighting.TextGenerator
	if cfg.LLM.Enabled() {
		client, err := llm.NewGemini(ctx, cfg.LLM, cfg.Chat)
		if err != nil {
			log.L.WithError(err).Error("main: chat model unavailable, using not-configured reply")
		} else {
			generator = client
		}
	} else {
		log.L.Warn("main: GOOGLE_API_KEY not set, chat will answer with the not-configured reply")
	}

	insightService := insighting.NewService(reportService, generator)
	chatService := chatting.NewService(chatting.NewStore(cfg.Chat.MaxMessages), insightService)
	chartService := charting.NewService(reportService)

	server, err := api.New(cfg, api.Services{
		Reports:  reportService,
		Charts:   chartService,
		Insights: insightService,
		Chat:     chatService,
		Reloader: reloadService,
		Datasets: datasetService,
	}, registry)
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.WithError(err).Error("main: server stopped with error")
	}
}
