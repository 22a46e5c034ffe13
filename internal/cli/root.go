package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/Sensei3747/Market-Intelligence/infrastructure/dataset/csvloader"
	"github.com/Sensei3747/Market-Intelligence/infrastructure/llm"
	"github.com/Sensei3747/Market-Intelligence/internal/config"
	"github.com/Sensei3747/Market-Intelligence/internal/usecases/insighting"
	"github.com/Sensei3747/Market-Intelligence/internal/usecases/processing"
	"github.com/Sensei3747/Market-Intelligence/internal/usecases/reporting"
	"github.com/Sensei3747/Market-Intelligence/pkg/log"
)

// app guarda o pipeline montado no PersistentPreRunE e compartilhado pelos subcomandos
type app struct {
	out           io.Writer
	query         reporting.FilterQuery
	datasetFolder string

	cfg      *config.Config
	reports  *reporting.Service
	insights *insighting.Service
}

// NewRootCommand monta a CLI de relatórios sobre o mesmo pipeline da API
func NewRootCommand(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "report",
		Short:         "Marketing intelligence reports from the dataset CSVs",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context())
		},
	}
	root.SetOut(out)
	root.SetErr(out)

	f := root.PersistentFlags()
	f.StringVar(&a.query.Preset, "preset", "", "date preset: all_time, last_7_days, last_30_days, last_quarter, custom")
	f.StringVar(&a.query.StartDate, "start-date", "", "start date (YYYY-MM-DD), implies custom preset")
	f.StringVar(&a.query.EndDate, "end-date", "", "end date (YYYY-MM-DD), implies custom preset")
	f.StringVar(&a.query.Platforms, "platforms", "", "comma separated platforms (default: all)")
	f.StringVar(&a.datasetFolder, "dataset-folder", "", "folder with the CSV files (overrides DATASET_FOLDER)")

	root.AddCommand(
		newSummaryCommand(a),
		newPlatformsCommand(a),
		newInsightsCommand(a),
		newExportCommand(a),
		newAskCommand(a),
	)

	return root
}

func (a *app) setup(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	if a.datasetFolder != "" {
		cfg.Dataset.Folder = a.datasetFolder
	}
	a.cfg = cfg

	log.Setup(cfg.App.LogLevel)

	datasetService := processing.NewService(csvloader.New(csvloader.Files{
		Business:  cfg.Dataset.BusinessPath(),
		Platforms: cfg.Dataset.PlatformPaths(),
	}))
	if _, err := datasetService.Load(ctx); err != nil {
		return err
	}

	var generator insighting.TextGenerator
	if cfg.LLM.Enabled() {
		client, err := llm.NewGemini(ctx, cfg.LLM, cfg.Chat)
		if err != nil {
			log.L.WithError(err).Warn("cli: chat model unavailable")
		} else {
			generator = client
		}
	}

	a.reports = reporting.NewService(datasetService)
	a.insights = insighting.NewService(a.reports, generator)

	return nil
}
