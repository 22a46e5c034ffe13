package csvloader

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/Sensei3747/Market-Intelligence/internal/domain"
	"github.com/Sensei3747/Market-Intelligence/pkg/log"
)

var (
	ErrDatasetFileNotFound = errors.New("dataset file not found")
	ErrMissingColumn       = errors.New("required column missing")
	ErrEmptyFile           = errors.New("dataset file is empty")
)

var businessRequired = []string{
	domain.BusinessColumnDate,
	domain.BusinessColumnOrders,
	domain.BusinessColumnNewOrders,
	domain.BusinessColumnNewCustomers,
	domain.BusinessColumnRevenue,
	domain.BusinessColumnProfit,
}

var marketingRequired = []string{
	domain.MarketingColumnDate,
	domain.MarketingColumnImpressions,
	domain.MarketingColumnClicks,
	domain.MarketingColumnSpend,
	domain.MarketingColumnAttributedRevenue,
}

// Files são os caminhos dos quatro CSVs
type Files struct {
	Business  string
	Platforms map[domain.Platform]string
}

type Loader struct {
	files Files
}

func New(files Files) *Loader {
	return &Loader{files: files}
}

// Load lê os quatro arquivos em paralelo. O primeiro erro cancela os demais.
func (l *Loader) Load(ctx context.Context) (*domain.RawDataset, error) {
	g, ctx := errgroup.WithContext(ctx)

	dataset := &domain.RawDataset{Marketing: make(map[domain.Platform]domain.RawTable, len(domain.Platforms))}
	var mu sync.Mutex

	g.Go(func() error {
		table, err := readTable(ctx, l.files.Business, businessRequired)
		if err != nil {
			return err
		}
		dataset.Business = table
		return nil
	})

	for _, platform := range domain.Platforms {
		platform := platform
		path, ok := l.files.Platforms[platform]
		if !ok {
			return nil, errors.Errorf("no file configured for platform %s", platform)
		}

		g.Go(func() error {
			table, err := readTable(ctx, path, marketingRequired)
			if err != nil {
				return err
			}

			mu.Lock()
			dataset.Marketing[platform] = table
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.L.WithFields(log.Fields{
		"rows":            len(dataset.Business.Rows),
		"dataset_sources": len(dataset.Marketing) + 1,
	}).Debug("csvloader: dataset files read")

	return dataset, nil
}

func readTable(ctx context.Context, path string, required []string) (domain.RawTable, error) {
	if err := ctx.Err(); err != nil {
		return domain.RawTable{}, err
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.RawTable{}, errors.Wrap(ErrDatasetFileNotFound, path)
		}
		return domain.RawTable{}, errors.Wrapf(err, "opening %s", path)
	}
	defer file.Close()

	table, err := ReadTable(file, path, required)
	if err != nil {
		return domain.RawTable{}, errors.Wrap(err, path)
	}

	return table, nil
}

// ReadTable converte um CSV em RawTable. Todas as células chegam como string;
// a coerção de tipos acontece na limpeza. Um arquivo só com cabeçalho vira uma
// tabela sem linhas; só o arquivo sem cabeçalho é tratado como vazio.
func ReadTable(r io.Reader, source string, required []string) (domain.RawTable, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return domain.RawTable{}, errors.Wrap(err, "reading csv")
	}

	df := dataframe.ReadCSV(bytes.NewReader(content),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithLazyQuotes(true),
		dataframe.NaNValues([]string{}),
	)

	var names []string
	var records [][]string
	nrow := 0
	if df.Err != nil {
		header, err := headerOnly(content)
		if err != nil {
			return domain.RawTable{}, err
		}
		if header == nil {
			return domain.RawTable{}, errors.Wrap(df.Err, "parsing csv")
		}
		names = header
	} else {
		names = df.Names()
		nrow = df.Nrow()
		records = make([][]string, len(names))
		for i, name := range names {
			records[i] = df.Col(name).Records()
		}
	}

	columns := make([]string, len(names))
	index := make(map[string]int, len(names))
	for i, name := range names {
		columns[i] = NormalizeColumn(name)
		if _, dup := index[columns[i]]; !dup {
			index[columns[i]] = i
		}
	}

	for _, column := range required {
		if _, ok := index[column]; !ok {
			return domain.RawTable{}, errors.Wrapf(ErrMissingColumn, "%q", column)
		}
	}

	rows := make([]map[string]string, nrow)
	for r := range rows {
		row := make(map[string]string, len(index))
		for column, i := range index {
			row[column] = strings.TrimSpace(records[i][r])
		}
		rows[r] = row
	}

	return domain.RawTable{Source: source, Columns: columns, Rows: rows}, nil
}

// headerOnly é chamado quando o dataframe não pôde ser montado. Devolve o cabeçalho
// quando o arquivo tem só essa linha, ErrEmptyFile quando não tem nenhuma e nil
// quando o problema é outro.
func headerOnly(content []byte) ([]string, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	lines, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "parsing csv")
	}
	switch len(lines) {
	case 0:
		return nil, ErrEmptyFile
	case 1:
		return lines[0], nil
	default:
		return nil, nil
	}
}

// NormalizeColumn deixa o cabeçalho em minúsculas e colapsa espaços
func NormalizeColumn(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
