package domain

import "time"

// RawDataset contém as linhas lidas dos CSVs, antes da limpeza
type RawDataset struct {
	Business  RawTable
	Marketing map[Platform]RawTable
}

// RawTable é uma tabela de strings com cabeçalho normalizado
type RawTable struct {
	Source  string
	Columns []string
	Rows    []map[string]string
}

// CleaningReport contabiliza o que foi coagido durante a limpeza
type CleaningReport struct {
	BusinessRows  int                       `json:"business_rows"`
	MarketingRows map[Platform]int          `json:"marketing_rows"`
	MissingValues map[string]map[string]int `json:"missing_values"`
}

// AddMissing registra um valor ausente/inválido em uma coluna de uma fonte
func (r *CleaningReport) AddMissing(source, column string) {
	if r.MissingValues == nil {
		r.MissingValues = make(map[string]map[string]int)
	}
	if r.MissingValues[source] == nil {
		r.MissingValues[source] = make(map[string]int)
	}
	r.MissingValues[source][column]++
}

// TotalMissing retorna o total de valores coagidos para ausente
func (r CleaningReport) TotalMissing() int {
	total := 0
	for _, columns := range r.MissingValues {
		for _, count := range columns {
			total += count
		}
	}
	return total
}

// Dataset é o resultado memoizado do pipeline
type Dataset struct {
	Combined []CombinedRecord `json:"combined"`
	Report   CleaningReport   `json:"report"`
	LoadedAt time.Time        `json:"loaded_at"`
}

// DateBounds retorna a menor e a maior data da série combinada
func (d *Dataset) DateBounds() (time.Time, time.Time, bool) {
	if d == nil || len(d.Combined) == 0 {
		return time.Time{}, time.Time{}, false
	}

	minDate, maxDate := d.Combined[0].Date, d.Combined[0].Date
	for _, row := range d.Combined[1:] {
		if row.Date.Before(minDate) {
			minDate = row.Date
		}
		if row.Date.After(maxDate) {
			maxDate = row.Date
		}
	}
	return minDate, maxDate, true
}
