package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/glotecht/glossary-api/internal/models"
)

// CSVFilename — имя файла CSV-выгрузки в заголовке Content-Disposition.
const CSVFilename = "glotecht_terms.csv"

// NoTermsBody — тело ответа для выгрузки пустого каталога: вместо CSV
// с одними заголовками возвращается простой текст.
const NoTermsBody = "No terms found"

// CSV сериализует каталог терминов в CSV.
//
// Первая строка — полный список имён полей в каноническом порядке, далее по
// строке на термин. Отсутствующие значения выводятся пустой ячейкой,
// экранирование разделителей и переводов строк — стандартное для CSV.
// Пустой каталог обрабатывается на уровне обработчика (см. NoTermsBody).
func CSV(terms []*models.Term) ([]byte, error) {
	const op = "export.CSV"

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(FieldNames()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	row := make([]string, len(TermFields))
	for _, t := range terms {
		for i, f := range TermFields {
			value, ok := renderValue(f.Value(t))
			if !ok {
				value = ""
			}
			row[i] = value
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return buf.Bytes(), nil
}
