package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadSource opens an import file and reads it into a Table, picking the
// reader by file extension. Anything that cannot be parsed as tabular
// data surfaces as ErrSourceUnreadable.
func ReadSource(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xls":
		return ReadXLSX(path)
	case ".csv":
		return ReadCSVFile(path)
	default:
		return nil, fmt.Errorf("%w: unsupported file type %q", ErrSourceUnreadable, filepath.Ext(path))
	}
}

// ReadXLSX reads the first sheet of an Excel workbook into a Table.
// Cell values are taken as their formatted text; downstream
// normalization handles dates and numbers.
func ReadXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("failed to close workbook: %v", err)
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrSourceUnreadable)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}
	if len(rows) == 0 {
		return NewTable(nil, nil), nil
	}

	return NewTable(rows[0], rows[1:]), nil
}

// ReadCSVFile reads a delimited text file into a Table.
func ReadCSVFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("failed to close file: %v", err)
		}
	}()

	return ReadCSV(f)
}

// ReadCSV reads delimited text into a Table. The first record is the
// header row; records may have varying field counts.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // human-maintained exports are ragged

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}
	if len(records) == 0 {
		return NewTable(nil, nil), nil
	}

	return NewTable(records[0], records[1:]), nil
}
