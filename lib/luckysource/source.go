package luckysource

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/api/sheets/v4"
)

type Source struct {
	svc              *sheets.Service
	spreadsheetId    string
	sheetName        string
	winnersSheetName string
	log              *zap.SugaredLogger
}

func NewSource(svc *sheets.Service, spreadsheetId string, sheetName string, winnersSheetName string, log *zap.SugaredLogger) *Source {
	return &Source{
		svc:              svc,
		spreadsheetId:    spreadsheetId,
		sheetName:        sheetName,
		winnersSheetName: winnersSheetName,
		log:              log,
	}
}

// Fetch resolves the current entry list. It never returns an error: any
// failure on the live path collapses into the fixed mock list with
// isMock=true. A live sheet with zero data rows yields an empty slice and
// isMock=false; the caller decides what an empty list means.
func (s *Source) Fetch(ctx context.Context) ([]Record, bool) {
	records, err := s.fetchLive(ctx)
	if err != nil {
		s.log.Warn("Falling back to mock data: ", err)
		return MockRecords(), true
	}
	return records, false
}

func (s *Source) fetchLive(ctx context.Context) ([]Record, error) {
	if s.svc == nil {
		return nil, errors.New("Sheets client not initialized")
	}
	if s.spreadsheetId == "" {
		return nil, errors.New("no spreadsheet id configured")
	}

	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetId, rangeFor(s.sheetName, "A:D")).Context(ctx).Do()
	if err != nil {
		return nil, errors.Join(fmt.Errorf("Error reading spreadsheet id=%s", s.spreadsheetId), err)
	}

	return parseRecords(resp.Values, s.log)
}

func rangeFor(sheetName string, cells string) string {
	if sheetName == "" {
		return cells
	}
	return sheetName + "!" + cells
}

// parseRecords expects the first row to be a header naming the columns
// id, number, name, description (any order, any case). Rows missing an
// id or number, or carrying non-numeric values there, are skipped.
func parseRecords(values [][]interface{}, log *zap.SugaredLogger) ([]Record, error) {
	if len(values) == 0 {
		return nil, errors.New("spreadsheet has no header row")
	}

	cols := map[string]int{}
	for i, cell := range values[0] {
		cols[strings.ToLower(strings.TrimSpace(cellString(cell)))] = i
	}
	for _, required := range []string{"id", "number", "name", "description"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("spreadsheet header missing column %q", required)
		}
	}

	records := make([]Record, 0, len(values)-1)
	for rowIdx, row := range values[1:] {
		id, err := cellInt(row, cols["id"])
		if err != nil {
			log.Debug("Skipping row ", rowIdx+2, ": bad id: ", err)
			continue
		}
		number, err := cellInt(row, cols["number"])
		if err != nil {
			log.Debug("Skipping row ", rowIdx+2, ": bad number: ", err)
			continue
		}
		records = append(records, Record{
			Id:          id,
			Number:      number,
			Name:        rowString(row, cols["name"]),
			Description: rowString(row, cols["description"]),
		})
	}
	return records, nil
}

func cellString(cell interface{}) string {
	switch v := cell.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func rowString(row []interface{}, col int) string {
	if col >= len(row) {
		return ""
	}
	return cellString(row[col])
}

func cellInt(row []interface{}, col int) (int, error) {
	raw := strings.TrimSpace(rowString(row, col))
	if raw == "" {
		return 0, errors.New("empty cell")
	}
	return strconv.Atoi(raw)
}
