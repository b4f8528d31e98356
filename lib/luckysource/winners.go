package luckysource

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// Winners reads all persisted draws from the winners sheet. Unlike Fetch
// there is no fallback here: without a live client and a configured
// winners sheet the caller gets an error.
func (s *Source) Winners(ctx context.Context) ([]Winner, error) {
	if err := s.checkWinnersConfig(); err != nil {
		return nil, err
	}

	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetId, rangeFor(s.winnersSheetName, "A:F")).Context(ctx).Do()
	if err != nil {
		return nil, errors.Join(fmt.Errorf("Error reading winners sheet=%s", s.winnersSheetName), err)
	}

	winners := make([]Winner, 0)
	for rowIdx, row := range resp.Values {
		id, err := cellInt(row, 1)
		if err != nil {
			s.log.Debug("Skipping winners row ", rowIdx+1, ": bad id: ", err)
			continue
		}
		number, err := cellInt(row, 2)
		if err != nil {
			s.log.Debug("Skipping winners row ", rowIdx+1, ": bad number: ", err)
			continue
		}
		winners = append(winners, Winner{
			DrawId:      rowString(row, 0),
			Id:          id,
			Number:      number,
			Name:        rowString(row, 3),
			Description: rowString(row, 4),
			DrawnAt:     rowString(row, 5),
		})
	}
	return winners, nil
}

// SaveWinner appends one row to the winners sheet.
func (s *Source) SaveWinner(ctx context.Context, w Winner) error {
	if err := s.checkWinnersConfig(); err != nil {
		return err
	}

	valueRange := &sheets.ValueRange{
		Values: [][]interface{}{{w.DrawId, w.Id, w.Number, w.Name, w.Description, w.DrawnAt}},
	}
	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetId, rangeFor(s.winnersSheetName, "A:F"), valueRange).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return errors.Join(fmt.Errorf("Error appending winner sheet=%s", s.winnersSheetName), err)
	}
	return nil
}

func (s *Source) checkWinnersConfig() error {
	if s.svc == nil {
		return errors.New("Sheets client not initialized")
	}
	if s.spreadsheetId == "" {
		return errors.New("no spreadsheet id configured")
	}
	if s.winnersSheetName == "" {
		return errors.New("no winners sheet configured")
	}
	return nil
}
