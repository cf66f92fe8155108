package keyring

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/sheets/v4"
)

// Column layout of the backing worksheet. Row 1 is a header; credential rows
// follow, newest at the top.
const (
	serviceCol   = 0
	usernameCol  = 1
	passwordCol  = 2
	createdAtCol = 3
	updatedAtCol = 4
)

var header = []interface{}{"service", "username", "password", "created", "updated"}

// SheetStore implements Store over the first worksheet of a Google Sheets
// spreadsheet.
type SheetStore struct {
	google        *sheets.Service
	spreadsheetId string
	worksheet     string
	sheetId       int64
	now           func() time.Time
}

// NewSheetStore returns a SheetStore bound to the first worksheet of the
// spreadsheet.
func NewSheetStore(google *sheets.Service, spreadsheet *sheets.Spreadsheet) (*SheetStore, error) {
	if len(spreadsheet.Sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet %s has no worksheets", spreadsheet.SpreadsheetId)
	}

	worksheet := spreadsheet.Sheets[0]

	return &SheetStore{
		google:        google,
		spreadsheetId: spreadsheet.SpreadsheetId,
		worksheet:     worksheet.Properties.Title,
		sheetId:       worksheet.Properties.SheetId,
		now:           time.Now,
	}, nil
}

// GetPassword returns the password from the first row matching the service and
// username, or ErrNotFound.
func (s *SheetStore) GetPassword(ctx context.Context, service, username string) (string, error) {
	rows, err := s.fetch(ctx)
	if err != nil {
		return "", err
	}

	matched := matchRows(rows, service, username)
	if len(matched) == 0 {
		return "", ErrNotFound
	}

	return field(rows[matched[0]-1], passwordCol), nil
}

// SetPassword updates the password for an existing (service, username) row, or
// inserts a new row at the top of the worksheet. A write that wouldn't change
// the stored value is skipped.
func (s *SheetStore) SetPassword(ctx context.Context, service, username, password string) error {
	rows, err := s.fetch(ctx)
	if err != nil {
		return err
	}

	ts := s.timestamp()
	matched := matchRows(rows, service, username)

	if len(matched) > 0 {
		r := matched[0]
		if field(rows[r-1], passwordCol) == password {
			return nil
		}

		rq := sheets.BatchUpdateValuesRequest{
			ValueInputOption: "USER_ENTERED",
			Data: []*sheets.ValueRange{
				&sheets.ValueRange{
					Range:  fmt.Sprintf("%s!C%v", s.worksheet, r),
					Values: [][]interface{}{[]interface{}{password}},
				},
				&sheets.ValueRange{
					Range:  fmt.Sprintf("%s!E%v", s.worksheet, r),
					Values: [][]interface{}{[]interface{}{ts}},
				},
			},
		}

		if _, err := s.google.Spreadsheets.Values.BatchUpdate(s.spreadsheetId, &rq).Context(ctx).Do(); err != nil {
			return fmt.Errorf("unable to update password row (%w)", err)
		}

		return nil
	}

	// ... new rows go at the top, right below the header
	insert := sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			&sheets.Request{
				InsertDimension: &sheets.InsertDimensionRequest{
					Range: &sheets.DimensionRange{
						SheetId:    s.sheetId,
						Dimension:  "ROWS",
						StartIndex: 1,
						EndIndex:   2,
					},
				},
			},
		},
	}

	if _, err := s.google.Spreadsheets.BatchUpdate(s.spreadsheetId, &insert).Context(ctx).Do(); err != nil {
		return fmt.Errorf("unable to insert password row (%w)", err)
	}

	row := sheets.ValueRange{
		Values: [][]interface{}{
			[]interface{}{service, username, password, ts, ts},
		},
	}

	if _, err := s.google.Spreadsheets.Values.Update(s.spreadsheetId, fmt.Sprintf("%s!A2:E2", s.worksheet), &row).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do(); err != nil {
		return fmt.Errorf("unable to write password row (%w)", err)
	}

	return nil
}

// DeletePassword removes every row matching the service and username (there
// can be more than one if the sheet has been manually edited or there's been
// a race), returning ErrNotFound if there were none.
func (s *SheetStore) DeletePassword(ctx context.Context, service, username string) error {
	rows, err := s.fetch(ctx)
	if err != nil {
		return err
	}

	matched := matchRows(rows, service, username)
	if len(matched) == 0 {
		return ErrNotFound
	}

	// ... delete bottom-up so that the remaining row indices stay valid
	requests := []*sheets.Request{}
	for i := len(matched) - 1; i >= 0; i-- {
		r := matched[i]
		requests = append(requests, &sheets.Request{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    s.sheetId,
					Dimension:  "ROWS",
					StartIndex: int64(r - 1),
					EndIndex:   int64(r),
				},
			},
		})
	}

	rq := sheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}

	if _, err := s.google.Spreadsheets.BatchUpdate(s.spreadsheetId, &rq).Context(ctx).Do(); err != nil {
		return fmt.Errorf("unable to delete password rows (%w)", err)
	}

	return nil
}

// List returns all credential rows in the worksheet, in sheet order.
func (s *SheetStore) List(ctx context.Context) ([]Credential, error) {
	rows, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	credentials := []Credential{}
	for _, row := range rows[1:] {
		if field(row, serviceCol) == "" && field(row, usernameCol) == "" {
			continue
		}

		credentials = append(credentials, Credential{
			Service:  field(row, serviceCol),
			Username: field(row, usernameCol),
			Password: field(row, passwordCol),
		})
	}

	return credentials, nil
}

func (s *SheetStore) fetch(ctx context.Context) ([][]interface{}, error) {
	area := fmt.Sprintf("%s!A:E", s.worksheet)

	response, err := s.google.Spreadsheets.Values.Get(s.spreadsheetId, area).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from sheet (%v)", err)
	}

	if len(response.Values) == 0 {
		return [][]interface{}{header}, nil
	}

	return response.Values, nil
}

// timestamp formats the current time s.t. Google Sheets recognizes it as a
// datetime. Sheets doesn't recognize datetime formats with timezones - the
// value is UTC but this isn't indicated in the data.
func (s *SheetStore) timestamp() string {
	return s.now().UTC().Format("2006-01-02 15:04")
}

// matchRows returns the 1-based row numbers of the credential rows matching
// the service and username, in sheet order. Row 1 (the header) never matches.
func matchRows(rows [][]interface{}, service, username string) []int {
	matched := []int{}
	for i, row := range rows {
		if i == 0 {
			continue
		}

		if field(row, serviceCol) == service && field(row, usernameCol) == username {
			matched = append(matched, i+1)
		}
	}

	return matched
}

func field(row []interface{}, col int) string {
	if col >= len(row) {
		return ""
	}

	if v, ok := row[col].(string); ok {
		return v
	}

	return fmt.Sprintf("%v", row[col])
}
