package keyring

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/sheets/v4"
)

const mimeTypeSpreadsheet = "application/vnd.google-apps.spreadsheet"

var spreadsheetURL = regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`)

// SpreadsheetId extracts the spreadsheet key from a docs.google.com URL.
func SpreadsheetId(url string) (string, error) {
	match := spreadsheetURL.FindStringSubmatch(strings.TrimSpace(url))
	if len(match) < 2 || match[1] == "" {
		return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
	}

	return match[1], nil
}

// locate resolves the Config to a spreadsheet, with the precedence handle >
// URL > key > title. A missing spreadsheet is an error except for a title-only
// lookup, which creates the spreadsheet.
func locate(ctx context.Context, google *sheets.Service, gdrive *drive.Service, cfg Config) (*sheets.Spreadsheet, error) {
	if cfg.Spreadsheet != nil {
		return cfg.Spreadsheet, nil
	}

	if strings.TrimSpace(cfg.URL) != "" {
		key, err := SpreadsheetId(cfg.URL)
		if err != nil {
			return nil, err
		}

		return openByKey(ctx, google, key)
	}

	if strings.TrimSpace(cfg.Key) != "" {
		return openByKey(ctx, google, strings.TrimSpace(cfg.Key))
	}

	title := strings.TrimSpace(cfg.Title)
	if title == "" {
		title = DefaultTitle
	}

	return openByTitle(ctx, google, gdrive, title)
}

func openByKey(ctx context.Context, google *sheets.Service, key string) (*sheets.Spreadsheet, error) {
	spreadsheet, err := google.Spreadsheets.Get(key).Context(ctx).Do()
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) && gerr.Code == http.StatusNotFound {
			return nil, fmt.Errorf("%w (key %s)", ErrSheetNotFound, key)
		}

		return nil, fmt.Errorf("unable to fetch spreadsheet (%v)", err)
	}

	return spreadsheet, nil
}

func openByTitle(ctx context.Context, google *sheets.Service, gdrive *drive.Service, title string) (*sheets.Spreadsheet, error) {
	q := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false", strings.ReplaceAll(title, "'", `\'`), mimeTypeSpreadsheet)

	files, err := gdrive.Files.List().Q(q).Fields("files(id, name)").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to search for spreadsheet '%s' (%v)", title, err)
	}

	switch len(files.Files) {
	case 0:
		return create(ctx, google, title)

	case 1:
		return openByKey(ctx, google, files.Files[0].Id)

	default:
		return nil, fmt.Errorf("%w ('%s' matches %v spreadsheets)", ErrAmbiguousSheet, title, len(files.Files))
	}
}

// create makes a new spreadsheet with the given title and writes the header
// row. This is the only code path that creates a spreadsheet.
func create(ctx context.Context, google *sheets.Service, title string) (*sheets.Spreadsheet, error) {
	spreadsheet, err := google.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{
			Title: title,
		},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to create spreadsheet '%s' (%v)", title, err)
	}

	worksheet := spreadsheet.Sheets[0].Properties.Title
	row := sheets.ValueRange{
		Values: [][]interface{}{header},
	}

	if _, err := google.Spreadsheets.Values.Update(spreadsheet.SpreadsheetId, fmt.Sprintf("%s!A1:E1", worksheet), &row).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do(); err != nil {
		return nil, fmt.Errorf("unable to initialise spreadsheet '%s' (%v)", title, err)
	}

	return spreadsheet, nil
}
