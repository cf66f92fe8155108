package keyring

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

// OAuth2 scopes. Drive access is required to look up (and create) the backing
// spreadsheet by title.
const (
	SHEETS = "https://www.googleapis.com/auth/spreadsheets"
	DRIVE  = "https://www.googleapis.com/auth/drive"
)

// resolveOptions resolves the client options used for the Sheets and Drive
// API clients, in decreasing order of precedence:
//
//  1. options supplied explicitly on the Config
//  2. application default credentials (a GOOGLE_APPLICATION_CREDENTIALS key
//     file, or the ambient service identity on Google hosted environments)
//  3. a token cached by a prior interactive 'authorise'
//
// Credential acquisition is delegated entirely to the oauth2 package - nothing
// is retried or prompted for here.
func resolveOptions(ctx context.Context, cfg Config) ([]option.ClientOption, error) {
	if len(cfg.Options) > 0 {
		return cfg.Options, nil
	}

	if credentials, err := google.FindDefaultCredentials(ctx, DRIVE); err == nil {
		return []option.ClientOption{option.WithCredentials(credentials)}, nil
	}

	if ts, err := cachedTokenSource(ctx, cfg.Credentials, cfg.Tokens); err == nil {
		return []option.ClientOption{option.WithTokenSource(ts)}, nil
	}

	return nil, fmt.Errorf("no usable Google API credentials - set GOOGLE_APPLICATION_CREDENTIALS or run 'authorise'")
}

// cachedTokenSource rebuilds a token source from the OAuth2 client credentials
// file and the token file saved by 'authorise'.
func cachedTokenSource(ctx context.Context, credentials, tokens string) (oauth2.TokenSource, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, err
	}

	config, err := google.ConfigFromJSON(b, DRIVE)
	if err != nil {
		return nil, err
	}

	token, err := tokenFromFile(tokens)
	if err != nil {
		return nil, err
	}

	return config.TokenSource(ctx, token), nil
}

// tokenFromFile retrieves a token from a local file.
func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	token := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(token)

	return token, err
}
