// Package keyring implements a password store backed by a Google Sheets
// spreadsheet, fronted by a staleness-bounded read cache.
package keyring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// VERSION is the current gsheet-keyring version.
const VERSION = "v0.1.2"

// DefaultTitle is the spreadsheet document title used when no key, URL or
// spreadsheet handle is configured.
const DefaultTitle = "keyring"

// Credential is a single (service, username, password) row in the backing
// spreadsheet.
type Credential struct {
	Service  string
	Username string
	Password string
}

// Store is the row-level contract implemented by the backing spreadsheet
// adapter. GetPassword and DeletePassword return ErrNotFound when no row
// matches the (service, username) pair.
type Store interface {
	GetPassword(ctx context.Context, service, username string) (string, error)
	SetPassword(ctx context.Context, service, username, password string) error
	DeletePassword(ctx context.Context, service, username string) error
	List(ctx context.Context) ([]Credential, error)
}

// Config is the set of construction parameters for a Backend. The backing
// spreadsheet may be identified by a pre-obtained handle, a URL, a key or a
// document title, with that precedence - the first one set is used and the
// rest are ignored. If only a title is set and no spreadsheet with that title
// exists, a new spreadsheet is created (the only circumstance in which a
// spreadsheet is created).
type Config struct {
	// Spreadsheet is a pre-obtained handle to the backing spreadsheet.
	Spreadsheet *sheets.Spreadsheet

	// URL is a https://docs.google.com/spreadsheets/d/... URL.
	URL string

	// Key is a Google Sheets spreadsheet key.
	Key string

	// Title is a spreadsheet document title. Defaults to 'keyring'.
	Title string

	// Credentials is the path of an OAuth2 client 'credentials.json' file,
	// used together with Tokens when no ambient credentials are available.
	Credentials string

	// Tokens is the path of the token file cached by a prior 'authorise'.
	Tokens string

	// Window is the cache staleness window. Defaults to DefaultWindow.
	Window time.Duration

	// Options are passed to the Sheets and Drive API clients. Supplying an
	// explicit credential here takes precedence over ambient resolution.
	Options []option.ClientOption
}

// Backend is a password store backed by a Google Sheets spreadsheet. A Backend
// owns its own cache - two Backend instances never share cached state.
//
// A Backend is not safe for concurrent use, matching the single
// reader/writer usage model of the backing spreadsheet.
type Backend struct {
	store Store
	cache *cache
}

// NewBackend resolves API credentials, locates (or creates) the backing
// spreadsheet and returns a Backend ready for use.
func NewBackend(ctx context.Context, cfg Config) (*Backend, error) {
	opts, err := resolveOptions(ctx, cfg)
	if err != nil {
		return nil, err
	}

	google, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%v)", err)
	}

	gdrive, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create new Drive client (%v)", err)
	}

	spreadsheet, err := locate(ctx, google, gdrive, cfg)
	if err != nil {
		return nil, err
	}

	store, err := NewSheetStore(google, spreadsheet)
	if err != nil {
		return nil, err
	}

	return newBackend(store, cfg.Window), nil
}

func newBackend(store Store, window time.Duration) *Backend {
	return &Backend{
		store: store,
		cache: newCache(window),
	}
}

// GetPassword returns the password stored for the service and username, or
// ErrNotFound. Reads are served from the cache while the staleness window
// holds; not-found results are cached too, so probing for an absent key does
// not re-issue a remote read on every call.
func (b *Backend) GetPassword(ctx context.Context, service, username string) (string, error) {
	if e, ok := b.cache.lookup(service, username); ok {
		if !e.found {
			return "", ErrNotFound
		}

		return e.password, nil
	}

	password, err := b.store.GetPassword(ctx, service, username)
	if errors.Is(err, ErrNotFound) {
		b.cache.store(service, username, entry{})
		return "", ErrNotFound
	} else if err != nil {
		return "", err
	}

	b.cache.store(service, username, entry{password: password, found: true})

	return password, nil
}

// SetPassword stores the password for the service and username, replacing any
// existing value. The write invalidates the entire cache - not just the
// affected key - before recording the new value.
func (b *Backend) SetPassword(ctx context.Context, service, username, password string) error {
	if err := b.store.SetPassword(ctx, service, username, password); err != nil {
		return err
	}

	b.cache.invalidate()
	b.cache.store(service, username, entry{password: password, found: true})

	return nil
}

// DeletePassword removes the password stored for the service and username,
// returning ErrNotFound if there wasn't one. As with SetPassword, the entire
// cache is invalidated.
func (b *Backend) DeletePassword(ctx context.Context, service, username string) error {
	if err := b.store.DeletePassword(ctx, service, username); err != nil {
		return err
	}

	b.cache.invalidate()
	b.cache.store(service, username, entry{})

	return nil
}

// List returns all credentials in the backing spreadsheet. List bypasses the
// cache: it is a bulk export operation, not a hot path.
func (b *Backend) List(ctx context.Context) ([]Credential, error) {
	return b.store.List(ctx)
}
