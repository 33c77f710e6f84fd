package agecalc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/emersion/go-vcard"

	"github.com/mohammadusama1497-dot/Age-Calculator/internal/config"
)

// Contact is the subset of a vCard the form can be prefilled from.
type Contact struct {
	Name        string
	DateOfBirth time.Time
}

// ImportConfig contains all parameters required to load a contact.
type ImportConfig struct {
	Mode      string // config.SourceModeLocal or config.SourceModeWeb
	LocalPath string // Absolute path to the .vcf file
	WebURL    string // CardDAV or WebDAV URL
	WebUser   string // HTTP Basic Auth Username
	WebPass   string // HTTP Basic Auth Password
}

// Importer loads a contact from a local or remote vCard source.
type Importer struct {
	Fetcher VCardFetcher // Interface for network abstraction.
}

// Load resolves the configured source, decodes the stream and returns the
// first contact carrying a usable birth date.
func (im *Importer) Load(ctx context.Context, cfg ImportConfig) (Contact, error) {
	log := slog.With(
		config.LogKeyComponent, config.CompCore,
		config.LogKeyMode, cfg.Mode,
	)
	log.InfoContext(ctx, config.MsgImportStart)

	reader, err := im.acquireStream(ctx, cfg)
	if err != nil {
		if ctx.Err() != nil {
			return Contact{}, ctx.Err()
		}
		return Contact{}, err
	}
	// Best effort close. Errors in Close() for read-only streams are rarely actionable here.
	defer func() { _ = reader.Close() }()

	if err := ctx.Err(); err != nil {
		return Contact{}, err
	}

	contact, err := DecodeContact(reader)
	if err != nil {
		return Contact{}, err
	}

	log.InfoContext(ctx, config.MsgImportDone,
		config.LogKeyName, contact.Name,
		config.LogKeyDOB, contact.DateOfBirth.Format(config.DateFormatDisplay),
	)
	return contact, nil
}

// acquireStream opens the appropriate data source based on configuration.
func (im *Importer) acquireStream(ctx context.Context, cfg ImportConfig) (io.ReadCloser, error) {
	switch cfg.Mode {
	case config.SourceModeLocal:
		if cfg.LocalPath == "" {
			return nil, errors.New(config.ErrLocalPathEmpty)
		}
		return os.Open(cfg.LocalPath)
	case config.SourceModeWeb:
		if cfg.WebURL == "" {
			return nil, errors.New(config.ErrWebURLEmpty)
		}
		if im.Fetcher == nil {
			return nil, errors.New(config.ErrFetcherMissing)
		}
		return im.Fetcher.Fetch(ctx, cfg.WebURL, cfg.WebUser, cfg.WebPass)
	default:
		return nil, fmt.Errorf("%s: %q", config.ErrModeUnsupport, cfg.Mode)
	}
}

// DecodeContact reads vCards from the stream and returns the first one with
// a parseable BDAY. Name strategy: FN (Formatted) > N (Structured) >
// Fallback. Yearless BDAY values (--MM-DD) cannot produce an age and are
// skipped like unparseable ones.
func DecodeContact(r io.Reader) (Contact, error) {
	decoder := vcard.NewDecoder(r)
	seen := false

	for {
		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Contact{}, fmt.Errorf("%s: %w", config.ErrVCardDecode, err)
		}
		seen = true

		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		birth, err := ParseDate(bday.Value)
		if err != nil {
			slog.Debug(config.MsgImportFailed,
				config.LogKeyComponent, config.CompCore,
				config.LogKeyValue, bday.Value,
			)
			continue
		}

		name := config.FallbackName
		if fn := card.Get(config.VCardFN); fn != nil && fn.Value != "" {
			name = fn.Value
		} else if n := card.Get(config.VCardN); n != nil && n.Value != "" {
			name = n.Value
		}

		return Contact{Name: name, DateOfBirth: birth}, nil
	}

	if !seen {
		return Contact{}, errors.New(config.ErrNoContact)
	}
	return Contact{}, errors.New(config.ErrNoBirthDate)
}
