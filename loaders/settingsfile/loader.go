// Package settingsfile provides the stock file loader for hosts whose
// machine files are settings documents. Candidate paths arrive without an
// extension; the loader resolves each against its codecs' extensions in
// order, decodes the first file that exists and applies the result.
package settingsfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
)

// Applier receives the decoded settings of one machine file.
// *settings.Registry satisfies this interface.
type Applier interface {
	Apply(values map[string]any) error
}

// Codec decodes one on-disk settings format.
type Codec interface {
	// Extensions lists the file extensions the codec claims, with dot.
	Extensions() []string
	// Decode parses a settings document into keyed values.
	Decode(data []byte) (map[string]any, error)
}

// Loader resolves extensionless candidate paths to settings documents and
// applies them. It implements the FileLoader contract of the root package.
type Loader struct {
	apply    Applier
	codecs   []Codec
	progress *slog.Logger
}

// Option configures the Loader.
type Option func(*Loader)

// WithCodecs replaces the codec list. Order matters: the first codec with a
// matching file on disk wins.
func WithCodecs(codecs ...Codec) Option {
	return func(l *Loader) {
		if len(codecs) > 0 {
			l.codecs = codecs
		}
	}
}

// WithCodec appends a codec to the list.
func WithCodec(c Codec) Option {
	return func(l *Loader) {
		if c != nil {
			l.codecs = append(l.codecs, c)
		}
	}
}

// WithProgress attaches a logger that narrates each applied file. Without it
// machine files load silently.
func WithProgress(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.progress = logger
	}
}

// New constructs a Loader that applies decoded documents through apply,
// trying TOML, YAML and JSON in that order.
func New(apply Applier, opts ...Option) (*Loader, error) {
	if apply == nil {
		return nil, errors.New("settingsfile: an Applier is required")
	}
	l := &Loader{
		apply:  apply,
		codecs: []Codec{TOML{}, YAML{}, JSON{}},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Load resolves path against the codec extensions and applies the first
// document found. A candidate with no file behind it, an undecodable
// document and a rejected apply all return errors; the caller records them
// and moves on to its next candidate.
func (l *Loader) Load(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, codec := range l.codecs {
		for _, ext := range codec.Extensions() {
			full := path + ext
			data, err := os.ReadFile(full)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					continue
				}
				return fmt.Errorf("settingsfile: read %s: %w", full, err)
			}
			values, err := codec.Decode(data)
			if err != nil {
				return fmt.Errorf("settingsfile: decode %s: %w", full, err)
			}
			if err := l.apply.Apply(values); err != nil {
				return fmt.Errorf("settingsfile: apply %s: %w", full, err)
			}
			if l.progress != nil {
				l.progress.Info("machine settings applied", "path", full, "settings", len(values))
			}
			return nil
		}
	}
	return fmt.Errorf("settingsfile: no settings file for %s (tried %s)", path, strings.Join(l.extensions(), ", "))
}

func (l *Loader) extensions() []string {
	var exts []string
	for _, codec := range l.codecs {
		exts = append(exts, codec.Extensions()...)
	}
	return exts
}
