// Package history implements the clipboard-history operations invoked by
// the command line: store, delete-newest, list and decode.
package history

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/dmitrijs2005/clipdir/internal/classify"
	"github.com/dmitrijs2005/clipdir/internal/common"
	"github.com/dmitrijs2005/clipdir/internal/config"
	"github.com/dmitrijs2005/clipdir/internal/entries"
	"github.com/dmitrijs2005/clipdir/internal/filex"
	"github.com/dmitrijs2005/clipdir/internal/logging"
	"github.com/dmitrijs2005/clipdir/internal/preview"
)

// asciiSpace matches the whitespace that makes an entry blank.
const asciiSpace = " \t\n\f\r"

type Service struct {
	cfg        config.Config
	store      *entries.Store
	classifier classify.Classifier
	log        logging.Logger
}

type Option func(*Service)

func WithLogger(l logging.Logger) Option {
	return func(s *Service) { s.log = l }
}

func WithClassifier(c classify.Classifier) Option {
	return func(s *Service) { s.classifier = c }
}

// WithClock sets the timestamp source for new entries.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.store = entries.NewStore(s.cfg.StoragePath, entries.WithClock(now)) }
}

// New builds a Service over cfg.StoragePath. cfg is copied; later changes by
// the caller have no effect.
func New(cfg config.Config, opts ...Option) *Service {
	s := &Service{
		cfg:        cfg,
		store:      entries.NewStore(cfg.StoragePath),
		classifier: classify.Default(),
		log:        logging.Nop(),
	}
	for _, o := range opts {
		o(s)
	}
	s.log = s.log.With("dir", cfg.StoragePath)
	return s
}

// Store persists data as the newest entry and prunes older identical
// entries. Blank data is ignored. Data larger than the byte limit fails
// with common.ErrSizeLimit. Deduplication failures are logged, not
// returned: the entry is already saved by then.
func (s *Service) Store(ctx context.Context, data []byte) error {
	if len(bytes.Trim(data, asciiSpace)) == 0 {
		s.log.Debug(ctx, "blank clipboard entry ignored")
		return nil
	}

	if len(data) > s.cfg.ByteLimit {
		return fmt.Errorf("%w: %s is over the limit of %d bytes (%s)", common.ErrSizeLimit,
			humanize.IBytes(uint64(len(data))), s.cfg.ByteLimit, humanize.IBytes(uint64(s.cfg.ByteLimit)))
	}

	if err := filex.EnsureDir(s.cfg.StoragePath); err != nil {
		return fmt.Errorf("%w: create clipboard directory: %w", common.ErrIO, err)
	}

	ext := s.classifier.Classify(data)
	e, err := s.store.Create(data, ext)
	if err != nil {
		return err
	}
	s.log.Info(ctx, "entry stored", "name", e.Name, "size", humanize.IBytes(uint64(e.Size)))

	removed, err := s.store.Deduplicate(e, data, s.cfg.DedupeSearchLimit)
	if removed > 0 {
		s.log.Info(ctx, "duplicates removed", "count", removed)
	}
	if err != nil {
		s.log.Warn(ctx, "deduplication incomplete", "error", err)
	}
	return nil
}

// DeleteNewest removes the most recent entry. An empty or missing
// directory is not an error.
func (s *Service) DeleteNewest(ctx context.Context) error {
	if _, err := os.Stat(s.cfg.StoragePath); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	ok, err := s.store.DeleteNewest()
	if err != nil {
		return err
	}
	if ok {
		s.log.Info(ctx, "newest entry deleted")
	}
	return nil
}

// List writes one "{index}\t{preview}" line per entry, newest first.
func (s *Service) List(ctx context.Context, w io.Writer) error {
	list, err := s.store.List()
	if err != nil {
		return err
	}

	r := preview.NewRenderer(s.store, s.cfg.PreviewLength)
	for i, e := range list {
		p, err := r.Render(e)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, preview.Line(i, p)+"\n"); err != nil {
			return fmt.Errorf("%w: write listing: %w", common.ErrIO, err)
		}
	}
	s.log.Debug(ctx, "entries listed", "count", len(list))
	return nil
}

// Decode copies the raw bytes of the entry at index to w. Nothing is
// written unless the index resolves.
func (s *Service) Decode(ctx context.Context, index int, w io.Writer) error {
	e, err := s.store.Resolve(index)
	if err != nil {
		return err
	}

	f, err := s.store.Open(e)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := io.Copy(w, f)
	if err != nil {
		return fmt.Errorf("%w: write clipboard file to output: %w", common.ErrIO, err)
	}
	s.log.Debug(ctx, "entry decoded", "name", e.Name, "bytes", n)
	return nil
}
