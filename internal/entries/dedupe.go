package entries

import (
	"bytes"
	"fmt"

	"go.uber.org/multierr"

	"github.com/dmitrijs2005/clipdir/internal/common"
)

// Deduplicate removes other entries whose content equals data. keep is the
// entry just written and is never examined, wherever it sorts in the
// listing. At most searchLimit other entries are examined, in listing
// order, and every match is deleted as soon as it is found.
//
// A candidate that cannot be read or deleted is skipped and the scan goes
// on. Such failures are returned together, wrapped with common.ErrDedupe,
// alongside the number of entries that were removed. Only a failure to
// list the directory ends the pass early.
func (s *Store) Deduplicate(keep Entry, data []byte, searchLimit int) (int, error) {
	list, err := s.List()
	if err != nil {
		return 0, err
	}
	if searchLimit <= 0 {
		return 0, nil
	}

	candidates := make([]Entry, 0, min(searchLimit, len(list)))
	for _, e := range list {
		if len(candidates) == searchLimit {
			break
		}
		if e.Name != keep.Name {
			candidates = append(candidates, e)
		}
	}

	var (
		removed int
		errs    error
	)
	for _, e := range candidates {
		// Entries are immutable, so a size mismatch settles it without a read.
		if e.Size != int64(len(data)) {
			continue
		}

		other, err := readFile(e.Path)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("read %s: %w", e.Name, err))
			continue
		}
		if !bytes.Equal(data, other) {
			continue
		}

		if err := s.Delete(e); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", e.Name, err))
			continue
		}
		removed++
	}

	if errs != nil {
		return removed, fmt.Errorf("%w: %w", common.ErrDedupe, errs)
	}
	return removed, nil
}
