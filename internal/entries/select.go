package entries

import (
	"fmt"

	"github.com/dmitrijs2005/clipdir/internal/common"
)

// Resolve returns the entry at index in the newest-first listing.
func (s *Store) Resolve(index int) (Entry, error) {
	list, err := s.List()
	if err != nil {
		return Entry{}, err
	}
	if index < 0 || index >= len(list) {
		return Entry{}, fmt.Errorf("%w: no clipboard entry with id %d", common.ErrNotFound, index)
	}
	return list[index], nil
}
