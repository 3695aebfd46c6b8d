package entries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// tickingClock returns a clock that advances one millisecond per call,
// starting at a 16-digit microsecond timestamp.
func tickingClock() func() time.Time {
	t := time.UnixMicro(1_700_000_000_000_000)
	return func() time.Time {
		t = t.Add(time.Millisecond)
		return t
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(t.TempDir(), WithClock(tickingClock()))
}

func mustCreate(t *testing.T, s *Store, data, ext string) Entry {
	t.Helper()
	e, err := s.Create([]byte(data), ext)
	require.NoError(t, err)
	return e
}

func names(list []Entry) []string {
	out := make([]string, 0, len(list))
	for _, e := range list {
		out = append(out, e.Name)
	}
	return out
}
