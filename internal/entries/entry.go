package entries

import (
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultExt is the tag reported for files stored without an extension.
const DefaultExt = "bin"

// Entry is one stored clipboard capture. Name is its identity.
type Entry struct {
	Name      string
	Path      string
	Timestamp int64
	Ext       string
	Size      int64
}

func newEntry(dir, name string, size int64) Entry {
	ts, ext := parseName(name)
	return Entry{
		Name:      name,
		Path:      filepath.Join(dir, name),
		Timestamp: ts,
		Ext:       ext,
		Size:      size,
	}
}

// parseName splits "{timestamp}.{ext}". A stem that is not a decimal
// integer yields timestamp 0; a missing extension yields DefaultExt.
func parseName(name string) (int64, string) {
	stem, ext := name, DefaultExt
	if i := strings.LastIndexByte(name, '.'); i > 0 && i < len(name)-1 {
		stem, ext = name[:i], name[i+1:]
	}
	ts, err := strconv.ParseInt(stem, 10, 64)
	if err != nil {
		ts = 0
	}
	return ts, ext
}

func formatName(ts int64, ext string) string {
	return strconv.FormatInt(ts, 10) + "." + ext
}
