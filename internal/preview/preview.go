// Package preview renders the one-line summaries shown by the list command.
package preview

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/clipdir/internal/classify"
	"github.com/dmitrijs2005/clipdir/internal/common"
	"github.com/dmitrijs2005/clipdir/internal/entries"
)

// asciiSpace is the set trimmed from both ends of a text preview.
const asciiSpace = " \t\n\f\r"

// Opener opens an entry for reading. *entries.Store implements it.
type Opener interface {
	Open(e entries.Entry) (*os.File, error)
}

// Renderer builds previews that read at most Length bytes of an entry.
type Renderer struct {
	src    Opener
	length int
}

func NewRenderer(src Opener, length int) *Renderer {
	return &Renderer{src: src, length: length}
}

// Render returns the preview of e. Text entries show their first bytes on
// one line; every other type shows a placeholder with the size and tag,
// without opening the file.
func (r *Renderer) Render(e entries.Entry) (string, error) {
	if e.Ext != classify.Text {
		return Binary(e.Size, e.Ext), nil
	}

	f, err := r.src.Open(e)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, r.length)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", fmt.Errorf("%w: read clipboard file: %w", common.ErrIO, err)
	}
	return Text(buf[:n]), nil
}

// Text turns a byte prefix into a single line. If the prefix is not valid
// UTF-8 (typically a multi-byte rune cut in half) each byte is taken as the
// code point of the same value.
func Text(b []byte) string {
	var s string
	if utf8.Valid(b) {
		s = string(b)
	} else {
		var sb strings.Builder
		sb.Grow(len(b) * 2)
		for _, c := range b {
			sb.WriteRune(rune(c))
		}
		s = sb.String()
	}

	s = strings.Trim(s, asciiSpace)
	return lineBreaks.Replace(s)
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Binary is the placeholder for non-text entries.
func Binary(size int64, ext string) string {
	return fmt.Sprintf("[[ binary data %s %s ]]", HumanSize(size), ext)
}

var units = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}

// HumanSize formats n in 1024-based units with two decimals, e.g.
// 1048576 → "1.00 MiB".
func HumanSize(n int64) string {
	size := float64(n)
	i := 0
	for size >= 1024 && i < len(units)-1 {
		size /= 1024
		i++
	}
	return strconv.FormatFloat(size, 'f', 2, 64) + " " + units[i]
}

// Line formats one listing row.
func Line(index int, preview string) string {
	return strconv.Itoa(index) + "\t" + preview
}
