package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/clipdir/internal/common"
)

// ParseID reads the leading ASCII digits from r and returns them as an
// index. Reading stops at the first other byte, so "3\tsome preview" and
// "3" both give 3. Input without leading digits fails with
// common.ErrMalformedInput.
func ParseID(r io.Reader) (int, error) {
	br := bufio.NewReader(r)

	var sb strings.Builder
	for {
		c, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read id from stdin: %w", err)
		}
		if c < '0' || c > '9' {
			break
		}
		sb.WriteByte(c)
	}

	id, err := strconv.Atoi(sb.String())
	if err != nil {
		return 0, fmt.Errorf("%w: failed to parse id: %w", common.ErrMalformedInput, err)
	}
	return id, nil
}
