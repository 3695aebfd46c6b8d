// Package classify derives the short type tag (a file extension) under which
// a clipboard entry is stored and by which it is previewed.
package classify

import (
	"unicode/utf8"

	"github.com/h2non/filetype"
)

const (
	// Text marks valid UTF-8 content that matched no binary signature.
	Text = "txt"
	// Binary marks everything else.
	Binary = "bin"
)

// Classifier maps raw bytes to a type tag. Implementations must be pure
// functions of the content.
type Classifier interface {
	Classify(data []byte) string
}

// Magic classifies by magic-byte signature, then UTF-8 validity.
type Magic struct{}

// Default returns the classifier used by the store operation.
func Default() Classifier {
	return Magic{}
}

func (Magic) Classify(data []byte) string {
	// Match inspects the header only.
	if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
		return kind.Extension
	}
	if utf8.Valid(data) {
		return Text
	}
	return Binary
}

// ClassifierFunc adapts a plain function to Classifier.
type ClassifierFunc func(data []byte) string

func (f ClassifierFunc) Classify(data []byte) string {
	return f(data)
}
