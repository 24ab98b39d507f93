package parser

import (
	"os"

	"golang.org/x/text/encoding/unicode"
)

// ReadSource loads a program's source text from disk, stripping a
// leading UTF-8/UTF-16 byte-order mark if present. Editors on the
// original Rust prototype's host platform are known to save a BOM on
// UTF-8 files; the lexer has no use for one, so it is removed here
// rather than taught to every caller of next().
func ReadSource(path string) (string, error) {
	raw, err := readFile(path)
	if err != nil {
		return "", err
	}

	e := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	decoded, err := e.Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

func readFileFallback(path string) ([]byte, error) {
	return os.ReadFile(path)
}
