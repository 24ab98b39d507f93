//go:build !unix

package parser

func readFile(path string) ([]byte, error) {
	return readFileFallback(path)
}
