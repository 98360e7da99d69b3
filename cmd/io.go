package cmd

import (
	"compress/gzip"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lehigh-university-libraries/medline/dtd"
)

// openInput returns the XML source: a file when path is set, stdin
// otherwise. Files ending in .gz (or anything when gzipped is forced) are
// decompressed transparently.
func openInput(path string, gzipped bool) (io.ReadCloser, error) {
	var r io.ReadCloser = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		r = f
		if strings.HasSuffix(path, ".gz") {
			gzipped = true
		}
	}

	if gzipped {
		gz, err := gzip.NewReader(r)
		if err != nil {
			closeQuietly(r)
			return nil, fmt.Errorf("reading gzip input: %w", err)
		}
		return &gzipReadCloser{gz: gz, underlying: r}, nil
	}

	return r, nil
}

type gzipReadCloser struct {
	gz         *gzip.Reader
	underlying io.ReadCloser
}

func (g *gzipReadCloser) Read(p []byte) (int, error) {
	return g.gz.Read(p)
}

func (g *gzipReadCloser) Close() error {
	err := g.gz.Close()
	if cerr := g.underlying.Close(); err == nil {
		err = cerr
	}
	return err
}

// openOutput returns the destination: a file when path is set, stdout
// otherwise.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return os.Stdout, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating output: %w", err)
	}
	return f, nil
}

func closeQuietly(c io.Closer) {
	if c == os.Stdin || c == os.Stdout {
		return
	}
	if err := c.Close(); err != nil {
		slog.Warn("close failed", "err", err)
	}
}

// decodeInput opens and decodes one citation set.
func decodeInput(path string, gzipped bool) (*dtd.Document, error) {
	in, err := openInput(path, gzipped)
	if err != nil {
		return nil, err
	}
	defer closeQuietly(in)

	doc, err := dtd.Decode(in)
	if err != nil {
		return nil, fmt.Errorf("decoding citation set: %w", err)
	}
	return doc, nil
}
