package io

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/treeseed/pkg/errors"
	"github.com/matzehuels/treeseed/pkg/tree"
)

// Indent is the per-level indentation used for written documents.
const Indent = "  "

// WriteJSON encodes roots as a pretty-printed JSON array and writes it to w.
// Children are nested inside their parent; empty child lists are written as
// [] and the root's parentId as null.
func WriteJSON(roots []*tree.Node, w io.Writer) error {
	if roots == nil {
		roots = []*tree.Node{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", Indent)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(roots); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes roots to a JSON file at path, creating or truncating it.
// It returns the number of bytes written.
func ExportJSON(roots []*tree.Node, path string) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	defer f.Close()

	bw := bufio.NewWriterSize(f, 1<<16)
	cw := &countingWriter{w: bw}
	if err := WriteJSON(roots, cw); err != nil {
		return cw.n, errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	if err := bw.Flush(); err != nil {
		return cw.n, errors.Wrap(errors.ErrCodeIO, err, "flush %s", path)
	}
	if err := f.Close(); err != nil {
		return cw.n, errors.Wrap(errors.ErrCodeIO, err, "close %s", path)
	}
	return cw.n, nil
}

// WriteFile writes raw bytes (DOT source, SVG) to path.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
