package mdhtml

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

var bufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

// ConvertRequest configures ConvertStream.
type ConvertRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Options []Option
}

// ConvertStream reads a whole Markdown document from Reader and writes its
// HTML to Writer. Input is validated unless WithValidation(false) is given.
// Nothing is written to Writer when conversion fails.
func ConvertStream(req ConvertRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("convert: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("convert: writer is nil")
	}
	cfg := newConfig([]Option{WithValidation(true)})
	cfg.apply(req.Options)

	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bufferPool.Put(buf)
	if _, err := buf.ReadFrom(req.Reader); err != nil {
		return fmt.Errorf("convert: read: %w", err)
	}
	node, err := convert(buf.String(), cfg)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	out, err := node.Render()
	if err != nil {
		return fmt.Errorf("convert: render: %w", err)
	}
	if _, err := io.WriteString(req.Writer, out); err != nil {
		return fmt.Errorf("convert: write: %w", err)
	}
	return nil
}
