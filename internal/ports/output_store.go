package ports

import (
	"context"
	"io"
)

// OutputStore scopes file handles to a single callback; the handle is
// flushed and closed before Write or Read returns.
type OutputStore interface {
	Write(ctx context.Context, name string, fn func(io.Writer) error) error
	Read(ctx context.Context, name string, fn func(io.Reader) error) error
	Path(name string) string
}
