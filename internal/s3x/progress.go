package s3x

import (
	"io"
	"sync/atomic"
)

// ProgressFunc receives cumulative bytes transferred so far and the
// total artifact size. Callbacks may arrive from multiple goroutines
// when the transfer manager reads parts concurrently.
type ProgressFunc func(transferred, total int64)

// ProgressReader wraps an io.Reader and reports cumulative read
// progress. It deliberately implements only Read: the transfer manager
// falls back to buffered part reads for non-seekable bodies, which
// keeps the byte count monotonic.
type ProgressReader struct {
	r           io.Reader
	total       int64
	transferred atomic.Int64
	fn          ProgressFunc
}

func NewProgressReader(r io.Reader, total int64, fn ProgressFunc) *ProgressReader {
	return &ProgressReader{r: r, total: total, fn: fn}
}

func (p *ProgressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 && p.fn != nil {
		p.fn(p.transferred.Add(int64(n)), p.total)
	}
	return n, err
}
