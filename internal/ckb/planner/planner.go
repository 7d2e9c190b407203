// Package planner partitions a block range into fetch windows.
package planner

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/errs"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// TipSource reports the highest block number known to the node.
type TipSource interface {
	TipBlockNumber(ctx context.Context) (uint64, error)
}

// Window is an inclusive, contiguous run of block numbers fetched as one group.
type Window struct {
	Start uint64
	End   uint64
}

// Len returns the number of blocks in the window.
func (w Window) Len() int {
	return int(w.End - w.Start + 1)
}

// Numbers lists the block numbers of the window in ascending order.
func (w Window) Numbers() []uint64 {
	numbers := make([]uint64, 0, w.Len())
	for n := w.Start; ; n++ {
		numbers = append(numbers, n)
		if n == w.End {
			return numbers
		}
	}
}

// Planner lazily yields windows covering [start, end] exactly once.
// It is not safe for concurrent use.
type Planner struct {
	start uint64
	end   uint64
	size  uint64
	next  uint64
	done  bool
}

// New builds a Planner over [start, end] with windows of size blocks.
// An empty range (end < start) yields no windows.
func New(start, end, size uint64) (*Planner, error) {
	if size == 0 {
		return nil, errors.Mark(errors.New("window size must be positive"), errs.Configuration)
	}
	p := &Planner{start: start, end: end, size: size}
	p.Reset()
	return p, nil
}

// Plan resolves the end of the range and builds a Planner. When end is nil the
// node tip is queried once and used as the inclusive end.
func Plan(ctx context.Context, source TipSource, start uint64, end *uint64, size uint64) (*Planner, error) {
	var last uint64
	if end != nil {
		last = *end
	} else {
		tip, err := source.TipBlockNumber(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "query tip block number")
		}
		last = tip
	}
	return New(start, last, size)
}

// Next returns the next window, or false once the range is exhausted.
func (p *Planner) Next() (Window, bool) {
	if p.done {
		return Window{}, false
	}
	w := Window{Start: p.next, End: p.end}
	if p.end-p.next >= p.size {
		w.End = p.next + p.size - 1
	}
	if w.End == p.end {
		p.done = true
	} else {
		p.next = w.End + 1
	}
	return w, true
}

// Reset rewinds the planner to the start of its range.
func (p *Planner) Reset() {
	p.next = p.start
	p.done = p.end < p.start
}

// Start returns the first block number of the range.
func (p *Planner) Start() uint64 {
	return p.start
}

// End returns the inclusive last block number of the range.
func (p *Planner) End() uint64 {
	return p.end
}

// Total returns the number of blocks in the range.
func (p *Planner) Total() uint64 {
	if p.end < p.start {
		return 0
	}
	return p.end - p.start + 1
}
