// Package batcher hands accumulated items to a single consumer and blocks the
// producer until the consumer acknowledges each batch.
package batcher

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// ErrClosed is returned when pushing to a batcher that already sent its final batch.
var ErrClosed = errors.New("batcher closed")

// Batch is a unit of work handed to the consumer. Every batch must be
// acknowledged exactly once with the result of processing it.
type Batch[T any] struct {
	Items []T
	// Final marks the completion sentinel. It carries no items.
	Final bool

	ack chan error
}

// Ack reports the outcome of processing the batch back to the producer.
func (b Batch[T]) Ack(err error) {
	b.ack <- err
}

// Batcher buffers pushed items and flushes them to the consumer once flushSize
// is reached or a drain is requested. It is not safe for concurrent producers.
type Batcher[T any] struct {
	logger    *zap.Logger
	batches   chan Batch[T]
	flushSize int
	buf       []T
	closed    bool
}

// New constructs a Batcher. A non-positive flushSize flushes on every push.
func New[T any](logger *zap.Logger, flushSize int) *Batcher[T] {
	if flushSize < 1 {
		flushSize = 1
	}
	return &Batcher[T]{
		logger:    logger,
		batches:   make(chan Batch[T]),
		flushSize: flushSize,
	}
}

// Batches returns the channel the consumer reads from. It is closed after the
// final batch is acknowledged.
func (b *Batcher[T]) Batches() <-chan Batch[T] {
	return b.batches
}

// Pending returns the number of buffered items not yet handed to the consumer.
func (b *Batcher[T]) Pending() int {
	return len(b.buf)
}

// Push buffers items and flushes when the buffer reaches the flush size. When
// a flush happens Push returns only after the consumer acknowledged it.
func (b *Batcher[T]) Push(ctx context.Context, items ...T) error {
	if b.closed {
		return ErrClosed
	}
	b.buf = append(b.buf, items...)
	if len(b.buf) < b.flushSize {
		return nil
	}
	return b.flush(ctx)
}

// Drain flushes whatever is buffered, regardless of the flush size, and waits
// for the acknowledgement.
func (b *Batcher[T]) Drain(ctx context.Context) error {
	if b.closed {
		return ErrClosed
	}
	if len(b.buf) == 0 {
		return nil
	}
	return b.flush(ctx)
}

// Close drains the buffer, sends the final batch and waits for the consumer to
// acknowledge it. The error carried by that acknowledgement is returned.
func (b *Batcher[T]) Close(ctx context.Context) error {
	if err := b.Drain(ctx); err != nil {
		return err
	}
	b.closed = true

	err := b.send(ctx, Batch[T]{Final: true, ack: make(chan error, 1)})
	if err != nil && ctx.Err() != nil {
		return err
	}
	close(b.batches)
	return err
}

func (b *Batcher[T]) flush(ctx context.Context) error {
	items := b.buf
	b.buf = nil

	b.logger.Debug("flushing batch", zap.Int("size", len(items)))
	return b.send(ctx, Batch[T]{Items: items, ack: make(chan error, 1)})
}

func (b *Batcher[T]) send(ctx context.Context, batch Batch[T]) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case b.batches <- batch:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-batch.ack:
		return err
	}
}
