package queue

import "errors"

var (
	// ErrQueueFull is returned when the mail queue is at capacity.
	ErrQueueFull = errors.New("mail queue is full")
	// ErrQueueClosed is returned when enqueueing or dequeueing on a closed queue.
	ErrQueueClosed = errors.New("mail queue is closed")
)
