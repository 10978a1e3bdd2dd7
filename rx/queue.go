package rx

import (
	"context"
	"sync/atomic"

	"github.com/warmsocket/rsocket/payload"
)

const defaultQueueSize = 16

// queue is a request(n)-aware buffer sitting between a Producer and its
// subscriber: Poll blocks once outstanding demand is exhausted and wakes up
// again once new demand arrives through Request.
type queue struct {
	tickets int32
	data    chan payload.Payload
	breaker chan struct{}
	onReqN  func(int32)
}

func newQueue(cap int, tickets int32) *queue {
	return &queue{
		tickets: tickets,
		data:    make(chan payload.Payload, cap),
		breaker: make(chan struct{}, 1),
	}
}

func (q *queue) Tickets() int32 {
	return atomic.LoadInt32(&q.tickets)
}

func (q *queue) HandleRequest(fn func(int32)) {
	q.onReqN = fn
}

func (q *queue) Request(n int32) {
	if n <= 0 {
		return
	}
	if n >= RequestInfinite || atomic.LoadInt32(&q.tickets) == RequestInfinite {
		atomic.StoreInt32(&q.tickets, RequestInfinite)
	} else {
		atomic.AddInt32(&q.tickets, n)
	}
	select {
	case q.breaker <- struct{}{}:
	default:
	}
}

func (q *queue) Push(elem payload.Payload) (err error) {
	defer func() {
		if e, ok := recover().(error); ok {
			err = e
		}
	}()
	q.data <- elem
	return
}

func (q *queue) Close() error {
	close(q.data)
	return nil
}

func (q *queue) Poll(ctx context.Context) (elem payload.Payload, ok bool) {
	for atomic.LoadInt32(&q.tickets) <= 0 {
		if q.onReqN != nil {
			q.onReqN(1)
		}
		select {
		case <-ctx.Done():
			return nil, false
		case <-q.breaker:
		}
	}
	if t := atomic.LoadInt32(&q.tickets); t != RequestInfinite {
		atomic.AddInt32(&q.tickets, -1)
	}
	select {
	case <-ctx.Done():
		return nil, false
	case v, ok := <-q.data:
		return v, ok
	}
}
