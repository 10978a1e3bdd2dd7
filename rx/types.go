package rx

import (
	"context"
	"errors"

	"github.com/warmsocket/rsocket/payload"
)

const RequestInfinite = 1<<31 - 1

var errWrongSignal = errors.New("rx: signal already terminated")

type (
	// FnOnComplete handles an OnComplete signal.
	FnOnComplete = func(ctx context.Context)
	// FnOnNext handles an OnNext signal.
	FnOnNext = func(ctx context.Context, s Subscription, elem payload.Payload)
	// FnOnSubscribe handles an OnSubscribe signal.
	FnOnSubscribe = func(ctx context.Context, s Subscription)
	// FnOnError handles an OnError signal.
	FnOnError = func(ctx context.Context, err error)
	// FnOnCancel handles an OnCancel signal.
	FnOnCancel = func(ctx context.Context)
	// FnOnRequest handles a Request(n) signal.
	FnOnRequest = func(ctx context.Context, n int)
	// FnOnFinally runs once a stream reaches a terminal signal, whatever it was.
	FnOnFinally = func(ctx context.Context, sig SignalType)
	// FnConsumer consumes an emitted element, e.g. after it has been delivered.
	FnConsumer = func(ctx context.Context, elem payload.Payload)
	// FnPredicate tests an element.
	FnPredicate = func(elem payload.Payload) bool
)

// OptSubscribe customizes a Subscribe call by registering a hook.
type OptSubscribe = func(*hooks)

// OnNext registers a hook invoked for every emitted element.
func OnNext(fn FnOnNext) OptSubscribe {
	return func(h *hooks) { h.DoOnNext(fn) }
}

// OnComplete registers a hook invoked once a stream completes successfully.
func OnComplete(fn FnOnComplete) OptSubscribe {
	return func(h *hooks) { h.DoOnComplete(fn) }
}

// OnError registers a hook invoked once a stream terminates with an error.
func OnError(fn FnOnError) OptSubscribe {
	return func(h *hooks) { h.DoOnError(fn) }
}

// OnSubscribe registers a hook invoked right after subscription happens.
func OnSubscribe(fn FnOnSubscribe) OptSubscribe {
	return func(h *hooks) { h.DoOnSubscribe(fn) }
}

// OnCancel registers a hook invoked once a stream is cancelled.
func OnCancel(fn FnOnCancel) OptSubscribe {
	return func(h *hooks) { h.DoOnCancel(fn) }
}

// OnFinally registers a hook invoked once a stream reaches any terminal signal.
func OnFinally(fn FnOnFinally) OptSubscribe {
	return func(h *hooks) { h.DoOnFinally(fn) }
}

// Publisher is anything that can be subscribed to.
type Publisher interface {
	// Subscribe subscribes to the publisher, returning a Disposable that
	// can be used to cancel the subscription early.
	Subscribe(ctx context.Context, options ...OptSubscribe) Disposable
}

// MonoProducer is handed to the generator function passed to NewMono; it
// resolves the Mono with either a single element or an error.
type MonoProducer interface {
	// Success resolves the Mono with elem.
	Success(elem payload.Payload) error
	// Error resolves the Mono with err.
	Error(err error)
}

// Producer is handed to the generator function passed to NewFlux; it emits
// zero or more elements before terminating the Flux.
type Producer interface {
	// Next emits elem downstream.
	Next(elem payload.Payload) error
	// Error terminates the Flux with err.
	Error(err error)
	// Complete terminates the Flux successfully.
	Complete()
}

// Mono is a Publisher that emits at most one element.
type Mono interface {
	Publisher
	Disposable
	// DoOnSubscribe registers fn to run when this Mono is subscribed.
	DoOnSubscribe(fn FnOnSubscribe) Mono
	// DoOnSuccess registers fn to run when this Mono resolves with a value.
	DoOnSuccess(fn FnOnNext) Mono
	// DoOnError registers fn to run when this Mono resolves with an error.
	DoOnError(fn FnOnError) Mono
	// DoOnCancel registers fn to run when this Mono is cancelled.
	DoOnCancel(fn FnOnCancel) Mono
	// DoAfterSuccess registers fn to run after the resolved value has been delivered.
	DoAfterSuccess(fn FnConsumer) Mono
	// DoFinally registers fn to run once this Mono reaches any terminal signal.
	DoFinally(fn FnOnFinally) Mono
	// SubscribeOn sets the scheduler used to run the subscriber-facing side.
	SubscribeOn(s Scheduler) Mono
	// PublishOn sets the scheduler used to run the generator function.
	PublishOn(s Scheduler) Mono
}

// Flux is a Publisher that emits zero or more elements.
type Flux interface {
	Publisher
	Disposable
	// N returns the outstanding demand: how many more elements the subscriber
	// has requested (RequestInfinite when unbounded).
	N() int
	// DoOnNext registers fn to run for every emitted element.
	DoOnNext(fn FnOnNext) Flux
	// DoOnComplete registers fn to run when this Flux completes successfully.
	DoOnComplete(fn FnOnComplete) Flux
	// DoOnError registers fn to run when this Flux terminates with an error.
	DoOnError(fn FnOnError) Flux
	// DoOnCancel registers fn to run when this Flux is cancelled.
	DoOnCancel(fn FnOnCancel) Flux
	// DoOnSubscribe registers fn to run when this Flux is subscribed.
	DoOnSubscribe(fn FnOnSubscribe) Flux
	// DoOnRequest registers fn to run whenever downstream requests more elements.
	DoOnRequest(fn FnOnRequest) Flux
	// DoAfterNext registers fn to run after each element has been delivered.
	DoAfterNext(fn FnConsumer) Flux
	// DoFinally registers fn to run once this Flux reaches any terminal signal.
	DoFinally(fn FnOnFinally) Flux
	// LimitRate is not supported: the Flux built by NewFlux, which every Flux
	// in this package is, panics when it is called.
	LimitRate(n int) Flux
	// SubscribeOn sets the scheduler used to run the subscriber-facing side.
	SubscribeOn(s Scheduler) Flux
	// PublishOn sets the scheduler used to run the generator function.
	PublishOn(s Scheduler) Flux
}
