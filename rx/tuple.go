package rx

import (
	"errors"

	"github.com/jjeffcaii/reactor-go"
	"github.com/warmsocket/rsocket/payload"
)

var (
	errWrongTupleType = errors.New("tuple value must be a payload")
	errTupleIndex     = errors.New("tuple index out of range")
)

// IsWrongTupleTypeError returns true if err came from a tuple slot
// holding something other than a payload.
func IsWrongTupleTypeError(err error) bool {
	return err == errWrongTupleType
}

// Item is one slot of a zipped Tuple: the value a source produced, or
// the error it failed with.
type Item struct {
	V reactor.Any
	E error
}

// Tuple holds the aligned results of zipping several publishers
// together, one Item per source.
type Tuple struct {
	items []*Item
}

// NewTuple builds a Tuple from the given items. A nil item marks a
// source that produced nothing.
func NewTuple(items ...*Item) Tuple {
	return Tuple{items: items}
}

// GetValue returns the raw value at index, or nil if index is out of
// range or that slot holds no value.
func (t Tuple) GetValue(index int) interface{} {
	if index < 0 || index >= len(t.items) {
		return nil
	}
	it := t.items[index]
	if it == nil {
		return nil
	}
	return it.V
}

// HasError returns true if any zipped source produced an error.
func (t Tuple) HasError() bool {
	for _, it := range t.items {
		if it != nil && it.E != nil {
			return true
		}
	}
	return false
}

// CollectValues returns the successfully produced payloads, in order,
// skipping empty and errored slots.
func (t Tuple) CollectValues() (values []payload.Payload) {
	for _, it := range t.items {
		if it == nil || it.E != nil || it.V == nil {
			continue
		}
		if p, ok := it.V.(payload.Payload); ok {
			values = append(values, p)
		}
	}
	return
}

func (t Tuple) First() (payload.Payload, error) {
	return t.at(0)
}

func (t Tuple) Second() (payload.Payload, error) {
	return t.at(1)
}

func (t Tuple) Last() (payload.Payload, error) {
	return t.at(len(t.items) - 1)
}

func (t Tuple) Get(index int) (payload.Payload, error) {
	return t.at(index)
}

func (t Tuple) Len() int {
	return len(t.items)
}

func (t Tuple) ForEach(callback func(payload.Payload, error) bool) {
	for i := range t.items {
		p, err := t.at(i)
		if !callback(p, err) {
			return
		}
	}
}

func (t Tuple) ForEachWithIndex(callback func(payload.Payload, error, int) bool) {
	for i := range t.items {
		p, err := t.at(i)
		if !callback(p, err, i) {
			return
		}
	}
}

func (t Tuple) at(index int) (payload.Payload, error) {
	if index < 0 || index >= len(t.items) {
		return nil, errTupleIndex
	}
	it := t.items[index]
	if it == nil {
		return nil, nil
	}
	if it.E != nil {
		return nil, it.E
	}
	if it.V == nil {
		return nil, nil
	}
	p, ok := it.V.(payload.Payload)
	if ok {
		return p, nil
	}
	return nil, errWrongTupleType
}
