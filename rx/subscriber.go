package rx

import (
	"github.com/jjeffcaii/reactor-go"
)

// Subscription represents a one-to-one lifecycle of a Subscriber subscribing to a Publisher.
type Subscription = reactor.Subscription
