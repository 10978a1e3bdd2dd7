package rx

import rs "github.com/jjeffcaii/reactor-go"

const (
	// signalDefault is the zero value of SignalType: no terminal signal yet.
	signalDefault = SignalType(0)
	// SignalComplete indicated that subscriber was completed.
	SignalComplete = SignalType(rs.SignalTypeComplete)
	// SignalCancel indicates that subscriber was cancelled.
	SignalCancel = SignalType(rs.SignalTypeCancel)
	// SignalError indicates that subscriber has some faults.
	SignalError = SignalType(rs.SignalTypeError)
)

// SignalType is the signal of reactive events like `OnNext`, `OnComplete`, `OnCancel` and `OnError`.
type SignalType rs.SignalType

func (s SignalType) String() string {
	return rs.SignalType(s).String()
}
