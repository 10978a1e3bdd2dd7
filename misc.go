package rsocket

import (
	"log"

	"github.com/warmsocket/rsocket/internal/common"
)

// TracePoolCount prints the number of pooled buffers currently borrowed.
// Useful when chasing a leak in frame or fragment handling.
func TracePoolCount() {
	log.Printf("*** trace count: bytebuff=%d ***\n", common.CountByteBuffer())
}
