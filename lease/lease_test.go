package lease_test

import (
	"context"
	"fmt"
	"log"
	"testing"
	"time"

	"github.com/warmsocket/rsocket"
	"github.com/warmsocket/rsocket/lease"
	"github.com/warmsocket/rsocket/payload"
	"github.com/warmsocket/rsocket/rx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

const _tp = "tcp://127.0.0.1:7979"

func serve(ctx context.Context) {
	factory, err := lease.NewSimpleFactory(10*time.Second, 7*time.Second, 1*time.Second, 5)
	if err != nil {
		log.Fatal(err)
	}
	err = rsocket.Receive().
		Lease(factory).
		Acceptor(func(setup payload.SetupPayload, sendingSocket rsocket.CloseableRSocket) (rsocket.RSocket, error) {
			return rsocket.NewAbstractSocket(
				rsocket.RequestResponse(func(msg payload.Payload) rx.Mono {
					return rx.JustMono(msg)
				}),
			), nil
		}).
		Transport(_tp).
		Serve(ctx)
	if err != nil {
		log.Fatal(err)
	}
}

func dial(ctx context.Context) (cli rsocket.CloseableRSocket, err error) {
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		cli, err = rsocket.Connect().
			Lease().
			Transport(_tp).
			Start(ctx)
		if err == nil {
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	return
}

func TestClientWithLease(t *testing.T) {
	go serve(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	cli, err := dial(ctx)
	require.NoError(t, err, "connect failed")
	defer cli.Close()

	success := atomic.NewUint32(0)

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			time.Sleep(1 * time.Second)
			v, err := cli.RequestResponse(payload.NewString("hello world", "go")).Block(context.Background())
			if err != nil {
				fmt.Println("request failed:", err)
			} else {
				success.Inc()
				fmt.Println("request success:", v)
			}
		}
	}
	assert.Equal(t, uint32(10), success.Load(), "bad requests")
}
