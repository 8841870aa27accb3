package build

import (
	"context"
	"time"

	"github.com/Bluscream/acedocs"
)

// DefaultProgressTimeout bounds how long a finished build waits for the
// progress sink to drain.
const DefaultProgressTimeout = 5 * time.Second

// notifier delivers progress messages to a sink on its own goroutine, in
// order. A panicking sink loses that message only.
type notifier struct {
	ch   chan string
	done chan struct{}
}

// notifyBuffer exceeds the number of messages a single build sends.
const notifyBuffer = 16

func newNotifier(sink acedocs.ProgressFunc) *notifier {
	n := &notifier{
		ch:   make(chan string, notifyBuffer),
		done: make(chan struct{}),
	}
	go func() {
		defer close(n.done)
		for msg := range n.ch {
			deliver(sink, msg)
		}
	}()
	return n
}

func deliver(sink acedocs.ProgressFunc, msg string) {
	if sink == nil {
		return
	}
	defer func() { _ = recover() }()
	sink(msg)
}

// send queues msg. It drops the message when the sink has fallen a full
// buffer behind.
func (n *notifier) send(msg string) {
	select {
	case n.ch <- msg:
	default:
	}
}

// close flushes pending messages. It waits for the sink to finish, but no
// longer than timeout and no longer than ctx lives. A stuck sink keeps its
// goroutine until it returns.
func (n *notifier) close(ctx context.Context, timeout time.Duration) {
	close(n.ch)

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-n.done:
	case <-ctx.Done():
	case <-timer.C:
	}
}
