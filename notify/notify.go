// Package notify provides the notification channels used by the dispatcher.
package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Channel is the interface all notification channels must implement.
// Recipient addressing is already resolved by the caller; a channel only delivers.
type Channel interface {
	Name() string
	Send(ctx context.Context, recipient, message string) error
}

// sink serialises writes of rendered messages to a shared writer.
type sink struct {
	mu  sync.Mutex
	out io.Writer
}

func newSink(out io.Writer) *sink {
	if out == nil {
		out = os.Stdout
	}
	return &sink{out: out}
}

func (s *sink) write(ctx context.Context, line string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintln(s.out, line)
	return err
}

// New resolves a channel by name. Names are case-insensitive.
func New(name string, out io.Writer) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "email":
		return NewEmail(out), nil
	case "sms":
		return NewSMS(out), nil
	case "push":
		return NewPush(out), nil
	case "whatsapp":
		return NewWhatsApp(out), nil
	}
	return nil, fmt.Errorf("unknown notification channel %q", name)
}

// FromConfig builds the channels named in names, preserving their order.
// All channels share out.
func FromConfig(names []string, out io.Writer) ([]Channel, error) {
	s := newSink(out)
	channels := make([]Channel, 0, len(names))
	for _, name := range names {
		ch, err := New(name, nil)
		if err != nil {
			return nil, err
		}
		ch.(sinkSetter).setSink(s)
		channels = append(channels, ch)
	}
	return channels, nil
}

type sinkSetter interface {
	setSink(*sink)
}
