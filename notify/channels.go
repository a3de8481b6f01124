package notify

import (
	"context"
	"fmt"
	"io"
)

// DefaultEmailSubject is used when an Email channel has no subject configured.
const DefaultEmailSubject = "Account notice"

// --- Email ---
type Email struct {
	Subject string
	sink    *sink
}

func NewEmail(out io.Writer) *Email {
	return &Email{Subject: DefaultEmailSubject, sink: newSink(out)}
}

func (e *Email) Name() string    { return "email" }
func (e *Email) setSink(s *sink) { e.sink = s }
func (e *Email) Send(ctx context.Context, recipient, message string) error {
	return e.sink.write(ctx, fmt.Sprintf("[email] to=%s subject=%q body=%q", recipient, e.Subject, message))
}

// --- SMS ---
type SMS struct{ sink *sink }

func NewSMS(out io.Writer) *SMS { return &SMS{sink: newSink(out)} }

func (s *SMS) Name() string     { return "sms" }
func (s *SMS) setSink(sk *sink) { s.sink = sk }
func (s *SMS) Send(ctx context.Context, recipient, message string) error {
	return s.sink.write(ctx, fmt.Sprintf("[sms] %s: %s", recipient, message))
}

// --- Push ---
type Push struct{ sink *sink }

func NewPush(out io.Writer) *Push { return &Push{sink: newSink(out)} }

func (p *Push) Name() string    { return "push" }
func (p *Push) setSink(s *sink) { p.sink = s }
func (p *Push) Send(ctx context.Context, recipient, message string) error {
	return p.sink.write(ctx, fmt.Sprintf("[push] device=%s alert=%q", recipient, message))
}

// --- WhatsApp ---
type WhatsApp struct{ sink *sink }

func NewWhatsApp(out io.Writer) *WhatsApp { return &WhatsApp{sink: newSink(out)} }

func (w *WhatsApp) Name() string    { return "whatsapp" }
func (w *WhatsApp) setSink(s *sink) { w.sink = s }
func (w *WhatsApp) Send(ctx context.Context, recipient, message string) error {
	return w.sink.write(ctx, fmt.Sprintf("[whatsapp] chat=%s text=%s", recipient, message))
}

var (
	_ Channel = (*Email)(nil)
	_ Channel = (*SMS)(nil)
	_ Channel = (*Push)(nil)
	_ Channel = (*WhatsApp)(nil)
)
