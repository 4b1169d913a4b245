// internal/alert/alert.go
//
// User-visible notifications. The host UI exposes a sendAlert-style
// callback taking {title, message, severity}; this package models that
// capability so core components can raise non-fatal warnings without
// knowing how the host renders them.

package alert

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// Severity of a user-visible notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Alert is one user-visible notification.
type Alert struct {
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Notifier delivers alerts to the host UI. Implementations must not block
// and must not panic; alerting is always best effort.
type Notifier interface {
	Notify(a Alert)
}

// LogNotifier writes alerts to the structured log. Used as the default
// sink when no host callback is wired.
type LogNotifier struct{}

func (LogNotifier) Notify(a Alert) {
	log.Warn().
		Str("title", a.Title).
		Str("severity", string(a.Severity)).
		Msg(a.Message)
}

// Collector buffers alerts so a request handler can drain them into its
// response. Safe for concurrent use.
type Collector struct {
	mu     sync.Mutex
	alerts []Alert
}

func (c *Collector) Notify(a Alert) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.alerts = append(c.alerts, a)
}

// Drain returns the buffered alerts and clears the buffer.
func (c *Collector) Drain() []Alert {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.alerts
	c.alerts = nil
	return out
}

// Tee fans one alert out to multiple notifiers.
type Tee []Notifier

func (t Tee) Notify(a Alert) {
	for _, n := range t {
		n.Notify(a)
	}
}

type ctxKey struct{}

// WithCollector attaches a request-scoped Collector to the context so
// components deep in the call chain can surface alerts to the response.
func WithCollector(ctx context.Context, c *Collector) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// FromContext returns the request-scoped Collector, if any.
func FromContext(ctx context.Context) (*Collector, bool) {
	c, ok := ctx.Value(ctxKey{}).(*Collector)
	return c, ok
}
