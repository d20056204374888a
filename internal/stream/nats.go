// Package stream publishes measurement events on NATS.
package stream

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/cgxeiji/cuffbp"
)

// Default subjects.
const (
	PaceSubject   = "cuff.pace"
	ResultSubject = "cuff.result"
)

// Connect connects to a NATS server.
func Connect(url string) (*nats.Conn, error) {
	return nats.Connect(
		url,
		nats.Name("cuffbp"),
		nats.Timeout(3*time.Second),
		nats.ReconnectWait(500*time.Millisecond),
		nats.MaxReconnects(-1),
	)
}

type publisher interface {
	Publish(subject string, data []byte) error
}

// PaceMsg is published for every reading taken while the cuff is released.
type PaceMsg struct {
	Ts       int64   `json:"ts"`
	Pressure float64 `json:"pressure"`
	Pace     string  `json:"pace"`
	Advice   string  `json:"advice"`
}

// ResultMsg is published once a measurement completes.
type ResultMsg struct {
	Ts     int64         `json:"ts"`
	Result cuffbp.Result `json:"result"`
	Advice string        `json:"advice"`
}

// Publisher sends engine events to NATS subjects.
type Publisher struct {
	pub     publisher
	pace    string
	result  string
	nowFunc func() time.Time
}

// NewPublisher returns a publisher on the default subjects.
func NewPublisher(nc *nats.Conn) *Publisher {
	return newPublisher(nc)
}

func newPublisher(pub publisher) *Publisher {
	return &Publisher{
		pub:     pub,
		pace:    PaceSubject,
		result:  ResultSubject,
		nowFunc: time.Now,
	}
}

// Publish sends the event if it carries a pace advice or a result.
func (p *Publisher) Publish(ev cuffbp.Event) error {
	ts := p.nowFunc().UnixMilli()

	switch {
	case ev.Kind == cuffbp.SessionComplete && ev.Result != nil:
		return p.send(p.result, ResultMsg{
			Ts:     ts,
			Result: *ev.Result,
			Advice: ev.Result.Category.Advice(),
		})

	case ev.Kind == cuffbp.Capturing && ev.Pace != cuffbp.PaceNone:
		return p.send(p.pace, PaceMsg{
			Ts:       ts,
			Pressure: ev.Pressure,
			Pace:     ev.Pace.String(),
			Advice:   ev.Pace.Advice(),
		})
	}

	return nil
}

func (p *Publisher) send(subject string, msg any) error {
	b, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("stream: could not encode %s: %w", subject, err)
	}
	if err := p.pub.Publish(subject, b); err != nil {
		return fmt.Errorf("stream: could not publish %s: %w", subject, err)
	}
	return nil
}
