// Package scanner provides the barcode scan stream abstraction. A Source
// yields decoded barcode strings; a Session binds a source to one webster
// pack and runs each code through the verification workflow.
package scanner

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medpak/webster-service/internal/service"
)

// Source yields decoded barcode strings. The channel is closed when the
// underlying device disconnects.
type Source interface {
	Barcodes() <-chan string
}

// ChannelSource adapts a plain channel to a Source. Used by tests and by
// integrations that push decoded codes directly.
type ChannelSource chan string

// Barcodes implements Source.
func (c ChannelSource) Barcodes() <-chan string { return c }

// Event is the outcome of one scan processed by a Session. Exactly one of
// Result and Err is set.
type Event struct {
	Barcode string
	Result  *service.VerificationResult
	Err     error
}

// Session drives the verification workflow from a barcode source. One
// session serves one pack; opening the pack detail view starts a session
// and closing it stops the session.
type Session struct {
	packID       primitive.ObjectID
	pharmacistID primitive.ObjectID
	workflow     service.Workflow
	source       Source

	events   chan Event
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewSession starts a session that verifies every barcode from source
// against the given pack. The session ends when Stop is called, the context
// is cancelled, or the source channel closes.
func NewSession(ctx context.Context, workflow service.Workflow, source Source, packID, pharmacistID primitive.ObjectID) *Session {
	s := &Session{
		packID:       packID,
		pharmacistID: pharmacistID,
		workflow:     workflow,
		source:       source,
		events:       make(chan Event),
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}
	go s.run(ctx)
	return s
}

// Events returns the stream of verification outcomes. The channel is closed
// when the session ends.
func (s *Session) Events() <-chan Event {
	return s.events
}

// Stop ends the session and waits for the worker goroutine to exit. Safe to
// call more than once.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
	<-s.done
}

func (s *Session) run(ctx context.Context) {
	defer close(s.done)
	defer close(s.events)

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		case code, ok := <-s.source.Barcodes():
			if !ok {
				return
			}
			result, err := s.workflow.VerifyByBarcode(ctx, s.packID, code, s.pharmacistID)
			if err != nil {
				log.Warn().
					Err(err).
					Str("pack_id", s.packID.Hex()).
					Str("barcode", code).
					Msg("Scan verification failed")
			}
			select {
			case s.events <- Event{Barcode: code, Result: result, Err: err}:
			case <-ctx.Done():
				return
			case <-s.stop:
				return
			}
		}
	}
}
