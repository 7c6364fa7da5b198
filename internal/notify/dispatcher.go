// Background dispatch.
//
// The enquiry submission handler must answer the caller as soon as the lead
// is persisted; email delivery happens on a detached goroutine with its own
// error boundary. A failed or slow relay is observable only in the logs.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/advaithaa/realty-backend/internal/domain"
)

// DefaultSendTimeout bounds a single background delivery attempt so a
// wedged relay cannot accumulate goroutines forever.
const DefaultSendTimeout = 15 * time.Second

// Dispatcher schedules one best-effort notification per enquiry. Exactly one
// delivery attempt is made; there is no retry or queue.
type Dispatcher struct {
	mailer    Mailer
	recipient string
	timeout   time.Duration

	wg sync.WaitGroup
}

// NewDispatcher returns a Dispatcher that sends every notification to the
// fixed recipient address. A timeout <= 0 falls back to DefaultSendTimeout.
func NewDispatcher(mailer Mailer, recipient string, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultSendTimeout
	}
	return &Dispatcher{mailer: mailer, recipient: recipient, timeout: timeout}
}

// Dispatch renders the notification for e and schedules its delivery on a
// new goroutine, returning immediately. Delivery errors are logged and
// discarded; they never reach the caller. The enquiry record is the source
// of truth, the email is a lossy side channel.
func (d *Dispatcher) Dispatch(e domain.Enquiry) {
	subject, body := RenderEnquiry(e)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Interface("panic", rec).
					Str("enquiry_id", e.ID).
					Msg("enquiry notification panicked")
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.mailer.Send(ctx, d.recipient, subject, body); err != nil {
			log.Warn().
				Err(err).
				Str("enquiry_id", e.ID).
				Str("recipient", d.recipient).
				Msg("enquiry notification failed")
			return
		}
		log.Info().
			Str("enquiry_id", e.ID).
			Str("recipient", d.recipient).
			Msg("enquiry notification sent")
	}()
}

// Wait blocks until every scheduled delivery has finished. Used on shutdown
// and in tests; request handlers never call it.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
