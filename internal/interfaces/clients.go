// Package interfaces declares the collaborator contracts the dispatch
// flow depends on, so each can be mocked independently in tests.
package interfaces

import (
	"context"

	"github.com/mandymoney/quote-craft/internal/types"
)

// DocumentRenderer produces the PDF byte stream for a session snapshot.
// Quote and enquiry actions use the quote layout; orders use the order
// layout.
type DocumentRenderer interface {
	RenderQuote(data types.DocumentData) ([]byte, error)
	RenderOrder(data types.DocumentData) ([]byte, error)
}

// StorageUploader persists a rendered document and returns a durable
// public URL. Upload failure is recoverable: callers degrade to a nil
// URL and rely on the local download.
type StorageUploader interface {
	Upload(ctx context.Context, data []byte, filename string) (string, error)
}

// AlertNotifier delivers a fire-and-forget operator alert for a quote
// attempt. Failures are logged, never surfaced to the user.
type AlertNotifier interface {
	NotifyQuoteAttempt(ctx context.Context, attempt types.QuoteAttempt) error
}

// AttemptQueuePublisher enqueues an attempt record for later replay when
// the synchronous audit write fails.
type AttemptQueuePublisher interface {
	PublishQuoteAttempt(ctx context.Context, attempt types.QuoteAttempt) error
}

// AddressLookup resolves a partial query into address suggestions. The
// service may be unavailable; every address field stays manually
// editable as the fallback.
type AddressLookup interface {
	Lookup(ctx context.Context, query string) ([]types.AddressComponents, error)
}
