package documenso

import (
	"context"

	"leasedesk/pkg/types"
)

// Provider is the signing-service abstraction the lease pipeline depends
// on. Exactly one implementation is selected at startup: Client when a
// DOCUMENSO_API_KEY is configured, Mock otherwise.
type Provider interface {
	// SendDocument creates a document on the provider, uploads the PDF
	// bytes and triggers the signing email to the recipient.
	SendDocument(ctx context.Context, title, recipientName, recipientEmail string, pdf []byte) (*types.SigningDocument, error)

	// Document fetches the current status of a dispatched document. The
	// fallback email/name are used when a non-authoritative record has to
	// be synthesized locally.
	Document(ctx context.Context, documentID, fallbackEmail, fallbackName string) (*types.DocumentStatus, error)
}
