package documenso

import (
	"context"
	"time"

	"leasedesk/pkg/types"
)

// Mock is the offline signing provider used when no API key is configured.
// It never performs network calls; records it returns are synthetic and
// non-authoritative.
type Mock struct {
	now func() time.Time
}

func NewMock() *Mock {
	return &Mock{now: time.Now}
}

func (m *Mock) SendDocument(_ context.Context, _, recipientName, recipientEmail string, _ []byte) (*types.SigningDocument, error) {
	return &types.SigningDocument{
		DocumentID: m.now().UnixMilli(),
		Status:     types.SigningStatusDraft,
		Recipients: []types.SigningRecipient{
			{Email: recipientEmail, Name: recipientName, Status: types.SigningStatusPending},
		},
	}, nil
}

func (m *Mock) Document(_ context.Context, documentID, fallbackEmail, fallbackName string) (*types.DocumentStatus, error) {
	return &types.DocumentStatus{
		ID:        documentID,
		Status:    types.SigningStatusPending,
		CreatedAt: m.now().UTC().Format(time.RFC3339),
		Recipients: []types.SigningRecipient{
			{Email: fallbackEmail, Name: fallbackName, Status: types.SigningStatusPending},
		},
	}, nil
}
