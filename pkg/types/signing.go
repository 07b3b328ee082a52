package types

const (
	SigningStatusDraft   = "DRAFT"
	SigningStatusPending = "PENDING"
)

type SigningRecipient struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Status string `json:"status,omitempty"`
	Role   string `json:"role,omitempty"`
}

// SigningDocument is the provider's view of a dispatched lease document.
// Synthetic records produced by the mock provider (or by the network-error
// fallback on status fetches) carry NetworkError/ErrorMessage so consumers
// can tell them apart from authoritative provider state.
// DocumentStatus is the payload of GET /document-status: the provider's
// current view of a document plus its recipient sign-off states. The id is
// kept as a string so mock lookups can echo whatever identifier the caller
// supplied.
type DocumentStatus struct {
	ID           string             `json:"id"`
	Status       string             `json:"status"`
	CreatedAt    string             `json:"createdAt,omitempty"`
	Recipients   []SigningRecipient `json:"recipients"`
	NetworkError bool               `json:"networkError,omitempty"`
	ErrorMessage string             `json:"errorMessage,omitempty"`
}

type SigningDocument struct {
	DocumentID   int64              `json:"documentId"`
	UploadURL    string             `json:"uploadUrl,omitempty"`
	Status       string             `json:"status,omitempty"`
	CreatedAt    string             `json:"createdAt,omitempty"`
	Recipients   []SigningRecipient `json:"recipients"`
	SigningURL   string             `json:"signingUrl,omitempty"`
	NetworkError bool               `json:"networkError,omitempty"`
	ErrorMessage string             `json:"errorMessage,omitempty"`
}
