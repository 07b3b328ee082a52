package documenso

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"leasedesk/pkg/types"
)

const (
	recipientRoleSigner = "SIGNER"
	documentTimezone    = "America/Chicago"
	documentDateFormat  = "MM/DD/YYYY"
)

// Client talks to the Documenso REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

type createDocumentRequest struct {
	Title          string                   `json:"title"`
	Recipients     []types.SigningRecipient `json:"recipients"`
	FileName       string                   `json:"fileName"`
	RedirectURL    *string                  `json:"redirectUrl"`
	Timezone       string                   `json:"timezone"`
	DateFormat     string                   `json:"dateFormat"`
	DocumentLength int                      `json:"documentLength"`
}

type sendDocumentRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type apiError struct {
	Message string `json:"message"`
}

// SendDocument performs the three-call dispatch sequence: create the
// document record, PUT the raw PDF bytes to the returned upload target (when
// one is given), then trigger the signing email. Any non-success response
// aborts the remaining calls; no rollback of the provider-side document is
// attempted.
func (c *Client) SendDocument(ctx context.Context, title, recipientName, recipientEmail string, pdf []byte) (*types.SigningDocument, error) {
	createBody := createDocumentRequest{
		Title: title,
		Recipients: []types.SigningRecipient{
			{Email: recipientEmail, Name: recipientName, Role: recipientRoleSigner},
		},
		FileName:       fmt.Sprintf("%s.pdf", title),
		Timezone:       documentTimezone,
		DateFormat:     documentDateFormat,
		DocumentLength: base64.StdEncoding.EncodedLen(len(pdf)),
	}

	payload, err := json.Marshal(createBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal create document request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/documents", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create document request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call documenso create document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("documenso api error: %s", errorMessage(resp))
	}

	var document types.SigningDocument
	if err := json.NewDecoder(resp.Body).Decode(&document); err != nil {
		return nil, fmt.Errorf("failed to decode create document response: %w", err)
	}

	if document.UploadURL != "" {
		if err := c.uploadPDF(ctx, document.UploadURL, pdf); err != nil {
			return nil, err
		}
	}

	if err := c.sendDocument(ctx, document.DocumentID, recipientName); err != nil {
		return nil, err
	}

	return &document, nil
}

func (c *Client) uploadPDF(ctx context.Context, uploadURL string, pdf []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, bytes.NewReader(pdf))
	if err != nil {
		return fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/pdf")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to upload pdf to documenso: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("failed to upload pdf to documenso: %s", resp.Status)
	}

	return nil
}

func (c *Client) sendDocument(ctx context.Context, documentID int64, recipientName string) error {
	sendBody := sendDocumentRequest{
		Subject: fmt.Sprintf("Lease Agreement for %s", recipientName),
		Message: "Please review and sign your lease agreement.",
	}

	payload, err := json.Marshal(sendBody)
	if err != nil {
		return fmt.Errorf("failed to marshal send document request: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/documents/%d/send", c.baseURL, documentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create send request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call documenso send document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("documenso api error: %s", errorMessage(resp))
	}

	return nil
}

type providerDocument struct {
	ID         json.Number              `json:"id"`
	Status     string                   `json:"status"`
	CreatedAt  string                   `json:"createdAt"`
	Recipients []types.SigningRecipient `json:"recipients"`
}

// Document fetches the provider's view of a document. The status endpoint
// expects the API key with an `api_` prefix, so the key is normalized by
// stripping any existing prefix and re-adding it. When the provider is
// unreachable or answers with a non-success status, a locally synthesized
// PENDING record is returned with the network-error flag set instead of
// failing the request.
func (c *Client) Document(ctx context.Context, documentID, fallbackEmail, fallbackName string) (*types.DocumentStatus, error) {
	document, err := c.fetchDocument(ctx, documentID)
	if err != nil {
		return &types.DocumentStatus{
			ID:           documentID,
			Status:       types.SigningStatusPending,
			CreatedAt:    time.Now().UTC().Format(time.RFC3339),
			NetworkError: true,
			ErrorMessage: err.Error(),
			Recipients: []types.SigningRecipient{
				{Email: fallbackEmail, Name: fallbackName, Status: types.SigningStatusPending},
			},
		}, nil
	}

	return document, nil
}

func (c *Client) fetchDocument(ctx context.Context, documentID string) (*types.DocumentStatus, error) {
	formattedKey := fmt.Sprintf("api_%s", strings.TrimPrefix(c.apiKey, "api_"))

	url := fmt.Sprintf("%s/api/v1/documents/%s", c.baseURL, documentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create document status request: %w", err)
	}
	req.Header.Set("Authorization", formattedKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call documenso document status: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("documenso api error: %s", errorMessage(resp))
	}

	var document providerDocument
	if err := json.NewDecoder(resp.Body).Decode(&document); err != nil {
		return nil, fmt.Errorf("failed to decode document status response: %w", err)
	}

	return &types.DocumentStatus{
		ID:         document.ID.String(),
		Status:     document.Status,
		CreatedAt:  document.CreatedAt,
		Recipients: document.Recipients,
	}, nil
}

// errorMessage pulls the structured provider message out of an error
// response, falling back to the transport status line.
func errorMessage(resp *http.Response) string {
	var apiErr apiError
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
		return apiErr.Message
	}
	return resp.Status
}
