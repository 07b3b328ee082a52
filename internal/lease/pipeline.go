package lease

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"leasedesk/internal/documenso"
	"leasedesk/pkg/types"

	"github.com/sirupsen/logrus"
)

type PropertyFinder interface {
	PropertyByEmail(ctx context.Context, email string) (*types.Property, error)
}

type LeaseCreator interface {
	CreateLease(ctx context.Context, lease *types.Lease) error
}

// Pipeline runs the generate-and-send flow: validate the request, render
// the lease PDF, stage it to a temp file, dispatch it to the signing
// provider, then persist the lease row against the landlord's property.
//
// The property lookup deliberately happens after dispatch, mirroring the
// behavior the web client was built against: a missing property fails the
// request even though the document has already gone out, and no
// compensating cancellation is issued.
type Pipeline struct {
	logger     *logrus.Logger
	provider   documenso.Provider
	properties PropertyFinder
	leases     LeaseCreator
}

func NewPipeline(logger *logrus.Logger, provider documenso.Provider, properties PropertyFinder, leases LeaseCreator) *Pipeline {
	return &Pipeline{
		logger:     logger,
		provider:   provider,
		properties: properties,
		leases:     leases,
	}
}

// Result is the success payload of a pipeline run.
type Result struct {
	DocumentID  int64
	RedirectURL string
	Document    *types.SigningDocument
}

func (p *Pipeline) Run(ctx context.Context, req types.LeaseRequest) (*Result, error) {
	apartmentNumber, err := ValidateRequest(req)
	if err != nil {
		return nil, err
	}

	pdfBytes, err := RenderPDF(req)
	if err != nil {
		return nil, err
	}

	tempPath := filepath.Join(os.TempDir(), fmt.Sprintf("lease_%d.pdf", time.Now().UnixMilli()))
	if err := os.WriteFile(tempPath, pdfBytes, 0o600); err != nil {
		return nil, fmt.Errorf("failed to stage lease pdf: %w", err)
	}
	defer func() {
		if err := os.Remove(tempPath); err != nil {
			p.logger.WithError(err).Warn("failed to delete temp lease pdf")
		}
	}()

	title := fmt.Sprintf("Lease Agreement - Apartment %s", apartmentNumber)
	document, err := p.provider.SendDocument(ctx, title, req.TenantName, req.TenantEmail, pdfBytes)
	if err != nil {
		return nil, err
	}

	property, err := p.properties.PropertyByEmail(ctx, req.LandlordEmail)
	if err != nil {
		return nil, err
	}

	leaseStart, err := parseLeaseDate(req.LeaseStartDate)
	if err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid leaseStartDate: %s", req.LeaseStartDate)}
	}
	leaseEnd, err := parseLeaseDate(req.LeaseEndDate)
	if err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid leaseEndDate: %s", req.LeaseEndDate)}
	}

	firstName, lastName := SplitTenantName(req.TenantName)

	var securityDeposit *string
	if req.SecurityDeposit != "" {
		securityDeposit = &req.SecurityDeposit
	}

	record := &types.Lease{
		FirstName:       firstName,
		LastName:        lastName,
		Email:           req.TenantEmail,
		SecurityDeposit: securityDeposit,
		ApartmentNumber: apartmentNumber,
		LeaseStart:      leaseStart,
		LeaseEnd:        leaseEnd,
		MonthlyRent:     req.MonthlyRent,
		LeaseStatus:     types.LeaseStatusPending,
		PropertyID:      property.ID,
	}

	if err := p.leases.CreateLease(ctx, record); err != nil {
		return nil, err
	}

	redirectURL := fmt.Sprintf("/confirmation?id=%d&email=%s&name=%s",
		document.DocumentID,
		url.QueryEscape(req.TenantEmail),
		url.QueryEscape(req.TenantName),
	)

	return &Result{
		DocumentID:  document.DocumentID,
		RedirectURL: redirectURL,
		Document:    document,
	}, nil
}

func parseLeaseDate(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
