package lease

import (
	"context"
	"errors"
	"io"
	"testing"

	"leasedesk/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	sendCalls int
	lastTitle string
	lastName  string
	lastEmail string
	sendErr   error
	document  *types.SigningDocument
}

func (f *fakeProvider) SendDocument(_ context.Context, title, recipientName, recipientEmail string, pdf []byte) (*types.SigningDocument, error) {
	f.sendCalls++
	f.lastTitle = title
	f.lastName = recipientName
	f.lastEmail = recipientEmail
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	if f.document != nil {
		return f.document, nil
	}
	return &types.SigningDocument{
		DocumentID: 42,
		Status:     types.SigningStatusDraft,
		Recipients: []types.SigningRecipient{
			{Email: recipientEmail, Name: recipientName, Status: types.SigningStatusPending},
		},
	}, nil
}

func (f *fakeProvider) Document(_ context.Context, documentID, fallbackEmail, fallbackName string) (*types.DocumentStatus, error) {
	return &types.DocumentStatus{ID: documentID, Status: types.SigningStatusPending}, nil
}

type fakeProperties struct {
	property *types.Property
	calls    int
}

func (f *fakeProperties) PropertyByEmail(_ context.Context, email string) (*types.Property, error) {
	f.calls++
	if f.property == nil {
		return nil, types.ErrPropertyNotFound
	}
	return f.property, nil
}

type fakeLeases struct {
	created []*types.Lease
	err     error
}

func (f *fakeLeases) CreateLease(_ context.Context, lease *types.Lease) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, lease)
	return nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestPipeline(provider *fakeProvider, properties *fakeProperties, leases *fakeLeases) *Pipeline {
	return NewPipeline(testLogger(), provider, properties, leases)
}

func TestPipelineRejectsInvalidRequestBeforeDispatch(t *testing.T) {
	provider := &fakeProvider{}
	properties := &fakeProperties{property: &types.Property{ID: "prop-1"}}
	leases := &fakeLeases{}

	req := validRequest()
	req.LandlordName = ""

	_, err := newTestPipeline(provider, properties, leases).Run(context.Background(), req)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Zero(t, provider.sendCalls)
	assert.Zero(t, properties.calls)
	assert.Empty(t, leases.created)
}

func TestPipelineDispatchFailureCreatesNoLease(t *testing.T) {
	provider := &fakeProvider{sendErr: errors.New("documenso api error: upstream down")}
	properties := &fakeProperties{property: &types.Property{ID: "prop-1"}}
	leases := &fakeLeases{}

	_, err := newTestPipeline(provider, properties, leases).Run(context.Background(), validRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream down")
	assert.Empty(t, leases.created)
	// dispatch failed before the property lookup
	assert.Zero(t, properties.calls)
}

func TestPipelinePropertyLookupRunsAfterDispatch(t *testing.T) {
	provider := &fakeProvider{}
	properties := &fakeProperties{} // no property registered
	leases := &fakeLeases{}

	_, err := newTestPipeline(provider, properties, leases).Run(context.Background(), validRequest())
	require.ErrorIs(t, err, types.ErrPropertyNotFound)

	// the document was already dispatched when the lookup failed
	assert.Equal(t, 1, provider.sendCalls)
	assert.Empty(t, leases.created)
}

func TestPipelineSuccessCreatesOneLease(t *testing.T) {
	provider := &fakeProvider{}
	properties := &fakeProperties{property: &types.Property{ID: "prop-1"}}
	leases := &fakeLeases{}

	req := validRequest()
	req.TenantName = "John Michael Smith"
	req.SecurityDeposit = ""

	result, err := newTestPipeline(provider, properties, leases).Run(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, leases.created, 1)
	created := leases.created[0]
	assert.Equal(t, "John", created.FirstName)
	assert.Equal(t, "Michael Smith", created.LastName)
	assert.Equal(t, req.TenantEmail, created.Email)
	assert.Equal(t, "4", created.ApartmentNumber)
	assert.Equal(t, types.LeaseStatusPending, created.LeaseStatus)
	assert.Equal(t, "prop-1", created.PropertyID)
	assert.Nil(t, created.SecurityDeposit)

	assert.Equal(t, int64(42), result.DocumentID)
	assert.Equal(t, "Lease Agreement - Apartment 4", provider.lastTitle)
	assert.Contains(t, result.RedirectURL, "/confirmation?id=42")
	assert.Contains(t, result.RedirectURL, "email=ava%40example.com")
	assert.Contains(t, result.RedirectURL, "name=John+Michael+Smith")
}

func TestPipelineRepeatSubmissionsAreNotDeduplicated(t *testing.T) {
	provider := &fakeProvider{}
	properties := &fakeProperties{property: &types.Property{ID: "prop-1"}}
	leases := &fakeLeases{}

	p := newTestPipeline(provider, properties, leases)
	_, err := p.Run(context.Background(), validRequest())
	require.NoError(t, err)
	_, err = p.Run(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Len(t, leases.created, 2)
}

func TestPipelineKeepsSecurityDepositWhenProvided(t *testing.T) {
	provider := &fakeProvider{}
	properties := &fakeProperties{property: &types.Property{ID: "prop-1"}}
	leases := &fakeLeases{}

	req := validRequest()
	req.SecurityDeposit = "2000"

	_, err := newTestPipeline(provider, properties, leases).Run(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, leases.created, 1)
	require.NotNil(t, leases.created[0].SecurityDeposit)
	assert.Equal(t, "2000", *leases.created[0].SecurityDeposit)
}

func TestPipelinePersistFailureSurfaces(t *testing.T) {
	provider := &fakeProvider{}
	properties := &fakeProperties{property: &types.Property{ID: "prop-1"}}
	leases := &fakeLeases{err: errors.New("failed to create lease: connection reset")}

	_, err := newTestPipeline(provider, properties, leases).Run(context.Background(), validRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create lease")
}
