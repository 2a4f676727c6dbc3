package queries_test

import (
	"testing"

	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetParcelByTrackingQuery_Valid(t *testing.T) {
	query, err := queries.NewGetParcelByTrackingQuery(kernel.NewTrackingNumber())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetParcelByTrackingQuery_InvalidTrackingNumber(t *testing.T) {
	_, err := queries.NewGetParcelByTrackingQuery(kernel.TrackingNumber{})
	require.Error(t, err)
}

func TestGetParcelByTrackingQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetParcelByTrackingQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetParcelByTrackingQueryIsNotConstructed)
}

func TestNewGetCustomerBillsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetCustomerBillsQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetCustomerBillsQuery_InvalidCustomerID(t *testing.T) {
	_, err := queries.NewGetCustomerBillsQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetCustomerBillsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCustomerBillsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCustomerBillsQueryIsNotConstructed)
}

func TestNewGetParcelsForDriverQuery_Valid(t *testing.T) {
	query, err := queries.NewGetParcelsForDriverQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetParcelsForDriverQuery_InvalidDriverID(t *testing.T) {
	_, err := queries.NewGetParcelsForDriverQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetParcelsForDriverQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetParcelsForDriverQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetParcelsForDriverQueryIsNotConstructed)
}
