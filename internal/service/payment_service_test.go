package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/bikehub-frontend/internal/domain"
	"github.com/spec-kit/bikehub-frontend/pkg/util"
)

func TestExpiryToDate(t *testing.T) {
	got, err := ExpiryToDate("07/27")
	require.NoError(t, err)
	assert.Equal(t, "2027-07-01", got)

	for _, bad := range []string{"13/27", "7/27", "07/2027", "", "00/10"} {
		_, err := ExpiryToDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestFormatExpiry(t *testing.T) {
	assert.Equal(t, "07/27", FormatExpiry("2027-07-01"))
	assert.Equal(t, "12/30", FormatExpiry("2030-12-01T00:00:00Z"))
	assert.Equal(t, "03/26", FormatExpiry("03/26"))
	assert.Equal(t, "someday", FormatExpiry("someday"))
	assert.Empty(t, FormatExpiry(""))
}

func TestMaskCard(t *testing.T) {
	assert.Equal(t, "**** **** **** 1234", MaskCard("4111111111111234"))
	assert.Equal(t, "**** **** **** 12", MaskCard("12"))
	assert.Empty(t, MaskCard(""))
}

func TestStoredPaymentTypesExcludeCash(t *testing.T) {
	assert.NotContains(t, StoredPaymentTypes(), domain.PaymentTypeCash)
	assert.Len(t, StoredPaymentTypes(), 2)
}

func TestPaymentService_Create(t *testing.T) {
	repo := &fakePaymentMethods{}
	svc := NewPaymentService(repo)

	method, err := svc.Create(context.Background(), PaymentMethodInput{
		Type: "CREDIT_CARD", CC: "4111111111111234", CVC: "123", Holder: "Carol", ExpireAt: "09/28",
	})
	require.NoError(t, err)
	assert.Equal(t, "2028-09-01", method.ExpireAt)
	require.Len(t, repo.created, 1)
	assert.Equal(t, domain.PaymentTypeCreditCard, repo.created[0].Type)

	_, err = svc.Create(context.Background(), PaymentMethodInput{
		Type: "CASH", CC: "1", CVC: "1", Holder: "C", ExpireAt: "09/28",
	})
	assert.Equal(t, http.StatusBadRequest, util.StatusOf(err))

	_, err = svc.Create(context.Background(), PaymentMethodInput{Type: "DEBIT_CARD"})
	assert.Equal(t, "Please fill in all required fields.", message(err))
}

func TestPaymentService_ListFormats(t *testing.T) {
	svc := NewPaymentService(&fakePaymentMethods{list: []domain.PaymentMethod{
		{ID: "p1", CC: "5500000000000004", ExpireAt: "2026-02-01"},
	}})

	views, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "**** **** **** 0004", views[0].MaskedCC)
	assert.Equal(t, "02/26", views[0].Expiry)
	assert.Equal(t, "p1", views[0].ID)
}

func TestPaymentService_UpdateAndDelete(t *testing.T) {
	repo := &fakePaymentMethods{}
	svc := NewPaymentService(repo)
	ctx := context.Background()

	method, err := svc.Update(ctx, "p1", PaymentMethodInput{
		Type: "DEBIT_CARD", CC: "4000", CVC: "999", Holder: "Carol", ExpireAt: "01/30",
	})
	require.NoError(t, err)
	assert.Equal(t, "2030-01-01", method.ExpireAt)

	require.NoError(t, svc.Delete(ctx, "p1"))
	assert.Equal(t, []string{"p1"}, repo.deleted)
	assert.Error(t, svc.Delete(ctx, " "))

	repo.err = util.FromResponse(http.StatusNotFound, "", "")
	err = svc.Delete(ctx, "p2")
	assert.Equal(t, "Error while deleting the payment method.", message(err))

	repo.err = util.FromResponse(http.StatusBadRequest, "", "card expired")
	_, err = svc.Update(ctx, "p1", PaymentMethodInput{
		Type: "DEBIT_CARD", CC: "4000", CVC: "999", Holder: "Carol", ExpireAt: "01/20",
	})
	assert.Equal(t, "card expired", message(err))
}
