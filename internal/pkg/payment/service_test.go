package payment

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runtix/runtix/app/models"
)

const testServerKey = "test-server-key"

// fakeRepository mirrors the conditional-update semantics of the GORM
// repository: transitions apply from pending or when repeating the current
// status, terminal states are sticky.
type fakeRepository struct {
	payments map[string]*models.Payment
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{payments: make(map[string]*models.Payment)}
}

func (r *fakeRepository) Create(p *models.Payment) error {
	if _, exists := r.payments[p.OrderID]; exists {
		return ErrDuplicateOrder
	}
	cp := *p
	r.payments[p.OrderID] = &cp
	return nil
}

func (r *fakeRepository) GetByOrderID(orderID string) (*models.Payment, error) {
	p, ok := r.payments[orderID]
	if !ok {
		return nil, ErrOrderNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeRepository) UpdateStatus(orderID, status string) (bool, error) {
	p, ok := r.payments[orderID]
	if !ok {
		return false, ErrOrderNotFound
	}
	if p.Status != models.PaymentStatusPending && p.Status != status {
		return false, nil
	}
	p.Status = status
	return true, nil
}

type fakeGateway struct {
	err   error
	calls int
}

func (g *fakeGateway) CreateTransaction(ctx context.Context, orderID string, grossAmount float64, customerName, customerEmail string) (*Session, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return &Session{Token: "tok-" + orderID, RedirectURL: "https://app.sandbox.midtrans.com/snap/v2/vtweb/tok-" + orderID}, nil
}

func signFor(orderID, statusCode, formattedGross string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + formattedGross + testServerKey))
	return hex.EncodeToString(sum[:])
}

func newTestService(repo Repository, gw Gateway) *Service {
	return NewService(repo, gw, testServerKey)
}

func TestCreatePayment(t *testing.T) {
	t.Parallel()

	repo := newFakeRepository()
	gw := &fakeGateway{}
	svc := newTestService(repo, gw)

	session, err := svc.CreatePayment(context.Background(), CreatePaymentInput{
		RegistrationID: 12,
		OrderID:        "ORD123",
		GrossAmount:    50000,
		CustomerName:   "Andi",
		CustomerEmail:  "andi@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "tok-ORD123", session.Token)
	assert.NotEmpty(t, session.RedirectURL)

	p, err := repo.GetByOrderID("ORD123")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, p.Status)
	assert.Equal(t, uint(12), p.RegistrationID)
	assert.Equal(t, float64(50000), p.Amount)
}

func TestCreatePayment_DuplicateOrder(t *testing.T) {
	t.Parallel()

	repo := newFakeRepository()
	svc := newTestService(repo, &fakeGateway{})
	in := CreatePaymentInput{RegistrationID: 1, OrderID: "ORD-DUP", GrossAmount: 100}

	_, err := svc.CreatePayment(context.Background(), in)
	require.NoError(t, err)

	_, err = svc.CreatePayment(context.Background(), in)
	assert.ErrorIs(t, err, ErrDuplicateOrder)
}

func TestCreatePayment_GatewayFailure(t *testing.T) {
	t.Parallel()

	repo := newFakeRepository()
	gw := &fakeGateway{err: ErrGatewayUnavailable}
	svc := newTestService(repo, gw)

	_, err := svc.CreatePayment(context.Background(), CreatePaymentInput{RegistrationID: 1, OrderID: "ORD-GW", GrossAmount: 100})
	assert.ErrorIs(t, err, ErrGatewayUnavailable)

	// no row must be written when the gateway rejected the transaction
	_, err = repo.GetByOrderID("ORD-GW")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestProcessNotification_Settlement(t *testing.T) {
	t.Parallel()

	repo := newFakeRepository()
	svc := newTestService(repo, &fakeGateway{})
	_, err := svc.CreatePayment(context.Background(), CreatePaymentInput{RegistrationID: 1, OrderID: "ORD123", GrossAmount: 50000})
	require.NoError(t, err)

	err = svc.ProcessNotification(context.Background(), Notification{
		OrderID:           "ORD123",
		StatusCode:        "200",
		GrossAmount:       Amount("50000"),
		SignatureKey:      signFor("ORD123", "200", "50000.00"),
		TransactionStatus: "settlement",
	})
	require.NoError(t, err)

	p, err := repo.GetByOrderID("ORD123")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusSuccess, p.Status)
}

func TestProcessNotification_AlteredSignature(t *testing.T) {
	t.Parallel()

	repo := newFakeRepository()
	svc := newTestService(repo, &fakeGateway{})
	_, err := svc.CreatePayment(context.Background(), CreatePaymentInput{RegistrationID: 1, OrderID: "ORD456", GrossAmount: 50000})
	require.NoError(t, err)

	valid := signFor("ORD456", "200", "50000.00")
	altered := "0" + valid[1:]
	if altered == valid {
		altered = "1" + valid[1:]
	}

	err = svc.ProcessNotification(context.Background(), Notification{
		OrderID:           "ORD456",
		StatusCode:        "200",
		GrossAmount:       Amount("50000"),
		SignatureKey:      altered,
		TransactionStatus: "settlement",
	})
	assert.ErrorIs(t, err, ErrInvalidSignature)

	// store must remain untouched
	p, err := repo.GetByOrderID("ORD456")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, p.Status)
}

func TestProcessNotification_UnknownOrder(t *testing.T) {
	t.Parallel()

	repo := newFakeRepository()
	svc := newTestService(repo, &fakeGateway{})

	err := svc.ProcessNotification(context.Background(), Notification{
		OrderID:           "NEVER-CREATED",
		StatusCode:        "200",
		GrossAmount:       Amount("100"),
		SignatureKey:      signFor("NEVER-CREATED", "200", "100.00"),
		TransactionStatus: "settlement",
	})
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.Empty(t, repo.payments, "no row may be created for an unknown order")
}

func TestProcessNotification_UnknownTransactionStatus(t *testing.T) {
	t.Parallel()

	repo := newFakeRepository()
	svc := newTestService(repo, &fakeGateway{})
	_, err := svc.CreatePayment(context.Background(), CreatePaymentInput{RegistrationID: 1, OrderID: "ORD789", GrossAmount: 100})
	require.NoError(t, err)

	err = svc.ProcessNotification(context.Background(), Notification{
		OrderID:           "ORD789",
		StatusCode:        "200",
		GrossAmount:       Amount("100"),
		SignatureKey:      signFor("ORD789", "200", "100.00"),
		TransactionStatus: "refund",
	})
	require.NoError(t, err, "unhandled statuses are acknowledged so the gateway stops retrying")

	p, err := repo.GetByOrderID("ORD789")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, p.Status, "unknown status must not transition")
}

func TestProcessNotification_IdempotentRetry(t *testing.T) {
	t.Parallel()

	repo := newFakeRepository()
	svc := newTestService(repo, &fakeGateway{})
	_, err := svc.CreatePayment(context.Background(), CreatePaymentInput{RegistrationID: 1, OrderID: "ORD-RETRY", GrossAmount: 100})
	require.NoError(t, err)

	n := Notification{
		OrderID:           "ORD-RETRY",
		StatusCode:        "200",
		GrossAmount:       Amount("100"),
		SignatureKey:      signFor("ORD-RETRY", "200", "100.00"),
		TransactionStatus: "settlement",
	}

	require.NoError(t, svc.ProcessNotification(context.Background(), n))
	require.NoError(t, svc.ProcessNotification(context.Background(), n), "gateway retries must not error")

	p, err := repo.GetByOrderID("ORD-RETRY")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusSuccess, p.Status)
}

func TestProcessNotification_TerminalStateIsSticky(t *testing.T) {
	t.Parallel()

	repo := newFakeRepository()
	svc := newTestService(repo, &fakeGateway{})
	_, err := svc.CreatePayment(context.Background(), CreatePaymentInput{RegistrationID: 1, OrderID: "ORD-LATE", GrossAmount: 100})
	require.NoError(t, err)

	settle := Notification{
		OrderID:           "ORD-LATE",
		StatusCode:        "200",
		GrossAmount:       Amount("100"),
		SignatureKey:      signFor("ORD-LATE", "200", "100.00"),
		TransactionStatus: "settlement",
	}
	require.NoError(t, svc.ProcessNotification(context.Background(), settle))

	late := settle
	late.TransactionStatus = "cancel"
	require.NoError(t, svc.ProcessNotification(context.Background(), late), "stale notification is acknowledged")

	p, err := repo.GetByOrderID("ORD-LATE")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusSuccess, p.Status, "a settled payment must not revert")
}

func TestMapTransactionStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{in: "settlement", want: models.PaymentStatusSuccess, wantOK: true},
		{in: "pending", want: models.PaymentStatusPending, wantOK: true},
		{in: "expire", want: models.PaymentStatusExpired, wantOK: true},
		{in: "cancel", want: models.PaymentStatusCancelled, wantOK: true},
		{in: "deny", wantOK: false},
		{in: "", wantOK: false},
	}

	for _, tt := range tests {
		got, ok := MapTransactionStatus(tt.in)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.in)
		if tt.wantOK {
			assert.Equal(t, tt.want, got, "input %q", tt.in)
		}
	}
}

func TestErrorsAreDistinguishable(t *testing.T) {
	t.Parallel()

	assert.False(t, errors.Is(ErrInvalidSignature, ErrOrderNotFound))
	assert.False(t, errors.Is(ErrOrderNotFound, ErrInvalidSignature))
}
