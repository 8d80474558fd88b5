package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
	"tonoffer/internal/models"

	"github.com/stretchr/testify/require"
)

const testDestination = "UQDbnrjL3Mw4ikGWXdl9OVq6MCS3-qNb6WTmn8VnTB-olI2a"

type fakeWalletProvider struct {
	mu        sync.Mutex
	addr      string
	listeners []func(string, bool)

	connectAddr string
	connectErr  error

	submitErr     error
	submitStarted chan struct{}
	submitRelease chan error
	submitted     []models.TransactionRequest
}

func (f *fakeWalletProvider) CurrentAccount() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addr, f.addr != ""
}

func (f *fakeWalletProvider) OpenConnectFlow(ctx context.Context) (string, error) {
	if f.connectErr != nil {
		return "", f.connectErr
	}
	if f.connectAddr == "" {
		return "", nil
	}
	f.mu.Lock()
	f.addr = f.connectAddr
	f.mu.Unlock()
	return f.connectAddr, nil
}

func (f *fakeWalletProvider) SubmitTransaction(ctx context.Context, req models.TransactionRequest) error {
	f.mu.Lock()
	f.submitted = append(f.submitted, req)
	f.mu.Unlock()

	if f.submitStarted != nil {
		f.submitStarted <- struct{}{}
	}
	if f.submitRelease != nil {
		return <-f.submitRelease
	}
	return f.submitErr
}

func (f *fakeWalletProvider) Subscribe(fn func(string, bool)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listeners = append(f.listeners, fn)
}

func (f *fakeWalletProvider) fireDisconnect() {
	f.mu.Lock()
	f.addr = ""
	listeners := append([]func(string, bool){}, f.listeners...)
	f.mu.Unlock()
	for _, fn := range listeners {
		fn("", false)
	}
}

func (f *fakeWalletProvider) submissions() []models.TransactionRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.TransactionRequest{}, f.submitted...)
}

func connectedPayment(t *testing.T, provider *fakeWalletProvider, listing models.OfferListing) *PaymentService {
	t.Helper()
	wallet := NewWalletService(provider)
	return NewPaymentService(wallet, listing, testDestination)
}

func TestBuildTransaction_Amounts(t *testing.T) {
	cases := []struct {
		price float64
		want  string
	}{
		{15, "15000000000"},
		{0.5, "500000000"},
		{1000, "1000000000000"},
		{3.123456789, "3123456789"},
		{0.000000001, "1"},
	}

	for _, c := range cases {
		listing := models.OfferListing{Name: "main", Price: c.price}
		req := BuildTransaction(listing, testDestination, time.Now())
		require.Equal(t, c.want, req.AmountNano, "price %v", c.price)
	}
}

func TestBuildTransaction_ValidUntil(t *testing.T) {
	now := time.Unix(1700000000, 0)
	req := BuildTransaction(models.OfferListing{Name: "main", Price: 1}, testDestination, now)
	require.Equal(t, int64(1700000360), req.ValidUntil)

	later := BuildTransaction(models.OfferListing{Name: "main", Price: 1}, testDestination, now.Add(10*time.Second))
	require.Equal(t, int64(1700000370), later.ValidUntil)
}

func TestBuildTransaction_DestinationVerbatim(t *testing.T) {
	req := BuildTransaction(models.OfferListing{Name: "main", Price: 1}, "  raw-address  ", time.Now())
	require.Equal(t, "  raw-address  ", req.Destination)
}

func TestTransactionRequest_WireShape(t *testing.T) {
	req := models.TransactionRequest{ValidUntil: 1, Destination: testDestination, AmountNano: "500"}
	msgs := req.Messages()
	require.Len(t, msgs, 1)
	require.Equal(t, testDestination, msgs[0].Address)
	require.Equal(t, "500", msgs[0].Amount)
	require.Equal(t, "", msgs[0].Payload)
}

func TestAccept_WithoutWalletNeverBuilds(t *testing.T) {
	provider := &fakeWalletProvider{}
	payment := connectedPayment(t, provider, models.OfferListing{Name: "main", Price: 1000})

	state, err := payment.Accept(context.Background())
	require.ErrorIs(t, err, ErrWalletNotConnected)
	require.Equal(t, models.PaymentNeedsWallet, state)
	require.Empty(t, provider.submissions())

	payment.Reset()
	require.Equal(t, models.PaymentIdle, payment.State())
}

func TestAccept_Success(t *testing.T) {
	provider := &fakeWalletProvider{addr: "UQtest"}
	payment := connectedPayment(t, provider, models.OfferListing{Name: "vip_074", Price: 15})

	state, err := payment.Accept(context.Background())
	require.NoError(t, err)
	require.Equal(t, models.PaymentSucceeded, state)

	subs := provider.submissions()
	require.Len(t, subs, 1)
	require.Equal(t, "15000000000", subs[0].AmountNano)
	require.Equal(t, testDestination, subs[0].Destination)
}

func TestAccept_RejectedThenRetry(t *testing.T) {
	provider := &fakeWalletProvider{addr: "UQtest", submitErr: errors.New("user rejected")}
	payment := connectedPayment(t, provider, models.OfferListing{Name: "main", Price: 1000})

	state, err := payment.Accept(context.Background())
	require.Error(t, err)
	require.Equal(t, models.PaymentFailed, state)
	require.Len(t, provider.submissions(), 1) // no automatic resubmission

	payment.Reset()
	require.Equal(t, models.PaymentIdle, payment.State())

	provider.submitErr = nil
	state, err = payment.Accept(context.Background())
	require.NoError(t, err)
	require.Equal(t, models.PaymentSucceeded, state)
	require.Len(t, provider.submissions(), 2)
}

func TestAccept_SecondIntentWhileInFlightIsNoop(t *testing.T) {
	provider := &fakeWalletProvider{
		addr:          "UQtest",
		submitStarted: make(chan struct{}, 1),
		submitRelease: make(chan error),
	}
	payment := connectedPayment(t, provider, models.OfferListing{Name: "main", Price: 1000})

	done := make(chan models.PaymentState, 1)
	go func() {
		state, _ := payment.Accept(context.Background())
		done <- state
	}()

	<-provider.submitStarted
	require.Equal(t, models.PaymentSubmitting, payment.State())

	state, err := payment.Accept(context.Background())
	require.ErrorIs(t, err, ErrPaymentInFlight)
	require.Equal(t, models.PaymentSubmitting, state)
	require.Len(t, provider.submissions(), 1)

	provider.submitRelease <- nil
	require.Equal(t, models.PaymentSucceeded, <-done)
}

func TestAccept_DisconnectMidFlightFails(t *testing.T) {
	provider := &fakeWalletProvider{
		addr:          "UQtest",
		submitStarted: make(chan struct{}, 1),
		submitRelease: make(chan error),
	}
	payment := connectedPayment(t, provider, models.OfferListing{Name: "main", Price: 1000})

	done := make(chan models.PaymentState, 1)
	go func() {
		state, _ := payment.Accept(context.Background())
		done <- state
	}()

	<-provider.submitStarted
	provider.fireDisconnect()
	provider.submitRelease <- nil // provider resolves, but the wallet is gone

	require.Equal(t, models.PaymentFailed, <-done)
}

func TestAccept_FreshRequestPerAttempt(t *testing.T) {
	provider := &fakeWalletProvider{addr: "UQtest"}
	payment := connectedPayment(t, provider, models.OfferListing{Name: "main", Price: 1000})

	now := time.Unix(1700000000, 0)
	payment.now = func() time.Time {
		now = now.Add(30 * time.Second)
		return now
	}

	_, err := payment.Accept(context.Background())
	require.NoError(t, err)
	_, err = payment.Accept(context.Background())
	require.NoError(t, err)

	subs := provider.submissions()
	require.Len(t, subs, 2)
	require.NotEqual(t, subs[0].ValidUntil, subs[1].ValidUntil)
	require.Equal(t, int64(30), subs[1].ValidUntil-subs[0].ValidUntil)
}
