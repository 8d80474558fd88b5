package services

import (
	"context"
	"errors"
	"math"
	"strconv"
	"sync"
	"time"
	"tonoffer/internal/models"
)

var (
	ErrWalletNotConnected = errors.New("wallet not connected")
	ErrPaymentInFlight    = errors.New("payment already in flight")
)

const (
	// Authorization window the receiving network enforces. Not configurable.
	validityWindowSec = 360

	nanotonsPerTon = 1_000_000_000
)

// BuildTransaction converts the offer listing into a chain-ready request.
// Pure: recomputed per call so the validity window reflects submission time.
func BuildTransaction(listing models.OfferListing, destination string, now time.Time) models.TransactionRequest {
	return models.TransactionRequest{
		ValidUntil:  now.Unix() + validityWindowSec,
		Destination: destination,
		AmountNano:  strconv.FormatInt(int64(math.Round(listing.Price*nanotonsPerTon)), 10),
	}
}

// PaymentService runs the offer-acceptance state machine. At most one
// submission is in flight at a time; every terminal state returns to idle on
// dismiss or the next accept attempt.
type PaymentService struct {
	wallet      *WalletService
	listing     models.OfferListing
	destination string
	now         func() time.Time

	mu    sync.Mutex
	state models.PaymentState
}

func NewPaymentService(wallet *WalletService, listing models.OfferListing, destination string) *PaymentService {
	return &PaymentService{
		wallet:      wallet,
		listing:     listing,
		destination: destination,
		now:         time.Now,
	}
}

func (s *PaymentService) State() models.PaymentState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *PaymentService) Listing() models.OfferListing {
	return s.listing
}

// Accept runs one acceptance attempt: precondition check, build, submit.
// It suspends until the provider resolves. While an attempt is outstanding,
// further accepts are no-ops.
func (s *PaymentService) Accept(ctx context.Context) (models.PaymentState, error) {
	s.mu.Lock()
	if s.state.InFlight() {
		state := s.state
		s.mu.Unlock()
		return state, ErrPaymentInFlight
	}
	if !s.wallet.IsConnected() {
		s.state = models.PaymentNeedsWallet
		s.mu.Unlock()
		return models.PaymentNeedsWallet, ErrWalletNotConnected
	}
	s.state = models.PaymentBuilding
	s.mu.Unlock()

	req := BuildTransaction(s.listing, s.destination, s.now())

	s.setState(models.PaymentSubmitting)
	err := s.wallet.Submit(ctx, req)
	if err != nil {
		log.Error("Transaction submission failed: ", err)
		s.setState(models.PaymentFailed)
		return models.PaymentFailed, err
	}

	// A disconnect that raced the submission must never read as success.
	if !s.wallet.IsConnected() {
		s.setState(models.PaymentFailed)
		return models.PaymentFailed, ErrWalletNotConnected
	}

	s.setState(models.PaymentSucceeded)
	return models.PaymentSucceeded, nil
}

// Reset returns a terminal or needs-wallet state to idle, e.g. when the user
// dismisses a notice. No receipt is retained. An in-flight attempt is left
// alone.
func (s *PaymentService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.InFlight() {
		s.state = models.PaymentIdle
	}
}

func (s *PaymentService) setState(state models.PaymentState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}
