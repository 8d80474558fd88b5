package services

import (
	"context"
	"sync"
	"tonoffer/internal/models"
)

// WalletProvider is the narrow capability set this page needs from the
// external wallet-connection provider. Modelled as an interface so the
// payment flow can run against a fake in tests.
type WalletProvider interface {
	// CurrentAccount returns the connected address, if any.
	CurrentAccount() (string, bool)

	// OpenConnectFlow suspends until the external connect flow resolves or
	// is dismissed. Dismissal returns ("", nil): it is not a failure.
	OpenConnectFlow(ctx context.Context) (string, error)

	// SubmitTransaction suspends until the user approves in their wallet or
	// the provider rejects.
	SubmitTransaction(ctx context.Context, req models.TransactionRequest) error

	// Subscribe registers a listener for connect/disconnect events.
	Subscribe(fn func(address string, connected bool))
}

// WalletService owns the page's wallet session. It tracks the provider's
// connect and disconnect events; everything else only reads.
type WalletService struct {
	provider WalletProvider

	mu      sync.RWMutex
	session models.WalletSession
}

func NewWalletService(provider WalletProvider) *WalletService {
	s := &WalletService{provider: provider}
	if addr, ok := provider.CurrentAccount(); ok {
		s.session = models.WalletSession{Connected: true, Address: addr}
	}
	provider.Subscribe(s.onStatusChange)
	return s
}

func (s *WalletService) IsConnected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Connected
}

func (s *WalletService) Address() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Address, s.session.Connected
}

// Connect opens the external connect flow and suspends until it resolves.
// A dismissed flow leaves the session disconnected and returns no error.
func (s *WalletService) Connect(ctx context.Context) error {
	addr, err := s.provider.OpenConnectFlow(ctx)
	if err != nil {
		log.Error("Wallet connect flow failed: ", err)
		return err
	}
	if addr == "" {
		return nil
	}

	s.onStatusChange(addr, true)
	return nil
}

// Submit forwards a built transaction request to the provider.
func (s *WalletService) Submit(ctx context.Context, req models.TransactionRequest) error {
	return s.provider.SubmitTransaction(ctx, req)
}

func (s *WalletService) onStatusChange(address string, connected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !connected {
		s.session = models.WalletSession{}
		return
	}
	s.session = models.WalletSession{Connected: true, Address: address}
}
