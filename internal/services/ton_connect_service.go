package services

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"tonoffer/internal/config"
	"tonoffer/internal/models"

	"github.com/cameo-engineering/tonconnect"
	"github.com/redis/go-redis/v9"
	"github.com/xssnick/tonutils-go/address"
)

const (
	sessionKeyPrefix = "tonoffer:session:"
	addressKeyPrefix = "tonoffer:address:"

	// Sessions live only as long as the page session they belong to.
	sessionTTL = 24 * time.Hour

	connectFlowTimeout = 5 * time.Minute
	redisTimeout       = 20 * time.Second
)

// TonConnectService backs the WalletProvider capability with TON Connect.
// One instance serves one visitor; the session survives within its TTL in
// redis so an open page keeps its wallet across bot restarts.
type TonConnectService struct {
	redisCli *redis.Client
	key      string

	mu        sync.Mutex
	session   *tonconnect.Session
	addr      string
	listeners []func(address string, connected bool)
}

func NewTonConnectService(redisCli *redis.Client, key string) *TonConnectService {
	s := &TonConnectService{
		redisCli: redisCli,
		key:      key,
	}
	s.restore()
	return s
}

func (s *TonConnectService) CurrentAccount() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr, s.addr != ""
}

func (s *TonConnectService) Subscribe(fn func(address string, connected bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// ConnectURLs generates the universal links the visitor opens in their wallet
// app to approve the connection. Must be called before OpenConnectFlow so
// both use the same session and request.
func (s *TonConnectService) ConnectURLs() (map[string]string, error) {
	session, err := s.currentSession()
	if err != nil {
		return nil, err
	}

	connreq, err := s.connectRequest()
	if err != nil {
		return nil, err
	}

	result := make(map[string]string)
	for _, w := range tonconnect.Wallets {
		nameLower := strings.ToLower(w.Name)
		if nameLower == "tonkeeper" || nameLower == "tonhub" {
			link, err := session.GenerateUniversalLink(w, *connreq)
			if err != nil {
				log.Error("Error generating universal link: ", err)
				return nil, err
			}
			result[w.Name] = link
		}
	}

	return result, nil
}

// OpenConnectFlow suspends until the visitor approves the connection in
// their wallet or the flow times out. A timeout is a dismissal, not an
// error: the session simply stays disconnected.
func (s *TonConnectService) OpenConnectFlow(ctx context.Context) (string, error) {
	session, err := s.currentSession()
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, connectFlowTimeout)
	defer cancel()

	res, err := session.Connect(ctx, tonconnect.Wallets["tonkeeper"], tonconnect.Wallets["tonhub"])
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return "", nil
		}
		log.Error("Wallet connect failed: ", err)
		return "", err
	}

	var addr string
	for _, item := range res.Items {
		if item.Name == "ton_addr" {
			addr = friendlyForm(item.Address)
		}
	}
	if addr == "" {
		return "", errors.New("connect response has no ton_addr item")
	}

	log.Infof("%s %s for %s connected with address %s",
		res.Device.AppName, res.Device.AppVersion, res.Device.Platform, addr)

	s.mu.Lock()
	s.addr = addr
	s.mu.Unlock()
	s.persist()
	s.notify(addr, true)

	return addr, nil
}

// SubmitTransaction hands the built request to the wallet and suspends until
// the visitor approves or the provider rejects.
func (s *TonConnectService) SubmitTransaction(ctx context.Context, req models.TransactionRequest) error {
	s.mu.Lock()
	session := s.session
	s.mu.Unlock()
	if session == nil {
		return ErrWalletNotConnected
	}

	msg, err := tonconnect.NewMessage(req.Destination, req.AmountNano)
	if err != nil {
		log.Error("Error creating transaction message: ", err)
		return err
	}

	tx, err := tonconnect.NewTransaction(
		tonconnect.WithTimeout(time.Until(time.Unix(req.ValidUntil, 0))),
		tonconnect.WithMessage(*msg),
	)
	if err != nil {
		log.Error("Error creating transaction: ", err)
		return err
	}

	boc, err := session.SendTransaction(ctx, *tx)
	if err != nil {
		return err
	}
	log.Debugf("Transaction submitted, boc %x", boc)

	s.persist()
	return nil
}

// Disconnect drops the stored session and notifies listeners synchronously.
func (s *TonConnectService) Disconnect() {
	s.mu.Lock()
	s.session = nil
	s.addr = ""
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	if err := s.redisCli.Del(ctx, sessionKeyPrefix+s.key, addressKeyPrefix+s.key).Err(); err != nil {
		log.Error("Error deleting session: ", err)
	}

	s.notify("", false)
}

func (s *TonConnectService) currentSession() (*tonconnect.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != nil {
		return s.session, nil
	}

	session, err := tonconnect.NewSession()
	if err != nil {
		log.Error("Error creating session: ", err)
		return nil, err
	}
	s.session = session
	return session, nil
}

func (s *TonConnectService) connectRequest() (*tonconnect.ConnectRequest, error) {
	data := make([]byte, 32)
	if _, err := rand.Read(data); err != nil {
		return nil, err
	}
	return tonconnect.NewConnectRequest(
		config.TON_MANIFEST_URL,
		tonconnect.WithProofRequest(base32.StdEncoding.EncodeToString(data)),
	)
}

func (s *TonConnectService) restore() {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	raw, err := s.redisCli.Get(ctx, sessionKeyPrefix+s.key).Result()
	if errors.Is(err, redis.Nil) {
		return
	}
	if err != nil {
		log.Error("Error loading session: ", err)
		return
	}

	var session tonconnect.Session
	if err := session.UnmarshalJSON([]byte(raw)); err != nil {
		log.Error("Error decoding stored session: ", err)
		return
	}

	addr, err := s.redisCli.Get(ctx, addressKeyPrefix+s.key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		log.Error("Error loading session address: ", err)
		return
	}

	s.mu.Lock()
	s.session = &session
	s.addr = addr
	s.mu.Unlock()
}

func (s *TonConnectService) persist() {
	s.mu.Lock()
	session := s.session
	addr := s.addr
	s.mu.Unlock()
	if session == nil {
		return
	}

	data, err := session.MarshalJSON()
	if err != nil {
		log.Error("Error marshaling session json: ", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	if err := s.redisCli.Set(ctx, sessionKeyPrefix+s.key, data, sessionTTL).Err(); err != nil {
		log.Error("Error saving session: ", err)
	}
	if addr != "" {
		if err := s.redisCli.Set(ctx, addressKeyPrefix+s.key, addr, sessionTTL).Err(); err != nil {
			log.Error("Error saving session address: ", err)
		}
	}
}

func (s *TonConnectService) notify(address string, connected bool) {
	s.mu.Lock()
	listeners := make([]func(string, bool), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(address, connected)
	}
}

// friendlyForm renders a raw "workchain:hex" address in user-friendly form.
// Already-friendly input is returned untouched.
func friendlyForm(raw string) string {
	if !strings.Contains(raw, ":") {
		return raw
	}
	addr, err := address.ParseRawAddr(raw)
	if err != nil {
		log.Debugln(fmt.Sprintf("Failed to parse raw address %q: %v", raw, err))
		return raw
	}
	return addr.String()
}
