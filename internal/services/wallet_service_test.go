package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWalletService_StartsDisconnected(t *testing.T) {
	wallet := NewWalletService(&fakeWalletProvider{})
	require.False(t, wallet.IsConnected())
	_, ok := wallet.Address()
	require.False(t, ok)
}

func TestWalletService_PicksUpExistingAccount(t *testing.T) {
	wallet := NewWalletService(&fakeWalletProvider{addr: "UQexisting"})
	require.True(t, wallet.IsConnected())
	addr, ok := wallet.Address()
	require.True(t, ok)
	require.Equal(t, "UQexisting", addr)
}

func TestWalletService_Connect(t *testing.T) {
	provider := &fakeWalletProvider{connectAddr: "UQfresh"}
	wallet := NewWalletService(provider)

	require.NoError(t, wallet.Connect(context.Background()))
	require.True(t, wallet.IsConnected())
	addr, _ := wallet.Address()
	require.Equal(t, "UQfresh", addr)
}

func TestWalletService_DismissedConnectIsNotAnError(t *testing.T) {
	provider := &fakeWalletProvider{} // flow resolves with no account
	wallet := NewWalletService(provider)

	require.NoError(t, wallet.Connect(context.Background()))
	require.False(t, wallet.IsConnected())
}

func TestWalletService_ConnectError(t *testing.T) {
	provider := &fakeWalletProvider{connectErr: errors.New("bridge down")}
	wallet := NewWalletService(provider)

	require.Error(t, wallet.Connect(context.Background()))
	require.False(t, wallet.IsConnected())
}

func TestWalletService_DisconnectEventDowngradesSynchronously(t *testing.T) {
	provider := &fakeWalletProvider{addr: "UQexisting"}
	wallet := NewWalletService(provider)
	require.True(t, wallet.IsConnected())

	provider.fireDisconnect()

	require.False(t, wallet.IsConnected())
	_, ok := wallet.Address()
	require.False(t, ok)
}
