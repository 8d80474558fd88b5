package models

// WalletSession is the current wallet connection as seen by this page.
// Owned exclusively by the wallet service, read by everything else.
type WalletSession struct {
	Connected bool
	Address   string
}
