package models

// TransactionRequest is a chain-ready payment request. Built fresh for every
// submission attempt so the validity window always reflects submission time.
type TransactionRequest struct {
	ValidUntil  int64  // unix seconds
	Destination string // passed through verbatim, never reformatted
	AmountNano  string // decimal integer, nanotons
}

// TransactionMessage is the wire shape of a single transfer message as the
// wallet provider expects it.
type TransactionMessage struct {
	Address string `json:"address"`
	Amount  string `json:"amount"`
	Payload string `json:"payload"`
}

// Messages renders the request as the provider's message list. The payload is
// always empty for a plain TON transfer.
func (r TransactionRequest) Messages() []TransactionMessage {
	return []TransactionMessage{
		{
			Address: r.Destination,
			Amount:  r.AmountNano,
			Payload: "",
		},
	}
}
