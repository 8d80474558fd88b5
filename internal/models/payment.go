package models

// PaymentState is the offer-acceptance lifecycle. Owned by the payment
// service; every terminal state returns to PaymentIdle on dismiss or retry.
type PaymentState int

const (
	PaymentIdle PaymentState = iota
	PaymentNeedsWallet
	PaymentBuilding
	PaymentSubmitting
	PaymentSucceeded
	PaymentFailed
)

func (s PaymentState) String() string {
	switch s {
	case PaymentIdle:
		return "idle"
	case PaymentNeedsWallet:
		return "needs_wallet"
	case PaymentBuilding:
		return "building"
	case PaymentSubmitting:
		return "submitting"
	case PaymentSucceeded:
		return "succeeded"
	case PaymentFailed:
		return "failed"
	}
	return "unknown"
}

// InFlight reports whether a submission is currently outstanding. While true,
// accept intents are ignored.
func (s PaymentState) InFlight() bool {
	return s == PaymentBuilding || s == PaymentSubmitting
}

// Terminal reports whether the state is a submission outcome.
func (s PaymentState) Terminal() bool {
	return s == PaymentSucceeded || s == PaymentFailed
}
