package buttons

const (
	AcceptOfferId   = "ACCEPT_OFFER"
	AcceptOfferText = "💎 Accept the offer"

	ConnectWalletId   = "CONNECT_WALLET"
	ConnectWalletText = "👛 Connect TON"

	DisconnectWalletId   = "DISCONNECT_WALLET"
	DisconnectWalletText = "🔌 Disconnect wallet"

	RefreshPriceId   = "REFRESH_PRICE"
	RefreshPriceText = "🔄 Refresh price"

	HowItWorksId   = "HOW_IT_WORKS"
	HowItWorksText = "❓ How it works"

	RetryPaymentId   = "RETRY_PAYMENT"
	RetryPaymentText = "🔁 Try again"

	//default btns
	DefCloseId   = "DEF_CLOSE"
	DefCloseText = "✖️ Close"
)
