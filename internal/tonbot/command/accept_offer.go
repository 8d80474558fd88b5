package command

import (
	"context"
	"errors"
	"tonoffer/internal/models"
	"tonoffer/internal/services"
	"tonoffer/internal/tonbot/buttons"
	"tonoffer/internal/util"

	"github.com/go-telegram/bot"
	tgmodels "github.com/go-telegram/bot/models"
)

// AcceptOfferCommand runs one acceptance attempt and reports the outcome.
type AcceptOfferCommand struct {
	b       *bot.Bot
	payment *services.PaymentService
}

func NewAcceptOfferCommand(b *bot.Bot, payment *services.PaymentService) *AcceptOfferCommand {
	return &AcceptOfferCommand{
		b:       b,
		payment: payment,
	}
}

func (c *AcceptOfferCommand) Execute(ctx context.Context, callback *tgmodels.CallbackQuery) {
	if err := util.CheckTypeMessage(c.b, callback); err != nil {
		return
	}

	chatId := uint64(callback.Message.Message.Chat.ID)

	state, err := c.payment.Accept(ctx)
	switch {
	case errors.Is(err, services.ErrPaymentInFlight):
		if _, err := util.SendTextMessage(c.b, chatId, "⏳ Your previous payment is still pending. Approve or reject it in your wallet first."); err != nil {
			log.Error(err)
		}
		return

	case state == models.PaymentNeedsWallet:
		btnConnect := util.CreateDefaultButton(buttons.ConnectWalletId, buttons.ConnectWalletText)
		btnClose := util.CreateDefaultButton(buttons.DefCloseId, buttons.DefCloseText)
		if _, err := util.SendTextMessageMarkup(
			c.b,
			chatId,
			"👛 Connect your TON wallet first to accept the offer.",
			util.CreateInlineMarup(1, btnConnect, btnClose),
		); err != nil {
			log.Error(err)
		}
		c.payment.Reset()
		return

	case state == models.PaymentSucceeded:
		if _, err := util.SendTextMessage(c.b, chatId, "✅ Payment submitted successfully!"); err != nil {
			log.Error(err)
		}
		c.payment.Reset()
		return

	default:
		btnRetry := util.CreateDefaultButton(buttons.RetryPaymentId, buttons.RetryPaymentText)
		btnClose := util.CreateDefaultButton(buttons.DefCloseId, buttons.DefCloseText)
		if _, err := util.SendTextMessageMarkup(
			c.b,
			chatId,
			"❌ Payment was not completed. Try again.",
			util.CreateInlineMarup(1, btnRetry, btnClose),
		); err != nil {
			log.Error(err)
		}
		c.payment.Reset()
	}
}
