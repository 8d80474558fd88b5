package command

import (
	"context"
	"tonoffer/internal/tonbot/buttons"
	"tonoffer/internal/util"

	"github.com/go-telegram/bot"
	tgmodels "github.com/go-telegram/bot/models"
)

type HowItWorksCommand struct {
	b *bot.Bot
}

func NewHowItWorksCommand(b *bot.Bot) *HowItWorksCommand {
	return &HowItWorksCommand{b: b}
}

func (c *HowItWorksCommand) Execute(ctx context.Context, callback *tgmodels.CallbackQuery) {
	if err := util.CheckTypeMessage(c.b, callback); err != nil {
		return
	}

	chatId := uint64(callback.Message.Message.Chat.ID)
	btnClose := util.CreateDefaultButton(buttons.DefCloseId, buttons.DefCloseText)

	if _, err := util.SendTextMessageMarkup(
		c.b,
		chatId,
		howItWorksResponse(),
		util.CreateInlineMarup(1, btnClose),
	); err != nil {
		log.Error(err)
	}
}

func howItWorksResponse() string {
	return `
❓ <b>How it works</b>

• Someone placed an offer for your collectible — a username or an anonymous number.
• Connect your TON wallet through TON Connect.
• Press "Accept the offer" and approve the payment in your wallet.
• The transaction carries a 6 minute validity window; after that the network refuses it and you can simply try again.

🔒 The bot never holds your funds. Signing happens in your own wallet app.
`
}
