package command

import (
	"context"
	"tonoffer/internal/models"
	"tonoffer/internal/services"
	"tonoffer/internal/tonbot/buttons"
	"tonoffer/internal/util"

	"github.com/go-telegram/bot"
	tgmodels "github.com/go-telegram/bot/models"
)

// StartCommand opens the offer page for the chat's current listing.
type StartCommand struct {
	b       *bot.Bot
	listing models.OfferListing
	rs      *services.RateService
	wallet  *services.WalletService
}

func NewStartCommand(b *bot.Bot, listing models.OfferListing, rs *services.RateService, wallet *services.WalletService) *StartCommand {
	return &StartCommand{
		b:       b,
		listing: listing,
		rs:      rs,
		wallet:  wallet,
	}
}

func (c *StartCommand) Execute(ctx context.Context, msg *tgmodels.Message) {
	chatId := msg.Chat.ID

	btns := []tgmodels.InlineKeyboardButton{
		util.CreateDefaultButton(buttons.AcceptOfferId, buttons.AcceptOfferText),
	}
	if c.wallet.IsConnected() {
		btns = append(btns, util.CreateDefaultButton(buttons.DisconnectWalletId, buttons.DisconnectWalletText))
	} else {
		btns = append(btns, util.CreateDefaultButton(buttons.ConnectWalletId, buttons.ConnectWalletText))
	}
	btns = append(btns,
		util.CreateDefaultButton(buttons.RefreshPriceId, buttons.RefreshPriceText),
		util.CreateDefaultButton(buttons.HowItWorksId, buttons.HowItWorksText),
	)

	if _, err := util.SendTextMessageMarkup(
		c.b,
		uint64(chatId),
		renderOfferCard(c.listing, c.rs, c.wallet),
		util.CreateInlineMarup(2, btns...),
	); err != nil {
		log.Error(err)
	}
}
