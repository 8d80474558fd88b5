package command

import (
	"context"
	"tonoffer/internal/models"
	"tonoffer/internal/services"
	"tonoffer/internal/util"

	"github.com/go-telegram/bot"
	tgmodels "github.com/go-telegram/bot/models"
)

// RefreshPriceCommand fetches the rate once without touching the poller's
// cadence, then re-renders the price block.
type RefreshPriceCommand struct {
	b       *bot.Bot
	listing models.OfferListing
	rs      *services.RateService
}

func NewRefreshPriceCommand(b *bot.Bot, listing models.OfferListing, rs *services.RateService) *RefreshPriceCommand {
	return &RefreshPriceCommand{
		b:       b,
		listing: listing,
		rs:      rs,
	}
}

func (c *RefreshPriceCommand) Execute(ctx context.Context, callback *tgmodels.CallbackQuery) {
	if err := util.CheckTypeMessage(c.b, callback); err != nil {
		return
	}

	chatId := uint64(callback.Message.Message.Chat.ID)

	if err := c.rs.Refresh(ctx); err != nil {
		log.Error("Manual rate refresh failed: ", err)
	}

	if _, err := util.SendTextMessage(c.b, chatId, renderRateBlock(c.listing, c.rs)); err != nil {
		log.Error(err)
	}
}
