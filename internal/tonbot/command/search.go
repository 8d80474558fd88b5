package command

import (
	"context"
	"fmt"
	"html"
	"tonoffer/internal/models"
	"tonoffer/internal/util"

	"github.com/go-telegram/bot"
	tgmodels "github.com/go-telegram/bot/models"
)

// SearchCommand filters the page's single listing against a free-text query,
// like the page's search box.
type SearchCommand struct {
	b       *bot.Bot
	listing models.OfferListing
}

func NewSearchCommand(b *bot.Bot, listing models.OfferListing) *SearchCommand {
	return &SearchCommand{
		b:       b,
		listing: listing,
	}
}

func (c *SearchCommand) Execute(ctx context.Context, msg *tgmodels.Message) {
	chatId := uint64(msg.Chat.ID)

	if !c.listing.MatchesSearch(msg.Text) {
		if _, err := util.SendTextMessage(c.b, chatId, fmt.Sprintf("🔍 No results for <i>%s</i>", html.EscapeString(msg.Text))); err != nil {
			log.Error(err)
		}
		return
	}

	resp := fmt.Sprintf("🔍 Found: 💎 <b>@%s</b> — %s TON", c.listing.Name, util.FormatOfferAmount(c.listing.Price))
	if _, err := util.SendTextMessage(c.b, chatId, resp); err != nil {
		log.Error(err)
	}
}
