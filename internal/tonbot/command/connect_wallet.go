package command

import (
	"context"
	"tonoffer/internal/services"
	"tonoffer/internal/tonbot/buttons"
	"tonoffer/internal/util"

	"github.com/go-telegram/bot"
	tgmodels "github.com/go-telegram/bot/models"
)

// ConnectWalletCommand shows the wallet universal links and suspends until
// the external connect flow resolves or the visitor dismisses it.
type ConnectWalletCommand struct {
	b        *bot.Bot
	provider *services.TonConnectService
	wallet   *services.WalletService
}

func NewConnectWalletCommand(b *bot.Bot, provider *services.TonConnectService, wallet *services.WalletService) *ConnectWalletCommand {
	return &ConnectWalletCommand{
		b:        b,
		provider: provider,
		wallet:   wallet,
	}
}

func (c *ConnectWalletCommand) Execute(ctx context.Context, callback *tgmodels.CallbackQuery) {
	if err := util.CheckTypeMessage(c.b, callback); err != nil {
		return
	}

	chatId := uint64(callback.Message.Message.Chat.ID)

	if c.wallet.IsConnected() {
		addr, _ := c.wallet.Address()
		if _, err := util.SendTextMessage(c.b, chatId, "🛡 Wallet already connected: <code>"+util.ShortAddr(addr)+"</code>"); err != nil {
			log.Error(err)
		}
		return
	}

	urls, err := c.provider.ConnectURLs()
	if err != nil {
		log.Error("Failed to generate connect urls: ", err)
		if _, err := util.SendTextMessage(c.b, chatId, "❌ Could not start the wallet connection. Try again."); err != nil {
			log.Error(err)
		}
		return
	}

	btns := make([]tgmodels.InlineKeyboardButton, 0, len(urls)+1)
	for name, link := range urls {
		btns = append(btns, util.CreateURLButton(link, "👛 Open "+name))
	}
	btns = append(btns, util.CreateDefaultButton(buttons.DefCloseId, buttons.DefCloseText))

	if _, err := util.SendTextMessageMarkup(
		c.b,
		chatId,
		"👛 <b>Connect your TON wallet</b>\n\nOpen your wallet app and approve the connection. This prompt expires in a few minutes.",
		util.CreateInlineMarup(1, btns...),
	); err != nil {
		log.Error(err)
		return
	}

	// Suspends until the visitor approves in their wallet. Dismissal just
	// leaves the session disconnected.
	if err := c.wallet.Connect(ctx); err != nil {
		if _, err := util.SendTextMessage(c.b, chatId, "❌ Wallet connection failed. Try again."); err != nil {
			log.Error(err)
		}
		return
	}

	if addr, ok := c.wallet.Address(); ok {
		if _, err := util.SendTextMessage(c.b, chatId, "✅ Wallet connected: <code>"+util.ShortAddr(addr)+"</code>\nYou can accept the offer now."); err != nil {
			log.Error(err)
		}
	}
}
