package command

import (
	"context"
	"tonoffer/internal/services"
	"tonoffer/internal/util"

	"github.com/go-telegram/bot"
	tgmodels "github.com/go-telegram/bot/models"
)

type DisconnectWalletCommand struct {
	b        *bot.Bot
	provider *services.TonConnectService
}

func NewDisconnectWalletCommand(b *bot.Bot, provider *services.TonConnectService) *DisconnectWalletCommand {
	return &DisconnectWalletCommand{
		b:        b,
		provider: provider,
	}
}

func (c *DisconnectWalletCommand) Execute(ctx context.Context, callback *tgmodels.CallbackQuery) {
	if err := util.CheckTypeMessage(c.b, callback); err != nil {
		return
	}

	chatId := uint64(callback.Message.Message.Chat.ID)

	c.provider.Disconnect()

	if _, err := util.SendTextMessage(c.b, chatId, "🔌 Wallet disconnected."); err != nil {
		log.Error(err)
	}
}
