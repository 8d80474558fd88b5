package tonbot

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"tonoffer/internal/config"
	"tonoffer/internal/core/interfaces"
	"tonoffer/internal/models"
	"tonoffer/internal/offer"
	"tonoffer/internal/services"
	"tonoffer/internal/tonbot/buttons"
	"tonoffer/internal/tonbot/command"
	"tonoffer/internal/util"

	"github.com/go-telegram/bot"
	tgmodels "github.com/go-telegram/bot/models"
	"github.com/redis/go-redis/v9"
)

var log = config.InitLogger()

// offerPage is one visitor's offer page: the listing their deep link carried
// plus the wallet session and payment flow bound to their chat.
type offerPage struct {
	listing  models.OfferListing
	provider *services.TonConnectService
	wallet   *services.WalletService
	payment  *services.PaymentService
}

type TgBot struct {
	token    string
	redisCli *redis.Client
	rs       *services.RateService

	mu    sync.Mutex
	pages map[int64]*offerPage
}

func NewTgBot(token string, redisCli *redis.Client, rs *services.RateService) *TgBot {
	return &TgBot{
		token:    token,
		redisCli: redisCli,
		rs:       rs,
		pages:    make(map[int64]*offerPage),
	}
}

func (t *TgBot) StartBot() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	opts := []bot.Option{
		bot.WithDefaultHandler(t.handler),
	}

	tgbot, err := bot.New(t.token, opts...)
	if err != nil {
		log.Error("Failed to start bot: ", err)
		return err
	}

	tgbot.Start(ctx)

	return nil
}

func (t *TgBot) handler(ctx context.Context, b *bot.Bot, update *tgmodels.Update) {
	if update == nil {
		return
	}

	if update.Message != nil {
		t.handleMessage(ctx, b, update.Message)
	}

	if update.CallbackQuery != nil {
		callback := update.CallbackQuery

		t.handleCallback(ctx, b, callback)

		if _, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
			CallbackQueryID: callback.ID,
		}); err != nil {
			log.Error("AnswerCallbackQuery: ", err)
		}
	}
}

func (t *TgBot) handleMessage(ctx context.Context, b *bot.Bot, msg *tgmodels.Message) {
	if msg.Chat.Type != tgmodels.ChatTypePrivate {
		return
	}

	text := msg.Text
	chatId := msg.Chat.ID

	if strings.HasPrefix(text, "/start") {
		page := t.openPage(chatId, startPayload(text))
		command.NewStartCommand(b, page.listing, t.rs, page.wallet).Execute(ctx, msg)
		return
	}

	// Any other text is a search query, like typing into the page's search box.
	page := t.page(chatId)
	command.NewSearchCommand(b, page.listing).Execute(ctx, msg)
}

func (t *TgBot) handleCallback(ctx context.Context, b *bot.Bot, callback *tgmodels.CallbackQuery) {
	chatId := chatIdOf(callback)
	if chatId == 0 {
		return
	}

	if callback.Data == buttons.DefCloseId {
		if err := util.CheckTypeMessage(b, callback); err != nil {
			return
		}
		msg := callback.Message.Message
		if err := util.DeleteMessage(ctx, b, uint64(msg.Chat.ID), msg.ID); err != nil {
			return
		}
		return
	}

	if cmd := t.callbackCommand(callback.Data, b, t.page(chatId)); cmd != nil {
		cmd.Execute(ctx, callback)
	}
}

func (t *TgBot) callbackCommand(data string, b *bot.Bot, page *offerPage) interfaces.Command[*tgmodels.CallbackQuery] {
	switch data {
	case buttons.AcceptOfferId, buttons.RetryPaymentId:
		return command.NewAcceptOfferCommand(b, page.payment)
	case buttons.ConnectWalletId:
		return command.NewConnectWalletCommand(b, page.provider, page.wallet)
	case buttons.DisconnectWalletId:
		return command.NewDisconnectWalletCommand(b, page.provider)
	case buttons.RefreshPriceId:
		return command.NewRefreshPriceCommand(b, page.listing, t.rs)
	case buttons.HowItWorksId:
		return command.NewHowItWorksCommand(b)
	}
	return nil
}

// openPage builds a fresh page for the chat from its deep-link payload. The
// listing is parsed once and stays immutable for the page's lifetime.
func (t *TgBot) openPage(chatId int64, payload string) *offerPage {
	listing := offer.DefaultListing()
	if payload != "" {
		listing = offer.ParseParam(payload)
	}

	provider := services.NewTonConnectService(t.redisCli, strconv.FormatInt(chatId, 10))
	wallet := services.NewWalletService(provider)
	payment := services.NewPaymentService(wallet, listing, config.DESTINATION_ADDR)

	page := &offerPage{
		listing:  listing,
		provider: provider,
		wallet:   wallet,
		payment:  payment,
	}

	t.mu.Lock()
	t.pages[chatId] = page
	t.mu.Unlock()

	return page
}

// page returns the chat's current page, opening a default one for visitors
// who tap a button from an old message after a restart.
func (t *TgBot) page(chatId int64) *offerPage {
	t.mu.Lock()
	page, ok := t.pages[chatId]
	t.mu.Unlock()
	if ok {
		return page
	}
	return t.openPage(chatId, "")
}

func startPayload(text string) string {
	parts := strings.SplitN(text, " ", 2)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func chatIdOf(callback *tgmodels.CallbackQuery) int64 {
	if callback.Message.Message != nil {
		return callback.Message.Message.Chat.ID
	}
	return callback.From.ID
}
