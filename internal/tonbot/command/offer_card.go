package command

import (
	"fmt"
	"strings"
	"time"
	"tonoffer/internal/config"
	"tonoffer/internal/models"
	"tonoffer/internal/services"
	"tonoffer/internal/util"
)

var log = config.InitLogger()

func kindLabel(listing models.OfferListing) string {
	if listing.Kind() == models.KindAnonymousNumber {
		return "anonymous number"
	}
	return "username"
}

// renderOfferCard produces the offer page text: the collectible, the asking
// price, and the live TON rate block.
func renderOfferCard(listing models.OfferListing, rs *services.RateService, wallet *services.WalletService) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("💎 <b>@%s</b>\n", listing.Name))
	sb.WriteString(fmt.Sprintf("Someone offered 💎 <b>%s TON</b> for your %s.\n", util.FormatOfferAmount(listing.Price), kindLabel(listing)))
	sb.WriteString("If the price suits you, press \"Accept the offer\".\n\n")

	if listing.Date != 0 {
		sb.WriteString(fmt.Sprintf("Offered at: %s\n\n", time.Unix(listing.Date, 0).UTC().Format("02 Jan 2006 15:04 UTC")))
	}

	sb.WriteString(renderRateBlock(listing, rs))

	if addr, ok := wallet.Address(); ok {
		sb.WriteString(fmt.Sprintf("\n🛡 Wallet connected: <code>%s</code>\n", util.ShortAddr(addr)))
	} else {
		sb.WriteString("\nConnect your wallet to accept the offer.\n")
	}

	return sb.String()
}

func renderRateBlock(listing models.OfferListing, rs *services.RateService) string {
	snap, ok := rs.Snapshot()
	if !ok {
		if rs.Loading() {
			return "💲 TON price: loading...\n"
		}
		return "💲 TON price: unavailable\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("💲 TON price: <b>%s</b>\n", util.FormatUSDPrice(snap.USDPrice)))
	sb.WriteString(fmt.Sprintf("24h: %s | 7d: %s | 30d: %s\n",
		util.DiffIndicator(snap.Diff24h),
		util.DiffIndicator(snap.Diff7d),
		util.DiffIndicator(snap.Diff30d),
	))
	sb.WriteString(fmt.Sprintf("≈ %s for this offer\n", util.FormatUSDValue(listing.Price*snap.USDPrice)))
	sb.WriteString(fmt.Sprintf("Last updated: %s\n", snap.FetchedAt.Format("15:04:05")))
	return sb.String()
}
