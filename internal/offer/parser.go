package offer

import (
	"net/url"
	"strconv"
	"strings"
	"tonoffer/internal/config"
	"tonoffer/internal/models"
)

var log = config.InitLogger()

// The launch parameter arrives under either of these query keys depending on
// how the page was opened.
const (
	paramKeyStart  = "startapp"
	paramKeyWebApp = "tgWebAppStartParam"
)

// Sub-field keys inside the parameter value. "name" is accepted as a legacy
// alias for "item".
const (
	fieldItem  = "item"
	fieldName  = "name"
	fieldPrice = "price"
	fieldDate  = "date"
)

const (
	defaultName  = "main"
	defaultPrice = 1000
)

// DefaultListing is the hard-coded fallback offer used whenever the launch
// parameter is absent or malformed.
func DefaultListing() models.OfferListing {
	return models.OfferListing{Name: defaultName, Price: defaultPrice}
}

// Parse decodes the page's launch query string into the active offer listing.
// Every parse failure degrades to the default listing; no error escapes.
func Parse(query string) models.OfferListing {
	values, err := url.ParseQuery(query)
	if err != nil {
		log.Debugln("Failed to parse launch query: ", err)
		return DefaultListing()
	}

	raw := values.Get(paramKeyStart)
	if raw == "" {
		raw = values.Get(paramKeyWebApp)
	}
	if raw == "" {
		return DefaultListing()
	}

	return ParseParam(raw)
}

// ParseParam decodes a single launch-parameter value of the form
// "item=<name>__price=<decimal>". The "__" separator stands in for "&"
// because deep-link payloads cannot carry a literal ampersand.
func ParseParam(raw string) models.OfferListing {
	fields, err := url.ParseQuery(strings.ReplaceAll(raw, "__", "&"))
	if err != nil {
		log.Debugln("Failed to parse launch parameter: ", err)
		return DefaultListing()
	}

	name := fields.Get(fieldItem)
	if name == "" {
		name = fields.Get(fieldName)
	}
	if name == "" {
		return DefaultListing()
	}

	price, err := strconv.ParseFloat(fields.Get(fieldPrice), 64)
	if err != nil || price <= 0 {
		log.Debugln("Invalid price in launch parameter: ", fields.Get(fieldPrice))
		return DefaultListing()
	}

	listing := models.OfferListing{Name: name, Price: price}
	if d := fields.Get(fieldDate); d != "" {
		if date, err := strconv.ParseInt(d, 10, 64); err == nil {
			listing.Date = date
		}
	}

	return listing
}
