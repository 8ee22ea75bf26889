package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultCurrency is used when the requested currency code is unknown.
const DefaultCurrency = "USD"

// currencySymbols maps supported ISO codes to their display symbol.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"CAD": "C$",
	"AUD": "A$",
	"MXN": "MX$",
}

// languageTags maps supported report languages to x/text tags so thousands
// separators follow the reader's locale ("117,300" vs "117.300").
var languageTags = map[string]language.Tag{
	"en": language.AmericanEnglish,
	"es": language.Spanish,
	"nl": language.Dutch,
	"de": language.German,
}

// Symbol returns the display symbol for a currency code, defaulting to USD.
func Symbol(code string) string {
	if s, ok := currencySymbols[code]; ok {
		return s
	}
	return currencySymbols[DefaultCurrency]
}

// FormatMoney formats a whole-unit amount with the currency symbol and
// locale-appropriate digit grouping, e.g. ("USD", "en", 117300) -> "$117,300".
func FormatMoney(amount int64, code, lang string) string {
	tag, ok := languageTags[Normalize(lang)]
	if !ok {
		tag = language.AmericanEnglish
	}
	p := message.NewPrinter(tag)
	return Symbol(code) + p.Sprint(number.Decimal(amount))
}
