package i18n

import "testing"

func TestText_KnownKeyAndLanguage(t *testing.T) {
	if got := Text("materials", "es"); got != "Materiales" {
		t.Fatalf("expected Materiales, got %q", got)
	}
	if got := Text("materials", "nl"); got != "Materialen" {
		t.Fatalf("expected Materialen, got %q", got)
	}
}

func TestText_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	if got := Text("materials", "fr"); got != "Materials" {
		t.Fatalf("expected English fallback, got %q", got)
	}
}

func TestText_UnknownKeyResolvesToKey(t *testing.T) {
	if got := Text("no_such_key", "en"); got != "no_such_key" {
		t.Fatalf("expected key passthrough, got %q", got)
	}
}

func TestFormatMoney_EnglishGrouping(t *testing.T) {
	if got := FormatMoney(117300, "USD", "en"); got != "$117,300" {
		t.Fatalf("expected $117,300, got %q", got)
	}
}

func TestFormatMoney_DutchGrouping(t *testing.T) {
	if got := FormatMoney(117300, "EUR", "nl"); got != "€117.300" {
		t.Fatalf("expected €117.300, got %q", got)
	}
}

func TestFormatMoney_UnknownCurrencyDefaultsToUSD(t *testing.T) {
	if got := FormatMoney(500, "XXX", "en"); got != "$500" {
		t.Fatalf("expected $500, got %q", got)
	}
}
