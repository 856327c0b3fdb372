package pages

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var germanPrinter = message.NewPrinter(language.German)

// FormatEuro renders a cent amount the way the price list shows it: whole
// euros without decimals ("49€"), otherwise two decimals ("49,50€").
func FormatEuro(cents int64) string {
	if cents%100 == 0 {
		return germanPrinter.Sprintf("%d€", cents/100)
	}
	return germanPrinter.Sprintf("%.2f€", float64(cents)/100)
}

// Stars renders a 1-5 rating as star characters.
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	out := make([]rune, rating)
	for i := range out {
		out[i] = '★'
	}
	return string(out)
}
