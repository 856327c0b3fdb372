package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpamFilter_Match(t *testing.T) {
	f := NewSpamFilter(DefaultSpamTerms)

	tests := []struct {
		name string
		text string
		want string
		hit  bool
	}{
		{name: "genuine request", text: "Ich würde gerne Karate ausprobieren, geht auch Dienstag?"},
		{name: "term", text: "Best CASINO bonus today", want: "casino", hit: true},
		{name: "multi word term", text: "great Crypto Investment opportunity", want: "crypto investment", hit: true},
		{name: "term inside a word", text: "Ich trainiere im Casinoviertel"},
		{name: "too many links", text: strings.Repeat("https://example.com ", 3), want: "links", hit: true},
		{name: "two links are fine", text: "https://a.de und https://b.de"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := f.Match(tt.text)
			assert.Equal(t, tt.hit, hit)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpamFilter_EmptyTerms(t *testing.T) {
	f := NewSpamFilter([]string{" ", ""})
	_, hit := f.Match("viagra")
	assert.False(t, hit)
}
