package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInt(t *testing.T) {
	assert.Equal(t, 5, ParseInt("5", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 1, ParseInt("0", 1))
	assert.Equal(t, 1, ParseInt("-3", 1))
}

func TestGenerateOrderID(t *testing.T) {
	orderID := GenerateOrderID()

	matched := regexp.MustCompile(`^TRK-\d{8}-\d{6}-\d{4}$`).MatchString(orderID)
	assert.True(t, matched, "unexpected order ID format: %s", orderID)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Everest Base Camp", "everest-base-camp"},
		{"  Annapurna  Circuit  ", "annapurna-circuit"},
		{"Langtang Valley Trek!", "langtang-valley-trek"},
		{"K2 & Concordia", "k2-concordia"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "input %q", tt.in)
	}
}
