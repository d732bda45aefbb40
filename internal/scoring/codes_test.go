package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeCodes(t *testing.T) {
	codes := TypeCodes()

	assert.Len(t, codes, 16)
	assert.Equal(t, "ESTJ", codes[0])
	assert.Equal(t, "INFP", codes[15])

	seen := make(map[string]bool)
	for _, c := range codes {
		assert.False(t, seen[c], "duplicate code %s", c)
		seen[c] = true
		assert.True(t, ValidCode(c), "code %s", c)
	}
}

func TestValidCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"INTJ", true},
		{"esfp", false},
		{"IETJ", false},
		{"INT", false},
		{"INTJX", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidCode(tt.code), "code %q", tt.code)
	}
}

func TestPoles(t *testing.T) {
	for _, d := range AllDimensions() {
		first, second := d.Poles()
		assert.True(t, first.IsFirst())
		assert.False(t, second.IsFirst())
		assert.Equal(t, d, first.Dimension())
		assert.Equal(t, d, second.Dimension())
	}
	assert.Equal(t, Dimension(""), Pole("X").Dimension())
	assert.False(t, Pole("X").IsFirst())
}

func TestPolesOf(t *testing.T) {
	assert.Equal(t, []Pole{PoleI, PoleN, PoleF, PoleP}, PolesOf("INFP"))
}
