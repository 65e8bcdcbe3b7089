package goquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortenName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		full string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"Madonna", "Madonna"},
		{"Jane Doe", "Jane"},
		{"F Bloggs", "F B."},
		{"F. Bloggs", "F. B."},
		{"J. R. Hartley", "J. R."},
		{"F B Smith", "F B"},
		{"Mary Jane Watson", "Mary"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, shortenName(tt.full), "shortenName(%q)", tt.full)
	}
}
