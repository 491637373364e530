package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Vélo Club  d'Évry", "velo club d'evry"},
		{"  CYCLO  ", "cyclo"},
		{"Ça roule à Besançon", "ca roule a besancon"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SearchKey(tt.in), tt.in)
	}
}

func TestPersonName(t *testing.T) {
	assert.Equal(t, "Jean-Luc", PersonName("  jean-luc "))
	assert.Equal(t, "Marie Claire", PersonName("marie   CLAIRE"))
}
