package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"Bolsa Kraft", "bolsa-kraft"},
		{"Bolsa   con   manija", "bolsa-con-manija"},
		{"  Bolsa  ", "bolsa"},
		{"Bolsa #25 (grande)", "bolsa-25-grande"},
		{"BOLSA-KRAFT", "bolsa-kraft"},
		{"Bolsa ecológica", "bolsa-ecol-gica"}, // las letras acentuadas no son a-z
		{"", ""},
		{"---", ""},
	}

	for _, c := range casos {
		assert.Equal(t, c.esperado, Slugify(c.entrada), "entrada %q", c.entrada)
	}
}

func TestStripNonDigits(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"+54 (11) 4444-5555", "541144445555"},
		{"11 4444 5555", "1144445555"},
		{"sin numeros", ""},
		{"", ""},
	}

	for _, c := range casos {
		assert.Equal(t, c.esperado, StripNonDigits(c.entrada), "entrada %q", c.entrada)
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 0.3, Round2(0.1*3))
	assert.Equal(t, 2350.0, Round2(2350))
	assert.Equal(t, 1.56, Round2(1.555000001))
	assert.Equal(t, -1.23, Round2(-1.234))
}
