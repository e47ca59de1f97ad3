package utility

import (
	"strings"
)

// Slugify genera un slug URL-safe a partir de un nombre: minúsculas, todo lo
// que no sea letra o dígito se reemplaza por '-' y se recortan los guiones de
// los extremos. Secuencias de caracteres inválidos producen un solo guion.
func Slugify(name string) string {
	lower := strings.ToLower(name)

	var b strings.Builder
	lastDash := true // evita guion inicial
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}

	return strings.Trim(b.String(), "-")
}

// StripNonDigits elimina del string todo lo que no sea un dígito decimal.
// Se usa para normalizar teléfonos antes de armar enlaces de WhatsApp.
func StripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
