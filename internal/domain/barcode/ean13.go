// Package barcode implementa generación y validación de códigos EAN-13 para
// el etiquetado de productos.
package barcode

import (
	"math/rand"
	"strings"
)

// Checksum calcula el dígito de control EAN-13 para un prefijo de 12 dígitos.
// Posiciones impares (índice par) pesan 1, pares pesan 3.
// Devuelve -1 si el prefijo no tiene exactamente 12 dígitos.
func Checksum(code string) int {
	if len(code) != 12 || !allDigits(code) {
		return -1
	}
	oddSum, evenSum := 0, 0
	for i := 0; i < 12; i++ {
		d := int(code[i] - '0')
		if i%2 == 0 {
			oddSum += d
		} else {
			evenSum += d
		}
	}
	total := oddSum + evenSum*3
	return (10 - total%10) % 10
}

// IsValid verifica que el código tenga 13 dígitos y checksum correcto.
func IsValid(code string) bool {
	if len(code) != 13 || !allDigits(code) {
		return false
	}
	return Checksum(code[:12]) == int(code[12]-'0')
}

// Random genera un EAN-13 aleatorio con checksum válido. La unicidad por
// boutique la garantiza el caller consultando el repositorio.
func Random() string {
	var b strings.Builder
	b.Grow(13)
	for i := 0; i < 12; i++ {
		b.WriteByte(byte('0' + rand.Intn(10)))
	}
	code := b.String()
	return code + string(byte('0'+Checksum(code)))
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
