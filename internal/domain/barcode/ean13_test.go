package barcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmutombo/redpos-api/internal/domain/barcode"
)

func TestChecksum_CodigoConocido(t *testing.T) {
	// EAN-13 real: 4006381333931 (el dígito de control es 1).
	assert.Equal(t, 1, barcode.Checksum("400638133393"))
}

func TestChecksum_EntradaInvalida(t *testing.T) {
	assert.Equal(t, -1, barcode.Checksum("123"), "longitud incorrecta")
	assert.Equal(t, -1, barcode.Checksum("40063813339X"), "caracteres no numéricos")
	assert.Equal(t, -1, barcode.Checksum("4006381333931"), "13 dígitos no es un prefijo")
}

func TestIsValid(t *testing.T) {
	assert.True(t, barcode.IsValid("4006381333931"))
	assert.False(t, barcode.IsValid("4006381333930"), "checksum incorrecto")
	assert.False(t, barcode.IsValid("400638133393"), "12 dígitos")
	assert.False(t, barcode.IsValid(""), "vacío")
}

func TestRandom_SiempreValido(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := barcode.Random()
		require.Len(t, code, 13)
		assert.True(t, barcode.IsValid(code), "generado inválido: %s", code)
	}
}
