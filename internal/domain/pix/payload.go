// Package pix encodes static BR Code payment payloads ("PIX copia e cola")
// and renders display-safe masked keys. Both are pure: no I/O, no clock, no
// shared state.
package pix

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"salao_xpto/internal/domain/entities"
)

// ErrMissingPixIdentity is returned when encoding is attempted without a key.
// It is the only refusal the encoder makes; every other malformed input is
// corrected internally (truncation, transliteration).
var ErrMissingPixIdentity = errors.New("missing pix identity")

const (
	pixGUI = "BR.GOV.BCB.PIX"

	maxKeyLen        = 77
	maxNameLen       = 25
	maxCityLen       = 15
	maxReferenceLen  = 25
	defaultReference = "***"
)

// EncodePayload assembles the single-line BR Code text for a static charge.
//
// Field layout follows the BCB static-payload grammar: payload format
// indicator, merchant account information (GUI + key + optional description),
// merchant category code, currency (986/BRL), amount (omitted when zero),
// country, name, city, reference label, CRC16. Every field is TLV encoded as
// 2-digit tag + 2-digit length + value; the CRC is computed last over the
// whole text including the literal "6304" prefix of the checksum field.
//
// Identical inputs always produce byte-identical output.
func EncodePayload(identity entities.PixIdentity, amountCents int64, description, txid string) (string, error) {
	key := strings.TrimSpace(identity.Key)
	if key == "" {
		return "", ErrMissingPixIdentity
	}
	if len(key) > maxKeyLen {
		key = key[:maxKeyLen]
	}

	mai := tlv("00", pixGUI) + tlv("01", key)
	if desc := foldASCII(description, 0); desc != "" {
		// The nested template itself is length-prefixed with two digits, so
		// the description only rides along when it still fits.
		if room := 99 - len(mai) - 4; room > 0 {
			if len(desc) > room {
				desc = desc[:room]
			}
			mai += tlv("02", desc)
		}
	}

	ref := sanitizeReference(txid)

	var b strings.Builder
	b.WriteString(tlv("00", "01"))
	b.WriteString(tlv("26", mai))
	b.WriteString(tlv("52", "0000"))
	b.WriteString(tlv("53", "986"))
	if amountCents > 0 {
		b.WriteString(tlv("54", FormatAmount(amountCents)))
	}
	b.WriteString(tlv("58", "BR"))
	b.WriteString(tlv("59", foldASCIIUpper(identity.HolderName, maxNameLen)))
	b.WriteString(tlv("60", foldASCIIUpper(identity.City, maxCityLen)))
	b.WriteString(tlv("62", tlv("05", ref)))
	b.WriteString("6304")

	sum := crc16CCITTFalse([]byte(b.String()))
	return b.String() + fmt.Sprintf("%04X", sum), nil
}

// FormatAmount renders minor units as the decimal string required by field
// 54: two fraction digits, dot separator, no thousands grouping.
func FormatAmount(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

func tlv(tag, value string) string {
	return fmt.Sprintf("%s%02d%s", tag, len(value), value)
}

func sanitizeReference(txid string) string {
	var b strings.Builder
	for _, r := range txid {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '.', r == '-':
			b.WriteRune(r)
		}
	}
	ref := b.String()
	if ref == "" {
		return defaultReference
	}
	if len(ref) > maxReferenceLen {
		ref = ref[:maxReferenceLen]
	}
	return ref
}

// foldASCII strips diacritics and non-ASCII runes. max == 0 means unbounded.
func foldASCII(s string, max int) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if r > unicode.MaxASCII || r < ' ' {
			continue
		}
		b.WriteRune(r)
	}
	out := strings.TrimSpace(b.String())
	if max > 0 && len(out) > max {
		out = strings.TrimSpace(out[:max])
	}
	return out
}

func foldASCIIUpper(s string, max int) string {
	return strings.ToUpper(foldASCII(s, max))
}
