package pix

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"salao_xpto/internal/domain/entities"
)

type tlvField struct {
	tag   string
	value string
}

// parseTLV walks a tag/length/value stream, failing the test on any
// malformed length so assertions never pass by accident.
func parseTLV(t *testing.T, s string) []tlvField {
	t.Helper()
	var fields []tlvField
	for i := 0; i < len(s); {
		if i+4 > len(s) {
			t.Fatalf("truncated TLV header at offset %d in %q", i, s)
		}
		tag := s[i : i+2]
		length, err := strconv.Atoi(s[i+2 : i+4])
		if err != nil {
			t.Fatalf("non-numeric length for tag %s: %v", tag, err)
		}
		if i+4+length > len(s) {
			t.Fatalf("tag %s declares length %d past end of payload", tag, length)
		}
		fields = append(fields, tlvField{tag: tag, value: s[i+4 : i+4+length]})
		i += 4 + length
	}
	return fields
}

func fieldByTag(fields []tlvField, tag string) (string, bool) {
	for _, f := range fields {
		if f.tag == tag {
			return f.value, true
		}
	}
	return "", false
}

func testIdentity() entities.PixIdentity {
	return entities.PixIdentity{
		KeyType:    entities.PixKeyTypeEmail,
		Key:        "pagamentos@salao.com.br",
		HolderName: "João da Conceição",
		City:       "São Paulo",
	}
}

func TestCRC16CCITTFalse_CheckValue(t *testing.T) {
	// Standard check value for the CRC-16/CCITT-FALSE variant.
	if got := crc16CCITTFalse([]byte("123456789")); got != 0x29B1 {
		t.Fatalf("expected 0x29B1, got 0x%04X", got)
	}
}

func TestEncodePayload_Structure(t *testing.T) {
	payload, err := EncodePayload(testIdentity(), 3500, "", "AGD-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fields := parseTLV(t, payload)

	wantOrder := []string{"00", "26", "52", "53", "54", "58", "59", "60", "62", "63"}
	if len(fields) != len(wantOrder) {
		t.Fatalf("expected %d fields, got %d (%q)", len(wantOrder), len(fields), payload)
	}
	for i, tag := range wantOrder {
		if fields[i].tag != tag {
			t.Fatalf("field %d: expected tag %s, got %s", i, tag, fields[i].tag)
		}
	}

	expect := map[string]string{
		"00": "01",
		"52": "0000",
		"53": "986",
		"54": "35.00",
		"58": "BR",
		"59": "JOAO DA CONCEICAO",
		"60": "SAO PAULO",
	}
	for tag, want := range expect {
		got, ok := fieldByTag(fields, tag)
		if !ok {
			t.Fatalf("missing field %s", tag)
		}
		if got != want {
			t.Fatalf("field %s: expected %q, got %q", tag, want, got)
		}
	}

	mai, _ := fieldByTag(fields, "26")
	sub := parseTLV(t, mai)
	if gui, _ := fieldByTag(sub, "00"); gui != "BR.GOV.BCB.PIX" {
		t.Fatalf("expected BCB GUI, got %q", gui)
	}
	if key, _ := fieldByTag(sub, "01"); key != "pagamentos@salao.com.br" {
		t.Fatalf("expected raw key in MAI, got %q", key)
	}

	adf, _ := fieldByTag(fields, "62")
	if ref, _ := fieldByTag(parseTLV(t, adf), "05"); ref != "AGD-123" {
		t.Fatalf("expected reference AGD-123, got %q", ref)
	}

	// Checksum covers everything up to and including the literal "6304".
	crcValue, _ := fieldByTag(fields, "63")
	want := fmt.Sprintf("%04X", crc16CCITTFalse([]byte(payload[:len(payload)-4])))
	if crcValue != want {
		t.Fatalf("checksum mismatch: payload carries %s, recomputed %s", crcValue, want)
	}
}

func TestEncodePayload_Deterministic(t *testing.T) {
	a, err := EncodePayload(testIdentity(), 12345, "Corte e escova", "TX0001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := EncodePayload(testIdentity(), 12345, "Corte e escova", "TX0001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Fatalf("encoding is not deterministic:\n%q\n%q", a, b)
	}
}

func TestEncodePayload_ZeroAmountOmitsField54(t *testing.T) {
	payload, err := EncodePayload(testIdentity(), 0, "", "TX0001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fields := parseTLV(t, payload)
	if _, ok := fieldByTag(fields, "54"); ok {
		t.Fatalf("field 54 must be omitted for zero amount, payload=%q", payload)
	}
	// The rest of the grammar survives the omission.
	if v, _ := fieldByTag(fields, "53"); v != "986" {
		t.Fatalf("expected currency 986, got %q", v)
	}
}

func TestEncodePayload_DescriptionRidesInMAI(t *testing.T) {
	payload, err := EncodePayload(testIdentity(), 3500, "Sinal agendamento", "TX1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mai, _ := fieldByTag(parseTLV(t, payload), "26")
	if desc, ok := fieldByTag(parseTLV(t, mai), "02"); !ok || desc != "Sinal agendamento" {
		t.Fatalf("expected description sub-field, got %q (present=%v)", desc, ok)
	}

	payload, err = EncodePayload(testIdentity(), 3500, "", "TX1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mai, _ = fieldByTag(parseTLV(t, payload), "26")
	if _, ok := fieldByTag(parseTLV(t, mai), "02"); ok {
		t.Fatalf("empty description must omit sub-field 02")
	}
}

func TestEncodePayload_MissingKey(t *testing.T) {
	identity := testIdentity()
	identity.Key = "   "
	if _, err := EncodePayload(identity, 3500, "", "TX1"); !errors.Is(err, ErrMissingPixIdentity) {
		t.Fatalf("expected ErrMissingPixIdentity, got %v", err)
	}
}

func TestEncodePayload_NameAndCityLimits(t *testing.T) {
	identity := testIdentity()
	identity.HolderName = "Maria Aparecida dos Santos e Silva Figueiredo"
	identity.City = "São José dos Campos"

	payload, err := EncodePayload(identity, 100, "", "TX1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fields := parseTLV(t, payload)
	name, _ := fieldByTag(fields, "59")
	if len(name) > 25 {
		t.Fatalf("merchant name exceeds 25 chars: %q", name)
	}
	city, _ := fieldByTag(fields, "60")
	if len(city) > 15 {
		t.Fatalf("merchant city exceeds 15 chars: %q", city)
	}
	if city != "SAO JOSE DOS CA" {
		t.Fatalf("unexpected city folding: %q", city)
	}
}

func TestEncodePayload_ReferenceSanitization(t *testing.T) {
	payload, err := EncodePayload(testIdentity(), 100, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	adf, _ := fieldByTag(parseTLV(t, payload), "62")
	if ref, _ := fieldByTag(parseTLV(t, adf), "05"); ref != "***" {
		t.Fatalf("empty txid should default to ***, got %q", ref)
	}

	payload, err = EncodePayload(testIdentity(), 100, "", "a1b2c3d4-e5f6-7890-abcd-ef1234567890")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	adf, _ = fieldByTag(parseTLV(t, payload), "62")
	ref, _ := fieldByTag(parseTLV(t, adf), "05")
	if len(ref) != 25 {
		t.Fatalf("expected reference truncated to 25, got %d (%q)", len(ref), ref)
	}
}

func TestFormatAmount(t *testing.T) {
	cases := map[int64]string{
		3500:   "35.00",
		50:     "0.50",
		1:      "0.01",
		100000: "1000.00",
		199:    "1.99",
	}
	for cents, want := range cases {
		if got := FormatAmount(cents); got != want {
			t.Fatalf("FormatAmount(%d): expected %q, got %q", cents, want, got)
		}
	}
}
