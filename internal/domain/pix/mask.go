package pix

import (
	"strings"

	"salao_xpto/internal/domain/entities"
)

// MaskKey renders a PIX key for unauthenticated display. It never fails: any
// key that does not match the expected shape of its declared type degrades to
// the last-4 rule instead of leaking the raw value or erroring, because this
// runs on the public booking page.
func MaskKey(key string, keyType entities.PixKeyType) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}

	switch keyType {
	case entities.PixKeyTypeCPF:
		if d := digitsOf(key); len(d) == 11 {
			return d[:3] + ".***.***-" + d[9:]
		}
	case entities.PixKeyTypeCNPJ:
		if d := digitsOf(key); len(d) == 14 {
			return d[:2] + ".***.***/****-" + d[12:]
		}
	case entities.PixKeyTypeEmail:
		if masked, ok := maskEmail(key); ok {
			return masked
		}
	case entities.PixKeyTypePhone:
		if masked, ok := maskPhone(key); ok {
			return masked
		}
	}
	return maskTail(key)
}

func maskEmail(key string) (string, bool) {
	at := strings.Index(key, "@")
	if at <= 0 || at == len(key)-1 {
		return "", false
	}
	local, domain := key[:at], key[at+1:]
	keep := 2
	if len(local) < keep {
		keep = len(local)
	}
	return local[:keep] + "***@" + domain, true
}

func maskPhone(key string) (string, bool) {
	d := digitsOf(key)
	// Strip the +55 country prefix when present.
	if len(d) > 11 && strings.HasPrefix(d, "55") {
		d = d[2:]
	}
	if len(d) < 10 || len(d) > 11 {
		return "", false
	}
	return "(" + d[:2] + ") *****-" + d[len(d)-4:], true
}

// maskTail is the fallback for random keys and malformed input: only the
// last four characters survive.
func maskTail(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
