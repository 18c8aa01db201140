package contact

import "strings"

const upperHex = "0123456789ABCDEF"

// EncodeComponent percent-encodes s the way browsers encode a URI component:
// UTF-8 bytes outside A-Z a-z 0-9 and - _ . ! ~ * ' ( ) become %XX, and a
// space becomes %20 rather than '+'.
func EncodeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if unreserved(ch) {
			b.WriteByte(ch)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[ch>>4])
		b.WriteByte(upperHex[ch&0x0f])
	}
	return b.String()
}

func unreserved(ch byte) bool {
	switch {
	case ch >= 'a' && ch <= 'z':
		return true
	case ch >= 'A' && ch <= 'Z':
		return true
	case ch >= '0' && ch <= '9':
		return true
	}
	switch ch {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
