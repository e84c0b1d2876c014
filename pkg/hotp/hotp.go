// Package hotp implements HMAC-based One-Time Password generation
// (RFC 4226): HMAC-SHA1 over an 8-byte counter, reduced to a short
// decimal code by dynamic truncation.
package hotp

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/binary"
	"fmt"
)

// DefaultDigits is the code width used when no usable width is requested.
// Six digits is the RFC 4226 minimum and the width authenticator apps
// expect.
const DefaultDigits uint = 6

// maxDigits bounds the requested width: a truncated value is below 2^31
// and never has more than ten decimal digits.
const maxDigits uint = 10

// Generate computes the one-time password for the given key and counter.
// The key is the raw shared secret; an empty or nil key is a valid HMAC
// key and yields a well-defined code. digits selects the code width and
// falls back to DefaultDigits outside the 1..10 range.
//
// The result is exactly digits characters, left-padded with '0'. Generate
// has no failure mode: every input maps to a code.
func Generate(key []byte, counter uint64, digits uint) string {
	if digits == 0 || digits > maxDigits {
		digits = DefaultDigits
	}
	return format(truncate(sum(key, counter)), digits)
}

// sum computes HMAC-SHA1 over the 8-byte big-endian encoding of counter.
func sum(key []byte, counter uint64) []byte {
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(sha1.New, key)
	mac.Write(msg[:])
	return mac.Sum(nil)
}

// truncate applies RFC 4226 dynamic truncation. The low nibble of the last
// digest byte selects a 4-byte window, read big-endian with the top bit
// cleared so the value stays representable as a signed 32-bit integer.
// offset+3 is at most 18, always inside the 20-byte digest.
func truncate(digest []byte) uint64 {
	offset := digest[len(digest)-1] & 0x0f

	return uint64(digest[offset]&0x7f)<<24 |
		uint64(digest[offset+1])<<16 |
		uint64(digest[offset+2])<<8 |
		uint64(digest[offset+3])
}

// format reduces value modulo 10^digits and renders it as a decimal string
// of exactly digits characters, left-padded with '0'.
func format(value uint64, digits uint) string {
	return fmt.Sprintf("%0*d", int(digits), value%pow10(digits))
}

func pow10(n uint) uint64 {
	p := uint64(1)
	for ; n > 0; n-- {
		p *= 10
	}
	return p
}
