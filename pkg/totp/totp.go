package totp

import (
	"encoding/base32"
	"fmt"
	"strings"
	"time"

	"github.com/jhahn/go-totp/pkg/hotp"
)

// Period is the RFC 6238 time-step length in seconds. Every instant inside
// the same 30-second window maps to the same counter and therefore to the
// same code.
const Period uint64 = 30

// Digits is the width of every code this package produces.
const Digits uint = 6

// timeNow is the single clock access in the package; tests swap it to
// drive the clock-reading paths deterministically.
var timeNow = time.Now

// Code derives the 6-digit code for secret at the current system time.
// secret must be well-formed standard Base32 (RFC 4648) exactly as
// supplied: uppercase alphabet, correct padding, no normalization is
// performed. Code fails with ErrInvalidKey when the secret does not decode
// and with ErrInvalidTime when the system clock is set before the Unix
// epoch.
func Code(secret string) (string, error) {
	now, err := epochSeconds()
	if err != nil {
		return "", err
	}
	return CodeAt(secret, now)
}

// CodeAt derives the 6-digit code for secret at the given epoch time in
// seconds. It is the deterministic variant of Code: tests and callers that
// examine adjacent windows supply the instant themselves. The only failure
// mode is ErrInvalidKey.
func CodeAt(secret string, epoch uint64) (string, error) {
	key, err := decodeSecret(secret)
	if err != nil {
		return "", err
	}
	return hotp.Generate(key, BeginPeriodAt(epoch), Digits), nil
}

// BeginPeriod returns the time-step counter at the current system time:
// the number of whole 30-second windows elapsed since the Unix epoch. The
// counter doubles as the window index and as the HMAC message for the
// current code. It fails with ErrInvalidTime when the clock precedes the
// epoch.
func BeginPeriod() (uint64, error) {
	now, err := epochSeconds()
	if err != nil {
		return 0, err
	}
	return BeginPeriodAt(now), nil
}

// BeginPeriodAt returns the time-step counter for the given epoch time in
// seconds: epoch / Period with floor division.
func BeginPeriodAt(epoch uint64) uint64 {
	return epoch / Period
}

// EndPeriod returns BeginPeriod plus Period for the current system time.
// It fails with ErrInvalidTime when the clock precedes the epoch.
func EndPeriod() (uint64, error) {
	now, err := epochSeconds()
	if err != nil {
		return 0, err
	}
	return EndPeriodAt(now), nil
}

// EndPeriodAt returns BeginPeriodAt(epoch) + Period. Note the units: the
// period length in seconds is added to a step counter, so the result is
// neither the counter of a later window nor an epoch timestamp. Callers
// wanting the wall-clock end of the current window must derive it from
// BeginPeriodAt themselves; the arithmetic here is kept as-is for
// compatibility.
func EndPeriodAt(epoch uint64) uint64 {
	return BeginPeriodAt(epoch) + Period
}

// decodeSecret decodes the shared secret exactly as supplied. No case
// folding and no padding repair: anything other than well-formed standard
// Base32 fails. The stdlib decoder strips CR and LF before decoding, so
// those are rejected up front to keep every character outside the
// alphabet an error. The wrapped codec error reports only the offending
// byte offset, never the input itself.
func decodeSecret(secret string) ([]byte, error) {
	if strings.ContainsAny(secret, "\r\n") {
		return nil, fmt.Errorf("%w: illegal newline in secret", ErrInvalidKey)
	}
	key, err := base32.StdEncoding.DecodeString(secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return key, nil
}

// epochSeconds reads the system clock as whole seconds since the Unix
// epoch. A clock set before the epoch is an environment fault and surfaces
// as ErrInvalidTime; the value is never clamped.
func epochSeconds() (uint64, error) {
	sec := timeNow().Unix()
	if sec < 0 {
		return 0, ErrInvalidTime
	}
	return uint64(sec), nil
}
