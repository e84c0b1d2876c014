// Package totp derives Time-based One-Time Passwords (RFC 6238).
//
// A code is a pure function of a shared secret and an instant in time: the
// epoch time is floored to a 30-second window counter, the counter is
// authenticated with HMAC-SHA1 under the decoded secret, and RFC 4226
// dynamic truncation reduces the digest to a 6-digit decimal string.
//
// # Deriving Codes
//
// Code reads the system clock once and derives the code for the current
// window:
//
//	code, err := totp.Code("TKI3J4MD6HBVVLAB")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(code)
//
// CodeAt is the injectable-time variant. It is what tests use, and what
// verification flows use to derive the codes of adjacent windows:
//
//	code, err := totp.CodeAt("TKI3J4MD6HBVVLAB", 1578082942)
//	// code == "075767"
//
// # Secrets
//
// Secrets are standard Base32 (RFC 4648) taken exactly as supplied: the
// uppercase alphabet with required padding. Nothing is normalized, so
// lowercase input, characters outside the alphabet, or broken padding fail
// with ErrInvalidKey. Generating, storing and provisioning secrets is the
// caller's business; the package only consumes them, one derivation at a
// time, and never logs or retains them.
//
// # Periods
//
// BeginPeriodAt exposes the window counter itself so callers can reason
// about window boundaries. BeginPeriod, EndPeriod and Code read the clock;
// their ...At counterparts are pure and never fail on time, which makes
// every derivation reproducible.
//
// # Concurrency
//
// Every function is a stateless computation over its arguments with no
// shared state; the package is safe for concurrent use without
// coordination.
package totp
