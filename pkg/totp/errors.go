package totp

import "errors"

var (
	// ErrInvalidKey indicates the supplied secret is not valid standard Base32.
	ErrInvalidKey = errors.New("totp: secret is not valid base32")

	// ErrInvalidTime indicates the system clock reports a time before the Unix epoch.
	ErrInvalidTime = errors.New("totp: system time is before the unix epoch")
)
