// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strconv"
	"time"
)

var ErrInvalidSignature = errors.New("invalid signature")

// Salt returns the nonce for a signed request: the time in milliseconds, as a string.
// Two requests in the same millisecond share a salt.
func Salt(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

// Sign computes the provider signature hex(md5(appID + text + salt + secret))
func Sign(appID, text, salt, secret string) string {
	sum := md5.Sum([]byte(appID + text + salt + secret))
	return hex.EncodeToString(sum[:])
}

// VerifySign checks a signature produced by Sign
func VerifySign(appID, text, salt, secret, sign string) error {
	expected := Sign(appID, text, salt, secret)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(sign)) != 1 {
		return ErrInvalidSignature
	}
	return nil
}

// Mask reports whether a credential is configured without revealing it
func Mask(secret string) string {
	if secret == "" {
		return "not configured"
	}
	return "configured"
}
