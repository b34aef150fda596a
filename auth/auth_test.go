// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"regexp"
	"testing"
	"time"
)

func TestSign_KnownVector(t *testing.T) {
	// Example from the provider's documentation
	sign := Sign("2015063000000001", "apple", "1435660288", "12345678")

	expected := "f89f9594663708c1605f3d736d01d2d4"
	if sign != expected {
		t.Errorf("Expected %s, got %s", expected, sign)
	}
}

func TestSign_Format(t *testing.T) {
	sign := Sign("app", "你好", "1700000000000", "secret")

	if !regexp.MustCompile(`^[0-9a-f]{32}$`).MatchString(sign) {
		t.Errorf("Expected 32 lowercase hex chars, got %s", sign)
	}
}

func TestSign_DependsOnEveryPart(t *testing.T) {
	base := Sign("app", "hello", "1", "secret")

	variants := map[string]string{
		"appID":  Sign("app2", "hello", "1", "secret"),
		"text":   Sign("app", "hello!", "1", "secret"),
		"salt":   Sign("app", "hello", "2", "secret"),
		"secret": Sign("app", "hello", "1", "secret2"),
	}

	for name, sign := range variants {
		if sign == base {
			t.Errorf("Changing %s should change the signature", name)
		}
	}
}

func TestSalt(t *testing.T) {
	now := time.UnixMilli(1435660288123)

	if got := Salt(now); got != "1435660288123" {
		t.Errorf("Expected millisecond timestamp, got %s", got)
	}

	// Same millisecond, same salt
	if Salt(now) != Salt(now.Add(500*time.Microsecond)) {
		t.Error("Expected salts within one millisecond to collide")
	}
}

func TestVerifySign(t *testing.T) {
	sign := Sign("app", "hello", "42", "secret")

	if err := VerifySign("app", "hello", "42", "secret", sign); err != nil {
		t.Errorf("Expected valid signature, got %v", err)
	}
	if err := VerifySign("app", "hello", "43", "secret", sign); err != ErrInvalidSignature {
		t.Errorf("Expected ErrInvalidSignature, got %v", err)
	}
}

func TestMask(t *testing.T) {
	if Mask("") != "not configured" {
		t.Error("Expected empty secret to be reported as not configured")
	}
	if Mask("s3cret") != "configured" {
		t.Error("Expected set secret to be reported as configured")
	}
}
