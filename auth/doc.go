// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth signs requests to the translation provider.

# Signature

The provider authenticates each call with four form fields besides the
payload: appid, salt, sign. The signature is the hex MD5 of the
concatenation appid + q + salt + secret:

	salt := auth.Salt(time.Now())
	sign := auth.Sign(appID, q, salt, secret)

The salt is the request time in milliseconds. It is unique enough for the
provider's replay window but two requests in the same millisecond with the
same text produce the same signature.

# Verification

VerifySign recomputes the signature and compares in constant time. Fake
provider servers in tests use it to check what the relay sent.

# Credentials in Logs

Mask turns a secret into "configured" or "not configured" for startup logs.
*/
package auth
