package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// VerifySlackSignature checks Slack's v0 request signature: HMAC-SHA256 over
// "v0:<timestamp>:<rawBody>" with the signing secret, hex-encoded and
// prefixed "v0=". Comparison is constant-time; mismatched lengths fail
// without panicking. Returns false on any mismatch, never an error.
func VerifySlackSignature(timestamp, rawBody, providedSig, secret string) bool {
	if secret == "" || providedSig == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte("v0:" + timestamp + ":" + rawBody))
	expected := "v0=" + hex.EncodeToString(mac.Sum(nil))

	if subtle.ConstantTimeEq(int32(len(providedSig)), int32(len(expected))) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(providedSig), []byte(expected)) == 1
}

// VerifyStripeSignature checks the billing processor's webhook header of the
// form "t=<timestamp>,v1=<hex>[,v1=<hex>...]": HMAC-SHA256 over
// "<timestamp>.<rawBody>". Any listed v1 signature may match.
func VerifyStripeSignature(header, rawBody, secret string) bool {
	if secret == "" || header == "" {
		return false
	}
	var timestamp string
	var candidates []string
	for _, part := range strings.Split(header, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch k {
		case "t":
			timestamp = v
		case "v1":
			candidates = append(candidates, v)
		}
	}
	if timestamp == "" || len(candidates) == 0 {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp + "." + rawBody))
	expected := hex.EncodeToString(mac.Sum(nil))

	ok := false
	for _, sig := range candidates {
		if subtle.ConstantTimeEq(int32(len(sig)), int32(len(expected))) == 1 &&
			subtle.ConstantTimeCompare([]byte(sig), []byte(expected)) == 1 {
			ok = true
		}
	}
	return ok
}
