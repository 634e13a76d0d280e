package bingxapi

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"net/url"
	"strings"
)

// SignatureScheme selects the (payload, encoding) pair of an API generation.
type SignatureScheme int

const (
	// SignatureSchemeBase64 signs METHOD + PATH + params and outputs the
	// percent-encoded base64 digest. Used by the legacy swap API.
	SignatureSchemeBase64 SignatureScheme = iota + 1

	// SignatureSchemeHex signs the params only and outputs the lowercase hex digest.
	// Used by the open API.
	SignatureSchemeHex
)

func (s SignatureScheme) String() string {
	switch s {
	case SignatureSchemeBase64:
		return "base64"
	case SignatureSchemeHex:
		return "hex"
	}
	return "unknown"
}

// SignablePayload returns the string the scheme computes the HMAC over.
func SignablePayload(scheme SignatureScheme, method, path, canonical string) string {
	if scheme == SignatureSchemeBase64 {
		return strings.ToUpper(method) + path + canonical
	}
	return canonical
}

// Sign computes the HMAC-SHA256 signature of payload with the given secret and
// encodes it for the scheme. The result is safe to append to a query string.
func Sign(secret, payload string, scheme SignatureScheme) (string, error) {
	if len(secret) == 0 {
		return "", &SigningError{Reason: "empty api secret"}
	}

	var sig = hmac.New(sha256.New, []byte(secret))
	if _, err := sig.Write([]byte(payload)); err != nil {
		return "", &SigningError{Reason: err.Error()}
	}

	digest := sig.Sum(nil)

	switch scheme {
	case SignatureSchemeBase64:
		return url.QueryEscape(base64.StdEncoding.EncodeToString(digest)), nil

	case SignatureSchemeHex:
		return hex.EncodeToString(digest), nil
	}

	return "", &SigningError{Reason: "unsupported signature scheme " + scheme.String()}
}
