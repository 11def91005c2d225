package handlers

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var errInvalidState = errors.New("invalid oauth state")

// GenerateState returns "<nonce>.<mac>" where mac signs the nonce with key, so
// the callback can check the state without keeping server side sessions.
func GenerateState(key []byte) (string, error) {
	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	noncePart := base64.RawURLEncoding.EncodeToString(nonce)
	return noncePart + "." + signState(key, noncePart), nil
}

// VerifyState checks a state produced by GenerateState with the same key.
func VerifyState(key []byte, state string) error {
	noncePart, mac, ok := strings.Cut(state, ".")
	if !ok || noncePart == "" || mac == "" {
		return errInvalidState
	}
	if !hmac.Equal([]byte(mac), []byte(signState(key, noncePart))) {
		return errInvalidState
	}
	return nil
}

func signState(key []byte, nonce string) string {
	h := hmac.New(sha256.New, key)
	h.Write([]byte(nonce))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}
