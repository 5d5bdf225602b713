package main

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"net/http"
	"strings"
)

const draftCookieName = "calculadoria_draft"

// sessionService signs and verifies the draft id carried in the visitor's
// cookie, so a wizard draft cannot be hijacked by forging ids.
type sessionService struct {
	secret []byte
}

func newSessionService(secret string) *sessionService {
	return &sessionService{secret: []byte(secret)}
}

func (s *sessionService) createValue(draftID string) string {
	payload := base64.RawURLEncoding.EncodeToString([]byte(draftID))
	mac := hmac.New(sha256.New, s.secret)
	_, _ = mac.Write([]byte(payload))
	signature := hex.EncodeToString(mac.Sum(nil))
	return payload + "." + signature
}

func (s *sessionService) verifyValue(value string) (string, bool) {
	payload, signature, ok := strings.Cut(value, ".")
	if !ok {
		return "", false
	}

	mac := hmac.New(sha256.New, s.secret)
	_, _ = mac.Write([]byte(payload))
	expected := mac.Sum(nil)

	provided, err := hex.DecodeString(signature)
	if err != nil {
		return "", false
	}
	if !hmac.Equal(provided, expected) {
		return "", false
	}

	decoded, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil || len(decoded) == 0 {
		return "", false
	}

	return string(decoded), true
}

func (s *sessionService) setDraftCookie(w http.ResponseWriter, draftID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     draftCookieName,
		Value:    s.createValue(draftID),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *sessionService) clearDraftCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     draftCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *sessionService) draftIDFromRequest(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(draftCookieName)
	if err != nil {
		return "", false
	}
	return s.verifyValue(cookie.Value)
}
