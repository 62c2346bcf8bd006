package persistence

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

// CookieKey is a secretbox key derived from the configured storage secret.
type CookieKey [32]byte

// DeriveCookieKey turns an arbitrary secret into a secretbox key.
func DeriveCookieKey(secret string) CookieKey {
	return CookieKey(sha256.Sum256([]byte(secret)))
}

// Cookie stores values in sealed, HTTP-only cookies of the current request.
// Values written during the request are visible to later reads in the same
// request.
type Cookie struct {
	c       *fiber.Ctx
	key     CookieKey
	secure  bool
	pending map[string]*string
}

// NewCookie binds a cookie storage to one request.
func NewCookie(c *fiber.Ctx, key CookieKey, secure bool) *Cookie {
	return &Cookie{c: c, key: key, secure: secure, pending: make(map[string]*string)}
}

func (s *Cookie) Get(_ context.Context, key string) (string, bool, error) {
	if v, ok := s.pending[key]; ok {
		if v == nil {
			return "", false, nil
		}
		return *v, true, nil
	}

	raw := s.c.Cookies(key)
	if raw == "" {
		return "", false, nil
	}
	value, err := s.open(raw)
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *Cookie) Set(_ context.Context, key, value string) error {
	sealed, err := s.seal(value)
	if err != nil {
		return err
	}
	s.c.Cookie(&fiber.Cookie{
		Name:     key,
		Value:    sealed,
		Path:     "/",
		HTTPOnly: true,
		Secure:   s.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	s.pending[key] = &value
	return nil
}

func (s *Cookie) Delete(_ context.Context, key string) error {
	s.c.Cookie(&fiber.Cookie{
		Name:     key,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   s.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	s.pending[key] = nil
	return nil
}

func (s *Cookie) seal(value string) (string, error) {
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	key := [32]byte(s.key)
	box := secretbox.Seal(nonce[:], []byte(value), &nonce, &key)
	return base64.RawURLEncoding.EncodeToString(box), nil
}

func (s *Cookie) open(raw string) (string, error) {
	box, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil || len(box) < nonceSize+secretbox.Overhead {
		return "", ErrCorruptValue
	}
	var nonce [nonceSize]byte
	copy(nonce[:], box[:nonceSize])
	key := [32]byte(s.key)
	plain, ok := secretbox.Open(nil, box[nonceSize:], &nonce, &key)
	if !ok {
		return "", ErrCorruptValue
	}
	return string(plain), nil
}
