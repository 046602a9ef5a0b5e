// Package otp issues four-digit handoff codes and keeps only their bcrypt digests.
package otp

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

const (
	minCode = 1000
	maxCode = 9999
)

// CodeLength is the number of digits in every code.
const CodeLength = 4

// Codec generates, hashes and verifies one-time codes.
type Codec struct {
	cost   int
	random io.Reader
}

// NewCodec creates a Codec with the given bcrypt cost.
// Costs outside bcrypt's range fall back to bcrypt.DefaultCost.
func NewCodec(cost int) *Codec {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Codec{cost: cost, random: rand.Reader}
}

// Generate draws a code uniformly from [1000,9999].
func (c *Codec) Generate() (string, error) {
	n, err := rand.Int(c.random, big.NewInt(maxCode-minCode+1))
	if err != nil {
		return "", fmt.Errorf("otp: draw code: %w", err)
	}
	return strconv.FormatInt(n.Int64()+minCode, 10), nil
}

// Hash returns a salted digest of code.
func (c *Codec) Hash(code string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(code), c.cost)
	if err != nil {
		return "", fmt.Errorf("otp: hash code: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether code matches digest.
func (c *Codec) Verify(code, digest string) bool {
	if code == "" || digest == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(code))
	return err == nil
}

// Pair is a freshly issued pickup/delivery code pair with digests.
type Pair struct {
	PickupCode     string
	DeliveryCode   string
	PickupDigest   string
	DeliveryDigest string
}

// ErrCodeCollision is returned when two distinct codes could not be drawn.
var ErrCodeCollision = errors.New("otp: could not draw distinct codes")

// IssuePair draws two distinct codes and hashes both.
func (c *Codec) IssuePair() (Pair, error) {
	pickup, err := c.Generate()
	if err != nil {
		return Pair{}, err
	}
	var delivery string
	for i := 0; i < 8; i++ {
		delivery, err = c.Generate()
		if err != nil {
			return Pair{}, err
		}
		if delivery != pickup {
			break
		}
	}
	if delivery == pickup {
		return Pair{}, ErrCodeCollision
	}

	pd, err := c.Hash(pickup)
	if err != nil {
		return Pair{}, err
	}
	dd, err := c.Hash(delivery)
	if err != nil {
		return Pair{}, err
	}
	return Pair{
		PickupCode:     pickup,
		DeliveryCode:   delivery,
		PickupDigest:   pd,
		DeliveryDigest: dd,
	}, nil
}

// WellFormed reports whether s looks like a code this package could issue.
func WellFormed(s string) bool {
	if len(s) != CodeLength {
		return false
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= minCode && n <= maxCode
}
