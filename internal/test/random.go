package test

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/polkiloo/storeratings/internal/domain/model"
)

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomASCIIString returns a pseudo-random ASCII string within the provided bounds.
// When maxLen equals minLen the resulting string always has that exact length.
func RandomASCIIString(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen
	if maxLen > minLen {
		length += int(randomIntn(maxLen - minLen + 1))
	}
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = asciiLetters[randomIntn(len(asciiLetters))]
	}
	return string(buf)
}

// RandomEmail returns a throwaway address that passes e-mail validation.
func RandomEmail() string {
	return strings.ToLower(RandomASCIIString(10, 16)) + "@example.test"
}

// RandomUser returns a seedable user whose name fits the display name limits.
func RandomUser(role model.Role) *model.User {
	return &model.User{
		Name:         "User " + RandomASCIIString(8, 20),
		Email:        RandomEmail(),
		PasswordHash: "hash:Secret#1",
		Role:         role,
	}
}

func randomIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
