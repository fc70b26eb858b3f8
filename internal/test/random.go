package test

import (
	"math/rand"
	"sync"
	"time"
)

var (
	randMu  sync.Mutex
	randSrc = rand.New(rand.NewSource(time.Now().UnixNano()))
)

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomASCIIString returns a pseudo-random string of length n, safe for
// concurrent use across parallel tests.
func RandomASCIIString(n int) string {
	randMu.Lock()
	defer randMu.Unlock()

	buf := make([]byte, n)
	for i := range buf {
		buf[i] = asciiLetters[randSrc.Intn(len(asciiLetters))]
	}
	return string(buf)
}
