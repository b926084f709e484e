package service

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// billNumberPrefix is a stable external contract: printed and scanned bills
// carry numbers of the form INV + YYMMDD + 4 digits.
const billNumberPrefix = "INV"

// BillNumberGenerator produces date-encoded bill numbers with a random
// 4-digit suffix (1000-9999). The random source is injected so tests can use
// a seeded generator; uniqueness is enforced by the storage layer, which
// callers handle by redrawing on conflict.
type BillNumberGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewBillNumberGenerator creates a generator seeded with the given value.
func NewBillNumberGenerator(seed int64) *BillNumberGenerator {
	return &BillNumberGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a bill number for the given timestamp.
func (g *BillNumberGenerator) Next(t time.Time) string {
	g.mu.Lock()
	suffix := 1000 + g.rng.Intn(9000)
	g.mu.Unlock()
	return fmt.Sprintf("%s%s%04d", billNumberPrefix, t.Format("060102"), suffix)
}
