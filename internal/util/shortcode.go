package util

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sqids/sqids-go"
)

// counterMod ограничивает счётчик генератора 2^31.
const counterMod = 1 << 31

// MinCodeLength минимальная длина сгенерированного кода.
const MinCodeLength = 6

// Generator выдаёт короткие коды из пары (время в мс, счётчик).
// Коды уникальны в пределах процесса, если часы не идут назад.
type Generator struct {
	sq      *sqids.Sqids
	counter atomic.Uint64
	now     func() time.Time
}

// GeneratorOption настраивает Generator.
type GeneratorOption func(*Generator)

// WithClock подменяет источник времени.
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) {
		g.now = now
	}
}

// NewGenerator создаёт генератор кодов.
func NewGenerator(opts ...GeneratorOption) (*Generator, error) {
	sq, err := sqids.New(sqids.Options{MinLength: MinCodeLength})
	if err != nil {
		return nil, fmt.Errorf("init sqids: %w", err)
	}

	g := &Generator{sq: sq, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate возвращает очередной код.
func (g *Generator) Generate() (string, error) {
	n := (g.counter.Add(1) - 1) % counterMod
	ts := uint64(g.now().UnixMilli())

	code, err := g.sq.Encode([]uint64{ts, n})
	if err != nil {
		return "", fmt.Errorf("encode short code: %w", err)
	}
	return code, nil
}
