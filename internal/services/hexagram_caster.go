package services

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/qiansheng/tianji-ai-go/internal/models"
)

// HexagramCaster performs coin-method hexagram casts. Each cast owns its own
// generator seeded either from the request or from crypto/rand, so casts are
// reproducible on demand and independent under concurrency.
type HexagramCaster struct {
	logger *logrus.Logger
}

// NewHexagramCaster creates a new hexagram caster.
func NewHexagramCaster(logger *logrus.Logger) *HexagramCaster {
	return &HexagramCaster{logger: logger}
}

// Cast tosses six lines bottom to top and resolves the primary hexagram and,
// when moving lines exist, the future hexagram derived by flipping them.
func (hc *HexagramCaster) Cast(ctx context.Context, req *models.CastRequest) (*models.CastResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("hexagram cast aborted: %w", err)
	}

	seed, err := resolveSeed(req.Seed)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))

	lines := make([]models.LineValue, 6)
	rendered := make([]string, 6)
	var moving []int
	var primaryCode, futureCode uint8
	for i := range lines {
		line := castLine(rng)
		lines[i] = line
		rendered[i] = line.Render()
		if line.Yang() {
			primaryCode |= 1 << i
			futureCode |= 1 << i
		}
		if line.Moving() {
			moving = append(moving, i+1)
			futureCode ^= 1 << i
		}
	}

	primary := hexagramAt(primaryCode)
	result := &models.CastResult{
		ID:          uuid.New().String(),
		Question:    req.Question,
		Seed:        seed,
		Lines:       lines,
		Rendered:    rendered,
		Primary:     primary,
		MovingLines: moving,
		CastAt:      time.Now().UTC(),
	}
	if len(moving) > 0 {
		future := hexagramAt(futureCode)
		result.Future = &future
	}

	hc.logger.WithFields(logrus.Fields{
		"cast_id":      result.ID,
		"seed":         seed,
		"primary":      primary.Name,
		"moving_lines": len(moving),
	}).Info("Hexagram cast complete")

	return result, nil
}

// castLine sums three coin values, each worth 2 or 3 with equal probability.
// Totals 6/7/8/9 map to old yin, young yang, young yin, old yang.
func castLine(rng *rand.Rand) models.LineValue {
	total := 0
	for i := 0; i < 3; i++ {
		total += 2 + rng.Intn(2)
	}
	return models.LineValue(total)
}

// resolveSeed returns the request's explicit seed or draws a fresh one from
// crypto/rand.
func resolveSeed(explicit *int64) (int64, error) {
	if explicit != nil {
		return *explicit, nil
	}
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
