package log

import (
	"errors"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestToZapFields maps the whole field constructor surface onto the zap
// counterparts, one field per constructor.
func TestToZapFields(t *testing.T) {
	now := time.Now()
	failure := errors.New("collider missing")

	got := toZapFields(
		String("name", "crate"),
		Int("count", 3),
		Int64("frame", -12),
		Uint64("hash", 42),
		Float64("alpha", 0.5),
		Bool("kinematic", true),
		Duration("step", 16*time.Millisecond),
		Time("spawned", now),
		Vec3("at", mgl64.Vec3{1, 2.5, -3}),
		Any("order", []int{2, 0, 1}),
		Error(failure),
		ErrorWithKey("cause", failure),
	)

	want := []zap.Field{
		zap.String("name", "crate"),
		zap.Int("count", 3),
		zap.Int64("frame", -12),
		zap.Uint64("hash", 42),
		zap.Float64("alpha", 0.5),
		zap.Bool("kinematic", true),
		zap.Duration("step", 16*time.Millisecond),
		zap.Time("spawned", now),
		zap.String("at", "(1, 2.5, -3)"),
		zap.Any("order", []int{2, 0, 1}),
		zap.NamedError("error", failure),
		zap.NamedError("cause", failure),
	}
	require.Equal(t, want, got)
}
