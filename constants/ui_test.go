package constants

import (
	"testing"
	"time"
)

// TestFlipCompletesWithinDwell verifies a revealed card is fully face up before its pair can resolve
func TestFlipCompletesWithinDwell(t *testing.T) {
	step := float64(FlipStep)
	ticks := int(1/step) + 1
	flip := time.Duration(ticks) * FrameUpdateInterval
	if flip >= RevealDwell {
		t.Errorf("Flip takes %v, expected less than dwell %v", flip, RevealDwell)
	}
}

func TestFrameUpdateInterval(t *testing.T) {
	if got := time.Second / FrameUpdateInterval; got != FrameRate {
		t.Errorf("Expected %d frames per second, got %d", FrameRate, got)
	}
}

// TestEntranceCascadeFits verifies the last card of the largest board appears within a few seconds
func TestEntranceCascadeFits(t *testing.T) {
	const maxCards = 8 * 8
	last := time.Duration(maxCards-1) * EntranceStagger
	if last > 5*time.Second {
		t.Errorf("Last card appears after %v", last)
	}
}

func TestCardSizeBounds(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
	}{
		{"width", MinCardWidth, MaxCardWidth},
		{"height", MinCardHeight, MaxCardHeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.min <= 0 || tt.min > tt.max {
				t.Errorf("Invalid %s bounds: min=%d max=%d", tt.name, tt.min, tt.max)
			}
		})
	}
	if FaceLabelMinSize > MaxCardWidth {
		t.Errorf("Face label threshold %d exceeds max card width %d", FaceLabelMinSize, MaxCardWidth)
	}
}

func TestEffectLifetimes(t *testing.T) {
	if SparkleLifeMin <= 0 || SparkleLifeMin > SparkleLifeMax {
		t.Errorf("Invalid sparkle life range [%v, %v]", SparkleLifeMin, SparkleLifeMax)
	}
	if ParticleLife/LifeDecay < 10 {
		t.Errorf("Particles live only %v ticks", ParticleLife/LifeDecay)
	}
	if AmbientBatch <= 0 || AmbientBatch > AmbientTarget {
		t.Errorf("Invalid ambient batch %d for target %d", AmbientBatch, AmbientTarget)
	}
}
