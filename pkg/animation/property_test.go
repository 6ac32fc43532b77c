package animation_test

import (
	"testing"
	"time"

	"github.com/go-drift/forms/pkg/animation"
	"github.com/go-drift/forms/pkg/errors"
	formstest "github.com/go-drift/forms/pkg/testing"
)

// stubTarget is a minimal animation target with one two-component property
// and one scalar property.
type stubTarget struct {
	position [2]float64
	opacity  float64

	writes []write
}

type write struct {
	property animation.Property
	values   []float64
	weight   float64
}

func (s *stubTarget) AnimationComponentCount(p animation.Property) int {
	if p == animation.PropertyPosition {
		return 2
	}
	return 1
}

func (s *stubTarget) AnimationValue(p animation.Property, v *animation.Value) {
	switch p {
	case animation.PropertyPosition:
		v.SetFloat(0, s.position[0])
		v.SetFloat(1, s.position[1])
	case animation.PropertyOpacity:
		v.SetFloat(0, s.opacity)
	}
}

func (s *stubTarget) SetAnimationValue(p animation.Property, v *animation.Value, weight float64) {
	values := make([]float64, v.ComponentCount())
	for i := range values {
		values[i] = v.Float(i)
	}
	s.writes = append(s.writes, write{property: p, values: values, weight: weight})

	switch p {
	case animation.PropertyPosition:
		s.position[0] = s.position[0]*(1-weight) + v.Float(0)*weight
		s.position[1] = s.position[1]*(1-weight) + v.Float(1)*weight
	case animation.PropertyOpacity:
		s.opacity = s.opacity*(1-weight) + v.Float(0)*weight
	}
}

func TestPropertyAnimation_ReadsStartFromTarget(t *testing.T) {
	clk := installFakeClock(t)

	target := &stubTarget{position: [2]float64{10, 20}}
	anim := animation.NewPropertyAnimation(target, animation.PropertyPosition, 100*time.Millisecond)
	defer anim.Dispose()
	anim.To(110, 220)
	anim.Start()

	clk.Advance(50 * time.Millisecond)
	animation.StepTickers()

	if len(target.writes) == 0 {
		t.Fatal("no writes reached the target")
	}
	last := target.writes[len(target.writes)-1]
	if last.values[0] != 60 || last.values[1] != 120 {
		t.Errorf("halfway write = %v, want [60 120]", last.values)
	}
	if last.weight != 1 {
		t.Errorf("default weight = %v, want 1", last.weight)
	}

	clk.Advance(60 * time.Millisecond)
	animation.StepTickers()
	if target.position != [2]float64{110, 220} {
		t.Errorf("final position = %v, want [110 220]", target.position)
	}
}

func TestPropertyAnimation_BlendWeight(t *testing.T) {
	clk := installFakeClock(t)

	target := &stubTarget{opacity: 1}
	anim := animation.NewPropertyAnimation(target, animation.PropertyOpacity, 100*time.Millisecond)
	defer anim.Dispose()
	anim.Weight = 0.5
	anim.From(1).To(0)
	anim.Start()

	clk.Advance(200 * time.Millisecond)
	animation.StepTickers()

	// The tween reaches 0, but the write blends it in at half weight:
	// 1*(1-0.5) + 0*0.5 = 0.5.
	if target.opacity != 0.5 {
		t.Errorf("blended opacity = %v, want 0.5", target.opacity)
	}
}

func TestPropertyAnimation_ComponentMismatchPanics(t *testing.T) {
	errors.SetHandler(&formstest.RecordingHandler{})
	t.Cleanup(func() { errors.SetHandler(nil) })

	target := &stubTarget{}
	anim := animation.NewPropertyAnimation(target, animation.PropertyPosition, time.Second)
	defer anim.Dispose()

	defer func() {
		if recover() == nil {
			t.Error("expected panic for wrong component count")
		}
	}()
	anim.To(1)
}
