package gamemath

import (
	"math"
	"testing"

	"github.com/kvartborg/vector"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestMoveTowards(t *testing.T) {
	cases := []struct {
		name     string
		current  vector.Vector
		target   vector.Vector
		maxDelta float64
		want     vector.Vector
	}{
		{"partial_step", Vec3(0, 0, 0), Vec3(10, 0, 0), 2, Vec3(2, 0, 0)},
		{"exact_step", Vec3(0, 0, 0), Vec3(0, 0, 3), 3, Vec3(0, 0, 3)},
		{"no_overshoot", Vec3(1, 1, 1), Vec3(1, 1, 1.5), 5, Vec3(1, 1, 1.5)},
		{"diagonal", Vec3(0, 2, 0), Vec3(3, 2, 4), 2.5, Vec3(1.5, 2, 2)},
		{"already_there", Vec3(4, 0, 4), Vec3(4, 0, 4), 1, Vec3(4, 0, 4)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := MoveTowards(c.current, c.target, c.maxDelta)
			for i := 0; i < 3; i++ {
				if !near(got[i], c.want[i]) {
					t.Fatalf("MoveTowards = %v, want %v", got, c.want)
				}
			}
		})
	}
}

func TestMoveTowardsDoesNotAliasInputs(t *testing.T) {
	current := Vec3(0, 0, 0)
	target := Vec3(1, 0, 0)
	got := MoveTowards(current, target, 10)
	got[0] = 99
	if target[0] != 1 {
		t.Fatalf("target mutated through result: %v", target)
	}
	if current[0] != 0 {
		t.Fatalf("current mutated: %v", current)
	}
}

func TestGroundDirection(t *testing.T) {
	if _, ok := GroundDirection(0, 0); ok {
		t.Fatal("zero input should report ok=false")
	}

	dir, ok := GroundDirection(3, 4)
	if !ok {
		t.Fatal("non-zero input should report ok=true")
	}
	if !near(dir[0], 0.6) || dir[1] != 0 || !near(dir[2], 0.8) {
		t.Fatalf("GroundDirection(3,4) = %v", dir)
	}
}

func TestHorizontalDistanceIgnoresY(t *testing.T) {
	if d := HorizontalDistance(Vec3(0, 100, 0), Vec3(3, -5, 4)); !near(d, 5) {
		t.Fatalf("HorizontalDistance = %v, want 5", d)
	}
}
