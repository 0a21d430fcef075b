package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is a partial override of PlayerConfig read from YAML.
// Nil fields keep their current value.
type Tuning struct {
	Speed             *float64 `yaml:"speed"`
	JumpForce         *float64 `yaml:"jumpForce"`
	FallMultiplier    *float64 `yaml:"fallMultiplier"`
	LowJumpMultiplier *float64 `yaml:"lowJumpMultiplier"`
	DashForce         *float64 `yaml:"dashForce"`
	DashCooldown      *float64 `yaml:"dashCooldown"`
	MagnetDuration    *float64 `yaml:"magnetDuration"`
	MagnetRadius      *float64 `yaml:"magnetRadius"`
	MagnetPullSpeed   *float64 `yaml:"magnetPullSpeed"`
	WinCount          *int     `yaml:"winCount"`
}

// LoadTuning reads and parses a tuning file.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tuning %s: %w", path, err)
	}
	return ParseTuning(data)
}

// ParseTuning parses tuning YAML and validates the values present.
func ParseTuning(data []byte) (*Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Tuning) validate() error {
	nonNegative := map[string]*float64{
		"speed":           t.Speed,
		"jumpForce":       t.JumpForce,
		"dashForce":       t.DashForce,
		"dashCooldown":    t.DashCooldown,
		"magnetDuration":  t.MagnetDuration,
		"magnetRadius":    t.MagnetRadius,
		"magnetPullSpeed": t.MagnetPullSpeed,
	}
	for name, v := range nonNegative {
		if v != nil && *v < 0 {
			return fmt.Errorf("tuning %s must not be negative, got %v", name, *v)
		}
	}
	if t.WinCount != nil && *t.WinCount < 1 {
		return fmt.Errorf("tuning winCount must be at least 1, got %d", *t.WinCount)
	}
	return nil
}

// Apply copies every field present in t onto p.
func (t *Tuning) Apply(p *PlayerConfig) {
	setFloat(&p.Speed, t.Speed)
	setFloat(&p.JumpForce, t.JumpForce)
	setFloat(&p.FallMultiplier, t.FallMultiplier)
	setFloat(&p.LowJumpMultiplier, t.LowJumpMultiplier)
	setFloat(&p.DashForce, t.DashForce)
	setFloat(&p.DashCooldown, t.DashCooldown)
	setFloat(&p.MagnetDuration, t.MagnetDuration)
	setFloat(&p.MagnetRadius, t.MagnetRadius)
	setFloat(&p.MagnetPullSpeed, t.MagnetPullSpeed)
	if t.WinCount != nil {
		p.WinCount = *t.WinCount
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
