package core

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Script is a timed list of inputs for a headless run.
type Script struct {
	TPS      int     `yaml:"tps"`
	Duration float64 `yaml:"duration"`
	Steps    []Step  `yaml:"steps"`
}

// Step changes the scripted input at time At (seconds). Move and HoldJump
// persist until a later step changes them; Jump and Dash press once.
type Step struct {
	At       float64   `yaml:"at"`
	Move     []float64 `yaml:"move,omitempty"`
	Jump     bool      `yaml:"jump,omitempty"`
	Dash     bool      `yaml:"dash,omitempty"`
	HoldJump *bool     `yaml:"holdJump,omitempty"`
}

// LoadScript reads and validates a script file.
func LoadScript(path string, defaultTPS int) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	s, err := ParseScript(data, defaultTPS)
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	return s, nil
}

// ParseScript decodes a script. Missing tps defaults to defaultTPS.
func ParseScript(data []byte, defaultTPS int) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if s.TPS == 0 {
		s.TPS = defaultTPS
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	sort.SliceStable(s.Steps, func(i, j int) bool { return s.Steps[i].At < s.Steps[j].At })
	return &s, nil
}

func (s *Script) validate() error {
	if s.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", s.TPS)
	}
	if s.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %v", s.Duration)
	}
	for i, st := range s.Steps {
		if st.At < 0 {
			return fmt.Errorf("step %d: negative time %v", i, st.At)
		}
		if st.Move != nil && len(st.Move) != 2 {
			return fmt.Errorf("step %d: move needs [x, z], got %v", i, st.Move)
		}
	}
	return nil
}

// Ticks is the number of fixed steps the script runs for.
func (s *Script) Ticks() int {
	return int(s.Duration*float64(s.TPS) + 0.5)
}
