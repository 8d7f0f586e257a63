package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Optional settings file. Missing fields keep their defaults, so a partial
// file tuning only terrain is fine.
type fileSettings struct {
	Gravity     *float32 `yaml:"gravity"`
	JumpSpeed   *float32 `yaml:"jump_speed"`
	WalkSpeed   *float32 `yaml:"walk_speed"`
	SprintSpeed *float32 `yaml:"sprint_speed"`

	RenderRadius *int `yaml:"render_radius"`
	MeshBudget   *int `yaml:"mesh_budget"`

	MaskScale   *float64 `yaml:"mask_scale"`
	HillScale   *float64 `yaml:"hill_scale"`
	DetailScale *float64 `yaml:"detail_scale"`
	MountainAmp *float64 `yaml:"mountain_amplitude"`

	MouseSensitivity *float64 `yaml:"mouse_sensitivity"`
	FPSLimit         *int     `yaml:"fps_limit"`
}

// LoadFile reads a YAML settings file and applies it over the defaults.
func LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fs fileSettings
	if err := yaml.Unmarshal(raw, &fs); err != nil {
		return fmt.Errorf("settings %s: %w", path, err)
	}

	s := Current()
	if fs.Gravity != nil {
		s.Gravity = *fs.Gravity
	}
	if fs.JumpSpeed != nil {
		s.JumpSpeed = *fs.JumpSpeed
	}
	if fs.WalkSpeed != nil {
		s.WalkSpeed = *fs.WalkSpeed
	}
	if fs.SprintSpeed != nil {
		s.SprintSpeed = *fs.SprintSpeed
	}
	if fs.RenderRadius != nil {
		s.RenderRadius = *fs.RenderRadius
		if s.RenderRadius < 0 {
			s.RenderRadius = 0
		}
	}
	if fs.MeshBudget != nil {
		s.MeshBudget = *fs.MeshBudget
		if s.MeshBudget < 1 {
			s.MeshBudget = 1
		}
	}
	if fs.MaskScale != nil {
		s.MaskScale = *fs.MaskScale
	}
	if fs.HillScale != nil {
		s.HillScale = *fs.HillScale
	}
	if fs.DetailScale != nil {
		s.DetailScale = *fs.DetailScale
	}
	if fs.MountainAmp != nil {
		s.MountainAmp = *fs.MountainAmp
	}
	if fs.MouseSensitivity != nil {
		s.MouseSensitivity = *fs.MouseSensitivity
	}
	if fs.FPSLimit != nil {
		s.FPSLimit = *fs.FPSLimit
	}
	set(s)
	return nil
}

// SaveFile writes the current tunables as a YAML settings file.
func SaveFile(path string) error {
	s := Current()
	fs := fileSettings{
		Gravity:          &s.Gravity,
		JumpSpeed:        &s.JumpSpeed,
		WalkSpeed:        &s.WalkSpeed,
		SprintSpeed:      &s.SprintSpeed,
		RenderRadius:     &s.RenderRadius,
		MeshBudget:       &s.MeshBudget,
		MaskScale:        &s.MaskScale,
		HillScale:        &s.HillScale,
		DetailScale:      &s.DetailScale,
		MountainAmp:      &s.MountainAmp,
		MouseSensitivity: &s.MouseSensitivity,
		FPSLimit:         &s.FPSLimit,
	}
	raw, err := yaml.Marshal(&fs)
	if err != nil {
		return fmt.Errorf("settings %s: %w", path, err)
	}
	return os.WriteFile(path, raw, 0o644)
}
