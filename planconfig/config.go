// Package planconfig holds the scalar configuration read once at planner
// construction (spec section 6), mirrored here as nested JSON-tagged
// structs the way rdk's own component/service configs are shaped.
package planconfig

import "encoding/json"

// SizeConfig is the vehicle footprint, consumed only by the external
// footprint-aware appendix search; the core search/reconstruction never
// reads it directly.
type SizeConfig struct {
	Forward  float64 `json:"forward"`
	Backward float64 `json:"backward"`
	Width    float64 `json:"width"`
}

// PenaltyConfig holds the direction-change and reverse-motion cost terms.
type PenaltyConfig struct {
	Backwards float64 `json:"backwards"`
	Turn      float64 `json:"turn"`
}

// TurningConfig holds the pivot-maneuver geometry.
type TurningConfig struct {
	Straight float64 `json:"straight"`
}

// CourseConfig groups the course-search cost knobs.
type CourseConfig struct {
	Penalty PenaltyConfig `json:"penalty"`
	Turning TurningConfig `json:"turning"`
}

// Config is the full planner configuration table of spec section 6.
type Config struct {
	Size   SizeConfig   `json:"size"`
	Course CourseConfig `json:"course"`
}

// Default returns the configuration table's documented defaults.
func Default() Config {
	return Config{
		Size: SizeConfig{
			Forward:  0.4,
			Backward: -0.6,
			Width:    0.5,
		},
		Course: CourseConfig{
			Penalty: PenaltyConfig{
				Backwards: 2.5,
				Turn:      5.0,
			},
			Turning: TurningConfig{
				Straight: 0.7,
			},
		},
	}
}

// FromJSON decodes a Config from JSON, starting from Default() so any field
// omitted from data keeps its documented default rather than zeroing out.
func FromJSON(data []byte) (Config, error) {
	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
