package config

import (
	"errors"
	"fmt"

	validate "gopkg.in/dealancer/validate.v2"
)

// Source describes one frame source the daemon should build: either
// a still image on disk served on repeat, or a synthetic test card.
type Source struct {
	Title        string   `json:"title" validate:"empty=false"`
	Path         string   `json:"path"`
	Synthetic    bool     `json:"synthetic"`
	FOV          float64  `json:"fov"`
	MaxFPS       int      `json:"max_fps" validate:"gte=0 & lte=1000"`
	PitchDegrees *float64 `json:"pitch_degrees"`
	Disabled     bool     `json:"disabled"`
}

type Values struct {
	Debug   bool     `json:"debug"`
	Sources []Source `json:"sources"`
}

func (v Values) RunValidate() error {
	if err := validate.Validate(&v); err != nil {
		return err
	}
	return v.validate()
}

func (v Values) validate() error {
	const validationErrorHeader = "validation failed: %w"
	if hasDupSourceTitles(v.Sources) {
		return fmt.Errorf(validationErrorHeader, errors.New("source titles must be unique"))
	}
	for _, s := range v.Sources {
		if !s.Synthetic && len(s.Path) == 0 {
			return fmt.Errorf(
				validationErrorHeader,
				fmt.Errorf("source [%s] requires a path", s.Title),
			)
		}
	}
	return nil
}

func hasDupSourceTitles(sources []Source) bool {
	for si, src := range sources {
		for i := si + 1; i < len(sources); i++ {
			if src.Title == sources[i].Title {
				return true
			}
		}
	}
	return false
}
