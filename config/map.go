// Package config reads and writes the JSON documents describing maps and transforms.
package config

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/framealign/referenceframe"
	"go.viam.com/framealign/utils"
)

// MapConfig describes a map: reference positions measured in one frame, optionally with the box they lie in.
type MapConfig struct {
	Name               string      `json:"name"`
	Frame              string      `json:"frame"`
	ReferencePositions [][]float64 `json:"reference_positions"`
	Bounds             [][]float64 `json:"bounds,omitempty"`
}

// Validate returns every problem with the map config, prefixed with path.
func (c *MapConfig) Validate(path string) error {
	var allErrs error
	if c.Name == "" {
		allErrs = multierr.Append(allErrs, utils.NewConfigValidationFieldRequiredError(path, "name"))
	}
	if c.Frame == "" {
		allErrs = multierr.Append(allErrs, utils.NewConfigValidationFieldRequiredError(path, "frame"))
	}
	if len(c.ReferencePositions) == 0 {
		allErrs = multierr.Append(allErrs, utils.NewConfigValidationFieldRequiredError(path, "reference_positions"))
	}
	for i, row := range c.ReferencePositions {
		if len(row) != 3 {
			allErrs = multierr.Append(allErrs, utils.NewConfigValidationError(
				fmt.Sprintf("%s.reference_positions.%d", path, i),
				errors.Errorf("expected 3 coordinates, got %d", len(row))))
		}
	}
	if c.Bounds != nil {
		if len(c.Bounds) != 2 {
			allErrs = multierr.Append(allErrs, utils.NewConfigValidationError(
				path+".bounds", errors.Errorf("expected 2 corners, got %d", len(c.Bounds))))
		}
		for i, row := range c.Bounds {
			if len(row) != 3 {
				allErrs = multierr.Append(allErrs, utils.NewConfigValidationError(
					fmt.Sprintf("%s.bounds.%d", path, i),
					errors.Errorf("expected 3 coordinates, got %d", len(row))))
			}
		}
	}
	return allErrs
}

// ToMap validates the config and builds the map it describes.
func (c *MapConfig) ToMap() (*referenceframe.Map, error) {
	if err := c.Validate("map"); err != nil {
		return nil, err
	}
	frame := referenceframe.NewFrame(c.Frame)
	refs, err := referenceframe.NewPositionsFromArray(c.ReferencePositions, frame)
	if err != nil {
		return nil, err
	}
	var bounds *referenceframe.Bounds
	if c.Bounds != nil {
		corner1, err := referenceframe.NewPositionFromArray(c.Bounds[0], frame)
		if err != nil {
			return nil, err
		}
		corner2, err := referenceframe.NewPositionFromArray(c.Bounds[1], frame)
		if err != nil {
			return nil, err
		}
		if bounds, err = referenceframe.NewBounds(corner1, corner2); err != nil {
			return nil, err
		}
	}
	return referenceframe.NewMap(c.Name, refs, frame, bounds)
}

// NewMapConfig returns the config describing m.
func NewMapConfig(m *referenceframe.Map) *MapConfig {
	c := &MapConfig{
		Name:               m.Name(),
		Frame:              m.Frame().Name(),
		ReferencePositions: m.ReferencePositions().ToArray(),
	}
	if b := m.Bounds(); b != nil {
		c.Bounds = [][]float64{b.Min().ToArray(), b.Max().ToArray()}
	}
	return c
}
