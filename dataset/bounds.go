package dataset

import (
	"fmt"
	"math"
)

const (
	defaultMin = 0.0
	defaultMax = 10.0
)

// Bounds is the inclusive rectangle [XMin,XMax]x[YMin,YMax] a DataSet accepts points in.
type Bounds struct {
	XMin float64 `yaml:"xMin" json:"xMin"`
	XMax float64 `yaml:"xMax" json:"xMax"`
	YMin float64 `yaml:"yMin" json:"yMin"`
	YMax float64 `yaml:"yMax" json:"yMax"`
}

func DefaultBounds() Bounds {
	return Bounds{
		XMin: defaultMin,
		XMax: defaultMax,
		YMin: defaultMin,
		YMax: defaultMax,
	}
}

func (b Bounds) Validate() error {
	if err := checkAxis("x", b.XMin, b.XMax); err != nil {
		return err
	}

	return checkAxis("y", b.YMin, b.YMax)
}

func (b Bounds) Contains(x, y float64) bool {
	return x >= b.XMin && x <= b.XMax && y >= b.YMin && y <= b.YMax
}

func (b Bounds) withXMin(v float64) (Bounds, error) {
	b.XMin = v

	return b, checkAxis("x", b.XMin, b.XMax)
}

func (b Bounds) withXMax(v float64) (Bounds, error) {
	b.XMax = v

	return b, checkAxis("x", b.XMin, b.XMax)
}

func (b Bounds) withYMin(v float64) (Bounds, error) {
	b.YMin = v

	return b, checkAxis("y", b.YMin, b.YMax)
}

func (b Bounds) withYMax(v float64) (Bounds, error) {
	b.YMax = v

	return b, checkAxis("y", b.YMin, b.YMax)
}

func checkAxis(axis string, minV, maxV float64) error {
	if math.IsNaN(minV) || math.IsNaN(maxV) || minV > maxV {
		return fmt.Errorf("%w: %s axis [%s,%s]", ErrInvalidRange, axis, formatFloat(minV), formatFloat(maxV))
	}

	return nil
}
