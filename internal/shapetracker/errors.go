package shapetracker

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Precondition violations reported by the Check functions. Movement
// operations panic with these errors.
var (
	ErrRankMismatch   = errors.New("rank mismatch")
	ErrNotPermutation = errors.New("not a permutation")
	ErrBadExpand      = errors.New("invalid expand")
	ErrNegativePad    = errors.New("negative padding")
	ErrShrinkBounds   = errors.New("shrink window out of bounds")
	ErrZeroStride     = errors.New("zero stride multiplier")
	ErrSizeMismatch   = errors.New("reshape changes element count")
	ErrBadShape       = errors.New("invalid dimension")
	ErrSymbolicDims   = errors.New("invalid symbolic dimension")
	ErrBadArgument    = errors.New("invalid movement argument")
)

func checkRank(what string, want, got int) error {
	if want != got {
		return errors.Wrapf(ErrRankMismatch, "%s has %d entries for rank %d", what, got, want)
	}
	return nil
}

// CheckPermutation reports whether axes is a permutation of 0..rank-1.
func CheckPermutation(rank int, axes []int) error {
	if err := checkRank("permutation", rank, len(axes)); err != nil {
		return err
	}
	var err error
	seen := make([]bool, rank)
	for i, ax := range axes {
		switch {
		case ax < 0 || ax >= rank:
			err = multierr.Append(err, errors.Wrapf(ErrNotPermutation, "axis %d at position %d out of range", ax, i))
		case seen[ax]:
			err = multierr.Append(err, errors.Wrapf(ErrNotPermutation, "axis %d repeated at position %d", ax, i))
		default:
			seen[ax] = true
		}
	}
	return err
}

// CheckAxes reports whether every axis lies in 0..rank-1.
func CheckAxes(rank int, axes []int) error {
	var err error
	for _, ax := range axes {
		if ax < 0 || ax >= rank {
			err = multierr.Append(err, errors.Wrapf(ErrRankMismatch, "axis %d out of range for rank %d", ax, rank))
		}
	}
	return err
}

// CheckExpand reports whether a view with the given shape and strides can
// be broadcast to target: every dimension keeps its size or grows from a
// size-1, stride-0 dimension.
func CheckExpand(shape, strides, target []int) error {
	if err := checkRank("expand shape", len(shape), len(target)); err != nil {
		return err
	}
	var err error
	for i, s := range shape {
		if s == target[i] || (s == 1 && strides[i] == 0) {
			continue
		}
		err = multierr.Append(err, errors.Wrapf(ErrBadExpand, "dimension %d: %d -> %d", i, s, target[i]))
	}
	return err
}

// CheckPad reports whether pads is a valid padding of shape.
func CheckPad(shape []int, pads []Padding) error {
	if err := checkRank("padding", len(shape), len(pads)); err != nil {
		return err
	}
	var err error
	for i, p := range pads {
		if p.Before < 0 || p.After < 0 {
			err = multierr.Append(err, errors.Wrapf(ErrNegativePad, "dimension %d: %v", i, p))
		}
	}
	return err
}

// CheckShrink reports whether window selects a range inside every
// dimension of shape.
func CheckShrink(shape []int, window []Range) error {
	if err := checkRank("shrink window", len(shape), len(window)); err != nil {
		return err
	}
	var err error
	for i, r := range window {
		if r.Lo < 0 || r.Lo > r.Hi || r.Hi > shape[i] {
			err = multierr.Append(err, errors.Wrapf(ErrShrinkBounds, "dimension %d: %v not within [0, %d]", i, r, shape[i]))
		}
	}
	return err
}

// CheckStride reports whether mul holds a nonzero multiplier per dimension.
func CheckStride(rank int, mul []int) error {
	if err := checkRank("stride", rank, len(mul)); err != nil {
		return err
	}
	var err error
	for i, m := range mul {
		if m == 0 {
			err = multierr.Append(err, errors.Wrapf(ErrZeroStride, "dimension %d", i))
		}
	}
	return err
}

// CheckShape reports whether every dimension is positive.
func CheckShape(shape []int) error {
	var err error
	for i, s := range shape {
		if s <= 0 {
			err = multierr.Append(err, errors.Wrapf(ErrBadShape, "dimension %d is %d", i, s))
		}
	}
	return err
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
