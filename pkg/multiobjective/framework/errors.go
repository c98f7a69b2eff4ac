package framework

import (
	"errors"
	"fmt"

	"k8s.io/apimachinery/pkg/util/validation/field"
)

var (
	// ErrInvalidInput is matched by every error caused by malformed caller
	// input (shape mismatches, empty populations, odd pairing sizes, ...).
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvariantViolation is matched by internal consistency failures.
	// These indicate a bug and are never recoverable at runtime.
	ErrInvariantViolation = errors.New("internal invariant violated")
)

// InvariantError reports a front assignment that is not a partition of the
// population indices.
type InvariantError struct {
	Size       int
	Unassigned []int
	Duplicated []int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%v: front assignment over %d individuals is not a partition (unassigned=%v, duplicated=%v)",
		ErrInvariantViolation, e.Size, e.Unassigned, e.Duplicated)
}

func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariantViolation
}

// ValidationError turns a non-empty field.ErrorList into an error that
// matches ErrInvalidInput. It returns nil for an empty list.
func ValidationError(errs field.ErrorList) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, errs.ToAggregate())
}

// ValidateBounds checks that every bound is ordered.
func ValidateBounds(bounds []Bounds, fldPath *field.Path) field.ErrorList {
	var allErrs field.ErrorList
	if len(bounds) == 0 {
		allErrs = append(allErrs, field.Required(fldPath, "at least one decision variable is required"))
	}
	for i, b := range bounds {
		if b.L > b.H {
			allErrs = append(allErrs, field.Invalid(fldPath.Index(i), b, "lower bound must not exceed upper bound"))
		}
	}
	return allErrs
}
