// Package masterdata holds the reference data sets are logged against: exercises and units.
package masterdata

import (
	"errors"
	"strings"

	"github.com/2beens/fitnesslog/pkg"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrExerciseExists   = errors.New("exercise with this name already exists")
	ErrExerciseInUse    = errors.New("exercise is referenced by fitness sets")
	ErrUnitExists       = errors.New("unit with this name already exists")
	ErrNameRequired     = errors.New("name is required")
)

const (
	maxExerciseNameLen = 64
	maxUnitNameLen     = 16
)

type Exercise struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	TargetMuscle *MuscleGroup `json:"target_muscle"`
	pkg.Audit
}

type Unit struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	pkg.Audit
}

// ExerciseInput is the body of exercise create and update requests.
type ExerciseInput struct {
	Name         string       `json:"name"`
	TargetMuscle *MuscleGroup `json:"target_muscle"`
}

func (in *ExerciseInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return ErrNameRequired
	}
	if len([]rune(in.Name)) > maxExerciseNameLen {
		return errors.New("exercise name too long")
	}
	return nil
}

type UnitInput struct {
	Name string `json:"name"`
}

func (in *UnitInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return ErrNameRequired
	}
	if len([]rune(in.Name)) > maxUnitNameLen {
		return errors.New("unit name too long")
	}
	return nil
}
