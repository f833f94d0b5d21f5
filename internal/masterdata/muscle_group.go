package masterdata

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidMuscleGroup = errors.New("invalid muscle group")

type MuscleGroup string

const (
	MuscleGroupChest    MuscleGroup = "胸"
	MuscleGroupBack     MuscleGroup = "背"
	MuscleGroupShoulder MuscleGroup = "肩"
	MuscleGroupArm      MuscleGroup = "臂"
	MuscleGroupLeg      MuscleGroup = "腿"
	MuscleGroupAbs      MuscleGroup = "腹"
)

// MuscleGroups lists every muscle group in display order.
var MuscleGroups = []MuscleGroup{
	MuscleGroupChest,
	MuscleGroupBack,
	MuscleGroupShoulder,
	MuscleGroupArm,
	MuscleGroupLeg,
	MuscleGroupAbs,
}

func ParseMuscleGroup(value string) (MuscleGroup, error) {
	mg := MuscleGroup(strings.TrimSpace(value))
	switch mg {
	case MuscleGroupChest, MuscleGroupBack, MuscleGroupShoulder, MuscleGroupArm, MuscleGroupLeg, MuscleGroupAbs:
		return mg, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMuscleGroup, value)
	}
}

func (mg MuscleGroup) String() string {
	return string(mg)
}

func (mg *MuscleGroup) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseMuscleGroup(raw)
	if err != nil {
		return err
	}
	*mg = parsed
	return nil
}
