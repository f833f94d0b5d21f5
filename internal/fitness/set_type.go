package fitness

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidSetType = errors.New("invalid set type")

type SetType string

// stored and sent as the codes the web client uses
const (
	SetTypeWarmup  SetType = "热身组"
	SetTypeWorking SetType = "正式组"
	SetTypeDrop    SetType = "递减组"
	SetTypeFailure SetType = "失败组"
)

var SetTypes = []SetType{
	SetTypeWarmup,
	SetTypeWorking,
	SetTypeDrop,
	SetTypeFailure,
}

// English names accepted on input for scripts and the MCP side
var setTypeAliases = map[string]SetType{
	"warmup":  SetTypeWarmup,
	"working": SetTypeWorking,
	"drop":    SetTypeDrop,
	"failure": SetTypeFailure,
}

func ParseSetType(value string) (SetType, error) {
	trimmed := strings.TrimSpace(value)
	switch st := SetType(trimmed); st {
	case SetTypeWarmup, SetTypeWorking, SetTypeDrop, SetTypeFailure:
		return st, nil
	}
	if st, ok := setTypeAliases[strings.ToLower(trimmed)]; ok {
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSetType, value)
}

func (st SetType) Label() string {
	switch st {
	case SetTypeWarmup:
		return "Warm-up"
	case SetTypeWorking:
		return "Working"
	case SetTypeDrop:
		return "Drop"
	case SetTypeFailure:
		return "Failure"
	default:
		return string(st)
	}
}

func (st *SetType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseSetType(raw)
	if err != nil {
		return err
	}
	*st = parsed
	return nil
}

type SetTypeOption struct {
	Value SetType `json:"value"`
	Label string  `json:"label"`
}

func SetTypeOptions() []SetTypeOption {
	options := make([]SetTypeOption, 0, len(SetTypes))
	for _, st := range SetTypes {
		options = append(options, SetTypeOption{Value: st, Label: st.Label()})
	}
	return options
}
