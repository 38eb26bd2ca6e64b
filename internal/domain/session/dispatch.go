package session

import (
	"fmt"
	"sort"
	"strings"
)

// Code selects which session variant a sensor package decodes into.
type Code string

// Known workout-type codes.
const (
	CodeSwimming Code = "SWM"
	CodeRunning  Code = "RUN"
	CodeWalking  Code = "WLK"
)

// Package is one raw sensor tuple: a workout-type code plus the numeric
// fields in the target variant's constructor order.
type Package struct {
	Code Code
	Data []float64
}

// builder decodes the positional sensor fields of one variant.
type builder func(data []float64) (Session, error)

// builders maps each workout-type code to its variant constructor.
var builders = map[Code]builder{
	CodeSwimming: newSwimmingFromData,
	CodeRunning:  newRunningFromData,
	CodeWalking:  newWalkingFromData,
}

// ReadPackage decodes a raw sensor package into the session variant selected
// by code. An unknown code fails with ErrUnknownWorkout; a field count that
// does not match the variant's constructor fails with ErrFieldCount.
func ReadPackage(code Code, data []float64) (Session, error) {
	build, ok := builders[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q; available workout types: %s",
			ErrUnknownWorkout, string(code), strings.Join(Codes(), ", "))
	}
	return build(data)
}

// Codes lists the supported workout-type codes in lexical order.
func Codes() []string {
	codes := make([]string, 0, len(builders))
	for c := range builders {
		codes = append(codes, string(c))
	}
	sort.Strings(codes)
	return codes
}

func newRunningFromData(data []float64) (Session, error) {
	if err := wantFields(CodeRunning, 3, data); err != nil {
		return nil, err
	}
	return NewRunning(int(data[0]), data[1], data[2]), nil
}

func newWalkingFromData(data []float64) (Session, error) {
	if err := wantFields(CodeWalking, 4, data); err != nil {
		return nil, err
	}
	return NewWalking(int(data[0]), data[1], data[2], data[3]), nil
}

func newSwimmingFromData(data []float64) (Session, error) {
	if err := wantFields(CodeSwimming, 5, data); err != nil {
		return nil, err
	}
	return NewSwimming(int(data[0]), data[1], data[2], data[3], int(data[4])), nil
}

func wantFields(code Code, want int, data []float64) error {
	if len(data) != want {
		return fmt.Errorf("%w: %s takes %d fields, got %d",
			ErrFieldCount, code, want, len(data))
	}
	return nil
}
