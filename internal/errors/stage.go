package errors

import (
	"errors"
	"fmt"
)

// Stage identifies the part of a run that failed.
type Stage string

const (
	StageConfig  Stage = "config"
	StageCompile Stage = "compile"
	StageMeasure Stage = "measure"
	StageExport  Stage = "export"
)

// exitCodes maps each stage to the process exit status reported for it.
var exitCodes = map[Stage]int{
	StageConfig:  1,
	StageCompile: 2,
	StageMeasure: 3,
	StageExport:  4,
}

// StageError represents a fatal failure attributed to a run stage
type StageError struct {
	Stage Stage
	Err   error
}

// Error implements the error interface
func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit status for the stage.
func (e *StageError) ExitCode() int {
	if code, ok := exitCodes[e.Stage]; ok {
		return code
	}
	return 1
}

// Wrap attributes err to stage. A nil err stays nil and an error that
// already carries a stage keeps it.
func Wrap(stage Stage, err error) error {
	if err == nil {
		return nil
	}
	var se *StageError
	if errors.As(err, &se) {
		return err
	}
	return &StageError{Stage: stage, Err: err}
}

// StageOf reports the stage err is attributed to, if any.
func StageOf(err error) (Stage, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage, true
	}
	return "", false
}

// ExitCode maps err to a process exit status: 0 for nil, the stage code for
// a StageError and 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var se *StageError
	if errors.As(err, &se) {
		return se.ExitCode()
	}
	return 1
}
