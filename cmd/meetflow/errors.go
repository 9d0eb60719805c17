package main

import (
	"errors"
	"fmt"
	"strings"
)

// stageError tags a failure with the stage that produced it.
type stageError struct {
	stage string
	err   error
}

func (e *stageError) Error() string {
	return fmt.Sprintf("%s: %v", e.stage, e.err)
}

func (e *stageError) Unwrap() error {
	return e.err
}

func stageFailed(stage string, err error) error {
	if err == nil {
		return nil
	}
	return &stageError{stage: stage, err: err}
}

// errorLine renders err as the single line printed on stderr.
func errorLine(err error) string {
	var line string
	var se *stageError
	if errors.As(err, &se) {
		line = fmt.Sprintf("Error during %s: %v", se.stage, se.err)
	} else {
		line = fmt.Sprintf("Error: %v", err)
	}
	return strings.Join(strings.Fields(line), " ")
}
