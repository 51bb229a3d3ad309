package ai

import (
	"context"
	"errors"
)

type absentGenerator struct{}

// Absent returns a Generator for the case where no credential is configured.
// Every call fails immediately with an auth classification, which signals
// callers to run the whole session in fallback mode.
func Absent() Generator {
	return absentGenerator{}
}

func (absentGenerator) GenerateContent(_ context.Context, _ string) (string, error) {
	return "", &BackendError{
		Reason:  ReasonAuthInvalid,
		Wrapped: errors.New("no api key configured"),
	}
}

func (absentGenerator) Model() string { return "" }
