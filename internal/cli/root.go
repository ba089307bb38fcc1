package cli

import (
	"errors"
	"io"
	"os"

	"github.com/julianstephens/betterrest/internal/estimator"
	"github.com/julianstephens/betterrest/internal/sleepmodel"
)

const (
	ExitFailure          = 1
	ExitInvalidInput     = 2
	ExitModelUnavailable = 3
)

type Context struct {
	Loader    *sleepmodel.Loader
	Estimator *estimator.Estimator
	Out       io.Writer
}

// NewContext wires an estimator to the artifact at modelPath (embedded model when empty).
func NewContext(modelPath string, policy estimator.Policy) *Context {
	loader := sleepmodel.NewLoader(modelPath)
	return &Context{
		Loader:    loader,
		Estimator: estimator.New(loader, estimator.WithPolicy(policy)),
		Out:       os.Stdout,
	}
}

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, estimator.ErrInvalidInput):
		return ExitInvalidInput
	case errors.Is(err, estimator.ErrModelUnavailable):
		return ExitModelUnavailable
	default:
		return ExitFailure
	}
}
