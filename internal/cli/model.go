package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/julianstephens/betterrest/internal/estimator"
)

type ModelCmd struct {
	JSON bool `help:"Print the artifact as JSON." name:"json"`
}

func (cmd *ModelCmd) Run(ctx *Context) error {
	a, err := ctx.Loader.Model()
	if err != nil {
		return fmt.Errorf("%w: %w", estimator.ErrModelUnavailable, err)
	}

	if cmd.JSON {
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	}

	trained := "unknown"
	if !a.TrainedAt.IsZero() {
		trained = a.TrainedAt.Format(time.DateOnly)
	}

	fmt.Fprintln(ctx.Out, "Model Artifact:")
	fmt.Fprintf(ctx.Out, "  Source:          %s\n", ctx.Loader.Source())
	fmt.Fprintf(ctx.Out, "  ID:              %s\n", a.ID)
	fmt.Fprintf(ctx.Out, "  Name:            %s\n", a.Name)
	fmt.Fprintf(ctx.Out, "  Version:         %s\n", a.Version)
	fmt.Fprintf(ctx.Out, "  Trained:         %s\n", trained)
	fmt.Fprintln(ctx.Out, "\nCoefficients:")
	fmt.Fprintf(ctx.Out, "  Intercept:       %g s\n", a.Intercept)
	fmt.Fprintf(ctx.Out, "  Wake:            %g s per second since midnight\n", a.Coefficients.Wake)
	fmt.Fprintf(ctx.Out, "  Estimated sleep: %g s per hour\n", a.Coefficients.EstimatedSleep)
	fmt.Fprintf(ctx.Out, "  Coffee:          %g s per cup\n", a.Coefficients.Coffee)
	fmt.Fprintf(ctx.Out, "\nInput policy:      %s\n", ctx.Estimator.Policy())
	return nil
}
