package cli

import (
	"fmt"

	"github.com/julianstephens/betterrest/internal/constants"
	"github.com/julianstephens/betterrest/internal/models"
)

type DoctorCmd struct{}

var doctorWakeTimes = []models.TimeOfDay{
	{Hour: 0, Minute: 0},
	{Hour: 5, Minute: 30},
	{Hour: 7, Minute: 0},
	{Hour: 12, Minute: 0},
	{Hour: 23, Minute: 59},
}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Fprintln(ctx.Out, "Running diagnostics...")
	fmt.Fprintln(ctx.Out)

	hasError := false
	modelLoaded := false

	// Check 1: artifact loads and validates
	if err := checkModelLoads(ctx); err != nil {
		fmt.Fprintf(ctx.Out, "❌ Model artifact: FAIL\n")
		fmt.Fprintf(ctx.Out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(ctx.Out, "✓ Model artifact: OK (%s)\n", ctx.Loader.Source())
		modelLoaded = true
	}

	checks := []struct {
		name    string
		run     func(*Context) error
		warning bool
	}{
		{name: "Input grid", run: checkInputGrid},
		{name: "Sanity example", run: checkSanityExample},
		{name: "Coffee monotonicity", run: checkCoffeeMonotonic, warning: true},
	}

	for _, check := range checks {
		if !modelLoaded {
			fmt.Fprintf(ctx.Out, "⊘ %s: SKIPPED (model not loaded)\n", check.name)
			continue
		}
		err := check.run(ctx)
		switch {
		case err == nil:
			fmt.Fprintf(ctx.Out, "✓ %s: OK\n", check.name)
		case check.warning:
			fmt.Fprintf(ctx.Out, "⚠ %s: WARNING\n", check.name)
			fmt.Fprintf(ctx.Out, "   %v\n", err)
		default:
			fmt.Fprintf(ctx.Out, "❌ %s: FAIL\n", check.name)
			fmt.Fprintf(ctx.Out, "   Error: %v\n", err)
			hasError = true
		}
	}

	fmt.Fprintln(ctx.Out)
	if hasError {
		fmt.Fprintln(ctx.Out, "Some checks failed.")
		return fmt.Errorf("diagnostics failed")
	}
	fmt.Fprintln(ctx.Out, "All checks passed.")
	return nil
}

func checkModelLoads(ctx *Context) error {
	_, err := ctx.Loader.Model()
	return err
}

// checkInputGrid estimates every accepted sleep/coffee pair at a spread of wake times.
func checkInputGrid(ctx *Context) error {
	count := 0
	for _, wake := range doctorWakeTimes {
		for sleep := constants.MinSleepAmount; sleep <= constants.MaxSleepAmount; sleep += constants.SleepAmountStep {
			for cups := constants.MinCoffeeCount; cups <= constants.MaxCoffeeCount; cups++ {
				if _, err := ctx.Estimator.Estimate(wake, sleep, cups); err != nil {
					return fmt.Errorf("wake %s, sleep %g, coffee %d: %w", wake, sleep, cups, err)
				}
				count++
			}
		}
	}
	if count == 0 {
		return fmt.Errorf("no inputs checked")
	}
	return nil
}

func checkSanityExample(ctx *Context) error {
	wake := models.TimeOfDay{Hour: 7}
	est, err := ctx.Estimator.Estimate(wake, 8.0, 2)
	if err != nil {
		return err
	}
	if est.PredictedSleep <= 0 {
		return fmt.Errorf("predicted sleep %v is not positive", est.PredictedSleep)
	}
	if !est.PreviousDay && !est.Bedtime.Before(wake) {
		return fmt.Errorf("bedtime %s is not before wake time %s", est.Bedtime, wake)
	}
	return nil
}

func checkCoffeeMonotonic(ctx *Context) error {
	wake := models.TimeOfDay{Hour: 7}
	for sleep := constants.MinSleepAmount; sleep <= constants.MaxSleepAmount; sleep += 1 {
		prev, err := ctx.Estimator.Estimate(wake, sleep, constants.MinCoffeeCount)
		if err != nil {
			return err
		}
		for cups := constants.MinCoffeeCount + 1; cups <= constants.MaxCoffeeCount; cups++ {
			est, err := ctx.Estimator.Estimate(wake, sleep, cups)
			if err != nil {
				return err
			}
			if est.PredictedSleep < prev.PredictedSleep {
				return fmt.Errorf("sleep %g: %d cups predicts less sleep than %d", sleep, cups, cups-1)
			}
			prev = est
		}
	}
	return nil
}
