package cli

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/betterrest/internal/constants"
	"github.com/julianstephens/betterrest/internal/form"
	"github.com/julianstephens/betterrest/internal/models"
)

type EstimateCmd struct {
	Wake   string  `help:"Wake-up time (HH:MM or 3:04PM)." default:"07:00"`
	Sleep  float64 `help:"Desired hours of sleep (4-12 in quarter hours)." default:"8"`
	Coffee int     `help:"Cups of coffee per day (1-20)." default:"1"`
	Clock  string  `help:"Clock used to print the bedtime." enum:"24h,12h" default:"24h"`
	JSON   bool    `help:"Print the estimate as JSON." name:"json"`
}

type estimateOutput struct {
	Wake                  models.TimeOfDay `json:"wake"`
	SleepAmount           float64          `json:"sleep_amount"`
	Coffee                int              `json:"coffee"`
	Bedtime               models.TimeOfDay `json:"bedtime"`
	PredictedSleepSeconds float64          `json:"predicted_sleep_seconds"`
	PreviousDay           bool             `json:"previous_day"`
}

func (cmd *EstimateCmd) Run(ctx *Context) error {
	wake, err := models.ParseTimeOfDay(cmd.Wake)
	if err != nil {
		return err
	}

	layout := constants.TimeFormat
	if cmd.Clock == "12h" {
		layout = constants.TimeFormat12h
	}

	f := form.New(ctx.Estimator, layout)
	f.Fill(models.EstimateRequest{Wake: wake, SleepAmount: cmd.Sleep, Coffee: cmd.Coffee})
	if f.Err != nil {
		return f.Err
	}

	if cmd.JSON {
		est := f.Estimate
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(estimateOutput{
			Wake:                  est.Wake,
			SleepAmount:           est.SleepAmount,
			Coffee:                est.Coffee,
			Bedtime:               est.Bedtime,
			PredictedSleepSeconds: est.PredictedSleep.Seconds(),
			PreviousDay:           est.PreviousDay,
		})
	}

	fmt.Fprintf(ctx.Out, "Wake up at %s after %s hours of sleep, %s of coffee a day.\n",
		f.Wake.Format(layout), f.SleepLabel(), f.CoffeeLabel())
	fmt.Fprintln(ctx.Out, f.Title)
	fmt.Fprintln(ctx.Out, f.Message)
	return nil
}
