package models

import "time"

// EstimateRequest is one set of form inputs.
type EstimateRequest struct {
	Wake        TimeOfDay `json:"wake"`
	SleepAmount float64   `json:"sleep_amount" validate:"gte=4,lte=12,sleep_step"`
	Coffee      int       `json:"coffee" validate:"gte=1,lte=20"`
}

// Estimate is a successful bedtime estimation.
type Estimate struct {
	Wake           TimeOfDay     `json:"wake"`
	SleepAmount    float64       `json:"sleep_amount"`
	Coffee         int           `json:"coffee"`
	Bedtime        TimeOfDay     `json:"bedtime"`
	PredictedSleep time.Duration `json:"predicted_sleep"`
	// PreviousDay is set when the bedtime falls before midnight of the wake day.
	PreviousDay bool `json:"previous_day"`
}
