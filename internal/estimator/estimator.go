package estimator

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/julianstephens/betterrest/internal/constants"
	"github.com/julianstephens/betterrest/internal/logger"
	"github.com/julianstephens/betterrest/internal/models"
	"github.com/julianstephens/betterrest/internal/sleepmodel"
	"github.com/julianstephens/betterrest/internal/validation"
)

var (
	// ErrInvalidInput is returned when an input is outside its contractual range.
	ErrInvalidInput = errors.New("invalid input")
	// ErrModelUnavailable is returned when the model cannot be loaded or inference fails.
	ErrModelUnavailable = errors.New("model unavailable")
)

// Policy decides what happens to out-of-range inputs.
type Policy int

const (
	// PolicyReject returns ErrInvalidInput for any out-of-range or off-grid input.
	PolicyReject Policy = iota
	// PolicyClamp pulls inputs into range and snaps sleep to the quarter hour.
	PolicyClamp
)

func (p Policy) String() string {
	switch p {
	case PolicyReject:
		return "reject"
	case PolicyClamp:
		return "clamp"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ModelSource supplies the frozen model.
type ModelSource interface {
	Model() (*sleepmodel.Artifact, error)
}

// Estimator turns form inputs into a bedtime. It holds no state besides its
// model source, so repeated calls with the same inputs agree.
type Estimator struct {
	models    ModelSource
	policy    Policy
	validator *validation.Validator
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithPolicy selects the out-of-range input policy.
func WithPolicy(p Policy) Option {
	return func(e *Estimator) {
		e.policy = p
	}
}

// New creates an Estimator backed by src.
func New(src ModelSource, opts ...Option) *Estimator {
	e := &Estimator{
		models:    src,
		policy:    PolicyReject,
		validator: validation.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Policy reports the configured input policy.
func (e *Estimator) Policy() Policy {
	return e.policy
}

// Estimate predicts a bedtime for waking at wake after sleepAmount hours with
// coffee cups of coffee per day.
func (e *Estimator) Estimate(wake models.TimeOfDay, sleepAmount float64, coffee int) (models.Estimate, error) {
	req := models.EstimateRequest{Wake: wake, SleepAmount: sleepAmount, Coffee: coffee}
	if e.policy == PolicyClamp {
		req = Clamp(req)
	}

	if err := e.validator.Validate(req); err != nil {
		return models.Estimate{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	model, err := e.models.Model()
	if err != nil {
		logger.Warn("Model artifact unavailable", "error", err)
		return models.Estimate{}, fmt.Errorf("%w: %w", ErrModelUnavailable, err)
	}

	seconds, err := model.Predict(sleepmodel.Features{
		Wake:           float64(req.Wake.SecondsSinceMidnight()),
		EstimatedSleep: req.SleepAmount,
		Coffee:         float64(req.Coffee),
	})
	if err != nil {
		logger.Warn("Sleep prediction failed", "error", err)
		return models.Estimate{}, fmt.Errorf("%w: %w", ErrModelUnavailable, err)
	}
	if seconds <= 0 || seconds >= 24*60*60 {
		logger.Warn("Sleep prediction out of range", "seconds", seconds, "model", model.Name)
		return models.Estimate{}, fmt.Errorf("%w: predicted sleep of %.0fs is outside (0, 24h)", ErrModelUnavailable, seconds)
	}

	predicted := time.Duration(seconds * float64(time.Second))
	bedtime, daysBack := req.Wake.Minus(predicted)

	logger.Debug("Bedtime estimated",
		"wake", req.Wake,
		"sleep_amount", req.SleepAmount,
		"coffee", req.Coffee,
		"predicted_sleep", predicted,
		"bedtime", bedtime,
	)

	return models.Estimate{
		Wake:           req.Wake,
		SleepAmount:    req.SleepAmount,
		Coffee:         req.Coffee,
		Bedtime:        bedtime,
		PredictedSleep: predicted,
		PreviousDay:    daysBack > 0,
	}, nil
}

// EstimateRequest is Estimate for a prepared request.
func (e *Estimator) EstimateRequest(req models.EstimateRequest) (models.Estimate, error) {
	return e.Estimate(req.Wake, req.SleepAmount, req.Coffee)
}

// Clamp pulls sleep and coffee into range and snaps sleep to the nearest quarter hour.
// Non-finite sleep is left alone so validation rejects it.
func Clamp(req models.EstimateRequest) models.EstimateRequest {
	if !math.IsNaN(req.SleepAmount) && !math.IsInf(req.SleepAmount, 0) {
		s := math.Round(req.SleepAmount/constants.SleepAmountStep) * constants.SleepAmountStep
		req.SleepAmount = math.Min(math.Max(s, constants.MinSleepAmount), constants.MaxSleepAmount)
	}
	req.Coffee = min(max(req.Coffee, constants.MinCoffeeCount), constants.MaxCoffeeCount)
	return req
}
