package form

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/betterrest/internal/constants"
	"github.com/julianstephens/betterrest/internal/logger"
	"github.com/julianstephens/betterrest/internal/models"
)

// Estimator is the bedtime calculation the form drives.
type Estimator interface {
	Estimate(wake models.TimeOfDay, sleepAmount float64, coffee int) (models.Estimate, error)
}

// Model holds the three inputs and what the screen shows for them.
// Every setter recalculates immediately.
type Model struct {
	estimator Estimator
	layout    string

	Wake        models.TimeOfDay
	SleepAmount float64
	Coffee      int

	Title   string
	Message string
	Visible bool

	// Estimate is the last successful result; Err is the last failure.
	Estimate models.Estimate
	Err      error
}

// New returns a form at the default inputs with the first estimate already shown.
// layout formats the bedtime, e.g. constants.TimeFormat12h.
func New(est Estimator, layout string) *Model {
	wake, err := models.ParseTimeOfDay(constants.DefaultWakeTime)
	if err != nil {
		panic(fmt.Sprintf("bad default wake time %q: %v", constants.DefaultWakeTime, err))
	}
	if layout == "" {
		layout = constants.TimeFormat
	}

	m := &Model{
		estimator:   est,
		layout:      layout,
		Wake:        wake,
		SleepAmount: constants.DefaultSleepAmount,
		Coffee:      constants.DefaultCoffeeCount,
	}
	m.Recalculate()
	return m
}

// SetWake changes the wake-up time.
func (m *Model) SetWake(wake models.TimeOfDay) {
	m.Wake = wake
	m.Recalculate()
}

// SetSleepAmount changes the desired sleep in hours.
func (m *Model) SetSleepAmount(hours float64) {
	m.SleepAmount = hours
	m.Recalculate()
}

// StepSleep moves the sleep amount by steps quarter hours, stopping at the bounds.
func (m *Model) StepSleep(steps int) {
	next := m.SleepAmount + float64(steps)*constants.SleepAmountStep
	next = min(max(next, constants.MinSleepAmount), constants.MaxSleepAmount)
	m.SetSleepAmount(next)
}

// SetCoffee changes the daily cups of coffee.
func (m *Model) SetCoffee(cups int) {
	m.Coffee = cups
	m.Recalculate()
}

// Fill replaces all three inputs and recalculates once.
func (m *Model) Fill(req models.EstimateRequest) {
	m.Wake = req.Wake
	m.SleepAmount = req.SleepAmount
	m.Coffee = req.Coffee
	m.Recalculate()
}

// Recalculate runs the estimator on the current inputs and refreshes the display fields.
func (m *Model) Recalculate() {
	est, err := m.estimator.Estimate(m.Wake, m.SleepAmount, m.Coffee)
	if err != nil {
		logger.Debug("Bedtime calculation failed", "error", err)
		m.Title = constants.ErrorTitle
		m.Message = constants.ErrorMessage
		m.Estimate = models.Estimate{}
		m.Err = err
	} else {
		m.Title = constants.BedtimeTitle
		m.Message = est.Bedtime.Format(m.layout)
		m.Estimate = est
		m.Err = nil
	}
	m.Visible = true
}

// SleepLabel renders the sleep amount without trailing zeros ("8", "8.25").
func (m *Model) SleepLabel() string {
	return strconv.FormatFloat(m.SleepAmount, 'f', -1, 64)
}

// CoffeeLabel renders the coffee count ("1 cup", "3 cups").
func (m *Model) CoffeeLabel() string {
	if m.Coffee == 1 {
		return "1 cup"
	}
	return fmt.Sprintf("%d cups", m.Coffee)
}
