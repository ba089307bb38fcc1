package constants

const (
	AppName = "betterrest"
	Version = "v0.1.0"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// TimeFormat12h is the short 12-hour clock format used for display (e.g. 10:45 PM)
	TimeFormat12h = "3:04 PM"

	// Sleep amount bounds, in hours
	MinSleepAmount  = 4.0
	MaxSleepAmount  = 12.0
	SleepAmountStep = 0.25

	// Coffee intake bounds, in cups per day
	MinCoffeeCount = 1
	MaxCoffeeCount = 20

	// Form defaults
	DefaultWakeTime    = "07:00"
	DefaultSleepAmount = 8.0
	DefaultCoffeeCount = 1

	// Display strings
	BedtimeTitle = "Your ideal bedtime is..."
	ErrorTitle   = "Error"
	ErrorMessage = "Sorry, there was a problem calculating your bedtime."

	// Logging
	DefaultLogDir = "~/.config/betterrest"
	LogFileName   = "betterrest.log"
)
