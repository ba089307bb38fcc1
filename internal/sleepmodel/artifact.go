package sleepmodel

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/julianstephens/betterrest/internal/logger"
	"github.com/julianstephens/betterrest/internal/validation"
)

//go:embed default_model.json
var defaultArtifact []byte

// Format is the on-disk encoding of an artifact.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Coefficients are the per-feature weights of the regression.
type Coefficients struct {
	Wake           float64 `json:"wake" yaml:"wake" validate:"finite"`                       // per second since midnight
	EstimatedSleep float64 `json:"estimated_sleep" yaml:"estimated_sleep" validate:"finite"` // per hour of desired sleep
	Coffee         float64 `json:"coffee" yaml:"coffee" validate:"finite"`                   // per cup
}

// Artifact is a frozen linear sleep model. Its output is the predicted actual sleep in seconds.
type Artifact struct {
	ID           uuid.UUID    `json:"id" yaml:"id" validate:"required"`
	Name         string       `json:"name" yaml:"name" validate:"required"`
	Version      string       `json:"version" yaml:"version" validate:"required"`
	TrainedAt    time.Time    `json:"trained_at" yaml:"trained_at"`
	Intercept    float64      `json:"intercept" yaml:"intercept" validate:"finite"`
	Coefficients Coefficients `json:"coefficients" yaml:"coefficients"`
}

// Features is the model input vector.
type Features struct {
	Wake           float64 // seconds since midnight
	EstimatedSleep float64 // hours
	Coffee         float64 // cups
}

// Predict returns the predicted actual sleep in seconds.
func (a *Artifact) Predict(f Features) (float64, error) {
	c := a.Coefficients
	y := a.Intercept + c.Wake*f.Wake + c.EstimatedSleep*f.EstimatedSleep + c.Coffee*f.Coffee
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, fmt.Errorf("model %s produced a non-finite prediction", a.Name)
	}
	return y, nil
}

// FormatFromPath picks the artifact format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported model artifact extension %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// Parse decodes and validates an artifact.
func Parse(data []byte, format Format) (*Artifact, error) {
	var a Artifact
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode model artifact: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode model artifact: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported model artifact format %q", format)
	}

	if err := validation.New().Validate(a); err != nil {
		return nil, fmt.Errorf("invalid model artifact: %w", err)
	}
	return &a, nil
}

// Load reads an artifact file, choosing the decoder by extension.
func Load(path string) (*Artifact, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	a, err := Parse(data, format)
	if err != nil {
		return nil, err
	}

	logger.Debug("Model artifact loaded", "path", path, "id", a.ID, "name", a.Name, "version", a.Version)
	return a, nil
}

// Default returns the artifact compiled into the binary.
func Default() (*Artifact, error) {
	return Parse(defaultArtifact, FormatJSON)
}
