package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/betterrest/internal/constants"
	"github.com/julianstephens/betterrest/internal/estimator"
)

func setupTestContext(t *testing.T, modelPath string, policy estimator.Policy) (*Context, *bytes.Buffer) {
	t.Helper()
	ctx := NewContext(modelPath, policy)
	out := &bytes.Buffer{}
	ctx.Out = out
	return ctx, out
}

func writeArtifact(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatalf("failed to write artifact: %v", err)
	}
	return path
}

func TestEstimateCmd_Text(t *testing.T) {
	ctx, out := setupTestContext(t, "", estimator.PolicyReject)

	cmd := &EstimateCmd{Wake: "07:00", Sleep: 8, Coffee: 2, Clock: "12h"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("estimate failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{"7:00 AM", "8 hours", "2 cups", constants.BedtimeTitle, "10:49 PM"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestEstimateCmd_JSON(t *testing.T) {
	ctx, out := setupTestContext(t, "", estimator.PolicyReject)

	cmd := &EstimateCmd{Wake: "7:00 AM", Sleep: 8, Coffee: 2, Clock: "24h", JSON: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("estimate failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if decoded["wake"] != "07:00" {
		t.Errorf("wake = %v, want 07:00", decoded["wake"])
	}
	if decoded["bedtime"] != "22:49" {
		t.Errorf("bedtime = %v, want 22:49", decoded["bedtime"])
	}
	if decoded["previous_day"] != true {
		t.Errorf("previous_day = %v, want true", decoded["previous_day"])
	}
}

func TestEstimateCmd_Errors(t *testing.T) {
	tests := []struct {
		name     string
		policy   estimator.Policy
		cmd      EstimateCmd
		wantCode int
	}{
		{
			name:     "bad wake time",
			cmd:      EstimateCmd{Wake: "25:00", Sleep: 8, Coffee: 1, Clock: "24h"},
			wantCode: ExitFailure,
		},
		{
			name:     "sleep out of range",
			cmd:      EstimateCmd{Wake: "07:00", Sleep: 13, Coffee: 1, Clock: "24h"},
			wantCode: ExitInvalidInput,
		},
		{
			name:     "coffee out of range",
			cmd:      EstimateCmd{Wake: "07:00", Sleep: 8, Coffee: 0, Clock: "24h"},
			wantCode: ExitInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := setupTestContext(t, "", tt.policy)
			err := tt.cmd.Run(ctx)
			if err == nil {
				t.Fatal("expected error")
			}
			if code := ExitCode(err); code != tt.wantCode {
				t.Errorf("ExitCode(%v) = %d, want %d", err, code, tt.wantCode)
			}
		})
	}
}

func TestEstimateCmd_Clamp(t *testing.T) {
	ctx, out := setupTestContext(t, "", estimator.PolicyClamp)

	cmd := &EstimateCmd{Wake: "07:00", Sleep: 13, Coffee: 0, Clock: "24h", JSON: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("estimate failed: %v", err)
	}

	var decoded estimateOutput
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded.SleepAmount != 12 || decoded.Coffee != 1 {
		t.Errorf("clamped inputs = (%v, %d), want (12, 1)", decoded.SleepAmount, decoded.Coffee)
	}
}

func TestEstimateCmd_MissingModel(t *testing.T) {
	ctx, _ := setupTestContext(t, filepath.Join(t.TempDir(), "absent.json"), estimator.PolicyReject)

	err := (&EstimateCmd{Wake: "07:00", Sleep: 8, Coffee: 1, Clock: "24h"}).Run(ctx)
	if !errors.Is(err, estimator.ErrModelUnavailable) {
		t.Fatalf("error = %v, want ErrModelUnavailable", err)
	}
	if ExitCode(err) != ExitModelUnavailable {
		t.Errorf("ExitCode = %d, want %d", ExitCode(err), ExitModelUnavailable)
	}
}

func TestModelCmd(t *testing.T) {
	ctx, out := setupTestContext(t, "", estimator.PolicyClamp)

	if err := (&ModelCmd{}).Run(ctx); err != nil {
		t.Fatalf("model failed: %v", err)
	}
	got := out.String()
	for _, want := range []string{"embedded", "SleepCalculator", "6f1c2a9e-4b7d-4e3a-9c52-1d8e7f0a3b64", "2022-07-19", "clamp"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestModelCmd_JSONFromYAML(t *testing.T) {
	path := writeArtifact(t, "model.yaml", strings.Join([]string{
		"id: 0b6b7d7e-52a1-4d0c-8c3f-5a9e2f6d1c47",
		"name: Custom",
		"version: 3.1.0",
		"intercept: 0",
		"coefficients:",
		"  wake: 0",
		"  estimated_sleep: 3600",
		"  coffee: 60",
	}, "\n"))
	ctx, out := setupTestContext(t, path, estimator.PolicyReject)

	if err := (&ModelCmd{JSON: true}).Run(ctx); err != nil {
		t.Fatalf("model failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded["name"] != "Custom" || decoded["id"] != "0b6b7d7e-52a1-4d0c-8c3f-5a9e2f6d1c47" {
		t.Errorf("unexpected artifact: %v", decoded)
	}
}

func TestDoctorCmd(t *testing.T) {
	ctx, out := setupTestContext(t, "", estimator.PolicyReject)

	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Fatalf("doctor failed: %v\n%s", err, out.String())
	}
	if !strings.Contains(out.String(), "All checks passed.") {
		t.Errorf("unexpected doctor output:\n%s", out.String())
	}
}

func TestDoctorCmd_MissingModel(t *testing.T) {
	ctx, out := setupTestContext(t, filepath.Join(t.TempDir(), "absent.yaml"), estimator.PolicyReject)

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Fatal("doctor should fail without a model")
	}
	got := out.String()
	if !strings.Contains(got, "❌ Model artifact: FAIL") {
		t.Errorf("missing model failure line:\n%s", got)
	}
	if !strings.Contains(got, "⊘ Input grid: SKIPPED") {
		t.Errorf("grid check should be skipped:\n%s", got)
	}
}

func TestDoctorCmd_BadModel(t *testing.T) {
	// Predicts negative sleep for short nights.
	path := writeArtifact(t, "model.json", `{
		"id": "0b6b7d7e-52a1-4d0c-8c3f-5a9e2f6d1c47",
		"name": "Shortsighted",
		"version": "0.1.0",
		"intercept": -20000,
		"coefficients": {"wake": 0, "estimated_sleep": 3600, "coffee": -100}
	}`)
	ctx, out := setupTestContext(t, path, estimator.PolicyReject)

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Fatal("doctor should fail for a model with negative predictions")
	}
	got := out.String()
	for _, want := range []string{"✓ Model artifact: OK", "❌ Input grid: FAIL", "⚠ Coffee monotonicity: WARNING"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{errors.New("boom"), ExitFailure},
		{fmt.Errorf("wrapped: %w", estimator.ErrInvalidInput), ExitInvalidInput},
		{fmt.Errorf("wrapped: %w", estimator.ErrModelUnavailable), ExitModelUnavailable},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
