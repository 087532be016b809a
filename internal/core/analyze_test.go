package core

import (
	"strings"
	"testing"
)

func TestAnalyzeSafety(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		wantPass bool
		contains []string
	}{
		{
			name:     "both markers present",
			code:     "template Iou\n  signatory issuer\n  controller owner",
			wantPass: true,
		},
		{
			name:     "case insensitive",
			code:     "SIGNATORY issuer CONTROLLER owner",
			wantPass: true,
		},
		{
			name:     "missing signatory",
			code:     "controller owner can Transfer",
			contains: []string{"No signatories defined"},
		},
		{
			name:     "missing controller",
			code:     "signatory issuer",
			contains: []string{"No controllers defined"},
		},
		{
			name:     "missing both",
			code:     "template Empty",
			contains: []string{"No signatories defined", "No controllers defined"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeSafety(tt.code)

			if tt.wantPass {
				if !strings.Contains(got, "passes basic safety gate analysis") {
					t.Errorf("expected pass, got %q", got)
				}
				return
			}

			if !strings.Contains(got, "Safety Issues Found") {
				t.Errorf("expected issues header, got %q", got)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("expected %q in %q", want, got)
				}
			}
		})
	}
}

func TestDeploymentScript(t *testing.T) {
	prod := DeploymentScript("prod")
	if !strings.HasPrefix(prod, "# PROD DEPLOYMENT") {
		t.Errorf("expected prod script, got %q", prod)
	}

	dev := DeploymentScript("dev")
	if !strings.HasPrefix(dev, "# DEV DEPLOYMENT") {
		t.Errorf("expected dev script, got %q", dev)
	}

	// Unrecognized network types fall back to the dev script.
	if got := DeploymentScript("staging"); got != dev {
		t.Errorf("expected dev fallback for staging, got %q", got)
	}
}
