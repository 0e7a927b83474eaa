package config

import (
	"reflect"
	"strings"
	"testing"
)

func TestValidateProjectName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "alu", false},
		{"with hyphen", "alu-core", false},
		{"with digits", "axi4-bridge", false},
		{"empty", "", true},
		{"uppercase", "ALU", true},
		{"leading digit", "4bit-adder", true},
		{"trailing hyphen", "alu-", true},
		{"consecutive hyphens", "alu--core", true},
		{"underscore", "alu_core", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateProjectName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProjectName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateTests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		tests   map[string]string
		wantErr bool
	}{
		{"one test", map[string]string{"smoke": ""}, false},
		{"underscored name", map[string]string{"back_to_back": ""}, false},
		{"sentinel only", map[string]string{"all": ""}, true},
		{"none", map[string]string{}, true},
		{"uppercase name", map[string]string{"Smoke": ""}, true},
		{"leading digit", map[string]string{"1smoke": ""}, true},
		{"hyphenated name", map[string]string{"smoke-test": ""}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := &Config{
				Project: ProjectConfig{Name: "proj"},
				Tests:   tt.tests,
			}
			_, err := Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateNegativeTimeoutWarnsAndResets(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Project:   ProjectConfig{Name: "proj"},
		Toolchain: &ToolchainConfig{TimeoutSeconds: -5},
		Tests:     map[string]string{"smoke": ""},
	}

	warnings, err := Validate(cfg)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if len(warnings) == 0 || !strings.Contains(warnings[0], "negative") {
		t.Errorf("warnings = %v, want negative-timeout warning", warnings)
	}
	if cfg.Toolchain.TimeoutSeconds != DefaultTimeoutSeconds {
		t.Errorf("TimeoutSeconds = %d, want reset to %d", cfg.Toolchain.TimeoutSeconds, DefaultTimeoutSeconds)
	}
}

func TestValidateSourcesWarnings(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Project: ProjectConfig{Name: "proj"},
		Sources: SourcesConfig{
			Design: DesignConfig{Files: []string{"dut.sv"}},
		},
		Tests: map[string]string{"smoke": ""},
	}

	warnings, err := Validate(cfg)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if len(warnings) != 2 {
		t.Errorf("warnings = %v, want top warning and candidate-dirs warning", warnings)
	}
}

func TestSortedTestNames(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"zeta":  "",
		"all":   "",
		"alpha": "",
		"mid":   "",
	}

	got := SortedTestNames(tests)
	want := []string{"alpha", "mid", "zeta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortedTestNames() = %v, want %v", got, want)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Field: "tests", Message: "at least one test must be registered"}
	if got := err.Error(); got != "tests: at least one test must be registered" {
		t.Errorf("Error() = %q", got)
	}
}
