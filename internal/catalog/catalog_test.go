package catalog

import (
	"testing"
)

func TestDefaultCatalogContents(t *testing.T) {
	tests := []struct {
		name       string
		peakTflops float64
	}{
		{"L40S", 91.6},
		{"A100", 200},
		{"H100", 300},
		{"V100", 125},
		{"B100", 400},
		{"B200", 800},
		{"Gaudi2", 256},
		{"Gaudi3", 1024},
	}
	cat := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cat.PeakTflops(tt.name)
			if !ok {
				t.Fatalf("PeakTflops(%q) not found", tt.name)
			}
			if got != tt.peakTflops {
				t.Errorf("PeakTflops(%q) = %v, want %v", tt.name, got, tt.peakTflops)
			}
		})
	}
}

func TestCatalogIsCaseSensitive(t *testing.T) {
	cat := Default()
	if cat.Has("h100") {
		t.Error("lookups must be case-sensitive, h100 should not resolve")
	}
	if !cat.Has("H100") {
		t.Error("H100 should resolve")
	}
}

func TestCatalogNamesSorted(t *testing.T) {
	names := Default().Names()
	if len(names) != 8 {
		t.Fatalf("Names() returned %d entries, want 8", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Names() not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

func TestNewWithExtensions(t *testing.T) {
	cat, err := New([]AcceleratorSpec{{Name: "MI300X", PeakTflops: 653.7}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got, ok := cat.PeakTflops("MI300X"); !ok || got != 653.7 {
		t.Errorf("PeakTflops(MI300X) = %v, %v; want 653.7, true", got, ok)
	}
	// builtins still present
	if !cat.Has("B200") {
		t.Error("extension dropped a built-in entry")
	}
}

func TestNewRejectsInvalidExtensions(t *testing.T) {
	tests := []struct {
		name string
		spec AcceleratorSpec
	}{
		{"override of builtin", AcceleratorSpec{Name: "H100", PeakTflops: 999}},
		{"empty name", AcceleratorSpec{Name: "", PeakTflops: 100}},
		{"non-positive throughput", AcceleratorSpec{Name: "X100", PeakTflops: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New([]AcceleratorSpec{tt.spec}); err == nil {
				t.Error("New() accepted an invalid extension")
			}
		})
	}
}

func TestExtensionDoesNotMutateDefault(t *testing.T) {
	if _, err := New([]AcceleratorSpec{{Name: "MI300X", PeakTflops: 653.7}}); err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if Default().Has("MI300X") {
		t.Error("extending one catalog leaked into Default()")
	}
}
