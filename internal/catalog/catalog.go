/*
Copyright 2025 The llm-d Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package catalog provides the static accelerator capability table used by
// the estimator: a read-only mapping from accelerator identifier to peak
// throughput in TFLOP/s.
package catalog

import (
	"fmt"
	"sort"
)

// AcceleratorSpec describes one accelerator type known to the planner.
type AcceleratorSpec struct {
	// Name is the case-sensitive catalog identifier (e.g. "H100").
	Name string `yaml:"name" json:"name" mapstructure:"name"`

	// PeakTflops is the theoretical peak throughput in TFLOP/s.
	PeakTflops float64 `yaml:"peakTflops" json:"peakTflops" mapstructure:"peakTflops"`
}

// Validate checks an accelerator spec for usable values.
func (s AcceleratorSpec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("accelerator name must not be empty")
	}
	if s.PeakTflops <= 0 {
		return fmt.Errorf("accelerator %q: peakTflops must be positive, got %v", s.Name, s.PeakTflops)
	}
	return nil
}

// builtins is the fixed capability table. Values are nominal dense peak
// TFLOP/s figures used for capacity planning, not measured throughput.
var builtins = map[string]float64{
	"L40S":   91.6,
	"A100":   200,
	"H100":   300,
	"V100":   125,
	"B100":   400,
	"B200":   800,
	"Gaudi2": 256,
	"Gaudi3": 1024,
}

// Catalog is an immutable accelerator capability table. The zero value is
// not usable; construct with Default or New.
type Catalog struct {
	peak map[string]float64
}

// Default returns a catalog containing only the built-in accelerator types.
func Default() *Catalog {
	peak := make(map[string]float64, len(builtins))
	for name, tflops := range builtins {
		peak[name] = tflops
	}
	return &Catalog{peak: peak}
}

// New returns the default catalog extended with the given specs. Extensions
// may only add new identifiers; redefining a built-in type is rejected so a
// config file cannot silently change the planning baseline.
func New(extensions []AcceleratorSpec) (*Catalog, error) {
	c := Default()
	for _, spec := range extensions {
		if err := spec.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.peak[spec.Name]; exists {
			return nil, fmt.Errorf("accelerator %q is already defined and cannot be overridden", spec.Name)
		}
		c.peak[spec.Name] = spec.PeakTflops
	}
	return c, nil
}

// PeakTflops returns the peak throughput for the given accelerator
// identifier. The boolean reports whether the identifier is known.
func (c *Catalog) PeakTflops(name string) (float64, bool) {
	tflops, ok := c.peak[name]
	return tflops, ok
}

// Has reports whether the identifier exists in the catalog.
func (c *Catalog) Has(name string) bool {
	_, ok := c.peak[name]
	return ok
}

// Names returns all known accelerator identifiers in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.peak))
	for name := range c.peak {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
