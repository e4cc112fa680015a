// Package features enumerates the WebAssembly proposals a module may use and
// translates them into validator configuration.
package features

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/experimental"

	"github.com/wippyai/wasmarin/errors"
)

// Set holds the configurable proposal flags. The zero value has every
// proposal disabled.
type Set struct {
	Threads        bool
	ReferenceTypes bool
	SIMD           bool
	BulkMemory     bool
	MultiValue     bool
	TailCall       bool
	MultiMemory    bool
	Memory64       bool
	Exceptions     bool
	ExtendedConst  bool
	RelaxedSIMD    bool
}

// All returns a set with every configurable proposal enabled.
func All() Set {
	return Set{
		Threads:        true,
		ReferenceTypes: true,
		SIMD:           true,
		BulkMemory:     true,
		MultiValue:     true,
		TailCall:       true,
		MultiMemory:    true,
		Memory64:       true,
		Exceptions:     true,
		ExtendedConst:  true,
		RelaxedSIMD:    true,
	}
}

// None returns a set with every configurable proposal disabled.
func None() Set {
	return Set{}
}

// Flags is the complete flag set handed to a validator. The fixed
// capabilities are always on or off regardless of the Set they came from.
type Flags struct {
	Set

	MutableGlobal        bool
	SaturatingFloatToInt bool
	Floats               bool
	SignExtension        bool
	GCTypes              bool

	ComponentModel     bool
	FunctionReferences bool
	MemoryControl      bool
	GC                 bool
}

// Flags expands the set into validator flags.
func (s Set) Flags() Flags {
	return Flags{
		Set:                  s,
		MutableGlobal:        true,
		SaturatingFloatToInt: true,
		Floats:               true,
		SignExtension:        true,
		GCTypes:              true,
	}
}

// CoreFeatures maps the flags onto wazero's feature bits. wazero treats
// bulk memory and reference types as one proposal, so either enables both.
func (f Flags) CoreFeatures() api.CoreFeatures {
	var cf api.CoreFeatures
	cf = cf.SetEnabled(api.CoreFeatureMutableGlobal, f.MutableGlobal)
	cf = cf.SetEnabled(api.CoreFeatureSignExtensionOps, f.SignExtension)
	cf = cf.SetEnabled(api.CoreFeatureNonTrappingFloatToIntConversion, f.SaturatingFloatToInt)
	cf = cf.SetEnabled(api.CoreFeatureMultiValue, f.MultiValue)
	cf = cf.SetEnabled(api.CoreFeatureSIMD, f.SIMD)
	refs := f.BulkMemory || f.ReferenceTypes
	cf = cf.SetEnabled(api.CoreFeatureBulkMemoryOperations, refs)
	cf = cf.SetEnabled(api.CoreFeatureReferenceTypes, refs)
	cf = cf.SetEnabled(experimental.CoreFeaturesThreads, f.Threads)
	cf = cf.SetEnabled(experimental.CoreFeaturesTailCall, f.TailCall)
	return cf
}

// Unsupported lists enabled proposals that wazero cannot check. Modules
// using them are rejected by the wazero validator even when enabled here.
// gc_types covers the forced GC type encodings: rec groups, subtypes,
// struct and array types, and typed references.
func (f Flags) Unsupported() []string {
	var out []string
	if f.GCTypes {
		out = append(out, "gc_types")
	}
	if f.MultiMemory {
		out = append(out, "multi_memory")
	}
	if f.Memory64 {
		out = append(out, "memory64")
	}
	if f.Exceptions {
		out = append(out, "exceptions")
	}
	if f.ExtendedConst {
		out = append(out, "extended_const")
	}
	if f.RelaxedSIMD {
		out = append(out, "relaxed_simd")
	}
	return out
}

var flagNames = map[string]func(*Set) *bool{
	"threads":         func(s *Set) *bool { return &s.Threads },
	"reference_types": func(s *Set) *bool { return &s.ReferenceTypes },
	"simd":            func(s *Set) *bool { return &s.SIMD },
	"bulk_memory":     func(s *Set) *bool { return &s.BulkMemory },
	"multi_value":     func(s *Set) *bool { return &s.MultiValue },
	"tail_call":       func(s *Set) *bool { return &s.TailCall },
	"multi_memory":    func(s *Set) *bool { return &s.MultiMemory },
	"memory64":        func(s *Set) *bool { return &s.Memory64 },
	"exceptions":      func(s *Set) *bool { return &s.Exceptions },
	"extended_const":  func(s *Set) *bool { return &s.ExtendedConst },
	"relaxed_simd":    func(s *Set) *bool { return &s.RelaxedSIMD },
}

// Names returns the sorted list of configurable flag names.
func Names() []string {
	names := make([]string, 0, len(flagNames))
	for name := range flagNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse builds a set from flag names. "all" and "none" select the presets,
// a leading "-" disables a flag, so "all,-threads" is every proposal except
// threads. Dashes and underscores are interchangeable.
func Parse(names []string) (Set, error) {
	var s Set
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		enable := true
		if strings.HasPrefix(name, "-") {
			enable = false
			name = name[1:]
		}
		name = strings.ReplaceAll(name, "-", "_")
		switch name {
		case "all":
			if enable {
				s = All()
			} else {
				s = None()
			}
			continue
		case "none":
			s = None()
			continue
		}
		field, ok := flagNames[name]
		if !ok {
			return Set{}, errors.InvalidInput(errors.PhaseConfig, []string{"features"},
				fmt.Sprintf("unknown feature %q", raw))
		}
		*field(&s) = enable
	}
	return s, nil
}

// String renders the enabled flags as a comma list.
func (s Set) String() string {
	var on []string
	for _, name := range Names() {
		if *flagNames[name](&s) {
			on = append(on, name)
		}
	}
	switch len(on) {
	case 0:
		return "none"
	case len(flagNames):
		return "all"
	}
	return strings.Join(on, ",")
}
