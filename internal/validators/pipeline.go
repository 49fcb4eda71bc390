// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/storefront-auth/models"
)

// Report collects the field errors of one pipeline run.
type Report struct {
	fields []models.FieldError
}

// Add records a failed rule for field.
func (r *Report) Add(field, message string) {
	r.fields = append(r.fields, models.FieldError{Field: field, Message: message})
}

// Step is one named rule of a pipeline. Name is the field it checks.
type Step[T any] struct {
	Name  string
	Check func(ctx context.Context, v T, r *Report)
}

// Pipeline is an ordered list of steps for one input type.
type Pipeline[T any] struct {
	steps []Step[T]
}

// NewPipeline builds a pipeline running steps in the given order.
func NewPipeline[T any](steps ...Step[T]) Pipeline[T] {
	return Pipeline[T]{steps: steps}
}

// Names returns the step names in execution order.
func (p Pipeline[T]) Names() []string {
	names := make([]string, 0, len(p.steps))
	for _, s := range p.steps {
		names = append(names, s.Name)
	}
	return names
}

// Run executes the steps (all of them, or only the named ones) and returns a
// *ValidationError when any rule failed.
func (p Pipeline[T]) Run(ctx context.Context, v T, only ...string) error {
	for _, name := range only {
		if !slices.Contains(p.Names(), name) {
			return fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
	}

	report := &Report{}
	for _, step := range p.steps {
		if len(only) > 0 && !slices.Contains(only, step.Name) {
			continue
		}
		step.Check(ctx, v, report)
	}

	if len(report.fields) == 0 {
		return nil
	}

	return &ValidationError{Fields: report.fields}
}
