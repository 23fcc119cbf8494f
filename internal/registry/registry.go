// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package registry holds the declarations found for one export run,
// grouped by the type they are attached to.
//
// Types are kept in registration order and declarations in declaration
// order; program names derived later depend on both, so the registry never
// reorders anything.
package registry

import (
	"fmt"
	"slices"

	"github.com/MKhiriev/go-supervisor-dump/models"
)

// Registry collects declarations per type. The zero value is not usable;
// use [New].
type Registry struct {
	classes []*models.Class
	index   map[string]int
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register validates every builder and appends the resulting declarations to
// the class called name. The first registration of a class fixes its source
// and position. Nothing is registered when any builder fails.
func (r *Registry) Register(name, source string, builders ...*models.DeclarationBuilder) error {
	if name == "" {
		return ErrEmptyClassName
	}

	decls := make([]models.Declaration, 0, len(builders))
	for i, b := range builders {
		decl, err := b.Build()
		if err != nil {
			return fmt.Errorf("error registering declaration #%d of %s: %w", i+1, name, err)
		}
		decls = append(decls, decl)
	}

	return r.add(models.Class{Name: name, Source: source, Declarations: decls})
}

// add appends an already built class. Declarations of a class registered
// twice are concatenated in call order.
func (r *Registry) add(class models.Class) error {
	if class.Name == "" {
		return ErrEmptyClassName
	}

	if i, ok := r.index[class.Name]; ok {
		r.classes[i].Declarations = append(r.classes[i].Declarations, class.Declarations...)
		return nil
	}

	r.index[class.Name] = len(r.classes)
	r.classes = append(r.classes, &models.Class{
		Name:         class.Name,
		Source:       class.Source,
		Declarations: slices.Clone(class.Declarations),
	})

	return nil
}

// Classes returns a copy of the registered classes in registration order,
// skipping classes without declarations.
func (r *Registry) Classes() []models.Class {
	classes := make([]models.Class, 0, len(r.classes))
	for _, c := range r.classes {
		if len(c.Declarations) == 0 {
			continue
		}
		classes = append(classes, models.Class{
			Name:         c.Name,
			Source:       c.Source,
			Declarations: slices.Clone(c.Declarations),
		})
	}
	return classes
}

// Len returns the number of registered declarations.
func (r *Registry) Len() int {
	n := 0
	for _, c := range r.classes {
		n += len(c.Declarations)
	}
	return n
}
