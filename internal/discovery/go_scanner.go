// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package discovery

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	"github.com/MKhiriev/go-supervisor-dump/internal/logger"
	"github.com/MKhiriev/go-supervisor-dump/models"
)

// GoScanner reads //supervisor:program directives from the doc comments of
// type declarations in Go source files.
type GoScanner struct {
	logger *logger.Logger
}

func NewGoScanner(logger *logger.Logger) *GoScanner {
	return &GoScanner{logger: logger}
}

func (s *GoScanner) Accepts(path string) bool {
	return strings.HasSuffix(path, ".go") && !strings.HasSuffix(path, "_test.go")
}

// Scan parses path and returns one class per annotated type, in source
// order. A type with an unreadable directive is logged and skipped as a
// whole.
func (s *GoScanner) Scan(ctx context.Context, path string) ([]models.DeclaredClass, error) {
	log := logger.FromContext(ctx, s.logger)

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrParseFile, path, err)
	}

	pkg := file.Name.Name
	var classes []models.DeclaredClass

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}

		for _, spec := range gen.Specs {
			typeSpec := spec.(*ast.TypeSpec)

			doc := typeSpec.Doc
			if doc == nil && !gen.Lparen.IsValid() {
				doc = gen.Doc
			}

			name := pkg + "." + typeSpec.Name.Name
			builders, err := directives(doc)
			if err != nil {
				log.Warn().
					Err(err).
					Str("class", name).
					Str("position", fset.Position(typeSpec.Pos()).String()).
					Msg("skipping class with invalid supervisor directive")
				continue
			}
			if len(builders) == 0 {
				continue
			}

			classes = append(classes, models.DeclaredClass{Name: name, Source: path, Builders: builders})
		}
	}

	return classes, nil
}

func directives(doc *ast.CommentGroup) ([]*models.DeclarationBuilder, error) {
	if doc == nil {
		return nil, nil
	}

	var builders []*models.DeclarationBuilder
	for _, comment := range doc.List {
		if !isDirective(comment.Text) {
			continue
		}

		b, err := parseDirective(comment.Text)
		if err != nil {
			return nil, fmt.Errorf("%w #%d: %w", ErrInvalidDirective, len(builders)+1, err)
		}
		builders = append(builders, b)
	}

	return builders, nil
}
