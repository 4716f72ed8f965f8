// Package models defines the value types shared by the extractor, checkers
// and report pipeline.
package models

import (
	"fmt"
	"strings"
)

// DeclarationKind selects which header pattern a declaration is searched with
type DeclarationKind string

const (
	// KindRecord is a brace-delimited record: a TypeScript interface or a Rust struct
	KindRecord DeclarationKind = "record"
	// KindVariant is a union: a TypeScript type alias or a Rust enum
	KindVariant DeclarationKind = "variant"
)

// Declaration names a type that must be present on both sides of the check
type Declaration struct {
	Name string          `yaml:"name"`
	Kind DeclarationKind `yaml:"kind"`
}

// DefaultDeclarations returns the three declarations the video splitter
// front end and back end share, in comparison order.
func DefaultDeclarations() []Declaration {
	return []Declaration{
		{Name: "VideoInfo", Kind: KindRecord},
		{Name: "SplitRequest", Kind: KindRecord},
		{Name: "SplitType", Kind: KindVariant},
	}
}

// Validate checks the declaration has a usable identifier and a known kind
func (d Declaration) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("declaration name is required")
	}
	for _, r := range d.Name {
		if !(r == '_' || r == '$' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return fmt.Errorf("declaration %q: name must be an identifier", d.Name)
		}
	}
	switch d.Kind {
	case KindRecord, KindVariant:
		return nil
	default:
		return fmt.Errorf("declaration %q: invalid kind %q, must be one of: record, variant", d.Name, d.Kind)
	}
}
