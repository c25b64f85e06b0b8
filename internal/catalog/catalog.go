// Package catalog holds the localized static content the application serves:
// the scheme table, selection options, deadline alerts and UI strings. The
// scheme and deadline tables may be replaced at startup by an external
// source (MongoDB or a content spreadsheet); after that the catalog is
// read-only for the lifetime of the process.
package catalog

import (
	"fmt"

	"github.com/agron-app/agron/internal/domain/models"
)

// Catalog is the loaded content set. Scheme order is the declaration order
// of the source and is the order every listing preserves.
type Catalog struct {
	Schemes   []models.Scheme
	Deadlines []models.SchemeDeadline
}

// Embedded returns the catalog compiled into the binary. It is the fallback
// when no external source is configured or an external load fails.
func Embedded() *Catalog {
	return &Catalog{
		Schemes:   embeddedSchemes,
		Deadlines: embeddedDeadlines,
	}
}

// Validate checks the completeness invariant: every localized string table
// in the catalog must carry a value for every supported language, and scheme
// ids must be unique. A violation is a content defect and aborts startup.
func (c *Catalog) Validate() error {
	seen := make(map[string]struct{}, len(c.Schemes))
	for _, s := range c.Schemes {
		if s.ID == "" {
			return fmt.Errorf("scheme with empty id")
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("duplicate scheme id %q", s.ID)
		}
		seen[s.ID] = struct{}{}

		if !s.Title.Complete() {
			return fmt.Errorf("scheme %q: title missing a language", s.ID)
		}
		if !s.ShortDescription.Complete() {
			return fmt.Errorf("scheme %q: short description missing a language", s.ID)
		}
	}

	for _, d := range c.Deadlines {
		if !d.Name.Complete() {
			return fmt.Errorf("deadline %q: name missing a language", d.ID)
		}
	}

	for _, opt := range Crops {
		if !opt.Labels.Complete() {
			return fmt.Errorf("crop %q: label missing a language", opt.ID)
		}
	}
	for _, opt := range LandSizes {
		if !opt.Labels.Complete() {
			return fmt.Errorf("land size %q: label missing a language", opt.ID)
		}
	}

	return nil
}
