// Package alerts serves the deadline feed and the notification badge count.
package alerts

import (
	"github.com/agron-app/agron/internal/catalog"
	"github.com/agron-app/agron/internal/domain/models"
)

// Service exposes the read-only alert views over the loaded catalog.
type Service struct {
	deadlines []models.SchemeDeadline
	schemes   []models.Scheme
}

// New builds the service over the catalog loaded at startup.
func New(cat *catalog.Catalog) *Service {
	return &Service{
		deadlines: cat.Deadlines,
		schemes:   cat.Schemes,
	}
}

// Deadlines returns the deadline feed localized to one language, in catalog
// order.
func (s *Service) Deadlines(lang models.Language) []models.LocalizedDeadline {
	out := make([]models.LocalizedDeadline, 0, len(s.deadlines))
	for _, d := range s.deadlines {
		out = append(out, d.Localize(lang))
	}
	return out
}

// NotificationCount is the badge number: schemes flagged new or urgent.
func (s *Service) NotificationCount() int {
	count := 0
	for _, scheme := range s.schemes {
		if scheme.IsNew || scheme.IsUrgent {
			count++
		}
	}
	return count
}
