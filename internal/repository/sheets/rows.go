package sheets

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agron-app/agron/internal/domain/models"
)

// Scheme sheet layout, columns A..S:
//
//	id | benefit | crops | land_sizes | video_url | is_new | is_urgent |
//	title te,hi,ta,kn,mr,en | description te,hi,ta,kn,mr,en
//
// crops and land_sizes are comma separated enum values.
const (
	schemeColID = iota
	schemeColBenefit
	schemeColCrops
	schemeColLandSizes
	schemeColVideoURL
	schemeColIsNew
	schemeColIsUrgent
	schemeColTitleStart
	schemeColDescStart = schemeColTitleStart + len(localizedColumns)
	schemeColumns      = schemeColDescStart + len(localizedColumns)
)

// Deadline sheet layout, columns A..I:
//
//	id | status | days_left | name te,hi,ta,kn,mr,en
const (
	deadlineColID = iota
	deadlineColStatus
	deadlineColDaysLeft
	deadlineColNameStart
	deadlineColumns = deadlineColNameStart + len(localizedColumns)
)

// localizedColumns is the fixed per-language column order of the sheet.
var localizedColumns = [...]models.Language{
	models.LangTelugu,
	models.LangHindi,
	models.LangTamil,
	models.LangKannada,
	models.LangMarathi,
	models.LangEnglish,
}

// ParseSchemeRows converts raw sheet rows into schemes, keeping row order.
func ParseSchemeRows(rows [][]interface{}) ([]models.Scheme, error) {
	schemes := make([]models.Scheme, 0, len(rows))
	for i, row := range rows {
		if len(row) < schemeColumns {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", i+2, schemeColumns, len(row))
		}

		crops, err := parseCrops(cell(row, schemeColCrops))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		landSizes, err := parseLandSizes(cell(row, schemeColLandSizes))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}

		schemes = append(schemes, models.Scheme{
			ID:               cell(row, schemeColID),
			Title:            localizedCells(row, schemeColTitleStart),
			ShortDescription: localizedCells(row, schemeColDescStart),
			Benefit:          cell(row, schemeColBenefit),
			Eligibility: models.Eligibility{
				Crops:     crops,
				LandSizes: landSizes,
			},
			VideoURL: cell(row, schemeColVideoURL),
			IsNew:    parseBool(cell(row, schemeColIsNew)),
			IsUrgent: parseBool(cell(row, schemeColIsUrgent)),
		})
	}
	return schemes, nil
}

// ParseDeadlineRows converts raw sheet rows into deadlines, keeping row order.
func ParseDeadlineRows(rows [][]interface{}) ([]models.SchemeDeadline, error) {
	deadlines := make([]models.SchemeDeadline, 0, len(rows))
	for i, row := range rows {
		if len(row) < deadlineColumns {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", i+2, deadlineColumns, len(row))
		}

		status := models.DeadlineStatus(cell(row, deadlineColStatus))
		switch status {
		case models.DeadlineOpen, models.DeadlineClosingSoon, models.DeadlineUrgent:
		default:
			return nil, fmt.Errorf("row %d: unknown deadline status %q", i+2, status)
		}

		daysLeft, err := strconv.Atoi(cell(row, deadlineColDaysLeft))
		if err != nil {
			return nil, fmt.Errorf("row %d: days_left: %w", i+2, err)
		}

		deadlines = append(deadlines, models.SchemeDeadline{
			ID:       cell(row, deadlineColID),
			Name:     localizedCells(row, deadlineColNameStart),
			Status:   status,
			DaysLeft: daysLeft,
		})
	}
	return deadlines, nil
}

func parseCrops(raw string) ([]models.CropType, error) {
	parts := splitList(raw)
	crops := make([]models.CropType, 0, len(parts))
	for _, part := range parts {
		crop := models.CropType(part)
		if !crop.IsValid() {
			return nil, fmt.Errorf("unknown crop %q", part)
		}
		crops = append(crops, crop)
	}
	return crops, nil
}

func parseLandSizes(raw string) ([]models.LandSize, error) {
	parts := splitList(raw)
	sizes := make([]models.LandSize, 0, len(parts))
	for _, part := range parts {
		size := models.LandSize(part)
		if !size.IsValid() {
			return nil, fmt.Errorf("unknown land size %q", part)
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}

func localizedCells(row []interface{}, start int) models.Localized {
	out := make(models.Localized, len(localizedColumns))
	for i, lang := range localizedColumns {
		out[lang] = cell(row, start+i)
	}
	return out
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "yes", "1":
		return true
	}
	return false
}

func cell(row []interface{}, idx int) string {
	if idx >= len(row) {
		return ""
	}
	if s, ok := row[idx].(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(row[idx]))
}
