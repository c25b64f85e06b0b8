package models

// DeadlineStatus classifies how close a scheme application window is to
// closing.
type DeadlineStatus string

const (
	DeadlineOpen        DeadlineStatus = "open"
	DeadlineClosingSoon DeadlineStatus = "closing-soon"
	DeadlineUrgent      DeadlineStatus = "urgent"
)

// SchemeDeadline is one entry in the alerts feed: an upcoming application
// deadline with its localized scheme name.
type SchemeDeadline struct {
	ID       string         `bson:"_id"`
	Name     Localized      `bson:"name"`
	Status   DeadlineStatus `bson:"status"`
	DaysLeft int            `bson:"days_left"`
}

// LocalizedDeadline is the API view of a deadline alert.
type LocalizedDeadline struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Status   DeadlineStatus `json:"status"`
	DaysLeft int            `json:"daysLeft"`
}

// Localize resolves the deadline's scheme name for the given language.
func (d SchemeDeadline) Localize(lang Language) LocalizedDeadline {
	return LocalizedDeadline{
		ID:       d.ID,
		Name:     d.Name.In(lang),
		Status:   d.Status,
		DaysLeft: d.DaysLeft,
	}
}
