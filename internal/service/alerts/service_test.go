package alerts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agron-app/agron/internal/catalog"
	"github.com/agron-app/agron/internal/domain/models"
)

func TestDeadlinesPreserveCatalogOrder(t *testing.T) {
	svc := New(catalog.Embedded())

	feed := svc.Deadlines(models.LangEnglish)
	require.Len(t, feed, 5)
	assert.Equal(t, "pm-kisan-installment", feed[0].ID)
	assert.Equal(t, "PM-KISAN Installment", feed[0].Name)
	assert.Equal(t, models.DeadlineOpen, feed[0].Status)
	assert.Equal(t, 45, feed[0].DaysLeft)

	assert.Equal(t, "tractor-subsidy", feed[2].ID)
	assert.Equal(t, models.DeadlineUrgent, feed[2].Status)
}

func TestDeadlinesLocalized(t *testing.T) {
	svc := New(catalog.Embedded())

	feed := svc.Deadlines(models.LangHindi)
	require.NotEmpty(t, feed)
	assert.Equal(t, "पीएम-किसान किस्त", feed[0].Name)
}

func TestNotificationCountCountsNewAndUrgentSchemes(t *testing.T) {
	svc := New(catalog.Embedded())
	assert.Equal(t, 3, svc.NotificationCount())
}

func TestNotificationCountOverCustomCatalog(t *testing.T) {
	cat := &catalog.Catalog{Schemes: []models.Scheme{
		{ID: "a"},
		{ID: "b", IsNew: true},
		{ID: "c", IsUrgent: true},
		{ID: "d", IsNew: true, IsUrgent: true},
	}}
	svc := New(cat)
	assert.Equal(t, 3, svc.NotificationCount())
}
