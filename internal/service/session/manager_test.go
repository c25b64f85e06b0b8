package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agron-app/agron/internal/domain/models"
)

var testSchemes = []models.Scheme{
	{
		ID: "rice-small",
		Eligibility: models.Eligibility{
			Crops:     []models.CropType{models.CropRice},
			LandSizes: []models.LandSize{models.LandSmall},
		},
	},
	{
		ID: "everything",
		Eligibility: models.Eligibility{
			Crops: []models.CropType{
				models.CropRice, models.CropWheat, models.CropCotton,
				models.CropSugarcane, models.CropVegetables, models.CropFruits,
			},
			LandSizes: []models.LandSize{models.LandSmall, models.LandMedium, models.LandLarge},
		},
	},
}

func newTestManager() *Manager {
	return NewManager(testSchemes, time.Hour, nil)
}

func advanceToSchemes(t *testing.T, m *Manager) Session {
	t.Helper()

	sess := m.Create()
	_, err := m.SetLanguage(sess.ID, models.LangTelugu)
	require.NoError(t, err)
	_, err = m.SetCrop(sess.ID, models.CropRice)
	require.NoError(t, err)
	sess, err = m.SetLandSize(sess.ID, models.LandSmall)
	require.NoError(t, err)
	return sess
}

func TestCreateStartsAtLanguageStepWithDefaultLanguage(t *testing.T) {
	m := newTestManager()
	sess := m.Create()

	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, StepLanguage, sess.Step)
	assert.Equal(t, models.DefaultLanguage, sess.Profile.Language)
	assert.Nil(t, sess.Profile.Crop)
	assert.Nil(t, sess.Profile.LandSize)
}

func TestSelectionFlowAdvancesSteps(t *testing.T) {
	m := newTestManager()
	sess := m.Create()

	sess, err := m.SetLanguage(sess.ID, models.LangHindi)
	require.NoError(t, err)
	assert.Equal(t, StepCrop, sess.Step)
	assert.Equal(t, models.LangHindi, sess.Profile.Language)

	sess, err = m.SetCrop(sess.ID, models.CropWheat)
	require.NoError(t, err)
	assert.Equal(t, StepLand, sess.Step)
	require.NotNil(t, sess.Profile.Crop)
	assert.Equal(t, models.CropWheat, *sess.Profile.Crop)

	sess, err = m.SetLandSize(sess.ID, models.LandMedium)
	require.NoError(t, err)
	assert.Equal(t, StepSchemes, sess.Step)
	require.NotNil(t, sess.Profile.LandSize)
	assert.Equal(t, models.LandMedium, *sess.Profile.LandSize)
}

func TestSetLanguageKeepsSelections(t *testing.T) {
	m := newTestManager()
	sess := advanceToSchemes(t, m)

	sess, err := m.SetLanguage(sess.ID, models.LangMarathi)
	require.NoError(t, err)

	assert.Equal(t, models.LangMarathi, sess.Profile.Language)
	assert.NotNil(t, sess.Profile.Crop)
	assert.NotNil(t, sess.Profile.LandSize)
	// Language change after the language step does not rewind the flow.
	assert.Equal(t, StepSchemes, sess.Step)
}

func TestInvalidSelectionsRejected(t *testing.T) {
	m := newTestManager()
	sess := m.Create()

	_, err := m.SetLanguage(sess.ID, models.Language("fr"))
	assert.ErrorIs(t, err, ErrInvalidLanguage)

	_, err = m.SetCrop(sess.ID, models.CropType("barley"))
	assert.ErrorIs(t, err, ErrInvalidCrop)

	_, err = m.SetLandSize(sess.ID, models.LandSize("huge"))
	assert.ErrorIs(t, err, ErrInvalidLandSize)
}

func TestUnknownSession(t *testing.T) {
	m := newTestManager()

	_, err := m.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.SetLanguage("missing", models.LangEnglish)
	assert.ErrorIs(t, err, ErrNotFound)

	_, _, err = m.MatchingSchemes("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBackMovesOneStep(t *testing.T) {
	m := newTestManager()
	sess := advanceToSchemes(t, m)

	sess, err := m.Back(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, StepLand, sess.Step)

	sess, err = m.Back(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, StepCrop, sess.Step)

	sess, err = m.Back(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, StepLanguage, sess.Step)

	// No history beyond the first step.
	sess, err = m.Back(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, StepLanguage, sess.Step)
}

func TestHomeClearsSelectionsKeepsLanguage(t *testing.T) {
	m := newTestManager()
	sess := advanceToSchemes(t, m)
	languageBefore := sess.Profile.Language

	sess, err := m.Home(sess.ID)
	require.NoError(t, err)

	assert.Equal(t, StepCrop, sess.Step)
	assert.Equal(t, languageBefore, sess.Profile.Language)
	assert.Nil(t, sess.Profile.Crop)
	assert.Nil(t, sess.Profile.LandSize)

	matched, _, err := m.MatchingSchemes(sess.ID)
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestMatchingSchemes(t *testing.T) {
	m := newTestManager()
	sess := m.Create()

	matched, _, err := m.MatchingSchemes(sess.ID)
	require.NoError(t, err)
	assert.Empty(t, matched, "incomplete profile matches nothing")

	sess = advanceToSchemes(t, m)
	matched, got, err := m.MatchingSchemes(sess.ID)
	require.NoError(t, err)

	ids := make([]string, 0, len(matched))
	for _, s := range matched {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"rice-small", "everything"}, ids)
	assert.Equal(t, models.LangTelugu, got.Profile.Language)
}

func TestSweepRemovesIdleSessions(t *testing.T) {
	m := NewManager(testSchemes, time.Minute, nil)

	idle := m.Create()
	fresh := m.Create()

	removed := m.Sweep(time.Now())
	assert.Zero(t, removed)

	// Backdate one session past the TTL so only it is collected.
	m.mu.Lock()
	m.sessions[idle.ID].UpdatedAt = time.Now().Add(-2 * time.Minute)
	m.mu.Unlock()

	removed = m.Sweep(time.Now())
	assert.Equal(t, 1, removed)

	_, err := m.Get(idle.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.Get(fresh.ID)
	assert.NoError(t, err)
}
