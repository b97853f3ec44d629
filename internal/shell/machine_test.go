package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrea/winchester/internal/catalog"
)

func newMachine(t *testing.T) *Machine {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return New(cat)
}

func TestInitialState(t *testing.T) {
	m := newMachine(t)
	assert.Equal(t, State{ActiveFilter: catalog.FilterAll, Section: SectionHome}, m.Snapshot())
}

func TestToggleMenuParity(t *testing.T) {
	m := newMachine(t)
	for calls := 1; calls <= 9; calls++ {
		m.ToggleMenu()
		assert.Equal(t, calls%2 == 1, m.Snapshot().MenuOpen, "after %d calls", calls)
	}
}

func TestCloseModalClearsSelection(t *testing.T) {
	m := newMachine(t)
	m.OpenConsultationModal()
	require.NoError(t, m.SelectConsultationArea("Family Law"))
	assert.Equal(t, "Family Law", m.Snapshot().SelectedArea)

	m.CloseConsultationModal()
	state := m.Snapshot()
	assert.False(t, state.ModalOpen)
	assert.False(t, state.HasSelection())

	m.OpenConsultationModal()
	assert.False(t, m.Snapshot().HasSelection(), "stale selection reappeared on reopen")

	m.CloseConsultationModal()
	m.CloseConsultationModal()
	assert.Empty(t, m.Snapshot().SelectedArea)
}

func TestSelectRequiresOpenModal(t *testing.T) {
	m := newMachine(t)
	for _, area := range []string{"Tax Law", "Maritime Law", "", catalog.FilterAll} {
		err := m.SelectConsultationArea(area)
		require.ErrorIs(t, err, ErrInvalidState, "area %q", area)
		assert.NotErrorIs(t, err, ErrInvalidSelection, "area %q", area)
		assert.Empty(t, m.Snapshot().SelectedArea)
	}
}

func TestSelectRejectsUnknownArea(t *testing.T) {
	m := newMachine(t)
	m.OpenConsultationModal()
	require.NoError(t, m.SelectConsultationArea("Tax Law"))

	for _, bad := range []string{"", "Maritime Law", "Elizabeth Blackwood", catalog.FilterAll} {
		err := m.SelectConsultationArea(bad)
		require.ErrorIs(t, err, ErrInvalidSelection, "area %q", bad)
		assert.Equal(t, "Tax Law", m.Snapshot().SelectedArea)
	}
}

func TestOpenModalKeepsFilter(t *testing.T) {
	m := newMachine(t)
	require.NoError(t, m.SetActiveFilter("Real Estate"))
	m.OpenConsultationModal()
	assert.Equal(t, "Real Estate", m.Snapshot().ActiveFilter)
	assert.True(t, m.Snapshot().ModalOpen)
}

func TestSetActiveFilter(t *testing.T) {
	m := newMachine(t)
	require.NoError(t, m.SetActiveFilter("Intellectual Property"))
	for _, item := range m.ActiveItems() {
		assert.Equal(t, "Intellectual Property", item.Category)
	}
	assert.Len(t, m.ActiveItems(), 3)

	err := m.SetActiveFilter("Maritime Law")
	require.ErrorIs(t, err, ErrInvalidFilter)
	assert.Equal(t, "Intellectual Property", m.Snapshot().ActiveFilter)

	require.NoError(t, m.SetActiveFilter(catalog.FilterAll))
	cat, err := catalog.Default()
	require.NoError(t, err)
	assert.Len(t, m.ActiveItems(), len(cat.All()))
}

func TestFilterChangeKeepsSelection(t *testing.T) {
	m := newMachine(t)
	m.OpenConsultationModal()
	require.NoError(t, m.SelectConsultationArea("Criminal Defense"))
	require.NoError(t, m.SetActiveFilter("Tax Law"))
	assert.Equal(t, "Criminal Defense", m.Snapshot().SelectedArea)
}

func TestNavigateToClosesMenu(t *testing.T) {
	m := newMachine(t)
	m.ToggleMenu()
	require.NoError(t, m.NavigateTo(SectionAttorneys))
	state := m.Snapshot()
	assert.Equal(t, SectionAttorneys, state.Section)
	assert.False(t, state.MenuOpen)

	m.ToggleMenu()
	require.ErrorIs(t, m.NavigateTo("careers"), ErrInvalidSection)
	assert.True(t, m.Snapshot().MenuOpen)
	assert.Equal(t, SectionAttorneys, m.Snapshot().Section)
}

func TestSnapshotIsACopy(t *testing.T) {
	m := newMachine(t)
	before := m.Snapshot()
	m.ToggleMenu()
	m.OpenConsultationModal()
	assert.False(t, before.MenuOpen)
	assert.False(t, before.ModalOpen)
}

func TestFiltersAndPracticeAreas(t *testing.T) {
	m := newMachine(t)
	filters := m.Filters()
	require.NotEmpty(t, filters)
	assert.Equal(t, catalog.FilterAll, filters[0])
	assert.Contains(t, filters, "Family Law")
	assert.Equal(t, []string{"Corporate Law", "Intellectual Property", "Real Estate", "Family Law", "Criminal Defense", "Tax Law"}, m.PracticeAreas())
}
