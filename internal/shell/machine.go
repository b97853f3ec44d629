// Package shell holds the interaction state of the site: the mobile menu,
// the consultation modal, the content filter and the current anchor. It is
// the only place that state changes; everyone else reads snapshots.
package shell

import (
	"errors"
	"fmt"

	"github.com/kingrea/winchester/internal/catalog"
)

var (
	// ErrInvalidSelection means the area is not a practice-area title.
	ErrInvalidSelection = errors.New("shell: invalid consultation area")
	// ErrInvalidState means the operation needs the consultation modal open.
	ErrInvalidState = errors.New("shell: consultation modal is closed")
	// ErrInvalidFilter means the tag is neither "all" nor a catalog category.
	ErrInvalidFilter = errors.New("shell: invalid filter")
	// ErrInvalidSection means the anchor is not one of the nav sections.
	ErrInvalidSection = errors.New("shell: invalid section")
)

// Section is a page anchor the navigation scrolls to.
type Section string

const (
	SectionHome          Section = "home"
	SectionPracticeAreas Section = "practice-areas"
	SectionAttorneys     Section = "attorneys"
	SectionAbout         Section = "about"
	SectionResources     Section = "resources"
	SectionContact       Section = "contact"
)

// Sections lists the navigation anchors in menu order.
var Sections = []Section{
	SectionHome,
	SectionPracticeAreas,
	SectionAttorneys,
	SectionAbout,
	SectionResources,
	SectionContact,
}

// Label returns the menu text for a section.
func (s Section) Label() string {
	switch s {
	case SectionHome:
		return "Home"
	case SectionPracticeAreas:
		return "Practice Areas"
	case SectionAttorneys:
		return "Attorneys"
	case SectionAbout:
		return "About"
	case SectionResources:
		return "Resources"
	case SectionContact:
		return "Contact"
	default:
		return string(s)
	}
}

// State is an immutable snapshot of the shell.
type State struct {
	MenuOpen     bool
	ModalOpen    bool
	ActiveFilter string
	// SelectedArea is empty when no consultation area is chosen.
	SelectedArea string
	Section      Section
}

// HasSelection reports whether a consultation area is chosen.
func (s State) HasSelection() bool { return s.SelectedArea != "" }

// Machine owns the shell state. It is not safe for concurrent use; the
// bubbletea update loop is its only caller.
type Machine struct {
	catalog *catalog.Catalog
	state   State
}

// New creates a machine in its initial state: everything closed, filter
// "all", scrolled to the top.
func New(cat *catalog.Catalog) *Machine {
	return &Machine{
		catalog: cat,
		state: State{
			ActiveFilter: catalog.FilterAll,
			Section:      SectionHome,
		},
	}
}

// Snapshot returns the current state by value.
func (m *Machine) Snapshot() State { return m.state }

// ToggleMenu flips the mobile menu.
func (m *Machine) ToggleMenu() {
	m.state.MenuOpen = !m.state.MenuOpen
}

// OpenConsultationModal shows the consultation modal. The filter is kept.
func (m *Machine) OpenConsultationModal() {
	m.state.ModalOpen = true
}

// CloseConsultationModal hides the modal and always clears the pending area so
// it can't reappear on the next open.
func (m *Machine) CloseConsultationModal() {
	m.state.ModalOpen = false
	m.state.SelectedArea = ""
}

// SelectConsultationArea records the practice area picked in the modal. It
// always fails with ErrInvalidState while the modal is closed.
func (m *Machine) SelectConsultationArea(area string) error {
	if !m.state.ModalOpen {
		return fmt.Errorf("%w: cannot select %q", ErrInvalidState, area)
	}
	if !m.catalog.IsPracticeArea(area) {
		return fmt.Errorf("%w: %q", ErrInvalidSelection, area)
	}
	m.state.SelectedArea = area
	return nil
}

// SetActiveFilter changes which items are active. The selected consultation
// area is left alone.
func (m *Machine) SetActiveFilter(tag string) error {
	if tag != catalog.FilterAll && !m.catalog.HasCategory(tag) {
		return fmt.Errorf("%w: %q", ErrInvalidFilter, tag)
	}
	m.state.ActiveFilter = tag
	return nil
}

// NavigateTo scrolls to an anchor and closes the mobile menu.
func (m *Machine) NavigateTo(section Section) error {
	for _, known := range Sections {
		if known == section {
			m.state.Section = section
			m.state.MenuOpen = false
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidSection, section)
}

// ActiveItems projects the catalog through the active filter. It is derived
// on every call and never cached.
func (m *Machine) ActiveItems() []catalog.Item {
	return m.catalog.Filter(m.state.ActiveFilter)
}

// Filters lists the selectable filters: "all" followed by every category.
func (m *Machine) Filters() []string {
	return append([]string{catalog.FilterAll}, m.catalog.Categories()...)
}

// PracticeAreas lists the titles a consultation can be booked for.
func (m *Machine) PracticeAreas() []string {
	areas := m.catalog.PracticeAreas()
	out := make([]string, len(areas))
	for i, area := range areas {
		out[i] = area.Title
	}
	return out
}
