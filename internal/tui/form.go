package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/winchester/internal/intake"
	"github.com/kingrea/winchester/internal/shell"
)

// formField is the focus order of the consultation form.
type formField int

const (
	fieldName formField = iota
	fieldEmail
	fieldPhone
	fieldArea
	fieldMessage
	fieldCount
)

func (f formField) key() string {
	switch f {
	case fieldName:
		return intake.FieldName
	case fieldEmail:
		return intake.FieldEmail
	case fieldPhone:
		return intake.FieldPhone
	case fieldArea:
		return intake.FieldArea
	default:
		return intake.FieldMessage
	}
}

func fieldForKey(name string) (formField, bool) {
	for f := fieldName; f < fieldCount; f++ {
		if f.key() == name {
			return f, true
		}
	}
	return 0, false
}

// areaItem implements list.Item for the practice-area picker.
type areaItem struct {
	title string
}

func (i areaItem) Title() string       { return i.title }
func (i areaItem) Description() string { return "" }
func (i areaItem) FilterValue() string { return i.title }

var (
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5B8DEF")).
			Padding(1, 2)
	fieldLabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	focusedLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	invalidLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
)

// consultationForm holds the widgets of the consultation modal. The chosen
// area itself lives in the shell state.
type consultationForm struct {
	name    textinput.Model
	email   textinput.Model
	phone   textinput.Model
	areas   list.Model
	message textarea.Model
	focus   formField
	invalid string
}

func newConsultationForm(areas []string) consultationForm {
	newInput := func(placeholder string) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 120
		in.Width = 40
		in.Prompt = ""
		return in
	}
	items := make([]list.Item, len(areas))
	for i, area := range areas {
		items[i] = areaItem{title: area}
	}
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	picker := list.New(items, delegate, 40, min(len(areas)+2, 8))
	picker.SetShowTitle(false)
	picker.SetShowStatusBar(false)
	picker.SetShowHelp(false)
	picker.SetFilteringEnabled(false)

	message := textarea.New()
	message.Placeholder = "Brief description of your case"
	message.ShowLineNumbers = false
	message.CharLimit = 0
	message.SetWidth(40)
	message.SetHeight(4)

	return consultationForm{
		name:    newInput("Full Name"),
		email:   newInput("Email"),
		phone:   newInput("Phone"),
		areas:   picker,
		message: message,
	}
}

// reset empties every widget and puts focus on the first field.
func (f *consultationForm) reset() tea.Cmd {
	f.name.SetValue("")
	f.email.SetValue("")
	f.phone.SetValue("")
	f.message.SetValue("")
	f.areas.Select(0)
	f.invalid = ""
	return f.focusField(fieldName)
}

func (f *consultationForm) focusField(field formField) tea.Cmd {
	f.name.Blur()
	f.email.Blur()
	f.phone.Blur()
	f.message.Blur()
	f.focus = field
	switch field {
	case fieldName:
		return f.name.Focus()
	case fieldEmail:
		return f.email.Focus()
	case fieldPhone:
		return f.phone.Focus()
	case fieldMessage:
		return f.message.Focus()
	}
	return nil
}

func (f *consultationForm) cycle(delta int) tea.Cmd {
	next := (int(f.focus) + delta + int(fieldCount)) % int(fieldCount)
	return f.focusField(formField(next))
}

// highlight marks a field as missing and moves focus to it.
func (f *consultationForm) highlight(name string) tea.Cmd {
	f.invalid = name
	if field, ok := fieldForKey(name); ok {
		return f.focusField(field)
	}
	return nil
}

// selectedArea returns the title under the picker cursor.
func (f *consultationForm) selectedArea() (string, bool) {
	item, ok := f.areas.SelectedItem().(areaItem)
	if !ok {
		return "", false
	}
	return item.title, true
}

// update forwards msg to the focused widget.
func (f *consultationForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldEmail:
		f.email, cmd = f.email.Update(msg)
	case fieldPhone:
		f.phone, cmd = f.phone.Update(msg)
	case fieldArea:
		f.areas, cmd = f.areas.Update(msg)
	case fieldMessage:
		f.message, cmd = f.message.Update(msg)
	}
	return cmd
}

// values collects the form as intake fields.
func (f *consultationForm) values(state shell.State) map[string]string {
	return map[string]string{
		intake.FieldName:    f.name.Value(),
		intake.FieldEmail:   f.email.Value(),
		intake.FieldPhone:   f.phone.Value(),
		intake.FieldArea:    state.SelectedArea,
		intake.FieldMessage: f.message.Value(),
	}
}

func (f *consultationForm) view(state shell.State, required []string) string {
	isRequired := map[string]bool{}
	for _, name := range required {
		isRequired[name] = true
	}
	label := func(field formField, text string) string {
		if isRequired[field.key()] {
			text += " *"
		}
		switch {
		case f.invalid == field.key():
			return invalidLabelStyle.Render(text + " (required)")
		case f.focus == field:
			return focusedLabelStyle.Render(text)
		default:
			return fieldLabelStyle.Render(text)
		}
	}
	area := "Select Practice Area"
	if state.HasSelection() {
		area = fmt.Sprintf("Practice Area: %s", state.SelectedArea)
	}
	areaBody := fieldLabelStyle.Render("enter to choose")
	if f.focus == fieldArea {
		areaBody = f.areas.View()
	}
	rows := []string{
		focusedLabelStyle.Render("Schedule a Free Consultation"),
		"",
		label(fieldName, "Full Name"), f.name.View(),
		label(fieldEmail, "Email"), f.email.View(),
		label(fieldPhone, "Phone"), f.phone.View(),
		label(fieldArea, area), areaBody,
		label(fieldMessage, "Case Description"), f.message.View(),
		"",
		fieldLabelStyle.Render(strings.Join([]string{"tab → next field", "ctrl+s → submit", "esc → cancel"}, "    ")),
	}
	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
