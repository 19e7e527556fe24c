package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/inbox-admin/internal/binder"
	"github.com/MKhiriev/inbox-admin/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formField struct {
	name    string
	label   string
	boolean bool
}

// formFields returns the editable fields of kind. Some fields can only be
// set on create.
func formFields(kind models.Kind, mode binder.EditorMode) []formField {
	switch kind {
	case models.KindLabels:
		return []formField{
			{name: "title", label: "Название"},
			{name: "description", label: "Описание"},
			{name: "color", label: "Цвет (#rrggbb)"},
			{name: "show_on_sidebar", label: "В боковой панели (да/нет)", boolean: true},
		}
	case models.KindInboxes:
		fields := []formField{{name: "name", label: "Название"}}
		if mode == binder.EditorCreate {
			fields = append(fields, formField{name: "channel_type", label: "Тип канала (api/web_widget)"})
		}
		return append(fields,
			formField{name: "greeting_enabled", label: "Приветствие включено (да/нет)", boolean: true},
			formField{name: "greeting_message", label: "Текст приветствия"},
		)
	case models.KindInstances:
		return []formField{
			{name: "instanceName", label: "Имя инстанса"},
			{name: "integration", label: "Интеграция"},
		}
	default:
		return nil
	}
}

type formModel struct {
	kind   models.Kind
	mode   binder.EditorMode
	fields []formField
	inputs []textinput.Model
	focus  int
}

func newFormModel(kind models.Kind, editor binder.Editor) formModel {
	fields := formFields(kind, editor.Mode)
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].Placeholder = f.label
		if f.boolean {
			inputs[i].SetValue(boolText(editor.Fields.Bool(f.name)))
		} else {
			inputs[i].SetValue(editor.Fields.String(f.name))
		}
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}

	return formModel{kind: kind, mode: editor.Mode, fields: fields, inputs: inputs}
}

// values returns the typed form values. Empty optional text fields are
// left out on create.
func (m formModel) values() models.Fields {
	values := models.Fields{}
	for i, f := range m.fields {
		raw := strings.TrimSpace(m.inputs[i].Value())
		switch {
		case f.boolean:
			values[f.name] = parseBool(raw)
		case raw == "" && m.mode == binder.EditorCreate && i > 0:
		default:
			values[f.name] = raw
		}
	}
	return values
}

func (m formModel) nextField() formModel {
	if len(m.inputs) == 0 {
		return m
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m formModel) prevField() formModel {
	if len(m.inputs) == 0 {
		return m
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	if len(m.inputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m formModel) View(editor binder.Editor, submitDisabled bool) (title, body, hotKeys string) {
	title = "НОВАЯ ЗАПИСЬ: " + strings.ToUpper(kindTitle(m.kind))
	if m.mode == binder.EditorEdit {
		title = "ИЗМЕНЕНИЕ ЗАПИСИ: " + editor.ID
	}

	width := 0
	for _, f := range m.fields {
		width = max(width, len([]rune(f.label)))
	}

	var b strings.Builder
	for i, f := range m.fields {
		fmt.Fprintf(&b, "%s : [ %s ]\n", padRight(f.label, width), m.inputs[i].View())
	}

	switch {
	case editor.Submitting:
		b.WriteString("\nСохранение...\n")
	case submitDisabled:
		b.WriteString("\nСохранение недоступно: запись ещё изменяется\n")
	}
	if editor.Err != "" {
		b.WriteString("\n" + errorStyle.Render("Ошибка: "+editor.Err) + "\n")
	}

	return title, strings.TrimRight(b.String(), "\n"), "tab: след. поле │ shift+tab: пред. поле │ enter: сохранить │ esc: отмена"
}

func boolText(v bool) string {
	if v {
		return "да"
	}
	return "нет"
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "да", "д", "yes", "y", "true", "1", "+":
		return true
	default:
		return false
	}
}
