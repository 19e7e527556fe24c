package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/inbox-admin/internal/binder"
	"github.com/MKhiriev/inbox-admin/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

type adminModel struct {
	ctx       context.Context
	binders   []*binder.Binder
	changes   <-chan struct{}
	buildInfo models.AppBuildInfo

	tab     int
	cursors []int

	form    *formModel
	confirm *confirmModel
	overlay *errorOverlayModel
	info    bool

	spinner spinner.Model
	status  string

	copyToClipboard func(string) error
}

func newAdminModel(ctx context.Context, binders []*binder.Binder, changes <-chan struct{}, buildInfo models.AppBuildInfo) adminModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return adminModel{
		ctx:             ctx,
		binders:         binders,
		changes:         changes,
		buildInfo:       buildInfo,
		cursors:         make([]int, len(binders)),
		spinner:         s,
		copyToClipboard: clipboard.WriteAll,
	}
}

func (m adminModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, m.waitForChange()}
	for i := range m.binders {
		cmds = append(cmds, m.cmdRefresh(i))
	}
	return tea.Batch(cmds...)
}

func (m adminModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case viewChangedMsg:
		m.clampCursors()
		if m.form != nil && !m.current().Editor().Open() {
			m.form = nil
		}
		return m, m.waitForChange()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case refreshDoneMsg:
		if msg.err == nil {
			return m.withStatus("Список обновлён: " + kindTitle(msg.kind))
		}
		return m, nil
	case submitDoneMsg:
		if msg.err == nil {
			if !m.current().Editor().Open() {
				m.form = nil
			}
			return m.withStatus("Запись сохранена")
		}
		// the form stays open with the inline error
		return m, nil
	case deleteDoneMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: fmt.Sprintf("Ошибка удаления %s: %s", msg.id, humanizeError(msg.err))}
			return m, nil
		}
		return m.withStatus("Запись удалена")
	case actionDoneMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: fmt.Sprintf("Ошибка операции %s для %s: %s", msg.action, msg.id, humanizeError(msg.err))}
			return m, nil
		}
		return m.withStatus(actionDoneText(msg.action, msg.id))
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.overlay != nil:
		return m.updateOverlay(keyMsg)
	case m.confirm != nil:
		return m.updateConfirm(keyMsg)
	case m.form != nil:
		return m.updateForm(keyMsg)
	case m.info:
		if key.Matches(keyMsg, keys.esc, keys.enter, keys.info) {
			m.info = false
		}
		return m, nil
	}

	return m.updateList(keyMsg)
}

func (m adminModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := m.current()

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.tab, keys.right):
		m.tab = (m.tab + 1) % len(m.binders)
	case key.Matches(msg, keys.backtab, keys.left):
		m.tab = (m.tab - 1 + len(m.binders)) % len(m.binders)
	case key.Matches(msg, keys.up):
		if m.cursors[m.tab] > 0 {
			m.cursors[m.tab]--
		}
	case key.Matches(msg, keys.down):
		if m.cursors[m.tab] < len(b.View().Items)-1 {
			m.cursors[m.tab]++
		}
	case key.Matches(msg, keys.refresh):
		return m, m.cmdRefresh(m.tab)
	case key.Matches(msg, keys.newItem):
		b.OpenCreate()
		form := newFormModel(b.Kind(), b.Editor())
		m.form = &form
	case key.Matches(msg, keys.edit):
		item, ok := m.selected()
		if !ok {
			return m.withStatus("Нет записей")
		}
		if b.Kind() == models.KindInstances {
			return m.withStatus("Изменение инстансов не поддерживается")
		}
		if err := b.OpenEdit(item.ID); err != nil {
			m.overlay = &errorOverlayModel{message: humanizeError(err)}
			return m, nil
		}
		form := newFormModel(b.Kind(), b.Editor())
		m.form = &form
	case key.Matches(msg, keys.delete):
		item, ok := m.selected()
		if !ok {
			return m.withStatus("Нет записей")
		}
		m.confirm = &confirmModel{id: item.ID, message: itemName(b.Kind(), item)}
	case key.Matches(msg, keys.logout):
		item, ok := m.selected()
		if !ok {
			return m.withStatus("Нет записей")
		}
		if !slices.Contains(b.Actions(), models.InstanceActionLogout) {
			return m.withStatus("Операция недоступна для этого типа записей")
		}
		return m, m.cmdAction(m.tab, item.ID, models.InstanceActionLogout)
	case key.Matches(msg, keys.copy):
		item, ok := m.selected()
		if !ok {
			return m.withStatus("Нечего копировать")
		}
		if err := m.copyToClipboard(item.ID); err != nil {
			m.overlay = &errorOverlayModel{message: fmt.Sprintf("Ошибка копирования: %v", err)}
			return m, nil
		}
		return m.withStatus("Скопировано: " + item.ID)
	case key.Matches(msg, keys.info):
		m.info = true
	case key.Matches(msg, keys.esc):
		b.DismissNotice()
	}

	return m, nil
}

func (m adminModel) updateOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.enter, keys.esc) {
		m.overlay = nil
	}
	return m, nil
}

func (m adminModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		id := m.confirm.id
		m.confirm = nil
		return m, m.cmdDelete(m.tab, id)
	case key.Matches(msg, keys.no, keys.esc):
		m.confirm = nil
	}
	return m, nil
}

func (m adminModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	b := m.current()
	form := *m.form

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			b.CloseEditor()
			m.form = nil
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			form = form.nextField()
			m.form = &form
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			form = form.prevField()
			m.form = &form
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if b.SubmitDisabled() {
				return m.withStatus("Сохранение недоступно: запись ещё изменяется")
			}
			for name, value := range form.values() {
				b.SetField(name, value)
			}
			return m, m.cmdSubmit(m.tab)
		}
	}

	var cmd tea.Cmd
	form, cmd = form.Update(msg)
	m.form = &form
	return m, cmd
}

func (m adminModel) View() string {
	if m.overlay != nil {
		return appStyle.Render(m.overlay.View())
	}
	if m.info {
		return renderBuildInfoWindow(m.buildInfo, m.connectionLines())
	}

	b := m.current()

	if m.form != nil {
		title, body, hotKeys := m.form.View(b.Editor(), b.SubmitDisabled())
		return renderPage(title, body, hotKeys)
	}

	state := b.View()

	var out strings.Builder
	out.WriteString(m.renderTabs())
	out.WriteString("\n")
	out.WriteString("Связь: " + connectionBadge(state.Connection))
	out.WriteString("\n\n")
	out.WriteString(renderList(state, m.cursors[m.tab], m.spinner.View()))

	if m.confirm != nil {
		out.WriteString("\n\n")
		out.WriteString(m.confirm.View())
	}
	if m.status != "" {
		out.WriteString("\n\nСтатус: " + m.status)
	}

	return renderPage("INBOX ADMIN", out.String(), m.hotKeys())
}

func (m adminModel) hotKeys() string {
	hot := "tab: раздел │ ↑/↓: нав. │ n: добавить │ e: изм. │ d: уд. │ r: обновить │ c: копировать id │ i: инфо"
	if slices.Contains(m.current().Actions(), models.InstanceActionLogout) {
		hot += " │ o: выйти из инстанса"
	}
	return hot
}

func (m adminModel) renderTabs() string {
	tabs := make([]string, 0, len(m.binders))
	for i, b := range m.binders {
		title := fmt.Sprintf(" %s ", kindTitle(b.Kind()))
		if i == m.tab {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return strings.Join(tabs, "│")
}

func (m adminModel) connectionLines() []string {
	lines := make([]string, 0, len(m.binders))
	for _, b := range m.binders {
		state := b.View().Connection
		line := kindTitle(b.Kind()) + ": " + connectionBadge(state)
		if state.LastFailure != "" {
			line += " (последняя ошибка: " + state.LastFailure + ")"
		}
		lines = append(lines, line)
	}
	return lines
}

func (m adminModel) current() *binder.Binder {
	return m.binders[m.tab]
}

func (m adminModel) selected() (models.Resource, bool) {
	items := m.current().View().Items
	idx := m.cursors[m.tab]
	if len(items) == 0 || idx < 0 || idx >= len(items) {
		return models.Resource{}, false
	}
	return items[idx], true
}

func (m *adminModel) clampCursors() {
	for i, b := range m.binders {
		n := len(b.View().Items)
		if m.cursors[i] >= n {
			m.cursors[i] = n - 1
		}
		if m.cursors[i] < 0 {
			m.cursors[i] = 0
		}
	}
}

func (m adminModel) withStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m adminModel) waitForChange() tea.Cmd {
	ctx, changes := m.ctx, m.changes
	return func() tea.Msg {
		select {
		case <-changes:
			return viewChangedMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}

func (m adminModel) cmdRefresh(tab int) tea.Cmd {
	ctx, b := m.ctx, m.binders[tab]
	return func() tea.Msg {
		return refreshDoneMsg{kind: b.Kind(), err: b.Refresh(ctx)}
	}
}

func (m adminModel) cmdSubmit(tab int) tea.Cmd {
	ctx, b := m.ctx, m.binders[tab]
	return func() tea.Msg {
		return submitDoneMsg{kind: b.Kind(), err: b.Submit(ctx)}
	}
}

func (m adminModel) cmdDelete(tab int, id string) tea.Cmd {
	ctx, b := m.ctx, m.binders[tab]
	return func() tea.Msg {
		return deleteDoneMsg{kind: b.Kind(), id: id, err: b.Delete(ctx, id)}
	}
}

func (m adminModel) cmdAction(tab int, id, action string) tea.Cmd {
	ctx, b := m.ctx, m.binders[tab]
	return func() tea.Msg {
		return actionDoneMsg{kind: b.Kind(), id: id, action: action, err: b.Action(ctx, id, action)}
	}
}

func itemName(kind models.Kind, r models.Resource) string {
	switch kind {
	case models.KindLabels:
		return models.LabelFromResource(r).Title
	case models.KindInboxes:
		return models.InboxFromResource(r).Name
	default:
		return r.ID
	}
}

func actionDoneText(action, id string) string {
	if action == models.InstanceActionLogout {
		return "Инстанс " + id + " отключён"
	}
	return "Операция " + action + " выполнена"
}
