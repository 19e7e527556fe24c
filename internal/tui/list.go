package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/inbox-admin/internal/binder"
	"github.com/MKhiriev/inbox-admin/models"
)

func kindTitle(kind models.Kind) string {
	switch kind {
	case models.KindLabels:
		return "Метки"
	case models.KindInboxes:
		return "Входящие"
	case models.KindInstances:
		return "Инстансы"
	default:
		return kind.Title()
	}
}

func connectionBadge(state models.ConnectionState) string {
	switch state.Status {
	case models.Connected:
		return connectedStyle.Render("● подключено")
	case models.Connecting:
		return connectingStyle.Render("◌ подключение...")
	case models.Disconnected:
		return disconnectedStyle.Render("○ нет связи")
	case models.Error:
		return disconnectedStyle.Render("✕ ошибка авторизации")
	default:
		return state.Status.String()
	}
}

func listHeader(kind models.Kind) string {
	switch kind {
	case models.KindLabels:
		return "ID     │ Название             │ Цвет     │ Описание"
	case models.KindInboxes:
		return "ID     │ Название             │ Канал            │ Приветствие"
	case models.KindInstances:
		return "Имя                  │ Статус       │ Владелец"
	default:
		return "ID"
	}
}

func listRow(kind models.Kind, r models.Resource) string {
	switch kind {
	case models.KindLabels:
		l := models.LabelFromResource(r)
		return fmt.Sprintf("%-6s │ %s │ %-8s │ %s",
			fitText(l.ID, 6), padRight(fitText(l.Title, 20), 20), valueOrDash(l.Color), fitText(valueOrDash(l.Description), 30))
	case models.KindInboxes:
		in := models.InboxFromResource(r)
		return fmt.Sprintf("%-6s │ %s │ %s │ %s",
			fitText(in.ID, 6), padRight(fitText(in.Name, 20), 20), padRight(fitText(valueOrDash(in.ChannelType), 16), 16), fitText(valueOrDash(in.GreetingMessage), 30))
	case models.KindInstances:
		inst := models.InstanceFromResource(r)
		return fmt.Sprintf("%s │ %s │ %s",
			padRight(fitText(inst.Name, 20), 20), padRight(instanceStatusLabel(inst.Status), 12), valueOrDash(inst.Owner))
	default:
		return r.ID
	}
}

func instanceStatusLabel(status string) string {
	switch status {
	case models.InstanceOpen:
		return "подключён"
	case models.InstanceClose:
		return "отключён"
	case models.InstanceConnecting:
		return "подключение"
	default:
		return valueOrDash(status)
	}
}

// renderList renders the body of one tab: the rendering mode chosen by the
// binder, banners and the item table.
func renderList(state binder.ViewState, cursor int, spinnerView string) string {
	var b strings.Builder

	if state.Uncertain {
		b.WriteString(bannerStyle.Render("Данные могут быть неактуальны: нет подтверждённой связи с сервисом"))
		b.WriteString("\n")
	}
	if state.ReauthRequired {
		b.WriteString(errorStyle.Render("Требуется повторная авторизация"))
		b.WriteString("\n")
	}
	if state.Banner != "" {
		b.WriteString(bannerStyle.Render(state.Banner))
		b.WriteString("\n")
	}
	if state.Notice != "" {
		b.WriteString(errorStyle.Render(state.Notice))
		b.WriteString("\n")
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}

	switch state.Kind {
	case binder.ViewLoading:
		b.WriteString(spinnerView + " Загрузка списка...\n")
		if len(state.Items) == 0 {
			break
		}
		b.WriteString("\n")
		writeRows(&b, state, cursor)
	case binder.ViewError:
		b.WriteString(errorStyle.Render("Ошибка: " + state.Message))
		b.WriteString("\n")
		if state.Retryable {
			b.WriteString("Нажмите r, чтобы повторить\n")
		}
	case binder.ViewEmpty:
		b.WriteString("Записей нет\n")
	case binder.ViewPopulated:
		writeRows(&b, state, cursor)
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeRows(b *strings.Builder, state binder.ViewState, cursor int) {
	b.WriteString("  " + listHeader(state.Resource) + "\n")
	b.WriteString("  " + uiDivider + "\n")
	for i, item := range state.Items {
		prefix := "  "
		if i == cursor {
			prefix = "> "
		}
		b.WriteString(prefix + listRow(state.Resource, item) + "\n")
	}
}
