// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/inbox-admin/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, connections []string) string {
	var b strings.Builder

	b.WriteString("Название приложения: inbox-admin\n")
	b.WriteString("Версия: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Дата: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Коммит: ")
	b.WriteString(valueOrNA(info.BuildCommit()))

	if len(connections) > 0 {
		b.WriteString("\n\n[ ПОДКЛЮЧЕНИЯ ]\n")
		b.WriteString(strings.Join(connections, "\n"))
	}

	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", b.String(), "esc: назад")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
