// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/inbox-admin/internal/adapter"
	"github.com/MKhiriev/inbox-admin/internal/app"
	"github.com/MKhiriev/inbox-admin/internal/cache"
)

// ErrNoBinders is returned by New when there is nothing to show.
var ErrNoBinders = errors.New("нет настроенных сервисов")

// humanizeError returns the Russian text shown in the error overlay.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrUnreachable):
		return "Отсутствует сеть или Сервер недоступен"
	case errors.Is(err, adapter.ErrUnauthenticated):
		return "Токен доступа отсутствует или отклонён. Перезапустите с новым токеном"
	case errors.Is(err, cache.ErrConflict):
		return "Изменение этой записи ещё выполняется"
	case errors.Is(err, cache.ErrNotFound):
		return "Запись не найдена, обновите список"
	case errors.Is(err, cache.ErrUnsupported):
		return "Операция недоступна для этого типа записей"
	default:
		return app.Describe(err)
	}
}
