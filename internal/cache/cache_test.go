// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/inbox-admin/internal/adapter"
	"github.com/MKhiriev/inbox-admin/internal/config"
	"github.com/MKhiriev/inbox-admin/internal/logger"
	"github.com/MKhiriev/inbox-admin/internal/mock"
	"github.com/MKhiriev/inbox-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func label(id, title string) models.Resource {
	return models.Resource{ID: id, Kind: models.KindLabels, Fields: models.Fields{"title": title}}
}

// newTestCache — хелпер: кэш меток поверх мока ResourceAPI, без повторов
func newTestCache(t *testing.T, ctrl *gomock.Controller) (*Cache, *mock.MockResourceAPI) {
	t.Helper()
	api := mock.NewMockResourceAPI(ctrl)
	api.EXPECT().Kind().Return(models.KindLabels).AnyTimes()
	c := New(api, config.Cache{ListRetries: -1}, nil, logger.Nop())
	return c, api
}

// seed наполняет кэш через успешный List
func seed(t *testing.T, c *Cache, api *mock.MockResourceAPI, items ...models.Resource) {
	t.Helper()
	api.EXPECT().List(gomock.Any()).Return(items, nil)
	_, err := c.List(context.Background())
	require.NoError(t, err)
}

// ── List ────────────────────────────────────────────────────────────────────

func TestCache_List_ReplacesSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, api := newTestCache(t, ctrl)

	assert.False(t, c.Loaded())
	seed(t, c, api, label("1", "a"), label("2", "b"))

	api.EXPECT().List(gomock.Any()).Return([]models.Resource{label("3", "c")}, nil)
	snap, err := c.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, snap.IDs())
	assert.Equal(t, []string{"3"}, c.Snapshot().IDs())
	assert.False(t, snap.FetchedAt.IsZero())
	assert.True(t, c.Loaded())
	assert.False(t, c.Loading())
	assert.NoError(t, c.LastError())
}

// HTTP 500 при List не меняет снимок и возвращает RemoteError
func TestCache_List_RemoteErrorKeepsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, api := newTestCache(t, ctrl)
	seed(t, c, api, label("1", "a"))

	api.EXPECT().List(gomock.Any()).Return(nil, &adapter.RemoteError{Status: 500, Message: "boom"})
	_, err := c.List(context.Background())

	var remoteErr *adapter.RemoteError
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, 500, remoteErr.Status)
	assert.Equal(t, []string{"1"}, c.Snapshot().IDs())
	assert.Equal(t, err, c.LastError())
	assert.True(t, c.Loaded())
}

func TestCache_List_DuplicateIDsFirstWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, api := newTestCache(t, ctrl)

	seed(t, c, api, label("1", "first"), label("2", "b"), label("1", "second"))

	snap := c.Snapshot()
	assert.Equal(t, []string{"1", "2"}, snap.IDs())
	first, _ := snap.Find("1")
	assert.Equal(t, "first", first.Fields.String("title"))
}

// более ранний ответ, пришедший позже, отбрасывается
func TestCache_List_LastRequestWins_StaleResponseLate(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, api := newTestCache(t, ctrl)

	started := make(chan struct{})
	release := make(chan struct{})

	gomock.InOrder(
		api.EXPECT().List(gomock.Any()).DoAndReturn(func(context.Context) ([]models.Resource, error) {
			close(started)
			<-release
			return []models.Resource{label("old", "A")}, nil
		}),
		api.EXPECT().List(gomock.Any()).Return([]models.Resource{label("new", "B")}, nil),
	)

	var (
		wg       sync.WaitGroup
		firstErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = c.List(context.Background())
	}()

	<-started
	assert.True(t, c.Loading())

	snap, err := c.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, snap.IDs())

	close(release)
	wg.Wait()

	assert.ErrorIs(t, firstErr, ErrSuperseded)
	assert.Equal(t, []string{"new"}, c.Snapshot().IDs())
	assert.False(t, c.Loading())
}

// ответ на ранний запрос пришёл раньше, но уже был вытеснен новым запросом
func TestCache_List_LastRequestWins_StaleResponseEarly(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, api := newTestCache(t, ctrl)

	firstStarted := make(chan struct{})
	secondStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	releaseSecond := make(chan struct{})

	gomock.InOrder(
		api.EXPECT().List(gomock.Any()).DoAndReturn(func(context.Context) ([]models.Resource, error) {
			close(firstStarted)
			<-releaseFirst
			return []models.Resource{label("old", "A")}, nil
		}),
		api.EXPECT().List(gomock.Any()).DoAndReturn(func(context.Context) ([]models.Resource, error) {
			close(secondStarted)
			<-releaseSecond
			return []models.Resource{label("new", "B")}, nil
		}),
	)

	firstDone := make(chan error, 1)
	secondDone := make(chan error, 1)
	go func() {
		_, err := c.List(context.Background())
		firstDone <- err
	}()
	<-firstStarted
	go func() {
		_, err := c.List(context.Background())
		secondDone <- err
	}()
	<-secondStarted

	// первый вызов завершается, но снимок не трогает
	close(releaseFirst)
	assert.ErrorIs(t, <-firstDone, ErrSuperseded)
	assert.Equal(t, 0, c.Snapshot().Len())
	assert.True(t, c.Loading())

	close(releaseSecond)
	require.NoError(t, <-secondDone)
	assert.Equal(t, []string{"new"}, c.Snapshot().IDs())
	assert.False(t, c.Loading())
}

func TestCache_List_RetriesUnreachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockResourceAPI(ctrl)
	api.EXPECT().Kind().Return(models.KindLabels).AnyTimes()
	c := New(api, config.Cache{ListRetries: 2, RetryBaseDelay: time.Millisecond}, nil, logger.Nop())

	unreachable := fmt.Errorf("%w: dial tcp", adapter.ErrUnreachable)
	gomock.InOrder(
		api.EXPECT().List(gomock.Any()).Return(nil, unreachable),
		api.EXPECT().List(gomock.Any()).Return(nil, unreachable),
		api.EXPECT().List(gomock.Any()).Return([]models.Resource{label("1", "a")}, nil),
	)

	snap, err := c.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, snap.IDs())
}

func TestCache_List_RetriesExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockResourceAPI(ctrl)
	api.EXPECT().Kind().Return(models.KindLabels).AnyTimes()
	c := New(api, config.Cache{ListRetries: 1, RetryBaseDelay: time.Millisecond}, nil, logger.Nop())

	unreachable := fmt.Errorf("%w: dial tcp", adapter.ErrUnreachable)
	api.EXPECT().List(gomock.Any()).Return(nil, unreachable).Times(2)

	_, err := c.List(context.Background())
	assert.ErrorIs(t, err, adapter.ErrUnreachable)
	assert.False(t, c.Loaded())
}

// ошибки аутентификации не повторяются
func TestCache_List_DoesNotRetryTerminal(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockResourceAPI(ctrl)
	api.EXPECT().Kind().Return(models.KindLabels).AnyTimes()
	c := New(api, config.Cache{ListRetries: 3, RetryBaseDelay: time.Millisecond}, nil, logger.Nop())

	api.EXPECT().List(gomock.Any()).Return(nil, adapter.ErrUnauthenticated).Times(1)

	_, err := c.List(context.Background())
	assert.ErrorIs(t, err, adapter.ErrUnauthenticated)
}

func TestCache_List_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, api := newTestCache(t, ctrl)
	api.EXPECT().List(gomock.Any()).Return(nil, fmt.Errorf("%w: context canceled", adapter.ErrUnreachable)).MaxTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.List(ctx)
	assert.ErrorIs(t, err, adapter.ErrUnreachable)
}

// ── Create ──────────────────────────────────────────────────────────────────

func TestCache_Create_AppendsAfterSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, api := newTestCache(t, ctrl)
	seed(t, c, api, label("1", "a"))

	api.EXPECT().Create(gomock.Any(), models.Fields{"title": "b"}).Return(label("2", "b"), nil)

	got, err := c.Create(context.Background(), models.Fields{"title": "b"})
	require.NoError(t, err)
	assert.Equal(t, "2", got.ID)
	assert.Equal(t, []string{"1", "2"}, c.Snapshot().IDs())
	assert.False(t, c.Creating())
}

func TestCache_Create_ExistingIDReplaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, api := newTestCache(t, ctrl)
	seed(t, c, api, label("1", "a"), label("2", "b"))

	api.EXPECT().Create(gomock.Any(), gomock.Any()).Return(label("1", "fresh"), nil)

	_, err := c.Create(context.Background(), models.Fields{"title": "fresh"})
	require.NoError(t, err)

	snap := c.Snapshot()
	assert.Equal(t, []string{"1", "2"}, snap.IDs())
	r, _ := snap.Find("1")
	assert.Equal(t, "fresh", r.Fields.String("title"))
}

func TestCache_Create_FailureKeepsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, api := newTestCache(t, ctrl)
	seed(t, c, api, label("1", "a"))

	api.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Resource{}, &adapter.RemoteError{Status: 422, Message: "invalid"})

	_, err := c.Create(context.Background(), models.Fields{"title": ""})
	assert.Error(t, err)
	assert.Equal(t, []string{"1"}, c.Snapshot().IDs())
}

// create → list: созданный ресурс присутствует в новом снимке
func TestCache_CreateThenList_RoundTrip(t *testing.T) {
	server := newMemoryAPI(models.KindLabels)
	c := New(server, config.Cache{ListRetries: -1}, nil, logger.Nop())

	_, err := c.List(context.Background())
	require.NoError(t, err)

	created, err := c.Create(context.Background(), models.Fields{"title": "vip"})
	require.NoError(t, err)

	snap, err := c.List(context.Background())
	require.NoError(t, err)
	_, ok := snap.Find(created.ID)
	assert.True(t, ok)
}

// ── Update ──────────────────────────────────────────────────────────────────

// отсутствующий id отклоняется без сетевого вызова
func TestCache_Update_NotFoundWithoutNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, api := newTestCache(t, ctrl)
	seed(t, c, api, label("1", "a"))

	_, err := c.Update(context.Background(), "missing", models.Fields{"title": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestCache_Update_ReplacesInPlace(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, api := newTestCache(t, ctrl)
	seed(t, c, api, label("1", "a"), label("2", "b"), label("3", "c"))

	api.EXPECT().Update(gomock.Any(), "2", models.Fields{"title": "B"}).Return(label("2", "B"), nil)

	_, err := c.Update(context.Background(), "2", models.Fields{"title": "B"})
	require.NoError(t, err)

	snap := c.Snapshot()
	assert.Equal(t, []string{"1", "2", "3"}, snap.IDs())
	assert.Equal(t, "B", snap.Items[1].Fields.String("title"))
	assert.False(t, c.Pending("2"))
}

func TestCache_Update_RemoteFailureKeepsEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, api := newTestCache(t, ctrl)
	seed(t, c, api, label("1", "a"))

	api.EXPECT().Update(gomock.Any(), "1", gomock.Any()).Return(models.Resource{}, adapter.ErrUnreachable)

	_, err := c.Update(context.Background(), "1", models.Fields{"title": "x"})
	assert.ErrorIs(t, err, adapter.ErrUnreachable)

	r, ok := c.Get("1")
	require.True(t, ok)
	assert.Equal(t, "a", r.Fields.String("title"))
}

// вторая мутация того же id во время первой — Conflict
func TestCache_ConcurrentMutationSameID_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, api := newTestCache(t, ctrl)
	seed(t, c, api, label("1", "a"), label("2", "b"))

	started := make(chan struct{})
	release := make(chan struct{})
	api.EXPECT().Update(gomock.Any(), "1", gomock.Any()).DoAndReturn(
		func(context.Context, string, models.Fields) (models.Resource, error) {
			close(started)
			<-release
			return label("1", "A"), nil
		})
	api.EXPECT().Delete(gomock.Any(), "2").Return(nil)

	done := make(chan error, 1)
	go func() {
		_, err := c.Update(context.Background(), "1", models.Fields{"title": "A"})
		done <- err
	}()
	<-started

	assert.True(t, c.Pending("1"))

	_, err := c.Update(context.Background(), "1", models.Fields{"title": "other"})
	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorIs(t, c.Delete(context.Background(), "1"), ErrConflict)

	// другой id не блокируется
	assert.NoError(t, c.Delete(context.Background(), "2"))

	close(release)
	require.NoError(t, <-done)
	assert.False(t, c.Pending("1"))
}

// ── Delete ──────────────────────────────────────────────────────────────────

func TestCache_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, api := newTestCache(t, ctrl)
	seed(t, c, api, label("1", "a"), label("2", "b"))

	api.EXPECT().Delete(gomock.Any(), "1").Return(&adapter.RemoteError{Status: 500, Message: "boom"})
	assert.Error(t, c.Delete(context.Background(), "1"))
	assert.Equal(t, []string{"1", "2"}, c.Snapshot().IDs())

	api.EXPECT().Delete(gomock.Any(), "1").Return(nil)
	require.NoError(t, c.Delete(context.Background(), "1"))
	assert.Equal(t, []string{"2"}, c.Snapshot().IDs())

	assert.ErrorIs(t, c.Delete(context.Background(), "1"), ErrNotFound)
}

// ── Action ──────────────────────────────────────────────────────────────────

type actionResourceAPI struct {
	*mock.MockResourceAPI
	*mock.MockActionAPI
}

func TestCache_Action_Unsupported(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, api := newTestCache(t, ctrl)
	seed(t, c, api, label("1", "a"))

	_, err := c.Action(context.Background(), "1", models.InstanceActionLogout)
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Empty(t, c.Actions())
}

func TestCache_Action_MergesFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	resources := mock.NewMockResourceAPI(ctrl)
	actions := mock.NewMockActionAPI(ctrl)
	resources.EXPECT().Kind().Return(models.KindInstances).AnyTimes()
	actions.EXPECT().Actions().Return([]string{models.InstanceActionLogout}).AnyTimes()

	c := New(actionResourceAPI{resources, actions}, config.Cache{ListRetries: -1}, nil, logger.Nop())

	resources.EXPECT().List(gomock.Any()).Return([]models.Resource{{
		ID:     "main",
		Kind:   models.KindInstances,
		Fields: models.Fields{"name": "main", "connectionStatus": models.InstanceOpen},
	}}, nil)
	_, err := c.List(context.Background())
	require.NoError(t, err)

	actions.EXPECT().Action(gomock.Any(), "main", models.InstanceActionLogout).
		Return(models.Fields{"connectionStatus": models.InstanceClose}, nil)

	got, err := c.Action(context.Background(), "main", models.InstanceActionLogout)
	require.NoError(t, err)
	assert.Equal(t, models.InstanceClose, got.Fields.String("connectionStatus"))
	assert.Equal(t, "main", got.Fields.String("name"))

	_, err = c.Action(context.Background(), "other", models.InstanceActionLogout)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.Action(context.Background(), "main", "restart")
	assert.ErrorIs(t, err, ErrUnsupported)
}

// ── Snapshot isolation and events ───────────────────────────────────────────

// инстанс пропал из списка, пока выполнялся logout: возвращаются поля от сервера, а не пустой ресурс
func TestCache_Action_IDRemovedByConcurrentList(t *testing.T) {
	ctrl := gomock.NewController(t)
	resources := mock.NewMockResourceAPI(ctrl)
	actions := mock.NewMockActionAPI(ctrl)
	resources.EXPECT().Kind().Return(models.KindInstances).AnyTimes()
	actions.EXPECT().Actions().Return([]string{models.InstanceActionLogout}).AnyTimes()

	c := New(actionResourceAPI{resources, actions}, config.Cache{ListRetries: -1}, nil, logger.Nop())

	resources.EXPECT().List(gomock.Any()).Return([]models.Resource{{
		ID: "main", Kind: models.KindInstances, Fields: models.Fields{"connectionStatus": models.InstanceOpen},
	}}, nil)
	_, err := c.List(context.Background())
	require.NoError(t, err)

	resources.EXPECT().List(gomock.Any()).Return([]models.Resource{}, nil)
	actions.EXPECT().Action(gomock.Any(), "main", models.InstanceActionLogout).DoAndReturn(
		func(ctx context.Context, _, _ string) (models.Fields, error) {
			_, listErr := c.List(ctx)
			require.NoError(t, listErr)
			return models.Fields{"connectionStatus": models.InstanceClose}, nil
		})

	got, err := c.Action(context.Background(), "main", models.InstanceActionLogout)
	require.NoError(t, err)
	assert.Equal(t, "main", got.ID)
	assert.Equal(t, models.KindInstances, got.Kind)
	assert.Equal(t, models.InstanceClose, got.Fields.String("connectionStatus"))
	assert.Zero(t, c.Snapshot().Len())
	assert.False(t, c.Pending("main"))
}

func TestCache_State(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, api := newTestCache(t, ctrl)

	state := c.State()
	assert.False(t, state.Loading)
	assert.False(t, state.Loaded)
	assert.NoError(t, state.LastErr)
	assert.Zero(t, state.Snapshot.Len())

	seed(t, c, api, label("1", "a"))

	started := make(chan struct{})
	release := make(chan struct{})
	api.EXPECT().List(gomock.Any()).DoAndReturn(func(context.Context) ([]models.Resource, error) {
		close(started)
		<-release
		return nil, &adapter.RemoteError{Status: 500, Message: "boom"}
	})

	done := make(chan error, 1)
	go func() {
		_, err := c.List(context.Background())
		done <- err
	}()
	<-started

	state = c.State()
	assert.True(t, state.Loading)
	assert.True(t, state.Loaded)
	assert.NoError(t, state.LastErr)
	assert.Equal(t, []string{"1"}, state.Snapshot.IDs())

	close(release)
	require.Error(t, <-done)

	state = c.State()
	assert.False(t, state.Loading)
	assert.True(t, state.Loaded)
	assert.Equal(t, 500, adapter.StatusOf(state.LastErr))
	assert.Equal(t, []string{"1"}, state.Snapshot.IDs())

	// снимок из State не связан с кэшем
	state.Snapshot.Items[0].Fields["title"] = "mutated"
	assert.Equal(t, "a", c.Snapshot().Items[0].Fields.String("title"))
}

func TestCache_SnapshotIsDeepCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, api := newTestCache(t, ctrl)
	seed(t, c, api, label("1", "a"))

	snap := c.Snapshot()
	snap.Items[0].Fields["title"] = "mutated"
	snap.Items = append(snap.Items, label("2", "b"))

	got := c.Snapshot()
	assert.Equal(t, []string{"1"}, got.IDs())
	assert.Equal(t, "a", got.Items[0].Fields.String("title"))
}

// вложенные объекты из JSON тоже копируются: изменение снимка не трогает кэш
func TestCache_SnapshotCopiesNestedValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, api := newTestCache(t, ctrl)

	item := models.Resource{ID: "1", Kind: models.KindLabels, Fields: models.Fields{
		"title":   "a",
		"channel": map[string]any{"type": "api", "hooks": []any{"one"}},
		"working_hours": []any{
			map[string]any{"day_of_week": float64(1), "closed_all_day": false},
		},
	}}
	seed(t, c, api, item)

	snap := c.Snapshot()
	channel := snap.Items[0].Fields["channel"].(map[string]any)
	channel["type"] = "mutated"
	channel["hooks"].([]any)[0] = "mutated"
	snap.Items[0].Fields["working_hours"].([]any)[0].(map[string]any)["closed_all_day"] = true

	got, ok := c.Get("1")
	require.True(t, ok)
	gotChannel := got.Fields["channel"].(map[string]any)
	assert.Equal(t, "api", gotChannel["type"])
	assert.Equal(t, []any{"one"}, gotChannel["hooks"])
	assert.Equal(t, false, got.Fields["working_hours"].([]any)[0].(map[string]any)["closed_all_day"])

	// копия, полученная через Get, тоже независима
	got.Fields["channel"].(map[string]any)["type"] = "mutated"
	again := c.Snapshot()
	assert.Equal(t, "api", again.Items[0].Fields["channel"].(map[string]any)["type"])
}

func TestCache_Events(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, api := newTestCache(t, ctrl)

	var events []EventType
	unsubscribe := c.Subscribe(func(e Event) {
		assert.Equal(t, models.KindLabels, e.Kind)
		events = append(events, e.Type)
	})

	seed(t, c, api, label("1", "a"))
	api.EXPECT().Delete(gomock.Any(), "1").Return(nil)
	require.NoError(t, c.Delete(context.Background(), "1"))

	unsubscribe()
	unsubscribe()
	seed(t, c, api)

	assert.Equal(t, []EventType{EventListStarted, EventListDone, EventMutationStarted, EventMutationDone}, events)
}

// ── Registry ────────────────────────────────────────────────────────────────

func TestRegistry(t *testing.T) {
	labels := New(newMemoryAPI(models.KindLabels), config.Cache{ListRetries: -1}, nil, nil)
	inboxes := New(newMemoryAPI(models.KindInboxes), config.Cache{ListRetries: -1}, nil, nil)

	r := NewRegistry(labels, inboxes)

	assert.Equal(t, []models.Kind{models.KindLabels, models.KindInboxes}, r.Kinds())
	got, ok := r.Get(models.KindInboxes)
	require.True(t, ok)
	assert.Same(t, inboxes, got)
	_, ok = r.Get(models.KindInstances)
	assert.False(t, ok)

	require.NoError(t, r.RefreshAll(context.Background()))
	assert.True(t, labels.Loaded())
	assert.True(t, inboxes.Loaded())
}

// memoryAPI — простая in-memory реализация ResourceAPI, имитирующая сервер
type memoryAPI struct {
	kind   models.Kind
	mu     sync.Mutex
	items  []models.Resource
	nextID int
}

func newMemoryAPI(kind models.Kind) *memoryAPI {
	return &memoryAPI{kind: kind}
}

func (m *memoryAPI) Kind() models.Kind { return m.kind }

func (m *memoryAPI) List(context.Context) ([]models.Resource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Resource, len(m.items))
	for i, item := range m.items {
		out[i] = item.Clone()
	}
	return out, nil
}

func (m *memoryAPI) Create(_ context.Context, fields models.Fields) (models.Resource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	r := models.Resource{ID: fmt.Sprint(m.nextID), Kind: m.kind, Fields: fields.Clone()}
	m.items = append(m.items, r)
	return r.Clone(), nil
}

func (m *memoryAPI) Update(_ context.Context, id string, fields models.Fields) (models.Resource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Fields = m.items[i].Fields.Merge(fields)
			return m.items[i].Clone(), nil
		}
	}
	return models.Resource{}, adapter.ErrNotFound
}

func (m *memoryAPI) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return adapter.ErrNotFound
}
