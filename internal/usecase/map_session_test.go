package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adygyes-guide/internal/domain"
	apperrors "github.com/adygyes-guide/internal/pkg/errors"
	"github.com/adygyes-guide/internal/usecase"
)

// fakeStream - управляемая тестом подписка хранилища
type fakeStream struct {
	snapshots chan []domain.Attraction
	errs      chan error
}

func (fs *fakeStream) emit(attractions []domain.Attraction) {
	fs.snapshots <- attractions
}

func (fs *fakeStream) fail(err error) {
	fs.errs <- err
	close(fs.errs)
	close(fs.snapshots)
}

// fakeRepository отдаёт управляемые потоки и ведёт учёт открытых подписок
type fakeRepository struct {
	mu          sync.Mutex
	count       int
	watchAllCnt int
	searches    []string
	streams     []*fakeStream
}

func (r *fakeRepository) openStream() *domain.AttractionStream {
	fs := &fakeStream{
		snapshots: make(chan []domain.Attraction, 4),
		errs:      make(chan error, 1),
	}

	r.mu.Lock()
	r.streams = append(r.streams, fs)
	r.mu.Unlock()

	return domain.NewAttractionStream(fs.snapshots, fs.errs, func() {})
}

func (r *fakeRepository) WatchAll(ctx context.Context) *domain.AttractionStream {
	r.mu.Lock()
	r.watchAllCnt++
	r.mu.Unlock()
	return r.openStream()
}

func (r *fakeRepository) WatchSearch(ctx context.Context, query string) *domain.AttractionStream {
	r.mu.Lock()
	r.searches = append(r.searches, query)
	r.mu.Unlock()
	return r.openStream()
}

func (r *fakeRepository) WatchByCategory(ctx context.Context, category domain.Category) *domain.AttractionStream {
	return r.openStream()
}

func (r *fakeRepository) WatchOfflineAvailable(ctx context.Context) *domain.AttractionStream {
	return r.openStream()
}

func (r *fakeRepository) GetByID(ctx context.Context, id int64) (*domain.Attraction, error) {
	return nil, apperrors.ErrAttractionNotFound
}

func (r *fakeRepository) Upsert(ctx context.Context, attraction domain.Attraction) error { return nil }

func (r *fakeRepository) UpsertMany(ctx context.Context, attractions []domain.Attraction) error {
	return nil
}

func (r *fakeRepository) Delete(ctx context.Context, attraction domain.Attraction) error { return nil }

func (r *fakeRepository) DeleteAll(ctx context.Context) error { return nil }

func (r *fakeRepository) Count(ctx context.Context) (int, error) {
	return r.count, nil
}

// stream возвращает n-ю открытую подписку, дожидаясь её появления
func (r *fakeRepository) stream(t *testing.T, n int) *fakeStream {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		r.mu.Lock()
		if len(r.streams) >= n {
			fs := r.streams[n-1]
			r.mu.Unlock()
			return fs
		}
		r.mu.Unlock()
		time.Sleep(5 * time.Millisecond)
	}

	t.Fatalf("subscription %d was never opened", n)
	return nil
}

// fakeLocator - управляемый коллаборатор геолокации
type fakeLocator struct {
	hasPermission  bool
	grantOnRequest bool
	requestErr     error
	location       *domain.Location
	locationErr    error
}

func (l *fakeLocator) HasPermission(ctx context.Context) bool {
	return l.hasPermission
}

func (l *fakeLocator) RequestPermission(ctx context.Context) (bool, error) {
	return l.grantOnRequest, l.requestErr
}

func (l *fakeLocator) CurrentLocation(ctx context.Context) (*domain.Location, error) {
	return l.location, l.locationErr
}

var sessionConfig = usecase.SessionConfig{
	DefaultCenter: domain.Location{Latitude: 44.609764, Longitude: 40.100516},
	DefaultZoom:   10,
	MaxZoom:       21,
}

func sampleAttractions() []domain.Attraction {
	return []domain.Attraction{
		{ID: 1, Name: "Хаджохская теснина", Category: domain.CategoryNature, Latitude: 44.287305, Longitude: 40.173219},
		{ID: 2, Name: "Национальный музей", Category: domain.CategoryCultural, Latitude: 44.609764, Longitude: 40.100516},
		{ID: 3, Name: "Монастырь", Category: domain.CategoryHistorical, Latitude: 44.330833, Longitude: 40.268889},
	}
}

// newTestSession wires a session with fakes; count>0 makes bootstrap a no-op
func newTestSession(t *testing.T, repo *fakeRepository, locator *fakeLocator) *usecase.MapSession {
	t.Helper()

	if locator == nil {
		locator = &fakeLocator{}
	}
	repo.count = 3

	bootstrap := usecase.NewBootstrapUseCase(repo, "unused.json", zap.NewNop())
	session := usecase.NewMapSession(repo, locator, bootstrap, sessionConfig, zap.NewNop())
	t.Cleanup(session.Close)

	return session
}

func waitForState(t *testing.T, session *usecase.MapSession, cond func(usecase.MapState) bool) usecase.MapState {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		state := session.State()
		if cond(state) {
			return state
		}
		time.Sleep(5 * time.Millisecond)
	}

	t.Fatal("state condition never met")
	return usecase.MapState{}
}

func TestMapSession_InitialState(t *testing.T) {
	session := newTestSession(t, &fakeRepository{}, nil)

	state := session.State()
	assert.Empty(t, state.Attractions)
	assert.Nil(t, state.SelectedAttraction)
	assert.False(t, state.IsLoading)
	assert.Empty(t, state.ErrorMessage)
	assert.False(t, state.IsMapReady)
	assert.Len(t, state.SelectedCategories, 6)
	assert.Equal(t, sessionConfig.DefaultCenter, state.Camera.Center)
	assert.Equal(t, 10.0, state.Camera.Zoom)
}

func TestMapSession_OpenLoadsAttractions(t *testing.T) {
	repo := &fakeRepository{}
	session := newTestSession(t, repo, nil)

	session.Open(context.Background())

	state := session.State()
	assert.True(t, state.IsLoading)

	repo.stream(t, 1).emit(sampleAttractions())

	state = waitForState(t, session, func(st usecase.MapState) bool {
		return !st.IsLoading
	})
	assert.Len(t, state.Attractions, 3)
	assert.Empty(t, state.ErrorMessage)
}

func TestMapSession_StreamErrorKeepsLastList(t *testing.T) {
	repo := &fakeRepository{}
	session := newTestSession(t, repo, nil)

	session.Open(context.Background())
	repo.stream(t, 1).emit(sampleAttractions())

	waitForState(t, session, func(st usecase.MapState) bool {
		return len(st.Attractions) == 3
	})

	repo.stream(t, 1).fail(apperrors.ErrDatabaseError)

	state := waitForState(t, session, func(st usecase.MapState) bool {
		return st.ErrorMessage != ""
	})
	assert.Equal(t, apperrors.ErrDatabaseError.Message, state.ErrorMessage)
	// Последний удачный список остаётся на экране
	assert.Len(t, state.Attractions, 3)
	assert.False(t, state.IsLoading)
}

func TestMapSession_RetryAfterError(t *testing.T) {
	repo := &fakeRepository{}
	session := newTestSession(t, repo, nil)

	session.Open(context.Background())
	repo.stream(t, 1).fail(apperrors.ErrDatabaseError)

	waitForState(t, session, func(st usecase.MapState) bool {
		return st.ErrorMessage != ""
	})

	session.Retry()

	state := session.State()
	assert.True(t, state.IsLoading)
	assert.Empty(t, state.ErrorMessage)

	repo.stream(t, 2).emit(sampleAttractions())

	state = waitForState(t, session, func(st usecase.MapState) bool {
		return len(st.Attractions) == 3
	})
	assert.False(t, state.IsLoading)
}

func TestMapSession_SelectAndDismiss(t *testing.T) {
	repo := &fakeRepository{}
	session := newTestSession(t, repo, nil)

	session.Open(context.Background())
	repo.stream(t, 1).emit(sampleAttractions())

	waitForState(t, session, func(st usecase.MapState) bool {
		return len(st.Attractions) == 3
	})

	session.OnAttractionSelected(2)
	state := session.State()
	require.NotNil(t, state.SelectedAttraction)
	assert.Equal(t, int64(2), state.SelectedAttraction.ID)

	session.DismissSelection()
	assert.Nil(t, session.State().SelectedAttraction)
}

func TestMapSession_StaleSelectionIsDropped(t *testing.T) {
	repo := &fakeRepository{}
	session := newTestSession(t, repo, nil)

	session.Open(context.Background())
	repo.stream(t, 1).emit(sampleAttractions())

	waitForState(t, session, func(st usecase.MapState) bool {
		return len(st.Attractions) == 3
	})

	// Тап по id, которого в списке нет, сбрасывает выбор
	session.OnAttractionSelected(999)
	assert.Nil(t, session.State().SelectedAttraction)
}

func TestMapSession_SelectionRevalidatedOnNewSnapshot(t *testing.T) {
	repo := &fakeRepository{}
	session := newTestSession(t, repo, nil)

	session.Open(context.Background())
	repo.stream(t, 1).emit(sampleAttractions())

	waitForState(t, session, func(st usecase.MapState) bool {
		return len(st.Attractions) == 3
	})

	session.OnAttractionSelected(3)
	require.NotNil(t, session.State().SelectedAttraction)

	// Свежий снимок без выбранной записи очищает выбор
	repo.stream(t, 1).emit(sampleAttractions()[:2])

	state := waitForState(t, session, func(st usecase.MapState) bool {
		return len(st.Attractions) == 2
	})
	assert.Nil(t, state.SelectedAttraction)
}

func TestMapSession_CategoryFilterProjectsLastSnapshot(t *testing.T) {
	repo := &fakeRepository{}
	session := newTestSession(t, repo, nil)

	session.Open(context.Background())
	repo.stream(t, 1).emit(sampleAttractions())

	waitForState(t, session, func(st usecase.MapState) bool {
		return len(st.Attractions) == 3
	})

	session.OnCategoryFilterChanged(domain.NewCategorySet(domain.CategoryNature))

	state := session.State()
	require.Len(t, state.Attractions, 1)
	assert.Equal(t, int64(1), state.Attractions[0].ID)

	// Возврат полного набора восстанавливает список без нового запроса
	session.OnCategoryFilterChanged(domain.AllCategories())
	assert.Len(t, session.State().Attractions, 3)

	repo.mu.Lock()
	watchAllCalls := repo.watchAllCnt
	repo.mu.Unlock()
	assert.Equal(t, 1, watchAllCalls)
}

func TestMapSession_CategoryFilterClearsHiddenSelection(t *testing.T) {
	repo := &fakeRepository{}
	session := newTestSession(t, repo, nil)

	session.Open(context.Background())
	repo.stream(t, 1).emit(sampleAttractions())

	waitForState(t, session, func(st usecase.MapState) bool {
		return len(st.Attractions) == 3
	})

	session.OnAttractionSelected(2)
	require.NotNil(t, session.State().SelectedAttraction)

	// Фильтр прячет выбранную категорию, выбор сбрасывается
	session.OnCategoryFilterChanged(domain.NewCategorySet(domain.CategoryNature))
	assert.Nil(t, session.State().SelectedAttraction)
}

func TestMapSession_SearchSwitchesSubscription(t *testing.T) {
	repo := &fakeRepository{}
	session := newTestSession(t, repo, nil)

	session.Open(context.Background())
	repo.stream(t, 1).emit(sampleAttractions())

	waitForState(t, session, func(st usecase.MapState) bool {
		return len(st.Attractions) == 3
	})

	session.OnSearchQueryChanged("музей")

	repo.stream(t, 2).emit(sampleAttractions()[1:2])

	state := waitForState(t, session, func(st usecase.MapState) bool {
		return len(st.Attractions) == 1
	})
	assert.Equal(t, "музей", state.SearchQuery)
	assert.Equal(t, int64(2), state.Attractions[0].ID)

	repo.mu.Lock()
	searches := append([]string(nil), repo.searches...)
	repo.mu.Unlock()
	assert.Equal(t, []string{"музей"}, searches)
}

func TestMapSession_BlankSearchFallsBackToFullList(t *testing.T) {
	repo := &fakeRepository{}
	session := newTestSession(t, repo, nil)

	session.Open(context.Background())
	repo.stream(t, 1).emit(sampleAttractions())

	waitForState(t, session, func(st usecase.MapState) bool {
		return len(st.Attractions) == 3
	})

	// Пробельный запрос не открывает поисковую подписку
	session.OnSearchQueryChanged("   ")

	repo.stream(t, 2).emit(sampleAttractions())

	waitForState(t, session, func(st usecase.MapState) bool {
		return !st.IsLoading
	})

	repo.mu.Lock()
	watchAllCalls := repo.watchAllCnt
	searchCalls := len(repo.searches)
	repo.mu.Unlock()

	assert.Equal(t, 2, watchAllCalls)
	assert.Zero(t, searchCalls)
	assert.Equal(t, "   ", session.State().SearchQuery)
}

func TestMapSession_StaleEmissionIsDiscarded(t *testing.T) {
	repo := &fakeRepository{}
	session := newTestSession(t, repo, nil)

	session.Open(context.Background())
	first := repo.stream(t, 1)
	first.emit(sampleAttractions())

	waitForState(t, session, func(st usecase.MapState) bool {
		return len(st.Attractions) == 3
	})

	// Поиск вытесняет первую подписку
	session.OnSearchQueryChanged("музей")
	second := repo.stream(t, 2)

	// Запоздавшая эмиссия вытесненной подписки не должна применяться
	first.emit(sampleAttractions()[:1])

	second.emit(sampleAttractions()[1:2])

	state := waitForState(t, session, func(st usecase.MapState) bool {
		return !st.IsLoading && len(st.Attractions) == 1
	})
	assert.Equal(t, int64(2), state.Attractions[0].ID)
}

func TestMapSession_CameraControls(t *testing.T) {
	repo := &fakeRepository{}
	session := newTestSession(t, repo, nil)

	target := domain.Location{Latitude: 44.0, Longitude: 40.0}
	session.PanTo(target)
	assert.Equal(t, target, session.State().Camera.Center)

	session.ZoomIn()
	assert.Equal(t, 11.0, session.State().Camera.Zoom)

	session.ZoomOut()
	session.ZoomOut()
	assert.Equal(t, 9.0, session.State().Camera.Zoom)

	// Зум не выходит за [0, max]
	for i := 0; i < 30; i++ {
		session.ZoomIn()
	}
	assert.Equal(t, 21.0, session.State().Camera.Zoom)

	for i := 0; i < 30; i++ {
		session.ZoomOut()
	}
	assert.Zero(t, session.State().Camera.Zoom)
}

func TestMapSession_FitVisible(t *testing.T) {
	repo := &fakeRepository{}
	session := newTestSession(t, repo, nil)

	session.Open(context.Background())
	repo.stream(t, 1).emit([]domain.Attraction{
		{ID: 1, Category: domain.CategoryNature, Latitude: 44.0, Longitude: 40.0},
		{ID: 2, Category: domain.CategoryNature, Latitude: 45.0, Longitude: 41.0},
	})

	waitForState(t, session, func(st usecase.MapState) bool {
		return len(st.Attractions) == 2
	})

	session.FitVisible()

	center := session.State().Camera.Center
	assert.InDelta(t, 44.5, center.Latitude, 1e-9)
	assert.InDelta(t, 40.5, center.Longitude, 1e-9)
}

func TestMapSession_FitVisible_EmptyListKeepsCamera(t *testing.T) {
	repo := &fakeRepository{}
	session := newTestSession(t, repo, nil)

	session.FitVisible()
	assert.Equal(t, sessionConfig.DefaultCenter, session.State().Camera.Center)
}

func TestMapSession_CenterOnUser(t *testing.T) {
	repo := &fakeRepository{}
	userLocation := &domain.Location{Latitude: 44.6, Longitude: 40.1}
	locator := &fakeLocator{hasPermission: true, location: userLocation}
	session := newTestSession(t, repo, locator)

	session.CenterOnUser(context.Background())

	state := session.State()
	require.NotNil(t, state.UserLocation)
	assert.Equal(t, *userLocation, *state.UserLocation)
	assert.Equal(t, *userLocation, state.Camera.Center)
	assert.Empty(t, state.ErrorMessage)
}

func TestMapSession_CenterOnUser_PermissionDenied(t *testing.T) {
	repo := &fakeRepository{}
	locator := &fakeLocator{hasPermission: false, grantOnRequest: false}
	session := newTestSession(t, repo, locator)

	session.CenterOnUser(context.Background())

	state := session.State()
	assert.Equal(t, apperrors.ErrLocationPermissionDenied.Message, state.ErrorMessage)
	assert.Nil(t, state.UserLocation)
	// Камера не трогается
	assert.Equal(t, sessionConfig.DefaultCenter, state.Camera.Center)

	// Сообщение закрывается пользователем
	session.ClearError()
	assert.Empty(t, session.State().ErrorMessage)
}

func TestMapSession_CenterOnUser_LocationUnavailable(t *testing.T) {
	repo := &fakeRepository{}
	locator := &fakeLocator{hasPermission: true, locationErr: apperrors.ErrLocationUnavailable}
	session := newTestSession(t, repo, locator)

	session.CenterOnUser(context.Background())

	state := session.State()
	assert.Equal(t, apperrors.ErrLocationUnavailable.Message, state.ErrorMessage)
	assert.Nil(t, state.UserLocation)
}

func TestMapSession_MapReady(t *testing.T) {
	repo := &fakeRepository{}
	session := newTestSession(t, repo, nil)

	assert.False(t, session.State().IsMapReady)
	session.OnMapReady()
	assert.True(t, session.State().IsMapReady)
}

func TestMapSession_SubscribeReceivesSnapshots(t *testing.T) {
	repo := &fakeRepository{}
	session := newTestSession(t, repo, nil)

	updates, unsubscribe := session.Subscribe()
	defer unsubscribe()

	session.OnMapReady()

	select {
	case state := <-updates:
		assert.True(t, state.IsMapReady)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for state update")
	}
}

func TestMapSession_SubscribeCoalescesUpdates(t *testing.T) {
	repo := &fakeRepository{}
	session := newTestSession(t, repo, nil)

	updates, unsubscribe := session.Subscribe()
	defer unsubscribe()

	// Наблюдатель не читает, промежуточные снимки схлопываются до последнего
	session.ZoomIn()
	session.ZoomIn()
	session.ZoomIn()

	deadline := time.After(2 * time.Second)
	var last usecase.MapState
	for {
		select {
		case state := <-updates:
			last = state
			if last.Camera.Zoom == 13.0 {
				return
			}
		case <-deadline:
			t.Fatalf("final snapshot never delivered, last zoom %v", last.Camera.Zoom)
		}
	}
}

func TestMapSession_CloseStopsEmissions(t *testing.T) {
	repo := &fakeRepository{}
	session := newTestSession(t, repo, nil)

	session.Open(context.Background())
	stream := repo.stream(t, 1)
	stream.emit(sampleAttractions())

	waitForState(t, session, func(st usecase.MapState) bool {
		return len(st.Attractions) == 3
	})

	updates, unsubscribe := session.Subscribe()
	defer unsubscribe()

	session.Close()

	// Канал наблюдателя закрыт
	select {
	case _, ok := <-updates:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber channel was not closed")
	}

	// Переходы после Close игнорируются
	session.OnMapReady()
	assert.False(t, session.State().IsMapReady)
}
