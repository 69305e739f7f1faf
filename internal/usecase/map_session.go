package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/adygyes-guide/internal/domain"
	"github.com/adygyes-guide/internal/domain/repository"
	apperrors "github.com/adygyes-guide/internal/pkg/errors"
	"github.com/adygyes-guide/internal/pkg/utils"
)

// MapSession - машина состояний экрана карты. Живёт от открытия экрана до
// Close и владеет единственным снимком MapState, заменяемым атомарно.
// Одновременно активна не более одной порождающей список подписки: новая
// подписка вытесняет старую, счётчик поколений отбрасывает запоздавшие
// эмиссии вытесненных подписок.
type MapSession struct {
	id        uuid.UUID
	repo      repository.AttractionRepository
	locations repository.DeviceLocationRepository
	bootstrap *BootstrapUseCase
	logger    *zap.Logger

	maxZoom float64

	baseCtx    context.Context
	baseCancel context.CancelFunc

	mu           sync.RWMutex
	state        MapState
	lastLoaded   []domain.Attraction
	gen          uint64
	cancelStream context.CancelFunc
	closed       bool

	subSeq int
	subs   map[int]chan MapState
}

// SessionConfig - параметры карты по умолчанию
type SessionConfig struct {
	DefaultCenter domain.Location
	DefaultZoom   float64
	MaxZoom       float64
}

func NewMapSession(
	repo repository.AttractionRepository,
	locations repository.DeviceLocationRepository,
	bootstrap *BootstrapUseCase,
	cfg SessionConfig,
	logger *zap.Logger,
) *MapSession {
	id := uuid.New()
	ctx, cancel := context.WithCancel(context.Background())

	return &MapSession{
		id:         id,
		repo:       repo,
		locations:  locations,
		bootstrap:  bootstrap,
		logger:     logger.With(zap.String("session_id", id.String())),
		maxZoom:    cfg.MaxZoom,
		baseCtx:    ctx,
		baseCancel: cancel,
		state: MapState{
			SelectedCategories: domain.AllCategories(),
			Camera: CameraPosition{
				Center: cfg.DefaultCenter,
				Zoom:   cfg.DefaultZoom,
			},
		},
		subs: make(map[int]chan MapState),
	}
}

// ID возвращает идентификатор сессии
func (s *MapSession) ID() uuid.UUID {
	return s.id
}

// State возвращает текущий снимок состояния
func (s *MapSession) State() MapState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Subscribe регистрирует наблюдателя изменений состояния. Канал буферизован
// на один снимок и схлопывает промежуточные: наблюдатель всегда получает
// последний. Отписка обязательна.
func (s *MapSession) Subscribe() (<-chan MapState, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subSeq++
	id := s.subSeq
	ch := make(chan MapState, 1)
	s.subs[id] = ch

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
	}
}

// Open выполняется при открытии экрана: одноразовый посев данных, затем
// загрузка полного списка. Сбой посева фатален для первой загрузки.
func (s *MapSession) Open(ctx context.Context) {
	if err := s.bootstrap.Run(ctx); err != nil {
		s.logger.Error("Bootstrap failed", zap.Error(err))
		s.update(func(st *MapState) {
			st.IsLoading = false
			st.ErrorMessage = errorMessage(err)
		})
		return
	}

	s.LoadAttractions()
}

// LoadAttractions подписывается на полный список
func (s *MapSession) LoadAttractions() {
	s.startStream(s.repo.WatchAll)
}

// OnSearchQueryChanged переключает активную подписку на поиск; пустой
// запрос возвращает неотфильтрованный список
func (s *MapSession) OnSearchQueryChanged(query string) {
	s.update(func(st *MapState) {
		st.SearchQuery = query
	})

	if strings.TrimSpace(query) != "" {
		s.startStream(func(ctx context.Context) *domain.AttractionStream {
			return s.repo.WatchSearch(ctx, query)
		})
	} else {
		s.LoadAttractions()
	}
}

// OnCategoryFilterChanged заменяет набор выбранных категорий и перепроецирует
// последний снимок хранилища на клиенте, без нового запроса
func (s *MapSession) OnCategoryFilterChanged(categories domain.CategorySet) {
	s.update(func(st *MapState) {
		st.SelectedCategories = categories.Clone()
		st.Attractions = projectCategories(s.lastLoaded, st.SelectedCategories)
		revalidateSelection(st)
	})
}

// OnAttractionSelected ищет id в текущем видимом списке. Устаревший id,
// которого в списке больше нет, сбрасывает выбор, а не возвращает
// закэшированную запись.
func (s *MapSession) OnAttractionSelected(id int64) {
	s.update(func(st *MapState) {
		st.SelectedAttraction = nil
		for i := range st.Attractions {
			if st.Attractions[i].ID == id {
				selected := st.Attractions[i]
				st.SelectedAttraction = &selected
				return
			}
		}
	})
}

// DismissSelection сбрасывает выбранную достопримечательность
func (s *MapSession) DismissSelection() {
	s.update(func(st *MapState) {
		st.SelectedAttraction = nil
	})
}

// Retry повторяет загрузку после ошибки. Посев не повторяется: данные либо
// уже есть, либо Load снова упрётся в ту же причину.
func (s *MapSession) Retry() {
	s.LoadAttractions()
}

// OnMapReady отмечает готовность внешнего движка карты
func (s *MapSession) OnMapReady() {
	s.update(func(st *MapState) {
		st.IsMapReady = true
	})
}

// ClearError снимает сообщение об ошибке, список не трогается
func (s *MapSession) ClearError() {
	s.update(func(st *MapState) {
		st.ErrorMessage = ""
	})
}

// CenterOnUser запрашивает у коллаборатора разрешение и координаты
// устройства. Отказ или недоступность службы - временное, закрываемое
// пользователем сообщение; список и карта не затрагиваются.
func (s *MapSession) CenterOnUser(ctx context.Context) {
	if !s.locations.HasPermission(ctx) {
		granted, err := s.locations.RequestPermission(ctx)
		if err != nil {
			s.logger.Warn("Permission request failed", zap.Error(err))
			s.update(func(st *MapState) {
				st.ErrorMessage = errorMessage(err)
			})
			return
		}
		if !granted {
			s.update(func(st *MapState) {
				st.ErrorMessage = apperrors.ErrLocationPermissionDenied.Message
			})
			return
		}
	}

	location, err := s.locations.CurrentLocation(ctx)
	if err != nil {
		s.logger.Warn("Failed to get device location", zap.Error(err))
		s.update(func(st *MapState) {
			st.ErrorMessage = errorMessage(err)
		})
		return
	}

	s.update(func(st *MapState) {
		st.UserLocation = location
		st.Camera.Center = *location
	})
}

// PanTo перемещает камеру к точке
func (s *MapSession) PanTo(center domain.Location) {
	s.update(func(st *MapState) {
		st.Camera.Center = center
	})
}

// ZoomIn приближает камеру на единицу, не выше максимума
func (s *MapSession) ZoomIn() {
	s.update(func(st *MapState) {
		if st.Camera.Zoom+1 <= s.maxZoom {
			st.Camera.Zoom++
		} else {
			st.Camera.Zoom = s.maxZoom
		}
	})
}

// ZoomOut отдаляет камеру на единицу, не ниже нуля
func (s *MapSession) ZoomOut() {
	s.update(func(st *MapState) {
		if st.Camera.Zoom-1 >= 0 {
			st.Camera.Zoom--
		} else {
			st.Camera.Zoom = 0
		}
	})
}

// FitVisible центрирует камеру по видимому списку
func (s *MapSession) FitVisible() {
	s.update(func(st *MapState) {
		points := make([]domain.Location, len(st.Attractions))
		for i := range st.Attractions {
			points[i] = st.Attractions[i].Location()
		}
		if center, ok := utils.BoundsCenter(points); ok {
			st.Camera.Center = center
		}
	})
}

// Close освобождает активную подписку и всех наблюдателей. После Close
// сессия не публикует ни одной эмиссии.
func (s *MapSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	if s.cancelStream != nil {
		s.cancelStream()
		s.cancelStream = nil
	}
	s.baseCancel()

	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}

	s.logger.Debug("Map session closed")
}

// startStream вытесняет активную подписку новой: старый контекст отменяется,
// поколение растёт, и только эмиссии текущего поколения применяются
func (s *MapSession) startStream(open func(ctx context.Context) *domain.AttractionStream) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	s.gen++
	gen := s.gen

	if s.cancelStream != nil {
		s.cancelStream()
	}
	ctx, cancel := context.WithCancel(s.baseCtx)
	s.cancelStream = cancel

	s.state.IsLoading = true
	s.state.ErrorMessage = ""
	snapshot := s.state.clone()
	s.mu.Unlock()

	s.publish(snapshot)

	stream := open(ctx)
	go s.consume(ctx, gen, stream)
}

func (s *MapSession) consume(ctx context.Context, gen uint64, stream *domain.AttractionStream) {
	defer stream.Close()

	for {
		select {
		case attractions, ok := <-stream.C:
			if !ok {
				// поток закрыт, завершающая ошибка могла остаться в буфере
				select {
				case err, ok := <-stream.Errors:
					if ok && err != nil {
						s.applyStreamError(gen, err)
					}
				default:
				}
				return
			}
			s.applySnapshot(gen, attractions)

		case err, ok := <-stream.Errors:
			if ok && err != nil {
				s.applyStreamError(gen, err)
			}
			return

		case <-ctx.Done():
			return
		}
	}
}

func (s *MapSession) applySnapshot(gen uint64, attractions []domain.Attraction) {
	s.mu.Lock()
	if s.closed || gen != s.gen {
		s.mu.Unlock()
		s.logger.Debug("Discarding stale stream emission", zap.Uint64("generation", gen))
		return
	}

	s.lastLoaded = attractions
	s.state.Attractions = projectCategories(attractions, s.state.SelectedCategories)
	revalidateSelection(&s.state)
	s.state.IsLoading = false
	s.state.ErrorMessage = ""

	snapshot := s.state.clone()
	s.mu.Unlock()

	s.publish(snapshot)
}

// applyStreamError оставляет последний удачный список на месте
func (s *MapSession) applyStreamError(gen uint64, err error) {
	s.mu.Lock()
	if s.closed || gen != s.gen {
		s.mu.Unlock()
		return
	}

	s.state.IsLoading = false
	s.state.ErrorMessage = errorMessage(err)

	snapshot := s.state.clone()
	s.mu.Unlock()

	s.logger.Error("Attraction stream failed", zap.Error(err))
	s.publish(snapshot)
}

// update применяет переход и публикует новый снимок
func (s *MapSession) update(apply func(st *MapState)) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	apply(&s.state)
	snapshot := s.state.clone()
	s.mu.Unlock()

	s.publish(snapshot)
}

// publish доставляет снимок наблюдателям, схлопывая непрочитанные
func (s *MapSession) publish(snapshot MapState) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return
	}

	for _, ch := range s.subs {
		select {
		case ch <- snapshot:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snapshot:
			default:
			}
		}
	}
}

func projectCategories(attractions []domain.Attraction, selected domain.CategorySet) []domain.Attraction {
	out := make([]domain.Attraction, 0, len(attractions))
	for _, a := range attractions {
		if selected.Contains(a.Category) {
			out = append(out, a)
		}
	}
	return out
}

// revalidateSelection сверяет выбор с новым списком и сбрасывает его,
// если записи с тем же id больше нет
func revalidateSelection(st *MapState) {
	if st.SelectedAttraction == nil {
		return
	}
	for i := range st.Attractions {
		if st.Attractions[i].ID == st.SelectedAttraction.ID {
			selected := st.Attractions[i]
			st.SelectedAttraction = &selected
			return
		}
	}
	st.SelectedAttraction = nil
}

func errorMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
