package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// attractionRow - строка таблицы attractions
type attractionRow struct {
	ID                 int64   `db:"id"`
	Name               string  `db:"name"`
	Description        string  `db:"description"`
	Latitude           float64 `db:"latitude"`
	Longitude          float64 `db:"longitude"`
	Category           string  `db:"category"`
	PhotoURL           *string `db:"photo_url"`
	Rating             float64 `db:"rating"`
	IsOfflineAvailable bool    `db:"is_offline_available"`
	CreatedAt          int64   `db:"created_at"`
	UpdatedAt          int64   `db:"updated_at"`
}

const attractionColumns = `
	id, name, description, latitude, longitude, category,
	photo_url, rating, is_offline_available, created_at, updated_at`

// AttractionStore - постоянная коллекция достопримечательностей, адресуемая
// по 64-битному идентификатору. Запись идёт через INSERT OR REPLACE: повторная
// вставка по тому же id перезаписывает все поля. Каждая мутация оповещает
// живые подписки, и те переисполняют свой запрос.
type AttractionStore struct {
	db       *sqlx.DB
	logger   *zap.Logger
	notifier *notifier
}

func NewAttractionStore(db *DB) *AttractionStore {
	return &AttractionStore{
		db:       db.DB,
		logger:   db.logger,
		notifier: newNotifier(),
	}
}

// rowQuery - один запрос снимка, переисполняемый живой подпиской
type rowQuery func(ctx context.Context) ([]attractionRow, error)

func (s *AttractionStore) queryAll(ctx context.Context) ([]attractionRow, error) {
	query := `SELECT ` + attractionColumns + ` FROM attractions ORDER BY id`

	var rows []attractionRow
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		s.logger.Error("Failed to query attractions", zap.Error(err))
		return nil, err
	}
	return rows, nil
}

func (s *AttractionStore) queryByCategory(category string) rowQuery {
	return func(ctx context.Context) ([]attractionRow, error) {
		query := `SELECT ` + attractionColumns + ` FROM attractions WHERE category = ? ORDER BY id`

		var rows []attractionRow
		if err := s.db.SelectContext(ctx, &rows, query, category); err != nil {
			s.logger.Error("Failed to query attractions by category",
				zap.String("category", category),
				zap.Error(err))
			return nil, err
		}
		return rows, nil
	}
}

// querySearch ищет подстроку в имени ИЛИ описании. Семантика LIKE в SQLite:
// регистронезависимо для ASCII, чувствительно к регистру для остального.
func (s *AttractionStore) querySearch(text string) rowQuery {
	return func(ctx context.Context) ([]attractionRow, error) {
		query := `SELECT ` + attractionColumns + ` FROM attractions
			WHERE name LIKE '%' || ? || '%' OR description LIKE '%' || ? || '%'
			ORDER BY id`

		var rows []attractionRow
		if err := s.db.SelectContext(ctx, &rows, query, text, text); err != nil {
			s.logger.Error("Failed to search attractions",
				zap.String("query", text),
				zap.Error(err))
			return nil, err
		}
		return rows, nil
	}
}

func (s *AttractionStore) queryOfflineAvailable(ctx context.Context) ([]attractionRow, error) {
	query := `SELECT ` + attractionColumns + ` FROM attractions WHERE is_offline_available = 1 ORDER BY id`

	var rows []attractionRow
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		s.logger.Error("Failed to query offline attractions", zap.Error(err))
		return nil, err
	}
	return rows, nil
}

// getByID возвращает строку или (nil, nil), если записи нет
func (s *AttractionStore) getByID(ctx context.Context, id int64) (*attractionRow, error) {
	query := `SELECT ` + attractionColumns + ` FROM attractions WHERE id = ?`

	var row attractionRow
	err := s.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("Failed to get attraction by ID", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return &row, nil
}

const upsertQuery = `
	INSERT OR REPLACE INTO attractions (
		id, name, description, latitude, longitude, category,
		photo_url, rating, is_offline_available, created_at, updated_at
	) VALUES (
		:id, :name, :description, :latitude, :longitude, :category,
		:photo_url, :rating, :is_offline_available, :created_at, :updated_at
	)`

func (s *AttractionStore) upsert(ctx context.Context, row attractionRow) error {
	now := time.Now().UnixMilli()
	row.CreatedAt = now
	row.UpdatedAt = now

	if _, err := s.db.NamedExecContext(ctx, upsertQuery, row); err != nil {
		s.logger.Error("Failed to upsert attraction", zap.Int64("id", row.ID), zap.Error(err))
		return err
	}

	s.notifier.broadcast()
	return nil
}

func (s *AttractionStore) upsertMany(ctx context.Context, rows []attractionRow) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UnixMilli()
	for i := range rows {
		rows[i].CreatedAt = now
		rows[i].UpdatedAt = now
		if _, err := tx.NamedExecContext(ctx, upsertQuery, rows[i]); err != nil {
			s.logger.Error("Failed to upsert attraction in batch",
				zap.Int64("id", rows[i].ID),
				zap.Error(err))
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.notifier.broadcast()
	return nil
}

func (s *AttractionStore) delete(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM attractions WHERE id = ?`, id); err != nil {
		s.logger.Error("Failed to delete attraction", zap.Int64("id", id), zap.Error(err))
		return err
	}

	s.notifier.broadcast()
	return nil
}

func (s *AttractionStore) deleteAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM attractions`); err != nil {
		s.logger.Error("Failed to delete all attractions", zap.Error(err))
		return err
	}

	s.notifier.broadcast()
	return nil
}

func (s *AttractionStore) count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM attractions`); err != nil {
		s.logger.Error("Failed to count attractions", zap.Error(err))
		return 0, err
	}
	return n, nil
}

// watch запускает живую подписку: начальный снимок сразу, затем свежий
// снимок после каждого оповещения. Ошибка запроса завершает подписку,
// канал ошибок получает не более одного значения.
func (s *AttractionStore) watch(ctx context.Context, query rowQuery) (<-chan []attractionRow, <-chan error) {
	out := make(chan []attractionRow)
	errs := make(chan error, 1)

	trigger, unsubscribe := s.notifier.subscribe()

	go func() {
		defer close(out)
		defer close(errs)
		defer unsubscribe()

		for {
			rows, err := query(ctx)
			if err != nil {
				if ctx.Err() == nil {
					errs <- err
				}
				return
			}

			select {
			case out <- rows:
			case <-ctx.Done():
				return
			}

			select {
			case <-trigger:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, errs
}
