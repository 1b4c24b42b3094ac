package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"mananciall/pkg/domain"
)

type GormStoreOptions struct {
	Tables          Tables
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type GormStoreOption func(*GormStoreOptions)

// WithTables overrides the table names read by the store.
func WithTables(tables Tables) GormStoreOption {
	return func(opts *GormStoreOptions) {
		opts.Tables = tables
	}
}

// WithPool sets connection pool limits. Zero values keep driver defaults.
func WithPool(maxOpen, maxIdle int, maxLifetime time.Duration) GormStoreOption {
	return func(opts *GormStoreOptions) {
		opts.MaxOpenConns = maxOpen
		opts.MaxIdleConns = maxIdle
		opts.ConnMaxLifetime = maxLifetime
	}
}

// GormStore implements Store using GORM + Postgres.
type GormStore struct {
	db     *gorm.DB
	tables Tables
}

// NewGormStore opens the DB. The schema belongs to the process that loads
// the content, so no migrations run here.
func NewGormStore(dsn string, options ...GormStoreOption) (*GormStore, error) {
	opts := GormStoreOptions{}
	for _, option := range options {
		if option != nil {
			option(&opts)
		}
	}

	gormLog := gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}
	return NewGormStoreFromDB(db, opts.Tables), nil
}

// NewGormStoreFromDB wraps an already opened connection.
func NewGormStoreFromDB(db *gorm.DB, tables Tables) *GormStore {
	return &GormStore{db: db, tables: tables.withDefaults()}
}

// Ping checks the database connection.
func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ListBooks returns the catalog ordered by order_index.
func (s *GormStore) ListBooks(ctx context.Context) ([]domain.Book, error) {
	var models []BookModel
	if err := s.db.WithContext(ctx).
		Table(s.tables.Books).
		Select("id", "name", "testament", "order_index").
		Order("order_index ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.Book, 0, len(models))
	for _, m := range models {
		res = append(res, bookFromModel(m))
	}
	return res, nil
}

// ListVerses returns the verses of one chapter, or a single verse, ordered
// by verse number.
func (s *GormStore) ListVerses(ctx context.Context, filter VerseFilter) ([]domain.Verse, error) {
	tx := s.db.WithContext(ctx).
		Table(s.tables.Verses).
		Select("id", "book_id", "chapter", "verse", "text", "versions", "cross_references", "themes").
		Where("book_id = ? AND chapter = ?", filter.BookID, filter.Chapter)
	if filter.Verse > 0 {
		tx = tx.Where("verse = ?", filter.Verse)
	}
	var models []VerseModel
	if err := tx.Order("verse ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.Verse, 0, len(models))
	for _, m := range models {
		res = append(res, verseFromModel(m))
	}
	return res, nil
}

// MaxChapter returns the highest chapter stored for bookID.
func (s *GormStore) MaxChapter(ctx context.Context, bookID string) (int, bool, error) {
	var maxChapter sql.NullInt64
	row := s.db.WithContext(ctx).
		Table(s.tables.Verses).
		Select("MAX(chapter)").
		Where("book_id = ?", bookID).
		Row()
	if err := row.Scan(&maxChapter); err != nil {
		return 0, false, err
	}
	if !maxChapter.Valid {
		return 0, false, nil
	}
	return int(maxChapter.Int64), true, nil
}

// GetArticle looks up one article by id.
func (s *GormStore) GetArticle(ctx context.Context, id string) (domain.Article, bool, error) {
	var model ArticleModel
	if err := s.db.WithContext(ctx).
		Table(s.tables.Articles).
		Select("id", "content_structured").
		Where("id = ?", id).
		Take(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Article{}, false, nil
		}
		return domain.Article{}, false, err
	}
	return articleFromModel(model), true, nil
}

// ListArticles returns up to limit articles that have content, ordered by id.
func (s *GormStore) ListArticles(ctx context.Context, limit int) ([]domain.Article, error) {
	if limit <= 0 {
		return []domain.Article{}, nil
	}
	var models []ArticleModel
	if err := s.db.WithContext(ctx).
		Table(s.tables.Articles).
		Select("id", "content_structured").
		Where("content_structured IS NOT NULL").
		Order("id ASC").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.Article, 0, len(models))
	for _, m := range models {
		res = append(res, articleFromModel(m))
	}
	return res, nil
}

func bookFromModel(m BookModel) domain.Book {
	return domain.Book{
		ID:         m.ID,
		Name:       m.Name,
		Testament:  domain.Testament(m.Testament),
		OrderIndex: m.OrderIndex,
	}
}

func verseFromModel(m VerseModel) domain.Verse {
	var versions map[string]string
	if len(m.Versions) > 0 {
		versions = make(map[string]string, len(m.Versions))
		for code, raw := range m.Versions {
			text, ok := raw.(string)
			if !ok {
				continue
			}
			versions[code] = text
		}
	}
	return domain.Verse{
		ID:              m.ID,
		BookID:          m.BookID,
		Chapter:         m.Chapter,
		Verse:           m.Verse,
		Text:            m.Text,
		Versions:        versions,
		CrossReferences: []string(m.CrossReferences),
		Themes:          []string(m.Themes),
	}
}

func articleFromModel(m ArticleModel) domain.Article {
	return domain.Article{
		ID:                m.ID,
		ContentStructured: m.ContentStructured.String,
	}
}
