package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/scorebook/internal/match"
)

// CatalogRepository defines the player-name catalog the engine draws candidates from.
type CatalogRepository interface {
	Load() (match.Roster, error)
	Save(roster match.Roster) error
	AddPlayer(side match.Side, name string) error
}

// Source names accepted by NewRepository.
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// NewRepository picks the catalog backend. db is only used for SourcePostgres.
func NewRepository(source, file string, db *gorm.DB) (CatalogRepository, error) {
	switch source {
	case SourceFile, "":
		return NewFileCatalogRepository(file), nil
	case SourcePostgres:
		if db == nil {
			return nil, errors.New("postgres catalog requires a database connection")
		}
		repo := NewGormCatalogRepository(db)
		if err := repo.Migrate(); err != nil {
			return nil, fmt.Errorf("failed to migrate catalog: %w", err)
		}
		return repo, nil
	}
	return nil, fmt.Errorf("unknown catalog source %q", source)
}

// --- File-backed catalog ---

// FileCatalogRepository keeps the catalog in a JSON or YAML side file.
// A missing file is an empty catalog.
type FileCatalogRepository struct {
	mu   sync.Mutex
	path string
}

// NewFileCatalogRepository creates a repository over path. ".yaml" and ".yml"
// select YAML, anything else JSON.
func NewFileCatalogRepository(path string) *FileCatalogRepository {
	return &FileCatalogRepository{path: path}
}

func (r *FileCatalogRepository) isYAML() bool {
	ext := strings.ToLower(filepath.Ext(r.path))
	return ext == ".yaml" || ext == ".yml"
}

// Load reads the catalog file.
func (r *FileCatalogRepository) Load() (match.Roster, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *FileCatalogRepository) load() (match.Roster, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return match.Roster{}, nil
		}
		return match.Roster{}, fmt.Errorf("failed to read catalog %s: %w", r.path, err)
	}

	var doc interface{}
	if r.isYAML() {
		err = yaml.Unmarshal(data, &doc)
	} else if len(strings.TrimSpace(string(data))) > 0 {
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return match.Roster{}, fmt.Errorf("failed to parse catalog %s: %w", r.path, err)
	}

	roster, ok := rosterFromDocument(doc)
	if !ok {
		return match.Roster{}, fmt.Errorf("catalog %s must be a list of names or a teamA/teamB mapping", r.path)
	}
	return roster, nil
}

// Save replaces the catalog file.
func (r *FileCatalogRepository) Save(roster match.Roster) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(normalizeRoster(roster))
}

func (r *FileCatalogRepository) save(roster match.Roster) error {
	var (
		data []byte
		err  error
	)
	if r.isYAML() {
		data, err = yaml.Marshal(roster)
	} else {
		data, err = json.MarshalIndent(roster, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create catalog directory: %w", err)
		}
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace catalog: %w", err)
	}
	return nil
}

// AddPlayer appends name to side unless it is already listed.
func (r *FileCatalogRepository) AddPlayer(side match.Side, name string) error {
	if !side.Valid() {
		return fmt.Errorf("unknown side %q", side)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	roster, err := r.load()
	if err != nil {
		return err
	}
	if side == match.TeamA {
		roster.TeamA = append(roster.TeamA, name)
	} else {
		roster.TeamB = append(roster.TeamB, name)
	}
	return r.save(normalizeRoster(roster))
}

// --- Postgres-backed catalog ---

// GormCatalogRepository keeps the catalog in the catalog_players table.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GormCatalogRepository
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// Migrate creates or updates the catalog table.
func (r *GormCatalogRepository) Migrate() error {
	return r.db.AutoMigrate(&CatalogPlayer{})
}

// WithTransaction implements transaction support
func (r *GormCatalogRepository) WithTransaction(txFunc func(*GormCatalogRepository) error) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	txRepo := &GormCatalogRepository{db: tx}
	err := txFunc(txRepo)
	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// Load reads every catalog row in side order.
func (r *GormCatalogRepository) Load() (match.Roster, error) {
	var players []CatalogPlayer
	if err := r.db.Order("side ASC, position ASC, id ASC").Find(&players).Error; err != nil {
		return match.Roster{}, fmt.Errorf("failed to load catalog: %w", err)
	}

	var roster match.Roster
	for _, p := range players {
		switch match.Side(p.Side) {
		case match.TeamA:
			roster.TeamA = append(roster.TeamA, p.Name)
		case match.TeamB:
			roster.TeamB = append(roster.TeamB, p.Name)
		}
	}
	return roster, nil
}

// Save replaces every catalog row.
func (r *GormCatalogRepository) Save(roster match.Roster) error {
	roster = normalizeRoster(roster)
	return r.WithTransaction(func(txRepo *GormCatalogRepository) error {
		if err := txRepo.db.Unscoped().Where("1 = 1").Delete(&CatalogPlayer{}).Error; err != nil {
			return err
		}
		rows := make([]CatalogPlayer, 0, len(roster.TeamA)+len(roster.TeamB))
		for i, name := range roster.TeamA {
			rows = append(rows, CatalogPlayer{Side: string(match.TeamA), Name: name, Position: i})
		}
		for i, name := range roster.TeamB {
			rows = append(rows, CatalogPlayer{Side: string(match.TeamB), Name: name, Position: i})
		}
		if len(rows) == 0 {
			return nil
		}
		return txRepo.db.Create(&rows).Error
	})
}

// AddPlayer appends name to side unless it is already listed.
func (r *GormCatalogRepository) AddPlayer(side match.Side, name string) error {
	if !side.Valid() {
		return fmt.Errorf("unknown side %q", side)
	}
	name = strings.TrimSpace(name)
	return r.WithTransaction(func(txRepo *GormCatalogRepository) error {
		var existing CatalogPlayer
		err := txRepo.db.Where("side = ? AND name = ?", string(side), name).First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var count int64
		if err := txRepo.db.Model(&CatalogPlayer{}).Where("side = ?", string(side)).Count(&count).Error; err != nil {
			return err
		}
		return txRepo.db.Create(&CatalogPlayer{Side: string(side), Name: name, Position: int(count)}).Error
	})
}
