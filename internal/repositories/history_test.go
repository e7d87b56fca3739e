package repositories

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.InitDatabase(&config.Config{
		Server:   config.ServerConfig{Env: "test"},
		Database: config.DatabaseConfig{Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), "history.db")},
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func newRecord(name string, score int) *models.HistoryRecord {
	return &models.HistoryRecord{
		SubmissionID:    uuid.New(),
		SubmitterName:   name,
		Organization:    "TCS",
		Role:            "Software Developer",
		ExperienceLevel: string(models.LevelExperienced),
		SkillsFound:     "java, git",
		Score:           score,
		MissingSkills:   "spring, mysql, rest api, oop",
		ATSFormat:       "No education section detected.",
		AnalyzedAt:      time.Now(),
	}
}

func TestHistoryFindAllEmpty(t *testing.T) {
	repo := NewHistoryRepository(newTestDB(t))

	records, err := repo.FindAll()
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestHistoryCreateThenFindAll(t *testing.T) {
	repo := NewHistoryRepository(newTestDB(t))

	require.NoError(t, repo.Create(newRecord("alice", 50)))
	require.NoError(t, repo.Create(newRecord("bob", 83)))

	latest := newRecord("carol", 33)
	require.NoError(t, repo.Create(latest))
	assert.NotZero(t, latest.ID)

	records, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, latest.ID, records[0].ID)
	assert.Equal(t, latest.SubmissionID, records[0].SubmissionID)
	assert.Equal(t, "carol", records[0].SubmitterName)
	assert.Equal(t, "spring, mysql, rest api, oop", records[0].MissingSkills)
	assert.Equal(t, "bob", records[1].SubmitterName)
	assert.Equal(t, "alice", records[2].SubmitterName)
}

func TestHistoryConcurrentCreate(t *testing.T) {
	repo := NewHistoryRepository(newTestDB(t))

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- repo.Create(newRecord(fmt.Sprintf("user-%d", i), i))
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	records, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, records, n)

	for _, r := range records {
		// Every row keeps the name and score it was written with.
		assert.Equal(t, fmt.Sprintf("user-%d", r.Score), r.SubmitterName)
	}
}

func TestHistoryStorageError(t *testing.T) {
	db := newTestDB(t)
	repo := NewHistoryRepository(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	err = repo.Create(newRecord("dave", 10))
	assert.ErrorIs(t, err, models.ErrStorage)

	_, err = repo.FindAll()
	assert.ErrorIs(t, err, models.ErrStorage)
}
