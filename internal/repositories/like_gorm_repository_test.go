package repositories_test

import (
	"fmt"
	"testing"

	"cms/internal/models"
	"cms/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupDB opens a per-test in-memory sqlite database with the full schema.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Like{},
		&models.Category{},
		&models.SubCategory{},
	))
	return db
}

func TestGORMLikeRepository_UniqueConstraint(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMLikeRepository(db)

	like := &models.Like{UserID: "u1", PostID: "p1"}
	require.NoError(t, repo.Create(like))
	assert.NotEmpty(t, like.ID)

	exists, err := repo.Exists("u1", "p1")
	assert.NoError(t, err)
	assert.True(t, exists)

	// A second insert for the same (user, post) pair hits the composite
	// unique index, the backstop for racing like requests.
	err = repo.Create(&models.Like{UserID: "u1", PostID: "p1"})
	assert.ErrorIs(t, err, repositories.ErrDuplicateLike)

	// Same user on another post, and another user on the same post,
	// are both fine.
	assert.NoError(t, repo.Create(&models.Like{UserID: "u1", PostID: "p2"}))
	assert.NoError(t, repo.Create(&models.Like{UserID: "u2", PostID: "p1"}))

	count, err := repo.CountByPost("p1")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGORMLikeRepository_Delete(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMLikeRepository(db)

	require.NoError(t, repo.Create(&models.Like{UserID: "u1", PostID: "p1"}))

	deleted, err := repo.Delete("u1", "p1")
	assert.NoError(t, err)
	assert.True(t, deleted)

	// Deleting again reports that nothing was there.
	deleted, err = repo.Delete("u1", "p1")
	assert.NoError(t, err)
	assert.False(t, deleted)

	exists, err := repo.Exists("u1", "p1")
	assert.NoError(t, err)
	assert.False(t, exists)
}
