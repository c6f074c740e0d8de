package repositories_test

import (
	"testing"

	"cms/internal/models"
	"cms/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGORMUserRepository_EmailLookup(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMUserRepository(db)

	require.NoError(t, repo.Create(&models.User{Name: "A", Email: "a@x.com", Password: "digest"}))

	user, err := repo.GetByEmail("a@x.com")
	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "A", user.Name)

	// Exact-match semantics: a different casing is a different email.
	user, err = repo.GetByEmail("A@X.COM")
	assert.NoError(t, err)
	assert.Nil(t, user)

	user, err = repo.GetByEmail("nobody@x.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestGORMUserRepository_UniqueEmail(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMUserRepository(db)

	require.NoError(t, repo.Create(&models.User{Name: "A", Email: "a@x.com", Password: "digest"}))

	// A second insert with the same email hits the unique index, the
	// backstop for racing registrations.
	err := repo.Create(&models.User{Name: "B", Email: "a@x.com", Password: "digest"})
	assert.ErrorIs(t, err, repositories.ErrDuplicateEmail)

	// Updating an existing user onto a taken email is caught the same way.
	other := &models.User{Name: "C", Email: "c@x.com", Password: "digest"}
	require.NoError(t, repo.Create(other))
	other.Email = "a@x.com"
	err = repo.Update(other)
	assert.ErrorIs(t, err, repositories.ErrDuplicateEmail)
}

func TestGORMUserRepository_DeleteCascades(t *testing.T) {
	db := setupDB(t)
	userRepo := repositories.NewGORMUserRepository(db)
	postRepo := repositories.NewGORMPostRepository(db)
	likeRepo := repositories.NewGORMLikeRepository(db)

	author := &models.User{Name: "Author", Email: "author@x.com", Password: "digest"}
	reader := &models.User{Name: "Reader", Email: "reader@x.com", Password: "digest"}
	require.NoError(t, userRepo.Create(author))
	require.NoError(t, userRepo.Create(reader))

	post := &models.Post{Title: "T", Content: "C", IsPublic: true, OwnerID: author.ID}
	require.NoError(t, postRepo.Create(post))

	// A like by the author elsewhere and a like by another user on the
	// author's post; both must disappear with the author.
	require.NoError(t, likeRepo.Create(&models.Like{UserID: author.ID, PostID: post.ID}))
	require.NoError(t, likeRepo.Create(&models.Like{UserID: reader.ID, PostID: post.ID}))

	require.NoError(t, userRepo.Delete(author.ID))

	gone, err := userRepo.GetByID(author.ID)
	assert.NoError(t, err)
	assert.Nil(t, gone)

	orphan, err := postRepo.GetByID(post.ID)
	assert.NoError(t, err)
	assert.Nil(t, orphan)

	count, err := likeRepo.CountByPost(post.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// The unrelated user survives.
	left, err := userRepo.GetByID(reader.ID)
	assert.NoError(t, err)
	assert.NotNil(t, left)
}

func TestGORMPostRepository_DeleteCascadesLikes(t *testing.T) {
	db := setupDB(t)
	postRepo := repositories.NewGORMPostRepository(db)
	likeRepo := repositories.NewGORMLikeRepository(db)

	post := &models.Post{Title: "T", Content: "C", IsPublic: true, OwnerID: "u1"}
	require.NoError(t, postRepo.Create(post))
	require.NoError(t, likeRepo.Create(&models.Like{UserID: "u2", PostID: post.ID}))

	require.NoError(t, postRepo.Delete(post.ID))

	count, err := likeRepo.CountByPost(post.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestGORMPostRepository_FindVisible(t *testing.T) {
	db := setupDB(t)
	postRepo := repositories.NewGORMPostRepository(db)

	require.NoError(t, postRepo.Create(&models.Post{Title: "pub", IsPublic: true, OwnerID: "u1"}))
	require.NoError(t, postRepo.Create(&models.Post{Title: "own-priv", IsPublic: false, OwnerID: "u1"}))
	require.NoError(t, postRepo.Create(&models.Post{Title: "other-priv", IsPublic: false, OwnerID: "u2"}))

	posts, err := postRepo.FindVisible("u1")
	assert.NoError(t, err)
	assert.Len(t, posts, 2)

	titles := make([]string, 0, len(posts))
	for _, p := range posts {
		titles = append(titles, p.Title)
	}
	assert.ElementsMatch(t, []string{"pub", "own-priv"}, titles)
}
