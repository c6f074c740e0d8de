package services_test

import (
	"testing"

	"cms/internal/models"
	"cms/internal/repositories"
	"cms/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockLikeRepository is a mock implementation of repositories.LikeRepository
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Create(like *models.Like) error {
	args := m.Called(like)
	return args.Error(0)
}

func (m *MockLikeRepository) Exists(userID, postID string) (bool, error) {
	args := m.Called(userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) Delete(userID, postID string) (bool, error) {
	args := m.Called(userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) CountByPost(postID string) (int64, error) {
	args := m.Called(postID)
	return args.Get(0).(int64), args.Error(1)
}

func TestLikeService_LikePost(t *testing.T) {
	mockLikes := new(MockLikeRepository)
	mockPosts := new(MockPostRepository)
	likeService := services.NewLikeService(mockLikes, mockPosts, nil)

	// Nonexistent post is not found, before any eligibility check.
	mockPosts.On("GetByID", "missing").Return(nil, nil).Once()
	err := likeService.LikePost(owner, "missing")
	assert.ErrorIs(t, err, services.ErrPostNotFound)

	private := &models.Post{ID: "p1", OwnerID: owner.ID, IsPublic: false}

	// A stranger cannot like a private post.
	mockPosts.On("GetByID", "p1").Return(private, nil).Once()
	err = likeService.LikePost(stranger, "p1")
	assert.ErrorIs(t, err, services.ErrPrivateLike)

	// The owner can like their own private post.
	mockPosts.On("GetByID", "p1").Return(private, nil).Once()
	mockLikes.On("Exists", owner.ID, "p1").Return(false, nil).Once()
	mockLikes.On("Create", mock.AnythingOfType("*models.Like")).Return(nil).Once()
	assert.NoError(t, likeService.LikePost(owner, "p1"))

	// Liking twice fails.
	mockPosts.On("GetByID", "p1").Return(private, nil).Once()
	mockLikes.On("Exists", owner.ID, "p1").Return(true, nil).Once()
	err = likeService.LikePost(owner, "p1")
	assert.ErrorIs(t, err, services.ErrAlreadyLiked)

	mockLikes.AssertExpectations(t)
	mockPosts.AssertExpectations(t)
}

func TestLikeService_LikePost_RaceOnInsert(t *testing.T) {
	mockLikes := new(MockLikeRepository)
	mockPosts := new(MockPostRepository)
	likeService := services.NewLikeService(mockLikes, mockPosts, nil)

	public := &models.Post{ID: "p1", OwnerID: owner.ID, IsPublic: true}

	// A concurrent like can slip past the existence check; the unique
	// index violation must surface as the same "already liked" outcome.
	mockPosts.On("GetByID", "p1").Return(public, nil).Once()
	mockLikes.On("Exists", stranger.ID, "p1").Return(false, nil).Once()
	mockLikes.On("Create", mock.AnythingOfType("*models.Like")).Return(repositories.ErrDuplicateLike).Once()

	err := likeService.LikePost(stranger, "p1")
	assert.ErrorIs(t, err, services.ErrAlreadyLiked)
	mockLikes.AssertExpectations(t)
	mockPosts.AssertExpectations(t)
}

func TestLikeService_UnlikePost(t *testing.T) {
	mockLikes := new(MockLikeRepository)
	mockPosts := new(MockPostRepository)
	likeService := services.NewLikeService(mockLikes, mockPosts, nil)

	mockPosts.On("GetByID", "missing").Return(nil, nil).Once()
	err := likeService.UnlikePost(owner, "missing")
	assert.ErrorIs(t, err, services.ErrPostNotFound)

	public := &models.Post{ID: "p1", OwnerID: owner.ID, IsPublic: true}

	// Unliking without a prior like fails.
	mockPosts.On("GetByID", "p1").Return(public, nil).Once()
	mockLikes.On("Delete", owner.ID, "p1").Return(false, nil).Once()
	err = likeService.UnlikePost(owner, "p1")
	assert.ErrorIs(t, err, services.ErrNotLiked)

	// Successful unlike.
	mockPosts.On("GetByID", "p1").Return(public, nil).Once()
	mockLikes.On("Delete", owner.ID, "p1").Return(true, nil).Once()
	assert.NoError(t, likeService.UnlikePost(owner, "p1"))

	mockLikes.AssertExpectations(t)
	mockPosts.AssertExpectations(t)
}
