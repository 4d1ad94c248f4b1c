package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crudboard_backend/internal/models"
	"crudboard_backend/internal/services/dto"
	"crudboard_backend/pkg/apperrors"
)

func newCommentServiceForTest(t *testing.T) (CommentService, string) {
	t.Helper()

	postRepo := newFakePostRepo()
	postSvc := NewPostService(postRepo)

	post, err := postSvc.CreatePost("author-1", &dto.CreatePostRequest{Title: "t", Body: "b"})
	require.NoError(t, err)

	return NewCommentService(newFakeCommentRepo(), postRepo), post.ID
}

func TestCreateComment_UnderExistingPost(t *testing.T) {
	t.Parallel()

	svc, postID := newCommentServiceForTest(t)

	comment, err := svc.CreateComment(postID, "commenter-1", &dto.CreateCommentRequest{Body: "Nice post"})
	require.NoError(t, err)

	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, postID, comment.PostID)
	assert.Equal(t, "commenter-1", comment.UserID)
	assert.Equal(t, "Nice post", comment.Body)
}

func TestCreateComment_MissingPost(t *testing.T) {
	t.Parallel()

	svc, _ := newCommentServiceForTest(t)

	_, err := svc.CreateComment("missing-post", "commenter-1", &dto.CreateCommentRequest{Body: "Hello"})
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
}

func TestDeleteComment_OwnerAndAdmin(t *testing.T) {
	t.Parallel()

	svc, postID := newCommentServiceForTest(t)

	comment, err := svc.CreateComment(postID, "commenter-1", &dto.CreateCommentRequest{Body: "Hello"})
	require.NoError(t, err)

	err = svc.DeleteComment(postID, comment.ID, "intruder", models.UserRoleUser)
	assert.ErrorIs(t, err, apperrors.ErrNotResourceOwner)

	err = svc.DeleteComment(postID, comment.ID, "moderator", models.UserRoleAdmin)
	require.NoError(t, err)

	err = svc.DeleteComment(postID, comment.ID, "commenter-1", models.UserRoleUser)
	assert.ErrorIs(t, err, apperrors.ErrCommentNotFound)
}

func TestDeleteComment_WrongPost(t *testing.T) {
	t.Parallel()

	postRepo := newFakePostRepo()
	postSvc := NewPostService(postRepo)
	svc := NewCommentService(newFakeCommentRepo(), postRepo)

	first, err := postSvc.CreatePost("author-1", &dto.CreatePostRequest{Title: "first", Body: "b"})
	require.NoError(t, err)
	second, err := postSvc.CreatePost("author-1", &dto.CreatePostRequest{Title: "second", Body: "b"})
	require.NoError(t, err)

	comment, err := svc.CreateComment(first.ID, "commenter-1", &dto.CreateCommentRequest{Body: "Hello"})
	require.NoError(t, err)

	// Addressing the comment through another post must not reach it
	err = svc.DeleteComment(second.ID, comment.ID, "commenter-1", models.UserRoleUser)
	assert.ErrorIs(t, err, apperrors.ErrCommentNotFound)

	comments, err := svc.ListComments(first.ID, 50, 0)
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}

func TestListComments_ScopedToPost(t *testing.T) {
	t.Parallel()

	postRepo := newFakePostRepo()
	postSvc := NewPostService(postRepo)
	svc := NewCommentService(newFakeCommentRepo(), postRepo)

	first, err := postSvc.CreatePost("author-1", &dto.CreatePostRequest{Title: "first", Body: "b"})
	require.NoError(t, err)
	second, err := postSvc.CreatePost("author-1", &dto.CreatePostRequest{Title: "second", Body: "b"})
	require.NoError(t, err)

	_, err = svc.CreateComment(first.ID, "u1", &dto.CreateCommentRequest{Body: "on first"})
	require.NoError(t, err)
	_, err = svc.CreateComment(second.ID, "u2", &dto.CreateCommentRequest{Body: "on second"})
	require.NoError(t, err)

	comments, err := svc.ListComments(first.ID, 50, 0)
	require.NoError(t, err)

	require.Len(t, comments, 1)
	assert.Equal(t, "on first", comments[0].Body)
}

func TestListComments_MissingPost(t *testing.T) {
	t.Parallel()

	svc, _ := newCommentServiceForTest(t)

	_, err := svc.ListComments("missing-post", 50, 0)
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
}
