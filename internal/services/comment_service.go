package services

import (
	"crudboard_backend/internal/models"
	"crudboard_backend/internal/repositories"
	"crudboard_backend/internal/services/dto"
	"crudboard_backend/pkg/apperrors"
)

type CommentService interface {
	CreateComment(postID, userID string, req *dto.CreateCommentRequest) (*models.Comment, error)
	ListComments(postID string, limit, offset int) ([]models.Comment, error)
	DeleteComment(postID, commentID, userID string, role models.UserRole) error
}

type CommentServiceImpl struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

func NewCommentService(
	commentRepo repositories.CommentRepository,
	postRepo repositories.PostRepository,
) CommentService {
	return &CommentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment stores a comment under an existing post. Commenting on
// a missing post is 404, not a dangling reference.
func (s *CommentServiceImpl) CreateComment(postID, userID string, req *dto.CreateCommentRequest) (*models.Comment, error) {
	if _, err := s.postRepo.FindByID(postID); err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	comment := &models.Comment{
		Body:   req.Body,
		PostID: postID,
		UserID: userID,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return comment, nil
}

// DeleteComment removes a comment. Only its author or an admin may do
// so, and only through the post the comment belongs to.
func (s *CommentServiceImpl) DeleteComment(postID, commentID, userID string, role models.UserRole) error {
	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCommentNotFound) {
			return apperrors.ErrCommentNotFound
		}
		return apperrors.InternalError(err)
	}

	if comment.PostID != postID {
		return apperrors.ErrCommentNotFound
	}

	if comment.UserID != userID && role != models.UserRoleAdmin {
		return apperrors.ErrNotResourceOwner
	}

	if err := s.commentRepo.Delete(commentID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CommentServiceImpl) ListComments(postID string, limit, offset int) ([]models.Comment, error) {
	if _, err := s.postRepo.FindByID(postID); err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	comments, err := s.commentRepo.FindByPostID(postID, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return comments, nil
}
