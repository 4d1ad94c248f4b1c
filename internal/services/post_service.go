package services

import (
	"crudboard_backend/internal/models"
	"crudboard_backend/internal/repositories"
	"crudboard_backend/internal/services/dto"
	"crudboard_backend/pkg/apperrors"
)

type PostService interface {
	CreatePost(userID string, req *dto.CreatePostRequest) (*models.Post, error)
	ListPosts(limit, offset int) ([]models.Post, error)
	GetPost(id string) (*models.Post, error)
	UpdatePost(postID, userID string, role models.UserRole, req *dto.UpdatePostRequest) (*models.Post, error)
	DeletePost(postID, userID string, role models.UserRole) error
}

type PostServiceImpl struct {
	postRepo repositories.PostRepository
}

func NewPostService(postRepo repositories.PostRepository) PostService {
	return &PostServiceImpl{postRepo: postRepo}
}

// CreatePost persists a post owned by the authenticated user. The
// author always comes from the verified token, never from the body.
func (s *PostServiceImpl) CreatePost(userID string, req *dto.CreatePostRequest) (*models.Post, error) {
	post := &models.Post{
		Title:  req.Title,
		Body:   req.Body,
		UserID: userID,
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return post, nil
}

func (s *PostServiceImpl) ListPosts(limit, offset int) ([]models.Post, error) {
	posts, err := s.postRepo.FindAll(limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return posts, nil
}

func (s *PostServiceImpl) GetPost(id string) (*models.Post, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return post, nil
}

// UpdatePost modifies a post. Only the owner or an admin may do so.
func (s *PostServiceImpl) UpdatePost(postID, userID string, role models.UserRole, req *dto.UpdatePostRequest) (*models.Post, error) {
	post, err := s.getOwnedPost(postID, userID, role)
	if err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Body = req.Body

	if err := s.postRepo.Update(post); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return post, nil
}

// DeletePost removes a post. Only the owner or an admin may do so.
func (s *PostServiceImpl) DeletePost(postID, userID string, role models.UserRole) error {
	if _, err := s.getOwnedPost(postID, userID, role); err != nil {
		return err
	}

	if err := s.postRepo.Delete(postID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *PostServiceImpl) getOwnedPost(postID, userID string, role models.UserRole) (*models.Post, error) {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if post.UserID != userID && role != models.UserRoleAdmin {
		return nil, apperrors.ErrNotResourceOwner
	}

	return post, nil
}
