package repositories

import (
	"errors"
	"time"

	"crudboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPostNotFound = errors.New("post not found")

type PostRepository interface {
	FindByID(id string) (*models.Post, error)
	FindAll(limit, offset int) ([]models.Post, error)
	Create(post *models.Post) error
	Update(post *models.Post) error
	Delete(postID string) error
}

type PostRepositoryImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) FindByID(id string) (*models.Post, error) {
	var post models.Post
	err := r.db.First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *PostRepositoryImpl) FindAll(limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Limit(limit).Offset(offset).Order("created_at DESC").Find(&posts).Error
	return posts, err
}

func (r *PostRepositoryImpl) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *PostRepositoryImpl) Update(post *models.Post) error {
	result := r.db.Model(post).Updates(map[string]interface{}{
		"title":      post.Title,
		"body":       post.Body,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (r *PostRepositoryImpl) Delete(postID string) error {
	result := r.db.Delete(&models.Post{}, "id = ?", postID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}
