package services

import (
	"sync"

	"github.com/google/uuid"

	"crudboard_backend/internal/email"
	"crudboard_backend/internal/models"
	"crudboard_backend/internal/repositories"
)

// In-memory repositories used by the service tests. They honor the
// same sentinel errors as the gorm implementations.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) VerifyUser(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.Verified = true
	return nil
}

func (r *fakeUserRepo) Delete(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[userID]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.users, userID)
	return nil
}

func (r *fakeUserRepo) CountByRole(role models.UserRole) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, user := range r.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

func (r *fakeUserRepo) FindAll(limit, offset int) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		all = append(all, *user)
	}
	return paginate(all, limit, offset), nil
}

type fakePostRepo struct {
	mu    sync.Mutex
	posts map[string]*models.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]*models.Post)}
}

func (r *fakePostRepo) FindByID(id string) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, repositories.ErrPostNotFound
	}
	copied := *post
	return &copied, nil
}

func (r *fakePostRepo) FindAll(limit, offset int) ([]models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]models.Post, 0, len(r.posts))
	for _, post := range r.posts {
		all = append(all, *post)
	}
	return paginate(all, limit, offset), nil
}

func (r *fakePostRepo) Create(post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	copied := *post
	r.posts[post.ID] = &copied
	return nil
}

func (r *fakePostRepo) Update(post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[post.ID]; !ok {
		return repositories.ErrPostNotFound
	}
	copied := *post
	r.posts[post.ID] = &copied
	return nil
}

func (r *fakePostRepo) Delete(postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[postID]; !ok {
		return repositories.ErrPostNotFound
	}
	delete(r.posts, postID)
	return nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments map[string]*models.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[string]*models.Comment)}
}

func (r *fakeCommentRepo) FindByID(id string) (*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	comment, ok := r.comments[id]
	if !ok {
		return nil, repositories.ErrCommentNotFound
	}
	copied := *comment
	return &copied, nil
}

func (r *fakeCommentRepo) FindByPostID(postID string, limit, offset int) ([]models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]models.Comment, 0)
	for _, comment := range r.comments {
		if comment.PostID == postID {
			matched = append(matched, *comment)
		}
	}
	return paginate(matched, limit, offset), nil
}

func (r *fakeCommentRepo) Create(comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	copied := *comment
	r.comments[comment.ID] = &copied
	return nil
}

func (r *fakeCommentRepo) Delete(commentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.comments[commentID]; !ok {
		return repositories.ErrCommentNotFound
	}
	delete(r.comments, commentID)
	return nil
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// recordingEmailProvider captures verification sends so tests can
// redeem the exact token that would have been emailed.
type recordingEmailProvider struct {
	mu    sync.Mutex
	sends []sentVerification
}

type sentVerification struct {
	To    string
	Token string
}

func (p *recordingEmailProvider) Send(msg *email.Email) error {
	return nil
}

func (p *recordingEmailProvider) SendVerification(to, token string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sends = append(p.sends, sentVerification{To: to, Token: token})
	return nil
}

func (p *recordingEmailProvider) lastSend() (sentVerification, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.sends) == 0 {
		return sentVerification{}, false
	}
	return p.sends[len(p.sends)-1], true
}
