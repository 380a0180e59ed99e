package repository

import (
	"context"

	"blogcms/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations. Replies
// are found through parent_id; no comment tree is materialized.
type CommentRepository interface {
	CRUD[models.Comment]
	GetByPost(ctx context.Context, postID uint, skip, limit int) ([]models.Comment, error)
	GetReplies(ctx context.Context, parentID uint, skip, limit int) ([]models.Comment, error)
	CreateWithAuthor(ctx context.Context, comment *models.Comment, authorID uint) (*models.Comment, error)
}

type commentRepository struct {
	*Repository[models.Comment]
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{Repository: NewRepository[models.Comment](db, "Author")}
}

func (r *commentRepository) GetByPost(ctx context.Context, postID uint, skip, limit int) ([]models.Comment, error) {
	return r.ListWhere(ctx, "get_by_post", skip, limit, "post_id = ?", postID)
}

func (r *commentRepository) GetReplies(ctx context.Context, parentID uint, skip, limit int) ([]models.Comment, error) {
	return r.ListWhere(ctx, "get_replies", skip, limit, "parent_id = ?", parentID)
}

func (r *commentRepository) CreateWithAuthor(ctx context.Context, comment *models.Comment, authorID uint) (*models.Comment, error) {
	comment.AuthorID = authorID
	return r.Create(ctx, comment)
}
