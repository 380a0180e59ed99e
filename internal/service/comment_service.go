package service

import (
	"context"

	"blogcms/internal/models"
	"blogcms/internal/repository"
	"blogcms/internal/validation"
)

const (
	msgPostMissing   = "Post not found"
	msgParentMissing = "Parent comment not found"
	msgParentOnOther = "Parent comment belongs to a different post"
)

// CommentService handles comment business logic.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

type CreateCommentInput struct {
	Content  string
	PostID   uint
	ParentID *uint
}

type UpdateCommentInput struct {
	Content    *string
	IsApproved *bool
}

// NewCommentService creates a new comment service
func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

func validateCommentContent(content string) error {
	if err := validation.ValidateLength("content", content, 1, 0); err != nil {
		return models.NewValidationError(err.Error())
	}
	return nil
}

// CreateComment checks that the author and post exist and, for a reply, that
// the parent exists on the same post.
func (s *CommentService) CreateComment(ctx context.Context, authorID uint, in CreateCommentInput) (*models.Comment, error) {
	if err := validateCommentContent(in.Content); err != nil {
		return nil, err
	}

	author, err := s.userRepo.Get(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, models.NewValidationError(msgAuthorNotFound)
	}

	post, err := s.postRepo.Get(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, models.NewValidationError(msgPostMissing)
	}

	if in.ParentID != nil {
		parent, err := s.commentRepo.Get(ctx, *in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, models.NewValidationError(msgParentMissing)
		}
		if parent.PostID != in.PostID {
			return nil, validationf("%s (post %d)", msgParentOnOther, parent.PostID)
		}
	}

	return s.commentRepo.CreateWithAuthor(ctx, &models.Comment{
		Content:  in.Content,
		PostID:   in.PostID,
		ParentID: in.ParentID,
	}, authorID)
}

func (s *CommentService) ListComments(ctx context.Context, skip, limit int) ([]models.Comment, error) {
	return s.commentRepo.List(ctx, skip, limit)
}

func (s *CommentService) GetComment(ctx context.Context, id uint) (*models.Comment, error) {
	comment, err := s.commentRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, notFound("Comment", id)
	}
	return comment, nil
}

// ListByPost lists a post's comments. An unknown post yields an empty list.
func (s *CommentService) ListByPost(ctx context.Context, postID uint, skip, limit int) ([]models.Comment, error) {
	return s.commentRepo.GetByPost(ctx, postID, skip, limit)
}

// ListReplies lists the direct replies to a comment, which must exist.
func (s *CommentService) ListReplies(ctx context.Context, id uint, skip, limit int) ([]models.Comment, error) {
	if _, err := s.GetComment(ctx, id); err != nil {
		return nil, err
	}
	return s.commentRepo.GetReplies(ctx, id, skip, limit)
}

func (s *CommentService) UpdateComment(ctx context.Context, id uint, in UpdateCommentInput) (*models.Comment, error) {
	fields := repository.Fields{}
	if in.Content != nil {
		if err := validateCommentContent(*in.Content); err != nil {
			return nil, err
		}
		fields["content"] = *in.Content
	}
	if in.IsApproved != nil {
		fields["is_approved"] = *in.IsApproved
	}

	comment, err := s.commentRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, notFound("Comment", id)
	}
	return comment, nil
}

// DeleteComment removes the comment and, through the foreign key, its replies.
func (s *CommentService) DeleteComment(ctx context.Context, id uint) (*models.Comment, error) {
	comment, err := s.commentRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, notFound("Comment", id)
	}
	return comment, nil
}
