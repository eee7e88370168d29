package services

import (
	"github.com/hearthside/chronicle/pkg/internal/database"
	"github.com/hearthside/chronicle/pkg/internal/models"
	"github.com/rs/zerolog/log"
)

// CommentOutcome distinguishes a stored comment from a silently skipped one.
type CommentOutcome string

const (
	CommentCreated = CommentOutcome("created")
	CommentSkipped = CommentOutcome("skipped")
)

func ListPostComments(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := database.C.
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return comments, err
	}

	return comments, nil
}

func CountPostComments(postID uint) int64 {
	var count int64
	if err := database.C.Model(&models.Comment{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0
	}

	return count
}

// NewComment attaches a comment to post. An empty text is skipped without an
// error; the submitted text is dropped on the floor.
// TODO surface a validation message instead of skipping, pending product review.
func NewComment(author models.Account, post models.Post, text string) (models.Comment, CommentOutcome, error) {
	var comment models.Comment
	if len(text) == 0 {
		log.Debug().Uint("post", post.ID).Msg("Skipped an empty comment submission.")
		return comment, CommentSkipped, nil
	}

	comment = models.Comment{
		Text:     text,
		PostID:   post.ID,
		AuthorID: author.ID,
	}

	if err := database.C.Save(&comment).Error; err != nil {
		return comment, CommentSkipped, err
	}

	return comment, CommentCreated, nil
}
