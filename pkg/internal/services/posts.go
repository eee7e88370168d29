package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/hearthside/chronicle/pkg/internal/database"
	"github.com/hearthside/chronicle/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	ErrTextRequired  = errors.New("post text cannot be empty")
	ErrGroupNotFound = errors.New("referenced group does not exist")
)

// EditOutcome names what happened to an edit request; a denied edit is a
// silent redirect on the wire, but callers and tests can still tell it apart.
type EditOutcome string

const (
	EditApplied = EditOutcome("applied")
	EditDenied  = EditOutcome("denied")
)

func FilterPostWithGroup(tx *gorm.DB, groupID uint) *gorm.DB {
	return tx.Where("group_id = ?", groupID)
}

func FilterPostWithAuthor(tx *gorm.DB, authorID uint) *gorm.DB {
	return tx.Where("author_id = ?", authorID)
}

func PreloadPostGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Author").
		Preload("Group")
}

// ListPostPage returns one page of posts, newest first.
func ListPostPage(tx *gorm.DB, page int) ([]models.Post, Pagination, error) {
	tx, meta, err := Paginate(tx, &models.Post{}, page)
	if err != nil {
		return nil, meta, err
	}

	var items []models.Post
	if err := PreloadPostGeneral(tx).
		Order("published_at DESC").
		Find(&items).Error; err != nil {
		return items, meta, err
	}

	return items, meta, nil
}

// GetPost resolves a post by its id and the name of its author. A post whose
// author does not match the given name counts as missing.
func GetPost(authorName string, id uint) (models.Post, error) {
	var item models.Post
	if err := PreloadPostGeneral(database.C).
		Joins("JOIN accounts ON accounts.id = posts.author_id").
		Where("posts.id = ? AND accounts.name = ?", id, authorName).
		First(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func validatePostFields(text string, groupID *uint) (*models.Group, error) {
	if len(text) == 0 {
		return nil, ErrTextRequired
	}
	if groupID != nil {
		group, err := GetGroupWithID(*groupID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrGroupNotFound
			}
			return nil, fmt.Errorf("unable to check group: %v", err)
		}
		return &group, nil
	}
	return nil, nil
}

func NewPost(author models.Account, text string, groupID *uint, image *string) (models.Post, error) {
	var item models.Post

	group, err := validatePostFields(text, groupID)
	if err != nil {
		return item, err
	}

	item = models.Post{
		Text:        text,
		Image:       image,
		PublishedAt: time.Now(),
		AuthorID:    author.ID,
	}
	if group != nil {
		item.GroupID = &group.ID
	}

	if err := database.C.Save(&item).Error; err != nil {
		return item, err
	}

	log.Debug().Uint("post", item.ID).Uint("author", author.ID).Msg("Published a new post.")
	return item, nil
}

// EditPost applies an edit on behalf of user. When user is not the author
// named in the request, nothing is looked up and nothing changes.
// Author, id and published_at are immutable regardless of the payload.
func EditPost(user models.Account, authorName string, id uint, text string, groupID *uint, image *string) (models.Post, EditOutcome, error) {
	var item models.Post
	if user.Name != authorName {
		return item, EditDenied, nil
	}

	item, err := GetPost(authorName, id)
	if err != nil {
		return item, EditDenied, err
	}

	group, err := validatePostFields(text, groupID)
	if err != nil {
		return item, EditDenied, err
	}

	item.Text = text
	if group != nil {
		item.GroupID = &group.ID
	} else {
		item.GroupID = nil
	}
	if image != nil {
		item.Image = image
	}

	if err := database.C.Save(&item).Error; err != nil {
		return item, EditDenied, err
	}

	return item, EditApplied, nil
}
