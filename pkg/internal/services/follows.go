package services

import (
	"errors"
	"fmt"

	"github.com/hearthside/chronicle/pkg/internal/database"
	"github.com/hearthside/chronicle/pkg/internal/models"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type FollowOutcome string

const (
	FollowCreated   = FollowOutcome("created")
	FollowDuplicate = FollowOutcome("duplicate")
	FollowSelf      = FollowOutcome("self")
)

type UnfollowOutcome string

const (
	UnfollowDeleted = UnfollowOutcome("deleted")
	UnfollowMissing = UnfollowOutcome("missing")
)

func GetFollow(userID, authorID uint) (*models.Follow, error) {
	var follow models.Follow
	if err := database.C.Where("user_id = ? AND author_id = ?", userID, authorID).First(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to get follow: %v", err)
	}
	return &follow, nil
}

func IsFollowing(userID, authorID uint) bool {
	follow, err := GetFollow(userID, authorID)
	return err == nil && follow != nil
}

// FollowAuthor subscribes user to target's posts. Self-follows and existing
// pairs are no-ops reported through the outcome, never errors.
func FollowAuthor(user models.Account, target models.Account) (FollowOutcome, error) {
	if user.ID == target.ID {
		return FollowSelf, nil
	}

	follow, err := GetFollow(user.ID, target.ID)
	if err != nil {
		return FollowDuplicate, err
	} else if follow != nil {
		return FollowDuplicate, nil
	}

	follow = &models.Follow{
		UserID:   user.ID,
		AuthorID: target.ID,
	}

	if err := database.C.Save(follow).Error; err != nil {
		// The unique pair index catches races between the check and the insert.
		return FollowDuplicate, err
	}

	return FollowCreated, nil
}

func UnfollowAuthor(user models.Account, target models.Account) (UnfollowOutcome, error) {
	follow, err := GetFollow(user.ID, target.ID)
	if err != nil {
		return UnfollowMissing, err
	} else if follow == nil {
		return UnfollowMissing, nil
	}

	// Hard delete: a soft-deleted row would still occupy the unique pair
	// index and block any later re-follow.
	if err := database.C.Unscoped().Delete(follow).Error; err != nil {
		return UnfollowMissing, err
	}

	return UnfollowDeleted, nil
}

func ListFollowedAuthorIDs(user models.Account) ([]uint, error) {
	var follows []models.Follow
	if err := database.C.Where("user_id = ?", user.ID).Find(&follows).Error; err != nil {
		return nil, fmt.Errorf("unable to list follows: %v", err)
	}

	idx := lo.Map(follows, func(item models.Follow, index int) uint {
		return item.AuthorID
	})

	return idx, nil
}
