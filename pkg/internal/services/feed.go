package services

import (
	"github.com/hearthside/chronicle/pkg/internal/database"
	"github.com/hearthside/chronicle/pkg/internal/models"
)

// ListFollowedPosts builds the personal feed: one page of posts whose author
// the viewer follows, newest first. An empty follow list yields an empty page.
func ListFollowedPosts(user models.Account, page int) ([]models.Post, Pagination, error) {
	authors, err := ListFollowedAuthorIDs(user)
	if err != nil {
		return nil, Pagination{}, err
	}

	tx := database.C.Where("author_id IN ?", authors)
	return ListPostPage(tx, page)
}
