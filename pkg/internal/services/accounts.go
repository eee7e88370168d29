package services

import (
	"fmt"

	"github.com/hearthside/chronicle/pkg/internal/database"
	"github.com/hearthside/chronicle/pkg/internal/models"
	"gorm.io/gorm/clause"
)

func GetAccount(name string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where(models.Account{Name: name}).First(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

func GetAccountWithID(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		return account, fmt.Errorf("unable to get account by id: %v", err)
	}
	return account, nil
}

// UpsertAccount mirrors an externally registered user into the local table.
// Registration itself happens on the identity service; we only sync the row.
func UpsertAccount(account models.Account) (models.Account, error) {
	err := database.C.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"nick", "avatar"}),
	}).Create(&account).Error
	if err != nil {
		return account, err
	}

	return GetAccount(account.Name)
}

func CountAccountPosts(id uint) int64 {
	var count int64
	if err := database.C.Model(&models.Post{}).
		Where("author_id = ?", id).
		Count(&count).Error; err != nil {
		return 0
	}

	return count
}
