package services

import (
	"github.com/hearthside/chronicle/pkg/internal/database"
	"github.com/hearthside/chronicle/pkg/internal/models"
)

func ListGroup(take int, offset int) ([]models.Group, error) {
	var groups []models.Group
	err := database.C.Offset(offset).Limit(take).Find(&groups).Error

	return groups, err
}

func GetGroup(slug string) (models.Group, error) {
	var group models.Group
	if err := database.C.Where(models.Group{Slug: slug}).First(&group).Error; err != nil {
		return group, err
	}
	return group, nil
}

func GetGroupWithID(id uint) (models.Group, error) {
	var group models.Group
	if err := database.C.Where(models.Group{
		BaseModel: models.BaseModel{ID: id},
	}).First(&group).Error; err != nil {
		return group, err
	}
	return group, nil
}

func NewGroup(slug, title, description string) (models.Group, error) {
	group := models.Group{
		Slug:        slug,
		Title:       title,
		Description: description,
	}

	err := database.C.Save(&group).Error

	return group, err
}
