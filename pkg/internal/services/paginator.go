package services

import (
	"math"

	"github.com/spf13/viper"
	"gorm.io/gorm"
)

// Pagination is the metadata bag shared by every paginated listing.
type Pagination struct {
	Count       int64 `json:"count"`
	Pages       int   `json:"pages"`
	Page        int   `json:"page"`
	PerPage     int   `json:"per_page"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

func PerPage() int {
	if val := viper.GetInt("paginator.page_size"); val > 0 {
		return val
	}
	return 10
}

// Paginate counts the rows matched by tx and scopes it to the requested page.
// Out-of-range page numbers clamp to the last valid page instead of erroring,
// so a stale link keeps working after rows disappear.
func Paginate(tx *gorm.DB, model any, page int) (*gorm.DB, Pagination, error) {
	perPage := PerPage()

	var count int64
	if err := tx.Session(&gorm.Session{}).Model(model).Count(&count).Error; err != nil {
		return tx, Pagination{}, err
	}

	pages := int(math.Ceil(float64(count) / float64(perPage)))
	if pages < 1 {
		pages = 1
	}
	if page < 1 || page > pages {
		page = pages
	}

	meta := Pagination{
		Count:       count,
		Pages:       pages,
		Page:        page,
		PerPage:     perPage,
		HasNext:     page < pages,
		HasPrevious: page > 1,
	}

	return tx.Offset((page - 1) * perPage).Limit(perPage), meta, nil
}
