package calendar

import (
	"gorm.io/gorm"

	"github.com/tidynest/tidynest-backend/internal/repo"
	"github.com/tidynest/tidynest-backend/pkg/db/models"
)

// Repository exposes calendar-event persistence operations.
type Repository struct {
	repo.CRUD[models.CalendarEvent]
}

// NewRepository constructs a calendar repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{CRUD: repo.NewCRUD[models.CalendarEvent](db)}
}
