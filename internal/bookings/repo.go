package bookings

import (
	"gorm.io/gorm"

	"github.com/tidynest/tidynest-backend/internal/repo"
	"github.com/tidynest/tidynest-backend/pkg/db/models"
)

// Repository exposes booking persistence operations.
type Repository struct {
	repo.CRUD[models.HouseBooking]
}

// NewRepository constructs a bookings repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{CRUD: repo.NewCRUD[models.HouseBooking](db)}
}
