package houses

import (
	"gorm.io/gorm"

	"github.com/tidynest/tidynest-backend/internal/repo"
	"github.com/tidynest/tidynest-backend/pkg/db/models"
)

// Repository exposes house persistence operations.
type Repository struct {
	repo.CRUD[models.House]
}

// NewRepository constructs a houses repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{CRUD: repo.NewCRUD[models.House](db)}
}
