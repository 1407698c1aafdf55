package properties

import (
	"gorm.io/gorm"

	"github.com/tidynest/tidynest-backend/internal/repo"
	"github.com/tidynest/tidynest-backend/pkg/db/models"
)

// Repository exposes property persistence operations.
type Repository struct {
	repo.CRUD[models.Property]
}

// NewRepository constructs a properties repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{CRUD: repo.NewCRUD[models.Property](db)}
}
