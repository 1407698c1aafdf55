package cleaningjobs

import (
	"gorm.io/gorm"

	"github.com/tidynest/tidynest-backend/internal/repo"
	"github.com/tidynest/tidynest-backend/pkg/db/models"
)

// Repository exposes cleaning-job persistence operations.
type Repository struct {
	repo.CRUD[models.CleaningJob]
}

// NewRepository constructs a cleaning-jobs repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{CRUD: repo.NewCRUD[models.CleaningJob](db)}
}
