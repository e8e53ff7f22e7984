package migration

import (
	"github.com/orris-inc/casedesk/internal/infrastructure/persistence/models"
)

// Models returns the persistence models in creation order.
func Models() []interface{} {
	return models.All()
}
