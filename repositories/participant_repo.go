// Database-backed roster. Only talks to the database via GORM, no HTTP/JSON.
package repositories

import (
	"context"
	"strings"

	"github.com/harshu1705/NSSS-Certificate/models"

	"gorm.io/gorm" // injected so repos are testable with sqlmock
)

// importBatchSize bounds the row count of a single INSERT.
const importBatchSize = 500

// ParticipantRepository is the roster stored in the participants table.
// It also serves as a RosterRepository.
type ParticipantRepository interface {
	RosterRepository
	Import(ctx context.Context, names []string) (int, error)
	Count(ctx context.Context) (int64, error)
}

type participantRepo struct{ db *gorm.DB }

// NewParticipantRepository injects *gorm.DB (mysql/postgres/sqlite/sqlserver).
func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepo{db: db}
}

// Names returns every stored name in insertion order.
func (r *participantRepo) Names(ctx context.Context) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).
		Model(&models.Participant{}).
		Order("id ASC"). // deterministic order
		Pluck("name", &names).
		Error; err != nil {
		return nil, err
	}
	return names, nil
}

// Import inserts the non-blank names as given and returns how many were written.
// Names keep their original spelling; duplicates are harmless for a set lookup.
func (r *participantRepo) Import(ctx context.Context, names []string) (int, error) {
	rows := make([]models.Participant, 0, len(names))
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		rows = append(rows, models.Participant{Name: n})
	}
	if len(rows) == 0 {
		return 0, nil
	}
	if err := r.db.WithContext(ctx).CreateInBatches(&rows, importBatchSize).Error; err != nil {
		return 0, err
	}
	return len(rows), nil
}

// Count returns the number of stored rows.
func (r *participantRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Participant{}).Count(&total).Error
	return total, err
}
