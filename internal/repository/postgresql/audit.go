package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/teamready/readiness-backend-go/internal/domain/audit"
	"github.com/teamready/readiness-backend-go/internal/pkg/database"
)

type auditRepository struct {
	db *database.DB
}

// Create implements audit.AuditRepository.
func (r *auditRepository) Create(ctx context.Context, e audit.Entry) error {
	q := GetQuerier(ctx, r.db)

	var metadata []byte
	if e.Metadata != nil {
		var err error
		metadata, err = json.Marshal(e.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal audit metadata: %w", err)
		}
	}

	query := `
		INSERT INTO audit_logs (id, company_id, user_id, action, entity_type, entity_id, description, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := q.Exec(ctx, query,
		e.ID, e.CompanyID, e.UserID, e.Action,
		e.EntityType, e.EntityID, e.Description, metadata,
	)
	if err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

func NewAuditRepository(db *database.DB) audit.AuditRepository {
	return &auditRepository{db: db}
}
