package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	apperrors "github.com/ecnhealth/clinical-api/pkg/errors"
)

// Entity names used in client-facing error messages.
const (
	entityPatient    = "Patient"
	entityAssessment = "Assessment"
	entityTreatment  = "Treatment"
)

// translateError converts driver-level errors into the application taxonomy.
func translateError(entity string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NewNotFound(entity, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		field := "email"
		if !strings.Contains(pqErr.Constraint, "email") {
			field = pqErr.Constraint
		}
		msg := fmt.Sprintf("%s with this %s already exists", strings.ToLower(entity), field)
		return apperrors.NewConflict(msg, err)
	}

	return fmt.Errorf("%s query failed: %w", strings.ToLower(entity), err)
}
