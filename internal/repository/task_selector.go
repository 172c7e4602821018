package repository

import (
	"fmt"

	"github.com/planit-app/planit-api/internal/apperrors"
)

// TaskSelector is the explicit sum type identifying tasks for deletion:
// team-scoped rows by (team, name), personal rows by (email, name). It is
// built through the two constructors so the two modes cannot be mixed; a
// zero selector fails validation instead of deleting anything.
type TaskSelector struct {
	team     string
	name     string
	email    string
	personal bool
}

// TeamTaskSelector identifies the team task rows matching (team, name).
func TeamTaskSelector(team, name string) TaskSelector {
	return TaskSelector{team: team, name: name}
}

// PersonalTaskSelector identifies the personal task rows matching
// (email, name).
func PersonalTaskSelector(email, name string) TaskSelector {
	return TaskSelector{email: email, name: name, personal: true}
}

func (s TaskSelector) validate() error {
	if s.name == "" {
		return fmt.Errorf("%w: task name is required", apperrors.ErrInvalidArgument)
	}
	if s.personal {
		if s.email == "" {
			return fmt.Errorf("%w: personal task deletion requires an owner email", apperrors.ErrInvalidArgument)
		}
		return nil
	}
	if s.team == "" {
		return fmt.Errorf("%w: team task deletion requires a team name", apperrors.ErrInvalidArgument)
	}
	return nil
}
