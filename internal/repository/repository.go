package repository

import (
	"github.com/planit-app/planit-api/internal/models"
)

// SettingRepository reads the provisioned singleton settings row.
type SettingRepository interface {
	// Load returns the integration keys, or ErrNotFound when the row is
	// absent (a misconfigured deployment, fatal at startup).
	Load() (*models.Setting, error)
}

// UserRepository handles user identity records keyed by email.
type UserRepository interface {
	// Upsert inserts the user or, on an existing email, overwrites
	// nickname and image only.
	Upsert(user *models.User) error

	// Find returns the user for an email, or ErrNotFound.
	Find(email string) (*models.User, error)

	// Delete removes the user in one transaction: memberships are
	// deleted, the owner field on the user's tasks is cleared to the
	// empty marker (task rows survive as team property), then the user
	// row itself is removed.
	Delete(email string) error
}

// MembershipFilter narrows List by whichever fields are non-empty.
// Supplying neither returns the full relation; that form is for
// administrative inspection only and must not be exposed externally.
type MembershipFilter struct {
	Team  string
	Email string
}

// MembershipRepository manages the (team, user) relation.
type MembershipRepository interface {
	// Add upserts on (team, email); the owner flag is overwritten on
	// conflict, never duplicated.
	Add(member *models.Membership) error

	// List returns memberships matching the filter.
	List(filter MembershipFilter) ([]models.Membership, error)

	// SetOwnership updates the owner flag for an existing pair and
	// returns ErrNotFound when the pair does not exist. An ownership
	// transfer is two independent calls; the repository does not make
	// the swap atomic — callers needing that must run both calls in one
	// transaction.
	SetOwnership(team, email string, isOwner bool) error

	// Remove deletes the pair. It does not cascade to tasks or boards: a
	// removed member's past team tasks remain team property.
	Remove(team, email string) error
}

// TaskFilter selects the union of team tasks and personal tasks in a
// single query: rows whose team matches Team, plus rows whose
// (target, owner) pair matches (Target, Email). HideDone drops DONE rows
// from both branches.
type TaskFilter struct {
	Team     string
	Target   string
	Email    string
	HideDone bool
}

// TaskChange is a partial update; only non-nil fields are written.
type TaskChange struct {
	State *models.TaskState
	Color *int
}

// TaskRepository stores team and personal tasks in one relation.
type TaskRepository interface {
	// Create inserts a row. Duplicate (team, name) pairs are accepted;
	// task naming collisions are a caller-level concern, not a
	// storage-level one.
	Create(task *models.Task) error

	// Load runs the visibility union described on TaskFilter.
	Load(filter TaskFilter) ([]models.Task, error)

	// Update writes only the supplied fields for (team, name); personal
	// tasks are addressed with an empty team. A change with neither
	// field set is a defined no-op and issues no SQL.
	Update(team, name string, change TaskChange) error

	// Delete removes the rows selected by the already-resolved selector.
	Delete(sel TaskSelector) error
}

// BoardRepository stores kanban columns and cards in one relation keyed by
// the (team, column, card) triple.
type BoardRepository interface {
	// AddColumn inserts the column row for (team, column).
	AddColumn(team, column string, color int) error

	// AddCard inserts a card row. The column row is not required to
	// exist; an orphaned card is accepted, matching the permissive
	// storage contract.
	AddCard(team, column, card, content string) error

	// Load returns the columns and cards for the scope as their tagged
	// views, so row-shape ambiguity never reaches callers.
	Load(team, column string) ([]models.BoardColumn, []models.BoardCard, error)

	// RecolorColumn updates the column row's color; cards are untouched.
	RecolorColumn(team, column string, color int) error

	// DeleteColumn removes every row matching the (team, column) prefix:
	// the column row and all its cards, as one in-relation cascade.
	DeleteColumn(team, column string) error

	// DeleteCard removes exactly one card row, leaving the column.
	DeleteCard(team, column, card string) error
}

// TeamRepository coordinates the team-scoped cascade.
type TeamRepository interface {
	// Delete atomically removes all memberships, tasks and board rows
	// for the team. No team-scoped row may survive.
	Delete(team string) error
}
