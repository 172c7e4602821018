package models

type TaskState string

const (
	TaskStateTodo  TaskState = "TODO"
	TaskStateDoing TaskState = "DOING"
	TaskStateDone  TaskState = "DONE"
)

// Valid reports whether s is one of the closed set of task states.
func (s TaskState) Valid() bool {
	switch s {
	case TaskStateTodo, TaskStateDoing, TaskStateDone:
		return true
	}
	return false
}

// Color codes are a bounded palette shared by tasks and board columns.
const (
	ColorMin = 0
	ColorMax = 11
)

// ValidColor reports whether c is inside the palette bounds.
func ValidColor(c int) bool {
	return c >= ColorMin && c <= ColorMax
}

// Task stores both team tasks and personal tasks in one relation. A row
// with a non-empty TeamName is a team task, visible to the whole team; a
// row with an empty TeamName is a personal task, visible only through its
// (Target, UserEmail) pair. There is no uniqueness constraint on
// (team, name): duplicate names are a caller-level concern. Start and
// End hold YYYY-MM-DD text verbatim; a date column would come back
// re-stringified by the driver.
type Task struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	TeamName  string    `gorm:"column:team_name;type:varchar(255);not null;index" json:"team_name"`
	Name      string    `gorm:"column:task_name;type:varchar(255);not null" json:"task_name"`
	Start     string    `gorm:"column:task_start;type:varchar(10)" json:"task_start"`
	End       string    `gorm:"column:task_end;type:varchar(10)" json:"task_end"`
	State     TaskState `gorm:"column:task_state;type:varchar(10);not null;default:'TODO'" json:"task_state"`
	Color     int       `gorm:"column:task_color;not null" json:"task_color"`
	Target    string    `gorm:"column:task_target;type:varchar(255)" json:"task_target"`
	UserEmail string    `gorm:"column:user_email;type:varchar(255);index" json:"user_email"`
}

func (Task) TableName() string {
	return "task_table"
}

// IsPersonal reports whether the task belongs to a user rather than a team.
func (t Task) IsPersonal() bool {
	return t.TeamName == ""
}
