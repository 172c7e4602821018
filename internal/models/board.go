package models

// BoardEntry is the shared storage shape for kanban columns and their
// cards. A row with an empty CardName is the column itself; a row with a
// non-empty CardName is a card under the (TeamName, BoardName) column.
// The relation does not enforce that a card's column row exists.
type BoardEntry struct {
	ID          uint64 `gorm:"primarykey" json:"id"`
	TeamName    string `gorm:"column:team_name;type:varchar(255);not null;index" json:"team_name"`
	BoardName   string `gorm:"column:board_name;type:varchar(255);not null" json:"board_name"`
	CardName    string `gorm:"column:card_name;type:varchar(255)" json:"card_name"`
	CardContent string `gorm:"column:card_content;type:text" json:"card_content"`
	Color       int    `gorm:"column:board_color;not null" json:"board_color"`
}

func (BoardEntry) TableName() string {
	return "board_table"
}

// IsColumn reports whether the row is a column row rather than a card.
func (e BoardEntry) IsColumn() bool {
	return e.CardName == ""
}

// BoardColumn is the in-memory view of a column row.
type BoardColumn struct {
	TeamName string `json:"team_name"`
	Name     string `json:"board_name"`
	Color    int    `json:"board_color"`
}

// BoardCard is the in-memory view of a card row.
type BoardCard struct {
	TeamName string `json:"team_name"`
	Column   string `json:"board_name"`
	Name     string `json:"card_name"`
	Content  string `json:"card_content"`
}

// SplitBoard maps the shared storage rows into their tagged column and
// card views so the row-shape ambiguity stays behind the repository.
func SplitBoard(entries []BoardEntry) ([]BoardColumn, []BoardCard) {
	columns := make([]BoardColumn, 0, len(entries))
	cards := make([]BoardCard, 0, len(entries))
	for _, e := range entries {
		if e.IsColumn() {
			columns = append(columns, BoardColumn{
				TeamName: e.TeamName,
				Name:     e.BoardName,
				Color:    e.Color,
			})
			continue
		}
		cards = append(cards, BoardCard{
			TeamName: e.TeamName,
			Column:   e.BoardName,
			Name:     e.CardName,
			Content:  e.CardContent,
		})
	}
	return columns, cards
}
