// AngelaMos | 2026
// entity.go

package note

import (
	"time"

	"github.com/lib/pq"
)

// Note is owned exclusively by the creating user, same lifecycle as a
// task. Tags are stored as a Postgres text array.
type Note struct {
	ID        string         `db:"id"`
	Title     string         `db:"title"`
	Content   string         `db:"content"`
	Tags      pq.StringArray `db:"tags"`
	UserID    string         `db:"user_id"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}
