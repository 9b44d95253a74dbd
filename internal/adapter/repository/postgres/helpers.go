package postgres

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// tsToTime converts a nullable timestamptz to a time.Time. Absent
// values come back as the zero time, which the domain treats as "no
// date".
func tsToTime(ts pgtype.Timestamptz) time.Time {
	if !ts.Valid {
		return time.Time{}
	}
	return ts.Time
}

func textToString(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}
