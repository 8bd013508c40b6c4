package notifications

import (
	"github.com/lasville/giustizia/pkg/query"
	"github.com/lasville/giustizia/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "notifications", "n").
	Project("id", "ID").
	Project("user_id", "UserID").
	Project("title", "Title").
	Project("message", "Message").
	Project("is_read", "IsRead").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

func scanNotification(s repository.Scanner) (Notification, error) {
	var n Notification
	err := s.Scan(
		&n.ID,
		&n.UserID,
		&n.Title,
		&n.Message,
		&n.IsRead,
		&n.CreatedAt,
	)
	return n, err
}
