package models

// Session is a persisted pointer used to resume a login without re-entering
// credentials. It is only honored while both fields still match a live
// directory entry.
type Session struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
}
