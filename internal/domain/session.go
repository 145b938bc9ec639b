package domain

// Session is the per-login state carried between requests.
// LastServedTitleID is nil until a rated fact has been served.
type Session struct {
	ID                string
	UserID            int64
	Username          string
	LastServedTitleID *int64
}

// Fact is a resolved piece of text ready to be shown to a user.
type Fact struct {
	Text      string
	TitleName string
}
