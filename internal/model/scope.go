package model

// Scope identifies who an activity is handled on behalf of.
type Scope struct {
	UserID    string
	Username  string
	ChannelID string
}

// ScopeFromActivity builds the scope of the sender of a.
func ScopeFromActivity(a Activity) Scope {
	return Scope{
		UserID:    a.From.ID,
		Username:  a.From.Name,
		ChannelID: a.ChannelID,
	}
}
