package model

// Session is one entry of the session registry.
type Session struct {
	ID             string
	Title          string
	ProjectContext string
	Domain         string
	CreatedAt      string
	LastActive     string
}
