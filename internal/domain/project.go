package domain

// Project is reference data fetched from the backend
type Project struct {
	Client      string
	Description string
	ID          string
	Name        string
	Status      string
}

// Task is scoped to a project
type Task struct {
	Description string
	ID          string
	Name        string
	Priority    string
	ProjectID   string
	Status      string
}

// TeamMember is a roster entry managed by admins
type TeamMember struct {
	Department string
	Email      string
	ID         string
	IsActive   bool
	Name       string
	Phone      string
	Position   string
	Role       Role
}
