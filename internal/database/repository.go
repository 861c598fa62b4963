package database

import "database/sql"

// Repository composes the server-side repositories over one connection
type Repository struct {
	*UserRepo
	*TaskRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		UserRepo: NewUserRepo(db),
		TaskRepo: NewTaskRepo(db),
	}
}
