package database

// DataStore is everything the API server needs from storage.
// Handlers depend on it rather than on *Repository so tests can swap storage.
type DataStore interface {
	UserRepository
	TaskRepository
}
