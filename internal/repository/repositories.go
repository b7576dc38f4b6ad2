package repository

// Repositories is a container for all repository instances.
//
// It keeps router and handler wiring to a single object; new data
// sources get a field here instead of new constructor parameters
// everywhere.
type Repositories struct {
	Items *ItemRepository
}

// NewRepositories constructs the repository container.
func NewRepositories() *Repositories {
	return &Repositories{
		Items: NewItemRepository(),
	}
}
