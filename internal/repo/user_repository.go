package repo

import "github.com/marqedonuts/backoffice/internal/models"

// UserRepository defines the interface for back-office login accounts.
type UserRepository interface {
	CreateUser(user models.User) (models.User, error)
	GetByUsername(username string) (models.User, error)
}
