package store

import (
	"github.com/FCT-TaskManager/Backend/internal/models"
	"gorm.io/gorm"
)

type UserStore interface {
	Create(user *models.User) error
	ByID(id uint) (*models.User, error)
	ByEmail(email string) (*models.User, error)
	// AllExcept returns every user whose id is not in exclude, cheapest first
	// by id. An empty exclude list returns everyone.
	AllExcept(exclude []uint) ([]models.User, error)
}

type usersStore struct {
	db *gorm.DB
}

func (s usersStore) Create(user *models.User) error {
	return s.db.Create(user).Error
}

func (s usersStore) ByID(id uint) (*models.User, error) {
	var user models.User

	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (s usersStore) ByEmail(email string) (*models.User, error) {
	var user models.User

	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (s usersStore) AllExcept(exclude []uint) ([]models.User, error) {
	var users []models.User

	q := s.db.Order("id")
	if len(exclude) > 0 {
		q = q.Where("id NOT IN ?", exclude)
	}

	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}
