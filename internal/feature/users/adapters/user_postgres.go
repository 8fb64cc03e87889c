// Package adapters provides the gorm-backed repository for the users feature.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"storefront_backend/internal/domain/repository"
	"storefront_backend/internal/feature/users/domain/entity"
	"storefront_backend/internal/feature/users/usecase"
)

// pgUniqueViolation is the Postgres error code for a duplicate key.
const pgUniqueViolation = "23505"

type userPostgres struct {
	db *gorm.DB
}

var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserPostgres creates the user repository on the injected gorm handle.
func NewUserPostgres(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

func (r *userPostgres) GetAll(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userPostgres) GetDetail(ctx context.Context, id int64) (entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.User{}, repository.ErrNotFound
		}
		return entity.User{}, err
	}
	return u, nil
}

// Create inserts the already-hashed user row. A unique violation on the
// username maps to usecase.ErrUsernameTaken.
func (r *userPostgres) Create(ctx context.Context, u entity.User) (entity.User, error) {
	if err := r.db.WithContext(ctx).Create(&u).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return entity.User{}, usecase.ErrUsernameTaken
		}
		return entity.User{}, err
	}
	return u, nil
}

func (r *userPostgres) Update(ctx context.Context, id int64, in usecase.UserUpdate) (entity.User, error) {
	res := r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"firstname": in.Firstname,
			"lastname":  in.Lastname,
		})
	if res.Error != nil {
		return entity.User{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entity.User{}, repository.ErrNotFound
	}
	return r.GetDetail(ctx, id)
}

func (r *userPostgres) Delete(ctx context.Context, id int64) (entity.User, error) {
	prev, err := r.GetDetail(ctx, id)
	if err != nil {
		return entity.User{}, err
	}
	if err := r.db.WithContext(ctx).Delete(&entity.User{}, id).Error; err != nil {
		return entity.User{}, err
	}
	return prev, nil
}

func (r *userPostgres) FindByUsername(ctx context.Context, username string) (entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.User{}, repository.ErrNotFound
		}
		return entity.User{}, err
	}
	return u, nil
}
