package usecase

import (
	"context"
	"fmt"

	"storefront_backend/internal/domain/repository"
	"storefront_backend/internal/feature/users/domain/entity"
)

// NewUser carries the signup fields. The password is plaintext here and
// exists only long enough to be hashed.
type NewUser struct {
	Firstname string
	Lastname  string
	Username  string
	Password  string
}

// UserUpdate overwrites the mutable columns. The password is immutable after
// creation; username changes are not supported either.
type UserUpdate struct {
	Firstname string
	Lastname  string
}

// UserRepository abstracts the persistence layer for users. Interfaces are
// defined on the consumer side, per Go convention.
type UserRepository interface {
	repository.Crud[entity.User, entity.User, UserUpdate]

	// FindByUsername retrieves a user by unique username, or
	// repository.ErrNotFound.
	FindByUsername(ctx context.Context, username string) (entity.User, error)
}

// CredentialHasher hashes and verifies passwords.
type CredentialHasher interface {
	Hash(password string) (string, error)
	Compare(digest, password string) error
}

// TokenIssuer produces a signed bearer token for an authenticated user.
type TokenIssuer interface {
	Issue(id int64, username, firstname, lastname string) (string, error)
}

type userUsecase struct {
	users  UserRepository
	hasher CredentialHasher
	tokens TokenIssuer
}

// NewUserUsecase wires the user repository with the credential hasher and
// token issuer.
func NewUserUsecase(users UserRepository, hasher CredentialHasher, tokens TokenIssuer) *userUsecase {
	return &userUsecase{users: users, hasher: hasher, tokens: tokens}
}

// Signup registers a user and returns a signed token for the new account:
// one hashing call, then one insert.
func (u *userUsecase) Signup(ctx context.Context, in NewUser) (string, error) {
	digest, err := u.hasher.Hash(in.Password)
	if err != nil {
		return "", err
	}

	created, err := u.users.Create(ctx, entity.User{
		Firstname:      in.Firstname,
		Lastname:       in.Lastname,
		Username:       in.Username,
		PasswordDigest: digest,
	})
	if err != nil {
		return "", err
	}

	token, err := u.tokens.Issue(created.ID, created.Username, created.Firstname, created.Lastname)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// dummyDigest keeps Authenticate doing a bcrypt comparison even when the
// username does not exist, so response timing does not leak user existence.
const dummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Authenticate verifies a username/password pair and returns a signed token.
func (u *userUsecase) Authenticate(ctx context.Context, username, password string) (string, error) {
	user, err := u.users.FindByUsername(ctx, username)

	digest := dummyDigest
	if err == nil {
		digest = user.PasswordDigest
	}
	compareErr := u.hasher.Compare(digest, password)

	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user.ID, user.Username, user.Firstname, user.Lastname)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

func (u *userUsecase) GetAll(ctx context.Context) ([]entity.User, error) {
	return u.users.GetAll(ctx)
}

func (u *userUsecase) GetDetail(ctx context.Context, id int64) (entity.User, error) {
	return u.users.GetDetail(ctx, id)
}

func (u *userUsecase) Update(ctx context.Context, id int64, in UserUpdate) (entity.User, error) {
	return u.users.Update(ctx, id, in)
}

func (u *userUsecase) Delete(ctx context.Context, id int64) (entity.User, error) {
	return u.users.Delete(ctx, id)
}
