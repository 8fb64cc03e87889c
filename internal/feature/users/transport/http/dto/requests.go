// Package dto defines the request bodies for the users endpoints.
package dto

// CreateUserReq is the body for POST /users/create.
type CreateUserReq struct {
	Firstname string `json:"firstname" binding:"required"`
	Lastname  string `json:"lastname" binding:"required"`
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// AuthReq is the body for POST /users/auth.
type AuthReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserReq is the body for PUT /users. Every writable field must be
// supplied; partial updates are not supported.
type UpdateUserReq struct {
	ID        int64  `json:"id" binding:"required"`
	Firstname string `json:"firstname" binding:"required"`
	Lastname  string `json:"lastname" binding:"required"`
}
