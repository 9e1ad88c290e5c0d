package database

import (
	"context"
)

const createUser = `
INSERT INTO users (username, email, first_name, last_name, password_hash)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, username, email, first_name, last_name, password_hash, created_at
`

type CreateUserParams struct {
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	row := q.db.QueryRow(ctx, createUser,
		arg.Username,
		arg.Email,
		arg.FirstName,
		arg.LastName,
		arg.PasswordHash,
	)
	var i User
	err := row.Scan(
		&i.ID,
		&i.Username,
		&i.Email,
		&i.FirstName,
		&i.LastName,
		&i.PasswordHash,
		&i.CreatedAt,
	)
	return i, err
}

const getUserByID = `
SELECT id, username, email, first_name, last_name, password_hash, created_at
FROM users
WHERE id = $1
`

func (q *Queries) GetUserByID(ctx context.Context, id int64) (User, error) {
	row := q.db.QueryRow(ctx, getUserByID, id)
	var i User
	err := row.Scan(
		&i.ID,
		&i.Username,
		&i.Email,
		&i.FirstName,
		&i.LastName,
		&i.PasswordHash,
		&i.CreatedAt,
	)
	return i, err
}

const getUserByUsername = `
SELECT id, username, email, first_name, last_name, password_hash, created_at
FROM users
WHERE username = $1
`

func (q *Queries) GetUserByUsername(ctx context.Context, username string) (User, error) {
	row := q.db.QueryRow(ctx, getUserByUsername, username)
	var i User
	err := row.Scan(
		&i.ID,
		&i.Username,
		&i.Email,
		&i.FirstName,
		&i.LastName,
		&i.PasswordHash,
		&i.CreatedAt,
	)
	return i, err
}

const getUserByEmail = `
SELECT id, username, email, first_name, last_name, password_hash, created_at
FROM users
WHERE lower(email) = lower($1)
`

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	row := q.db.QueryRow(ctx, getUserByEmail, email)
	var i User
	err := row.Scan(
		&i.ID,
		&i.Username,
		&i.Email,
		&i.FirstName,
		&i.LastName,
		&i.PasswordHash,
		&i.CreatedAt,
	)
	return i, err
}

const updateUser = `
UPDATE users
SET first_name = $2, last_name = $3, email = $4
WHERE id = $1
RETURNING id, username, email, first_name, last_name, password_hash, created_at
`

type UpdateUserParams struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
}

func (q *Queries) UpdateUser(ctx context.Context, arg UpdateUserParams) (User, error) {
	row := q.db.QueryRow(ctx, updateUser,
		arg.ID,
		arg.FirstName,
		arg.LastName,
		arg.Email,
	)
	var i User
	err := row.Scan(
		&i.ID,
		&i.Username,
		&i.Email,
		&i.FirstName,
		&i.LastName,
		&i.PasswordHash,
		&i.CreatedAt,
	)
	return i, err
}

const createProfile = `
INSERT INTO profiles (user_id)
VALUES ($1)
RETURNING user_id, bio, avatar, created_at
`

func (q *Queries) CreateProfile(ctx context.Context, userID int64) (Profile, error) {
	row := q.db.QueryRow(ctx, createProfile, userID)
	var i Profile
	err := row.Scan(
		&i.UserID,
		&i.Bio,
		&i.Avatar,
		&i.CreatedAt,
	)
	return i, err
}

const getProfile = `
SELECT user_id, bio, avatar, created_at
FROM profiles
WHERE user_id = $1
`

func (q *Queries) GetProfile(ctx context.Context, userID int64) (Profile, error) {
	row := q.db.QueryRow(ctx, getProfile, userID)
	var i Profile
	err := row.Scan(
		&i.UserID,
		&i.Bio,
		&i.Avatar,
		&i.CreatedAt,
	)
	return i, err
}

const updateProfile = `
UPDATE profiles
SET bio = $2, avatar = $3
WHERE user_id = $1
RETURNING user_id, bio, avatar, created_at
`

type UpdateProfileParams struct {
	UserID int64
	Bio    string
	Avatar *string
}

func (q *Queries) UpdateProfile(ctx context.Context, arg UpdateProfileParams) (Profile, error) {
	row := q.db.QueryRow(ctx, updateProfile, arg.UserID, arg.Bio, arg.Avatar)
	var i Profile
	err := row.Scan(
		&i.UserID,
		&i.Bio,
		&i.Avatar,
		&i.CreatedAt,
	)
	return i, err
}
