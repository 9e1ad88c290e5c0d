// Package account registers users, checks their credentials and edits their
// profiles.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/matt-dz/recipebox/internal/argon2id"
	"github.com/matt-dz/recipebox/internal/auth"
	"github.com/matt-dz/recipebox/internal/database"
	"github.com/matt-dz/recipebox/internal/filestore"
	"github.com/matt-dz/recipebox/internal/form"
	"github.com/matt-dz/recipebox/internal/password"
)

const (
	usernameConstraint = "users_username_key"
	emailConstraint    = "users_email_key"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidForm        = errors.New("invalid form")
)

// RegisterForm is a sign up request.
type RegisterForm struct {
	Username  string `json:"username" form:"username" validate:"required,max=150,username"`
	Email     string `json:"email" form:"email" validate:"required,email,max=254"`
	Password1 string `json:"password1" form:"password1" validate:"required"`
	Password2 string `json:"password2" form:"password2" validate:"required,eqfield=Password1"`
}

func ParseRegister(v url.Values) RegisterForm {
	return RegisterForm{
		Username:  strings.TrimSpace(v.Get("username")),
		Email:     strings.TrimSpace(v.Get("email")),
		Password1: v.Get("password1"),
		Password2: v.Get("password2"),
	}
}

// Register creates the user and their empty profile. Field errors are
// returned alongside ErrInvalidForm.
func Register(ctx context.Context, db *database.Database, f RegisterForm) (database.User, form.Errors, error) {
	errs := form.Validate(f)
	if _, ok := errs["password2"]; !ok {
		err := password.ValidatePassword(f.Password1,
			password.Attribute{Name: "username", Value: f.Username},
			password.Attribute{Name: "email address", Value: f.Email},
		)
		if err != nil {
			errs.Add("password2", err.Error())
		}
	}
	if errs.Any() {
		return database.User{}, errs, ErrInvalidForm
	}

	hash, err := argon2id.EncodeHash(f.Password1, argon2id.DefaultParams)
	if err != nil {
		return database.User{}, nil, fmt.Errorf("hashing password: %w", err)
	}

	var user database.User
	err = db.WithTx(ctx, func(q database.Querier) error {
		var err error
		user, err = q.CreateUser(ctx, database.CreateUserParams{
			Username:     f.Username,
			Email:        f.Email,
			PasswordHash: hash,
		})
		if err != nil {
			return err
		}
		if _, err := q.CreateProfile(ctx, user.ID); err != nil {
			return fmt.Errorf("creating profile: %w", err)
		}
		return nil
	})
	switch {
	case database.IsUniqueViolation(err, usernameConstraint):
		errs.Add("username", "A user with that username already exists.")
		return database.User{}, errs, ErrInvalidForm
	case database.IsUniqueViolation(err, emailConstraint):
		errs.Add("email", "A user with that email already exists.")
		return database.User{}, errs, ErrInvalidForm
	case err != nil:
		return database.User{}, nil, fmt.Errorf("creating user: %w", err)
	}
	return user, nil, nil
}

// LoginForm is a sign in request. Username may also hold an email address.
type LoginForm struct {
	Username   string `json:"username" form:"username" validate:"required"`
	Password   string `json:"password" form:"password" validate:"required"`
	RememberMe bool   `json:"remember_me" form:"remember_me"`
}

func ParseLogin(v url.Values) LoginForm {
	remember := v.Get("remember_me")
	return LoginForm{
		Username:   strings.TrimSpace(v.Get("username")),
		Password:   v.Get("password"),
		RememberMe: remember == "on" || remember == "true" || remember == "1",
	}
}

// Authenticate returns the user identified by the form's username or email
// when the password matches. Any failure to identify the user is reported
// as ErrInvalidCredentials.
func Authenticate(ctx context.Context, q database.Querier, f LoginForm) (database.User, error) {
	if f.Username == "" || f.Password == "" {
		return database.User{}, ErrInvalidCredentials
	}

	user, err := lookupUser(ctx, q, f.Username)
	if database.IsNotFound(err) {
		return database.User{}, ErrInvalidCredentials
	} else if err != nil {
		return database.User{}, fmt.Errorf("getting user: %w", err)
	}

	ok, err := argon2id.Compare(f.Password, user.PasswordHash)
	if err != nil {
		return database.User{}, fmt.Errorf("comparing password: %w", err)
	}
	if !ok {
		return database.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func lookupUser(ctx context.Context, q database.Querier, identifier string) (database.User, error) {
	if strings.Contains(identifier, "@") {
		user, err := q.GetUserByEmail(ctx, identifier)
		if err == nil || !database.IsNotFound(err) {
			return user, err
		}
	}
	return q.GetUserByUsername(ctx, identifier)
}

// ProfileForm edits the viewer's profile. Blank name and email fields keep
// the current values.
type ProfileForm struct {
	FirstName string `json:"first_name" form:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" form:"last_name" validate:"max=150"`
	Email     string `json:"email" form:"email" validate:"omitempty,email,max=254"`
	Bio       string `json:"bio" form:"bio" validate:"max=500"`
}

func ParseProfile(v url.Values) (ProfileForm, form.Errors) {
	f := ProfileForm{
		FirstName: strings.TrimSpace(v.Get("first_name")),
		LastName:  strings.TrimSpace(v.Get("last_name")),
		Email:     strings.TrimSpace(v.Get("email")),
		Bio:       strings.TrimSpace(v.Get("bio")),
	}
	return f, form.Validate(f)
}

// ProfileFormFor fills the form with the user's current values.
func ProfileFormFor(u database.User, p database.Profile) ProfileForm {
	return ProfileForm{FirstName: u.FirstName, LastName: u.LastName, Email: u.Email, Bio: p.Bio}
}

// Service edits profiles and their avatars.
type Service struct {
	DB     *database.Database
	Images filestore.Store
	Logger *slog.Logger
}

func NewService(db *database.Database, images filestore.Store, logger *slog.Logger) *Service {
	return &Service{DB: db, Images: images, Logger: logger}
}

// UpdateProfile saves the form and, when avatar is set, replaces the
// viewer's avatar.
func (s *Service) UpdateProfile(ctx context.Context, viewer auth.Viewer, f ProfileForm, avatar *form.File) (form.Errors, error) {
	user, err := s.DB.GetUserByID(ctx, viewer.ID)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	profile, err := s.DB.GetProfile(ctx, viewer.ID)
	if err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}

	params := database.UpdateUserParams{
		ID:        user.ID,
		FirstName: firstNonEmpty(f.FirstName, user.FirstName),
		LastName:  firstNonEmpty(f.LastName, user.LastName),
		Email:     firstNonEmpty(f.Email, user.Email),
	}

	avatarKey := profile.Avatar
	var uploaded string
	if avatar != nil {
		uploaded = filestore.AvatarKey(avatar.Suffix)
		if err := s.Images.Put(ctx, uploaded, avatar.MimeType, avatar.Data); err != nil {
			return nil, fmt.Errorf("storing avatar: %w", err)
		}
		avatarKey = &uploaded
	}

	err = s.DB.WithTx(ctx, func(q database.Querier) error {
		if _, err := q.UpdateUser(ctx, params); err != nil {
			return err
		}
		if _, err := q.UpdateProfile(ctx, database.UpdateProfileParams{
			UserID: user.ID,
			Bio:    f.Bio,
			Avatar: avatarKey,
		}); err != nil {
			return fmt.Errorf("updating profile: %w", err)
		}
		return nil
	})
	if err != nil {
		if uploaded != "" {
			s.deleteImage(ctx, uploaded)
		}
		if database.IsUniqueViolation(err, emailConstraint) {
			return form.Errors{"email": "A user with that email already exists."}, ErrInvalidForm
		}
		return nil, fmt.Errorf("updating user: %w", err)
	}

	if uploaded != "" && profile.Avatar != nil {
		s.deleteImage(ctx, *profile.Avatar)
	}
	return nil, nil
}

func (s *Service) deleteImage(ctx context.Context, key string) {
	if err := s.Images.Delete(ctx, key); err != nil && s.Logger != nil {
		s.Logger.WarnContext(ctx, "failed to delete avatar", slog.String("key", key), slog.Any("error", err))
	}
}

func firstNonEmpty(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
