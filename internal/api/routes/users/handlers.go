// Package users contains handlers for accounts, sessions and profiles.
package users

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matt-dz/recipebox/internal/account"
	apiError "github.com/matt-dz/recipebox/internal/api/error"
	"github.com/matt-dz/recipebox/internal/api/respond"
	"github.com/matt-dz/recipebox/internal/api/token"
	"github.com/matt-dz/recipebox/internal/auth"
	"github.com/matt-dz/recipebox/internal/database"
	"github.com/matt-dz/recipebox/internal/env"
	"github.com/matt-dz/recipebox/internal/form"
	"github.com/matt-dz/recipebox/internal/jwt"
	"github.com/matt-dz/recipebox/internal/render"
	"github.com/matt-dz/recipebox/internal/social"
)

const (
	homePath    = "/"
	profilePath = "/profile/"
	avatarField = "avatar"
)

func ProfilePath(username string) string {
	return "/profile/" + url.PathEscape(username) + "/"
}

// HandleRegisterPage renders the sign up form.
func HandleRegisterPage(w http.ResponseWriter, r *http.Request) {
	if auth.FromCtx(r.Context()) != nil {
		render.Redirect(w, r, homePath)
		return
	}
	respond.Page(w, r, http.StatusOK, "register", "Register", RegisterResponse{}, nil)
}

// HandleRegister creates an account and logs the new user in.
func HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	if auth.FromCtx(ctx) != nil {
		render.Redirect(w, r, homePath)
		return
	}
	if err := form.ParseRequest(w, r); err != nil {
		respond.Error(w, r, apiError.BadRequest, "Invalid form")
		return
	}

	f := account.ParseRegister(r.PostForm)
	user, errs, err := account.Register(ctx, env.Database, f)
	if errors.Is(err, account.ErrInvalidForm) {
		env.Logger.DebugContext(ctx, "registration rejected", slog.Any("fields", errs))
		f.Password1, f.Password2 = "", ""
		respond.Page(w, r, http.StatusUnprocessableEntity, "register", "Register", RegisterResponse{Form: f}, errs)
		return
	} else if err != nil {
		respond.Internal(w, r, "failed to register user", err)
		return
	}

	env.Logger.InfoContext(ctx, "user registered", slog.Int64("user-id", user.ID))
	env.Metrics.Registered()
	if !startSession(w, r, user, false) {
		return
	}
	respond.RedirectWithFlash(w, r, homePath, render.FlashSuccess,
		"Account created for "+user.Username+"! You can now log in.")
}

// startSession sets the session cookie for user. ok is false when a
// response was written instead.
func startSession(w http.ResponseWriter, r *http.Request, user database.User, remember bool) (ok bool) {
	conf := env.EnvFromCtx(r.Context()).Config
	session, err := token.NewSession(jwt.SessionParams{UserID: user.ID, Username: user.Username}, conf)
	if err != nil {
		respond.Internal(w, r, "failed to create session", err)
		return false
	}
	http.SetCookie(w, token.NewSessionCookie(session, remember, conf))
	return true
}

// safeNext returns next when it is a path on this site, otherwise home.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, `\`) {
		return homePath
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return homePath
	}
	return next
}

// HandleLoginPage renders the sign in form.
func HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	next := r.URL.Query().Get("next")
	if auth.FromCtx(r.Context()) != nil {
		render.Redirect(w, r, safeNext(next))
		return
	}
	respond.Page(w, r, http.StatusOK, "login", "Log in", LoginResponse{Next: next}, nil)
}

// HandleLogin checks the credentials and starts a session. Remember me
// keeps the session cookie past the browser session.
func HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	next := r.URL.Query().Get("next")

	if err := form.ParseRequest(w, r); err != nil {
		respond.Error(w, r, apiError.BadRequest, "Invalid form")
		return
	}
	if next == "" {
		next = r.PostForm.Get("next")
	}

	f := account.ParseLogin(r.PostForm)
	user, err := account.Authenticate(ctx, env.Database, f)
	if errors.Is(err, account.ErrInvalidCredentials) {
		env.Logger.InfoContext(ctx, "login failed", slog.String("username", f.Username))
		env.Metrics.LoginFailed()
		f.Password = ""
		respond.Page(w, r, http.StatusUnauthorized, "login", "Log in", LoginResponse{Form: f, Next: next},
			form.Errors{"": "Invalid username or password."})
		return
	} else if err != nil {
		respond.Internal(w, r, "failed to authenticate user", err)
		return
	}

	if !startSession(w, r, user, f.RememberMe) {
		return
	}
	respond.RedirectWithFlash(w, r, safeNext(next), render.FlashSuccess, "Welcome back, "+user.Username+"!")
}

// HandleLogoutPage asks for confirmation so that a plain link cannot end
// the session. Visitors without one go home.
func HandleLogoutPage(w http.ResponseWriter, r *http.Request) {
	if auth.FromCtx(r.Context()) == nil {
		render.Redirect(w, r, homePath)
		return
	}
	respond.Page(w, r, http.StatusOK, "logout", "Log out", nil, nil)
}

// HandleLogout ends the session.
func HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, token.ClearSessionCookie(env.EnvFromCtx(r.Context()).Config))
	respond.RedirectWithFlash(w, r, homePath, render.FlashInfo, "You have been logged out successfully.")
}

func renderOwnProfile(w http.ResponseWriter, r *http.Request, status int, f *account.ProfileForm, errs form.Errors) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	viewer := auth.FromCtx(ctx)

	user, err := env.Database.GetUserByID(ctx, viewer.ID)
	if err != nil {
		respond.Internal(w, r, "failed to get viewer", err)
		return
	}
	page, err := social.LoadProfile(ctx, env.Database, user, *viewer)
	if err != nil {
		respond.Internal(w, r, "failed to load profile", err)
		return
	}
	if f == nil {
		current := account.ProfileFormFor(user, page.Profile)
		f = &current
	}
	respond.Page(w, r, status, "profile", user.Username, ProfileResponse{ProfilePage: page, Form: f}, errs)
}

// HandleOwnProfile renders the viewer's editable profile.
func HandleOwnProfile(w http.ResponseWriter, r *http.Request) {
	renderOwnProfile(w, r, http.StatusOK, nil, nil)
}

// HandleUpdateProfile saves the viewer's profile and avatar.
func HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	viewer := auth.FromCtx(ctx)

	err := form.ParseRequest(w, r)
	if errors.Is(err, form.ErrRequestTooLarge) {
		respond.Error(w, r, apiError.RequestTooLarge, "The upload is too large.")
		return
	} else if err != nil {
		respond.Error(w, r, apiError.BadRequest, "Invalid form")
		return
	}

	f, errs := account.ParseProfile(r.PostForm)
	avatar, err := form.OptionalImage(r, avatarField, errs)
	if err != nil {
		respond.Internal(w, r, "failed to read avatar", err)
		return
	}
	if errs.Any() {
		renderOwnProfile(w, r, http.StatusUnprocessableEntity, &f, errs)
		return
	}

	svc := account.NewService(env.Database, env.Images, env.Logger)
	errs, err = svc.UpdateProfile(ctx, *viewer, f, avatar)
	if errors.Is(err, account.ErrInvalidForm) {
		renderOwnProfile(w, r, http.StatusConflict, &f, errs)
		return
	} else if err != nil {
		respond.Internal(w, r, "failed to update profile", err)
		return
	}
	respond.RedirectWithFlash(w, r, profilePath, render.FlashSuccess, "Your profile has been updated!")
}

// userFromURL loads the user named by the username parameter, rendering a
// 404 when there is none.
func userFromURL(w http.ResponseWriter, r *http.Request) (database.User, bool) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	user, err := env.Database.GetUserByUsername(ctx, chi.URLParam(r, "username"))
	if database.IsNotFound(err) {
		respond.Error(w, r, apiError.UserNotFound, "User not found")
		return database.User{}, false
	} else if err != nil {
		respond.Internal(w, r, "failed to get user", err)
		return database.User{}, false
	}
	return user, true
}

// HandleProfile renders another user's profile. The viewer's own username
// redirects to the editable profile.
func HandleProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	viewer := auth.FromCtx(ctx)

	user, ok := userFromURL(w, r)
	if !ok {
		return
	}
	if user.ID == viewer.ID {
		render.Redirect(w, r, profilePath)
		return
	}
	page, err := social.LoadProfile(ctx, env.Database, user, *viewer)
	if err != nil {
		respond.Internal(w, r, "failed to load profile", err)
		return
	}
	respond.Page(w, r, http.StatusOK, "profile", user.Username, ProfileResponse{ProfilePage: page}, nil)
}

// HandleFollow toggles whether the viewer follows the user.
func HandleFollow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	viewer := auth.FromCtx(ctx)

	user, ok := userFromURL(w, r)
	if !ok {
		return
	}
	result, err := social.ToggleFollow(ctx, env.Database, *viewer, user.ID)
	if err != nil {
		respond.Internal(w, r, "failed to toggle follow", err)
		return
	}
	if msg := social.FollowMessage(user.Username, result); msg != "" {
		render.SetFlash(w, r, render.FlashSuccess, msg)
	}
	render.Redirect(w, r, ProfilePath(user.Username))
}
