// Account HTTP handlers.
//
//   - POST  /auth/register  (create account, start session)
//   - POST  /auth/login     (start session)
//   - POST  /auth/logout    (end session)
//   - GET   /auth/user      (current profile)
//   - PATCH /user           (partial profile update)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-career-backend/internal/domain"
	"github.com/tbourn/go-career-backend/internal/http/middleware"
	"github.com/tbourn/go-career-backend/internal/services"
)

//
// DTOs
//

// RegisterRequest is the JSON payload for creating an account.
type RegisterRequest struct {
	Username       string   `json:"username" binding:"required,notblank,min=3,max=64" example:"ada"`
	Email          string   `json:"email" binding:"required,email,max=255" example:"ada@example.com"`
	Password       string   `json:"password" binding:"required,min=6,max=72,pwbytes" example:"s3cret!"`
	Skills         []string `json:"skills" binding:"omitempty,max=100,dive,max=100"`
	Interests      []string `json:"interests" binding:"omitempty,max=100,dive,max=100"`
	EducationLevel string   `json:"educationLevel" binding:"max=128"`
	Experience     string   `json:"experience" binding:"max=2000"`
	TargetCareer   string   `json:"targetCareer" binding:"max=255"`
}

// LoginRequest is the JSON payload for starting a session. Username also
// accepts the account email.
type LoginRequest struct {
	Username string `json:"username" binding:"required,notblank" example:"ada"`
	Password string `json:"password" binding:"required" example:"s3cret!"`
}

// UpdateProfileRequest is the JSON payload for PATCH /user; omitted fields
// are kept.
type UpdateProfileRequest struct {
	Username        *string   `json:"username" binding:"omitempty,notblank,min=3,max=64"`
	Email           *string   `json:"email" binding:"omitempty,email,max=255"`
	Skills          *[]string `json:"skills" binding:"omitempty,max=100,dive,max=100"`
	Interests       *[]string `json:"interests" binding:"omitempty,max=100,dive,max=100"`
	EducationLevel  *string   `json:"educationLevel" binding:"omitempty,max=128"`
	Experience      *string   `json:"experience" binding:"omitempty,max=2000"`
	TargetCareer    *string   `json:"targetCareer" binding:"omitempty,max=255"`
	ProfileComplete *bool     `json:"profileComplete"`
}

// UserSummary identifies the session user.
type UserSummary struct {
	ID       uint   `json:"id" example:"1"`
	Username string `json:"username" example:"ada"`
	Email    string `json:"email" example:"ada@example.com"`
}

func summarize(u *domain.User) UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, Email: u.Email}
}

//
// Helpers
//

// startSession issues a token for u and sets it as the session cookie.
func (h *Handlers) startSession(c *gin.Context, u *domain.User) bool {
	tok, err := h.sessions.Issue(u.ID, u.Username)
	if err != nil {
		_ = c.Error(err)
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not start session")
		return false
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, tok, int(h.sessions.TTL().Seconds()), "/", "", h.secureCookie, true)
	return true
}

//
// Handlers
//

// Register godoc
// @ID          register
// @Summary     Create an account
// @Description Creates a user, starts a session and returns the user summary. Username and email must be unused.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.RegisterRequest  true  "Account payload"
//
// @Success     201  {object}  handlers.UserSummary
// @Header      201  {string}  Set-Cookie  "session cookie"
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed or username/email taken"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auth/register [post]
func (h *Handlers) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.users.Register(c.Request.Context(), services.RegisterInput{
		Username:       req.Username,
		Email:          req.Email,
		Password:       req.Password,
		Skills:         req.Skills,
		Interests:      req.Interests,
		EducationLevel: req.EducationLevel,
		Experience:     req.Experience,
		TargetCareer:   req.TargetCareer,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	if !h.startSession(c, u) {
		return
	}
	ok(c, http.StatusCreated, summarize(u))
}

// Login godoc
// @ID          login
// @Summary     Start a session
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.LoginRequest  true  "Credentials"
//
// @Success     200  {object}  handlers.UserSummary
// @Header      200  {string}  Set-Cookie  "session cookie"
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure     401  {object}  handlers.ErrorResponse  "Invalid credentials"
// @Router      /auth/login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		failErr(c, err)
		return
	}
	if !h.startSession(c, u) {
		return
	}
	ok(c, http.StatusOK, summarize(u))
}

// Logout godoc
// @ID          logout
// @Summary     End the session
// @Description Clears the session cookie. Always succeeds.
// @Tags        Auth
// @Success     204  {string}  string  "No Content"
// @Router      /auth/logout [post]
func (h *Handlers) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.secureCookie, true)
	noContent(c)
}

// CurrentUser godoc
// @ID          currentUser
// @Summary     Current user profile
// @Tags        Auth
// @Produce     json
// @Security    SessionCookie
//
// @Success     200  {object}  domain.User
// @Failure     401  {object}  handlers.ErrorResponse  "Not authenticated"
// @Router      /auth/user [get]
func (h *Handlers) CurrentUser(c *gin.Context) {
	u, err := h.users.Get(c.Request.Context(), userID(c))
	if err != nil {
		// The session outlived its account.
		if errors.Is(err, services.ErrNotFound) {
			fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "unauthorized")
			return
		}
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, u)
}

// UpdateProfile godoc
// @ID          updateProfile
// @Summary     Update the profile
// @Description Shallow-merges the supplied fields into the session user's profile.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Security    SessionCookie
//
// @Param       body  body  handlers.UpdateProfileRequest  true  "Fields to change"
//
// @Success     200  {object}  domain.User
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed or username/email taken"
// @Failure     401  {object}  handlers.ErrorResponse  "Not authenticated"
// @Router      /user [patch]
func (h *Handlers) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.users.UpdateProfile(c.Request.Context(), userID(c), services.ProfilePatch{
		Username:        req.Username,
		Email:           req.Email,
		Skills:          req.Skills,
		Interests:       req.Interests,
		EducationLevel:  req.EducationLevel,
		Experience:      req.Experience,
		TargetCareer:    req.TargetCareer,
		ProfileComplete: req.ProfileComplete,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, u)
}
