package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rohits-web03/ideaforge/internal/auth"
	"github.com/rohits-web03/ideaforge/internal/config"
	"github.com/rohits-web03/ideaforge/internal/models"
	"github.com/rohits-web03/ideaforge/internal/repositories"
	"github.com/rohits-web03/ideaforge/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type VerifyTokenResponse struct {
	Valid    bool   `json:"valid"`
	Username string `json:"username"`
}

type AuthHandler struct {
	users    *repositories.UserRepository
	tokens   *auth.TokenManager
	oauth    *oauth2.Config
	stateKey []byte
	log      *zap.SugaredLogger
}

// NewAuthHandler wires the account endpoints. Google login is only enabled
// when a client id and secret are configured.
func NewAuthHandler(users *repositories.UserRepository, tokens *auth.TokenManager, cfg config.Config, log *zap.SugaredLogger) *AuthHandler {
	h := &AuthHandler{
		users:    users,
		tokens:   tokens,
		stateKey: []byte(cfg.JWTSecret),
		log:      log,
	}
	if cfg.Google.ClientID != "" && cfg.Google.ClientSecret != "" {
		h.oauth = &oauth2.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.RedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		}
	}
	return h
}

// Register godoc
// @Summary Register a new user
// @Description Creates an account. Username and email must be unique; email is optional.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body handlers.RegisterRequest true "New account"
// @Success 201 {object} models.User
// @Failure 400 {object} utils.Payload "Username or email already registered"
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input RegisterRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}
	input.Username = strings.TrimSpace(input.Username)
	if input.Username == "" || input.Password == "" {
		utils.Error(w, http.StatusBadRequest, "Username and password required")
		return
	}

	var email *string
	if e := strings.TrimSpace(input.Email); e != "" {
		email = &e
	}

	user, err := h.users.Create(r.Context(), input.Username, email, input.Password)
	switch {
	case errors.Is(err, repositories.ErrUsernameTaken):
		utils.Error(w, http.StatusBadRequest, "Username already registered")
		return
	case errors.Is(err, repositories.ErrEmailTaken):
		utils.Error(w, http.StatusBadRequest, "Email already registered")
		return
	case err != nil:
		h.log.Errorw("register failed", "username", input.Username, "err", err)
		utils.Error(w, http.StatusInternalServerError, "Error creating user: "+err.Error())
		return
	}

	h.log.Infow("user registered", "user_id", user.ID, "username", user.Username)
	utils.JSON(w, http.StatusCreated, user)
}

// Login godoc
// @Summary Exchange credentials for an access token
// @Description Credentials may be sent as query parameters, a JSON body or a form body.
// @Tags Auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param username query string false "Username"
// @Param password query string false "Password"
// @Param body body handlers.LoginRequest false "Credentials"
// @Success 200 {object} handlers.TokenResponse
// @Failure 400 {object} utils.Payload "Username and password required"
// @Failure 401 {object} utils.Payload "Incorrect username or password"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	username, password := credentials(w, r)
	if username == "" || password == "" {
		utils.Error(w, http.StatusBadRequest, "Username and password required")
		return
	}

	user, err := h.users.GetByUsername(r.Context(), username)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		h.log.Errorw("login lookup failed", "username", username, "err", err)
		utils.Error(w, http.StatusInternalServerError, "Error during login: "+err.Error())
		return
	}
	if user == nil || !auth.VerifyPassword(password, user.HashedPassword) {
		utils.Error(w, http.StatusUnauthorized, "Incorrect username or password")
		return
	}

	h.issueToken(w, user.Username)
}

// credentials reads username and password from the query string, falling back
// to a JSON or form body.
func credentials(w http.ResponseWriter, r *http.Request) (string, string) {
	q := r.URL.Query()
	username, password := q.Get("username"), q.Get("password")
	if username != "" && password != "" {
		return username, password
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var in LoginRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&in); err != nil {
			return "", ""
		}
		return in.Username, in.Password
	}

	if err := r.ParseForm(); err != nil {
		return "", ""
	}
	return r.PostForm.Get("username"), r.PostForm.Get("password")
}

func (h *AuthHandler) issueToken(w http.ResponseWriter, username string) {
	token, err := h.tokens.CreateAccessToken(username, 0)
	if err != nil {
		h.log.Errorw("token signing failed", "username", username, "err", err)
		utils.Error(w, http.StatusInternalServerError, "Failed to create token")
		return
	}
	utils.JSON(w, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// VerifyToken godoc
// @Summary Check an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param token query string false "Access token"
// @Success 200 {object} handlers.VerifyTokenResponse
// @Failure 400 {object} utils.Payload "Token required"
// @Failure 401 {object} utils.Payload "Invalid token"
// @Router /api/v1/auth/verify-token [post]
func (h *AuthHandler) VerifyToken(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		var in struct {
			Token string `json:"token"`
		}
		_ = json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&in)
		token = in.Token
	}
	if token == "" {
		utils.Error(w, http.StatusBadRequest, "Token required")
		return
	}

	username, ok := h.tokens.DecodeToken(token)
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	utils.JSON(w, http.StatusOK, VerifyTokenResponse{Valid: true, Username: username})
}

// DeleteAccount godoc
// @Summary Delete the current account
// @Description Removes the caller together with all of their ideas and search history.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Payload
// @Failure 404 {object} utils.Payload "User not found"
// @Router /api/v1/users/me [delete]
func (h *AuthHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.users.Delete(r.Context(), user.ID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "User not found")
			return
		}
		h.log.Errorw("account delete failed", "user_id", user.ID, "err", err)
		utils.Error(w, http.StatusInternalServerError, "Error deleting account: "+err.Error())
		return
	}

	h.log.Infow("account deleted", "user_id", user.ID)
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Account deleted successfully",
	})
}

// GoogleLogin godoc
// @Summary Start Google sign-in
// @Tags Auth
// @Success 307
// @Failure 503 {object} utils.Payload "Google login is not configured"
// @Router /api/v1/auth/google/login [get]
func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	if h.oauth == nil {
		utils.Error(w, http.StatusServiceUnavailable, "Google login is not configured")
		return
	}

	state, err := GenerateState(h.stateKey)
	if err != nil {
		h.log.Errorw("oauth state generation failed", "err", err)
		utils.Error(w, http.StatusInternalServerError, "Failed to generate OAuth state")
		return
	}
	http.Redirect(w, r, h.oauth.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// GoogleCallback godoc
// @Summary Finish Google sign-in
// @Description Finds the account by email, creating it on first sign-in, and returns an access token.
// @Tags Auth
// @Produce json
// @Param state query string true "OAuth state"
// @Param code query string true "Authorization code"
// @Success 200 {object} handlers.TokenResponse
// @Failure 400 {object} utils.Payload "Invalid OAuth state"
// @Router /api/v1/auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	if h.oauth == nil {
		utils.Error(w, http.StatusServiceUnavailable, "Google login is not configured")
		return
	}
	if err := VerifyState(h.stateKey, r.FormValue("state")); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid OAuth state")
		return
	}

	ctx := r.Context()
	token, err := h.oauth.Exchange(ctx, r.FormValue("code"))
	if err != nil {
		h.log.Warnw("oauth code exchange failed", "err", err)
		utils.Error(w, http.StatusBadRequest, "Code exchange failed")
		return
	}

	resp, err := h.oauth.Client(ctx, token).Get(googleUserInfoURL)
	if err != nil {
		h.log.Errorw("google userinfo request failed", "err", err)
		utils.Error(w, http.StatusBadGateway, "Failed to get user info")
		return
	}
	defer resp.Body.Close()

	var googleUser struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&googleUser); err != nil || googleUser.Email == "" {
		utils.Error(w, http.StatusBadGateway, "Failed to parse user info")
		return
	}

	user, err := h.users.GetByEmail(ctx, googleUser.Email)
	if errors.Is(err, repositories.ErrNotFound) {
		user, err = h.createGoogleUser(r, googleUser.Email, googleUser.Name)
	}
	if err != nil {
		h.log.Errorw("google sign-in failed", "email", googleUser.Email, "err", err)
		utils.Error(w, http.StatusInternalServerError, "Failed to sign in with Google")
		return
	}

	h.issueToken(w, user.Username)
}

// createGoogleUser registers a first time Google account under a free
// username. The random password is never disclosed, so the account can only
// sign in through Google.
func (h *AuthHandler) createGoogleUser(r *http.Request, email, name string) (*models.User, error) {
	base := strings.TrimSpace(name)
	if base == "" {
		base, _, _ = strings.Cut(email, "@")
	}
	password := uuid.NewString()

	candidate := base
	for attempt := 0; attempt < 3; attempt++ {
		user, err := h.users.Create(r.Context(), candidate, &email, password)
		if !errors.Is(err, repositories.ErrUsernameTaken) {
			return user, err
		}
		candidate = fmt.Sprintf("%s-%s", base, uuid.NewString()[:8])
	}
	return nil, repositories.ErrUsernameTaken
}
