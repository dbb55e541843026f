package auth

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meutimefc/api/config"
	"github.com/meutimefc/api/internal/middleware"
	"github.com/meutimefc/api/internal/user"
	"github.com/meutimefc/api/pkg/permissions"
	"github.com/meutimefc/api/pkg/token"
	"github.com/meutimefc/api/pkg/utils"
	"gorm.io/gorm"
)

const (
	cookieMaxAge     = 86400 // 24h, matches token expiry
	resetTokenLength = 32
	resetExpiry      = 1 * time.Hour

	genericCredentialsError = "Invalid email or password"
	genericResetMessage     = "If an account exists for this contact, reset instructions have been sent."
)

type AuthController struct {
	repo    AuthRepository
	config  *config.Config
	limiter *LoginLimiter
}

func NewAuthController(repo AuthRepository, cfg *config.Config, limiter *LoginLimiter) *AuthController {
	return &AuthController{
		repo:    repo,
		config:  cfg,
		limiter: limiter,
	}
}

func (ac *AuthController) setAuthCookie(c *gin.Context, tokenString string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.CookieName, tokenString, cookieMaxAge, "/", "", ac.config.IsProduction(), true)
}

func (ac *AuthController) clearAuthCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.CookieName, "", -1, "/", "", ac.config.IsProduction(), true)
}

func (ac *AuthController) issueToken(u *user.User) (string, error) {
	return token.Generate(u.ID, u.Role, u.TeamID, u.IsSocio, permissions.Resolve(u.Role), ac.config.JWT.Secret, ac.config.JWT.ExpiryHours)
}

// sendResetMessage simulates delivery. Replace with a real email/WhatsApp
// provider integration.
func (ac *AuthController) sendResetMessage(channel, contact, link string) error {
	fmt.Printf("SIMULATING: Sending reset link via %s to %s: %s\n", channel, contact, link)
	return nil
}

// @Summary      Login
// @Description  Authenticate with email and password, set the session cookie.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200  {object}  AuthResponse
// @Failure      400  {object}  utils.ErrorResponse "Missing fields"
// @Failure      401  {object}  utils.ErrorResponse "Invalid credentials"
// @Failure      429  {object}  utils.ErrorResponse "Too many attempts"
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestJSON(c, "Email and password are required")
		return
	}

	email := strings.ToLower(req.Email)

	// Every attempt counts against the window, successful logins included.
	key := c.ClientIP() + ":" + email
	if !ac.limiter.Allow(key) {
		c.JSON(http.StatusTooManyRequests, utils.ErrorResponse{Error: "Too many login attempts. Please try again later."})
		return
	}

	foundUser, err := ac.repo.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same message as a wrong password so account existence stays hidden.
			c.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: genericCredentialsError})
			return
		}
		log.Printf("login: lookup failed for %s: %v", email, err)
		utils.InternalErrorJSON(c, err)
		return
	}

	// Phone/OTP-only accounts have no hash and cannot password-login.
	if !foundUser.HasPassword() || !utils.CheckPassword(*foundUser.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: genericCredentialsError})
		return
	}

	tokenString, err := ac.issueToken(foundUser)
	if err != nil {
		log.Printf("login: token generation failed: %v", err)
		utils.InternalErrorJSON(c, err)
		return
	}

	ac.setAuthCookie(c, tokenString)
	c.JSON(http.StatusOK, AuthResponse{User: FilterUserRecord(foundUser), Token: tokenString})
}

// @Summary      Register
// @Description  Create an account and log it in. Name defaults to the
// @Description  email's local part; a missing password still gets a random
// @Description  throwaway credential; a missing teamId lands on the default club.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        user  body  RegisterRequest  true  "Registration details"
// @Success      200  {object}  AuthResponse
// @Failure      400  {object}  utils.ErrorResponse "Missing email or duplicate"
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestJSON(c, "A valid email is required")
		return
	}

	email := strings.ToLower(req.Email)

	if _, err := ac.repo.GetUserByEmail(email); !errors.Is(err, gorm.ErrRecordNotFound) {
		if err == nil {
			// Registration legitimately reveals existence, unlike login.
			utils.BadRequestJSON(c, "A user with this email already exists")
			return
		}
		log.Printf("register: lookup failed for %s: %v", email, err)
		utils.InternalErrorJSON(c, err)
		return
	}

	name := req.Name
	if name == "" {
		name = email[:strings.Index(email, "@")]
	}

	password := req.Password
	if password == "" {
		// Throwaway credential so the account still has a hash on record.
		password = utils.GenerateRandomToken(resetTokenLength)
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("register: hashing failed: %v", err)
		utils.InternalErrorJSON(c, err)
		return
	}

	teamID := req.TeamID
	if teamID == 0 {
		teamID = ac.config.App.DefaultTeamID
	}

	newUser := &user.User{
		Name:     name,
		Email:    &email,
		Password: &hashed,
		Role:     permissions.RoleFan,
		TeamID:   teamID,
	}
	if err := ac.repo.CreateUser(newUser); err != nil {
		log.Printf("register: create failed for %s: %v", email, err)
		utils.InternalErrorJSON(c, err)
		return
	}

	tokenString, err := ac.issueToken(newUser)
	if err != nil {
		log.Printf("register: token generation failed: %v", err)
		utils.InternalErrorJSON(c, err)
		return
	}

	ac.setAuthCookie(c, tokenString)
	c.JSON(http.StatusOK, AuthResponse{User: FilterUserRecord(newUser), Token: tokenString})
}

// @Summary      Current user
// @Description  Returns the sanitized profile for the session cookie's owner.
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  map[string]UserResponse
// @Failure      401  {object}  utils.ErrorResponse "Missing or invalid token"
// @Failure      404  {object}  utils.ErrorResponse "User no longer exists"
// @Router       /auth/me [get]
func (ac *AuthController) Me(c *gin.Context) {
	claims, err := middleware.GetClaims(c)
	if err != nil {
		utils.UnauthorizedJSON(c)
		return
	}

	currentUser, err := ac.repo.GetUserByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundJSON(c, "User")
			return
		}
		log.Printf("me: lookup failed for user %d: %v", claims.UserID, err)
		utils.InternalErrorJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": FilterUserRecord(currentUser)})
}

// @Summary      Logout
// @Description  Clears the session cookie. Tokens stay valid until expiry;
// @Description  there is no server-side revocation list.
// @Tags         Auth
// @Success      200  {object}  utils.SuccessResponse
// @Router       /auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	ac.clearAuthCookie(c)
	utils.SuccessJSON(c, http.StatusOK, "Logged out", nil)
}

// @Summary      Forgot password
// @Description  Issues a single-use, 1-hour reset token via email or
// @Description  WhatsApp. Always answers with the same generic message.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body  ForgotPasswordRequest  true  "Contact details"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  utils.ErrorResponse "No contact provided"
// @Router       /auth/forgot-password [post]
func (ac *AuthController) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestJSON(c, "Invalid request body")
		return
	}

	channel, contact := resolveChannel(req)
	if contact == "" {
		utils.BadRequestJSON(c, "An email or phone is required")
		return
	}

	foundUser := ac.lookupByChannel(channel, contact)

	response := gin.H{"success": true, "message": genericResetMessage}

	// The record is only created when the account exists; the response is
	// identical either way to resist enumeration.
	if foundUser != nil {
		resetToken := utils.GenerateRandomToken(resetTokenLength)
		pr := &PasswordReset{
			ID:        resetToken,
			UserID:    foundUser.ID,
			Channel:   channel,
			Contact:   contact,
			ExpiresAt: time.Now().Add(resetExpiry),
		}
		if err := ac.repo.CreatePasswordReset(pr); err != nil {
			log.Printf("forgot-password: failed to store reset record: %v", err)
			utils.InternalErrorJSON(c, err)
			return
		}

		resetLink := fmt.Sprintf("%s/reset-password?token=%s", ac.config.App.BaseURL, resetToken)
		if err := ac.sendResetMessage(channel, contact, resetLink); err != nil {
			log.Printf("forgot-password: delivery via %s failed: %v", channel, err)
		}

		// Never echo the link under a production configuration.
		if !ac.config.IsProduction() {
			response["dev_reset_link"] = resetLink
		}
	}

	c.JSON(http.StatusOK, response)
}

// @Summary      Reset password
// @Description  Consumes a reset token and stores the new password hash.
// @Description  The token is single-use; no automatic login happens.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body  ResetPasswordRequest  true  "Token and new password"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  utils.ErrorResponse "Invalid or expired link"
// @Failure      404  {object}  utils.ErrorResponse "User no longer exists"
// @Router       /auth/reset-password [post]
func (ac *AuthController) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestJSON(c, "Token and a new password are required")
		return
	}

	pr, err := ac.repo.GetPasswordReset(req.Token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.BadRequestJSON(c, "Invalid or expired link")
			return
		}
		log.Printf("reset-password: lookup failed: %v", err)
		utils.InternalErrorJSON(c, err)
		return
	}

	if pr.Used || time.Now().After(pr.ExpiresAt) {
		utils.BadRequestJSON(c, "Invalid or expired link")
		return
	}

	resetUser, err := ac.repo.GetUserByID(pr.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundJSON(c, "User")
			return
		}
		log.Printf("reset-password: user lookup failed: %v", err)
		utils.InternalErrorJSON(c, err)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("reset-password: hashing failed: %v", err)
		utils.InternalErrorJSON(c, err)
		return
	}

	// Consume first: of two racing requests with the same token, only the
	// winner gets to overwrite the hash.
	consumed, err := ac.repo.ConsumePasswordReset(req.Token)
	if err != nil {
		log.Printf("reset-password: consume failed: %v", err)
		utils.InternalErrorJSON(c, err)
		return
	}
	if !consumed {
		utils.BadRequestJSON(c, "Invalid or expired link")
		return
	}

	resetUser.Password = &hashed
	if err := ac.repo.UpdateUser(resetUser); err != nil {
		log.Printf("reset-password: update failed for user %d: %v", resetUser.ID, err)
		utils.InternalErrorJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func resolveChannel(req ForgotPasswordRequest) (channel, contact string) {
	switch req.Channel {
	case ChannelWhatsApp:
		return ChannelWhatsApp, req.Phone
	case ChannelEmail:
		return ChannelEmail, strings.ToLower(req.Email)
	}
	// No explicit channel: a phone implies WhatsApp, otherwise email.
	if req.Phone != "" {
		return ChannelWhatsApp, req.Phone
	}
	return ChannelEmail, strings.ToLower(req.Email)
}

func (ac *AuthController) lookupByChannel(channel, contact string) *user.User {
	var (
		found *user.User
		err   error
	)
	if channel == ChannelWhatsApp {
		found, err = ac.repo.GetUserByPhone(contact)
	} else {
		found, err = ac.repo.GetUserByEmail(contact)
	}
	if err != nil {
		return nil
	}
	return found
}
