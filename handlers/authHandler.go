package handlers

import (
	"NeoVax/models"
	"NeoVax/services"
	"NeoVax/utils"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	UserService services.UserService
}

func NewAuthHandler(userService services.UserService) *AuthHandler {
	return &AuthHandler{
		UserService: userService,
	}
}

// Helper function to extract token from URL query parameters
func extractAccessToken(c *gin.Context) (string, error) {
	token := c.DefaultQuery("accessToken", "")
	if token == "" {
		return "", fmt.Errorf("access token is required")
	}
	return token, nil
}

// sanitizeUser strips everything but the public profile fields.
func sanitizeUser(user *models.User) gin.H {
	return gin.H{
		"id":        user.ID,
		"full_name": user.FullName,
		"username":  user.Username,
		"role":      user.Role,
	}
}

// Login authenticates a staff member and returns tokens with the profile.
// Unknown usernames and wrong passwords produce the same response.
func (h *AuthHandler) Login(c *gin.Context) {
	var credentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(400, gin.H{"message": "Invalid JSON payload"})
		return
	}
	if credentials.Username == "" || credentials.Password == "" {
		c.JSON(422, gin.H{"message": "Username and password are required"})
		return
	}

	ctx := c.Request.Context()
	user, err := h.UserService.AuthenticateUser(ctx, credentials.Username, credentials.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(strconv.FormatInt(user.ID, 10), user.Role)
	if err != nil {
		c.JSON(500, gin.H{"message": "Failed to generate tokens"})
		return
	}

	utils.SetAuthCookies(c, accessToken, refreshToken)
	c.JSON(200, gin.H{
		"message":      "Login successful",
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
		"user":         sanitizeUser(user),
	})
}

// RefreshToken issues a fresh access token from a still-valid one.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	token, err := extractAccessToken(c)
	if err != nil {
		c.JSON(400, gin.H{"message": err.Error()})
		return
	}

	claims, err := utils.ValidateToken(token, models.RoleAdmin, models.RoleStaff)
	if err != nil {
		c.JSON(401, gin.H{"message": "Invalid access token"})
		return
	}

	accessToken, err := utils.GenerateAccessToken(claims.UserID, claims.Role)
	if err != nil {
		c.JSON(500, gin.H{"message": "Failed to generate access token"})
		return
	}

	c.JSON(200, gin.H{
		"accessToken": accessToken,
	})
}

// Logoff logs the user out by clearing cookies
func (h *AuthHandler) Logoff(c *gin.Context) {
	utils.ClearAuthCookies(c)
	c.Status(200)
}

// GetUserProfile retrieves the current user's profile
func (h *AuthHandler) GetUserProfile(c *gin.Context) {
	token, err := extractAccessToken(c)
	if err != nil {
		c.JSON(400, gin.H{"message": err.Error()})
		return
	}

	claims, err := utils.ValidateToken(token, models.RoleAdmin, models.RoleStaff)
	if err != nil {
		c.JSON(401, gin.H{"message": "Invalid access token"})
		return
	}

	userID, err := strconv.ParseInt(claims.UserID, 10, 64)
	if err != nil {
		c.JSON(500, gin.H{"message": "Invalid user ID"})
		return
	}

	user, err := h.UserService.GetUserByID(c.Request.Context(), userID)
	if err != nil || user == nil {
		c.JSON(404, gin.H{"message": "User not found"})
		return
	}

	c.JSON(200, gin.H{"user": sanitizeUser(user)})
}

// SendResetCode emails a password reset code to the account's address.
func (h *AuthHandler) SendResetCode(c *gin.Context) {
	var data struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(400, gin.H{"message": "Invalid JSON payload"})
		return
	}

	ctx := c.Request.Context()
	user, err := h.UserService.GetUserByEmail(ctx, data.Email)
	if err != nil || user == nil {
		c.JSON(404, gin.H{"message": "User not found"})
		return
	}

	code := utils.GenerateResetCode()
	if err := utils.SetResetCode(ctx, user.Email, code); err != nil {
		c.JSON(500, gin.H{"message": "Failed to set reset code"})
		return
	}

	if err := utils.SendResetCodeEmail(user.Email, code); err != nil {
		c.JSON(500, gin.H{"message": "Failed to send reset code email"})
		return
	}

	c.Status(200)
}

// ChangePassword verifies a reset code and stores the new password hash.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var data struct {
		Email       string `json:"email"`
		ResetCode   string `json:"reset_code"`
		NewPassword string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(400, gin.H{"message": "Invalid JSON payload"})
		return
	}

	if err := utils.ValidatePasswordReset(data.ResetCode, data.NewPassword); err != nil {
		c.JSON(422, gin.H{"message": err.Error()})
		return
	}

	ctx := c.Request.Context()
	storedCode, err := utils.GetResetCode(ctx, data.Email)
	if err != nil || storedCode == nil || *storedCode != data.ResetCode {
		c.JSON(401, gin.H{"message": "Invalid reset code"})
		return
	}

	user, err := h.UserService.GetUserByEmail(ctx, data.Email)
	if err != nil || user == nil {
		c.JSON(404, gin.H{"message": "User not found"})
		return
	}

	hashedPassword, err := utils.HashPassword(data.NewPassword)
	if err != nil {
		c.JSON(500, gin.H{"message": "Failed to hash password"})
		return
	}

	if err := h.UserService.UpdateUserPassword(ctx, user.ID, hashedPassword); err != nil {
		respondServiceError(c, err)
		return
	}

	if err := utils.DeleteResetCode(ctx, data.Email); err != nil {
		c.JSON(500, gin.H{"message": "Failed to clear reset code"})
		return
	}

	c.Status(200)
}

// GetAllUsers lists the staff accounts without credentials.
func (h *AuthHandler) GetAllUsers(c *gin.Context) {
	users, err := h.UserService.GetAllUsers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, users)
}

// CreateUser registers a new staff account.
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var payload struct {
		FullName string `json:"full_name"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"message": "Invalid JSON payload"})
		return
	}
	user := models.User{
		FullName: payload.FullName,
		Username: payload.Username,
		Email:    payload.Email,
		Password: payload.Password,
		Role:     payload.Role,
	}

	if err := h.UserService.ValidateAndCreateUser(c.Request.Context(), &user); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(201, gin.H{"message": "User created successfully", "user": sanitizeUser(&user)})
}

// DeleteAccount removes a staff account.
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	idStr := c.Param("user_id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid user ID"})
		return
	}

	if err := h.UserService.DeleteUser(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(200)
}
