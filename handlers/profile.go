package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"scripvault/middleware"
	"scripvault/models"
	"scripvault/repository"
)

type ProfileHandler struct {
	users repository.Users
}

func NewProfileHandler(users repository.Users) *ProfileHandler {
	return &ProfileHandler{users: users}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	user, err := h.users.FindByID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// profileInput is the allow-list for profile updates. Pointer fields
// distinguish "omitted" from "set to zero value"; anything not listed
// here cannot be touched through this endpoint.
type profileInput struct {
	FullName             *string                      `json:"fullName"`
	Phone                *string                      `json:"phone"`
	Address              *string                      `json:"address"`
	DateOfBirth          *time.Time                   `json:"dateOfBirth"`
	RiskTolerance        *string                      `json:"riskTolerance" binding:"omitempty,oneof=conservative moderate aggressive"`
	PreferredInvestments *models.PreferredInvestments `json:"preferredInvestments"`
	TwoFactorAuth        *bool                        `json:"twoFactorAuth"`
	ProfilePic           *string                      `json:"profilePic"`

	CurrentPassword *string `json:"currentPassword"`
	NewPassword     *string `json:"newPassword" binding:"omitempty,min=6"`
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var input profileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := h.users.FindByID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	if input.NewPassword != nil {
		if input.CurrentPassword == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Current password is required to change password"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(*input.CurrentPassword)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Current password is incorrect"})
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
			return
		}
		user.Password = string(hashed)
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Address != nil {
		user.Address = *input.Address
	}
	if input.DateOfBirth != nil {
		user.DateOfBirth = input.DateOfBirth
	}
	if input.RiskTolerance != nil {
		user.RiskTolerance = *input.RiskTolerance
	}
	if input.PreferredInvestments != nil {
		user.PreferredInvestments = *input.PreferredInvestments
	}
	if input.TwoFactorAuth != nil {
		user.TwoFactorAuth = *input.TwoFactorAuth
	}
	if input.ProfilePic != nil {
		user.ProfilePic = *input.ProfilePic
	}

	if err := h.users.Save(c.Request.Context(), user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, user)
}
