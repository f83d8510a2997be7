package handlers

import (
	"database/sql"
	"net/http"
	"strings"
	"time"

	intconfig "campusmarket/internal/config"
	"campusmarket/internal/http/middleware"
	"campusmarket/internal/repositories"
	"campusmarket/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login. Wrong email and wrong password
// answer identically.
func Login(env intconfig.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if !BindJSONOrError(c, &req) {
			return
		}

		repo := repositories.UserRepository{}
		user, passwordHash, err := repo.GetByEmail(strings.TrimSpace(req.Email))
		if err != nil {
			if err == sql.ErrNoRows {
				respondError(c, http.StatusUnauthorized, "bad_credentials", "wrong email or password", nil)
			} else {
				respondError(c, http.StatusInternalServerError, "internal_error", "user query failed", err)
			}
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
			respondError(c, http.StatusUnauthorized, "bad_credentials", "wrong email or password", nil)
			return
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": user.ID,
			"role":    user.Role,
			"exp":     time.Now().Add(24 * time.Hour).Unix(),
		})
		tokenString, err := token.SignedString([]byte(env.JWTSecret))
		if err != nil {
			respondError(c, http.StatusInternalServerError, "internal_error", "token signing failed", err)
			return
		}

		utils.LogEvent(middleware.GetRequestID(c), "auth", "login", "user_id set")
		c.JSON(http.StatusOK, gin.H{
			"token": tokenString,
			"user":  user,
		})
	}
}

type registerRequest struct {
	Email     string `json:"email"`
	CampusID  string `json:"campusId"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

// Register handles POST /api/auth/register with the campus account
// rules: a short campus email, a 9-digit id starting with 9 and an
// 8-20 character password.
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	email := strings.TrimSpace(req.Email)
	campusID := strings.TrimSpace(req.CampusID)

	regErrors := []string{}
	if email == "" || campusID == "" || req.Password == "" || req.Password2 == "" {
		regErrors = append(regErrors, "Please fill in all fields")
	} else {
		if !utils.ValidCampusEmail(email) {
			regErrors = append(regErrors, "Invalid campus email")
		}
		if !utils.ValidCampusID(campusID) {
			regErrors = append(regErrors, "Invalid campus ID")
		}
		if len(req.Password) < 8 || len(req.Password) > 20 {
			regErrors = append(regErrors, "Password must be between 8-20 characters")
		}
		if req.Password != req.Password2 {
			regErrors = append(regErrors, "Passwords do not match")
		}
	}
	if len(regErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": regErrors})
		return
	}

	repo := repositories.UserRepository{}
	exists, err := repo.Exists(email, campusID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "user query failed", err)
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{"errors": []string{"Such user already exists. Please log in."}})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "password hashing failed", err)
		return
	}

	displayName := email
	if at := strings.Index(email, "@"); at > 0 {
		displayName = email[:at]
	}

	id, err := repo.Create(email, campusID, displayName, string(hash))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "user insert failed", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "register", "new user created")
	c.JSON(http.StatusCreated, gin.H{
		"id":      id,
		"message": "Successfully registered, please login.",
	})
}
