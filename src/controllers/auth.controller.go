package controllers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"net/http"
	"time"
	"venise/src/db"
	"venise/src/lib/mailer"
	"venise/src/models"
	"venise/src/types"
	"venise/src/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func AuthRegister(ctx *gin.Context) (uid *uint, status int, err error) {
	var body types.RegisterUserRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	user := models.User{
		FirstName:    body.FirstName,
		LastName:     body.LastName,
		Email:        body.Email,
		PasswordHash: string(hash),
		Role:         string(types.ROLE_USER),
		IsActive:     true,
	}
	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		if err := tx.
			Model(&models.User{}).
			Where("email = ?", body.Email).
			First(&existing).
			Error; err == nil {
			return errors.New("user is already registered in the system. Please proceed to Log In")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("could not complete transaction")
		}
		if err := tx.Create(&user).Error; err != nil {
			log.Printf("Error creating user: %s\n", err.Error())
			return errors.New("error creating user")
		}
		return nil
	})
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	return &user.ID, http.StatusOK, nil
}

func AuthLogin(ctx *gin.Context) (token *string, status int, err error) {
	var body types.LoginRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}

	db := db.GetDb()
	var user models.User
	if err = db.
		Model(&models.User{}).
		Where(&models.User{Email: body.Email}).
		First(&user).
		Error; err != nil {
		log.Printf("error: %s\n", err.Error())
		return nil, http.StatusUnauthorized, errors.New("invalid credentials")
	}
	if !user.IsActive {
		return nil, http.StatusUnauthorized, errors.New("account is disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
		return nil, http.StatusUnauthorized, errors.New("invalid credentials")
	}

	jwt, err := utils.GenerateJWT(user.Email, user.ID, user.Role)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return &jwt, http.StatusOK, nil
}

// CreateAdmin registers a hotel administrator with a generated password and
// mails the credentials. Superadmin only, enforced by the route group.
func CreateAdmin(ctx *gin.Context) (uid *uint, status int, err error) {
	var body types.CreateAdminRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}

	password, err := utils.GeneratePassword(12)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	admin := models.User{
		FirstName:    body.FirstName,
		LastName:     body.LastName,
		Email:        body.Email,
		PasswordHash: string(hash),
		Role:         string(types.ROLE_ADMIN),
		IsActive:     true,
	}
	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		if err := tx.
			Model(&models.User{}).
			Where("email = ?", body.Email).
			First(&existing).
			Error; err == nil {
			return errors.New("a user with this email already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("could not complete transaction")
		}
		return tx.Create(&admin).Error
	})
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	mailer.New().SendAdminCredentials(admin.Email, password)
	return &admin.ID, http.StatusOK, nil
}

// ToggleAdmin flips an admin account between active and disabled.
func ToggleAdmin(id uint) (bool, error) {
	db := db.GetDb()
	var admin models.User
	if err := db.
		Where(&models.User{ID: id, Role: string(types.ROLE_ADMIN)}).
		First(&admin).
		Error; err != nil {
		return false, errors.New("admin not found")
	}
	admin.IsActive = !admin.IsActive
	if err := db.Save(&admin).Error; err != nil {
		return false, err
	}
	return admin.IsActive, nil
}

func ForgotPassword(email string) error {
	db := db.GetDb()
	var user models.User
	if err := db.Where(&models.User{Email: email}).First(&user).Error; err != nil {
		// Do not reveal whether the account exists.
		log.Printf("Password reset requested for unknown email: %s\n", email)
		return nil
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return err
	}
	token := hex.EncodeToString(buf)
	expiry := time.Now().Add(1 * time.Hour)
	if err := db.
		Model(&models.User{}).
		Where(&models.User{ID: user.ID}).
		Updates(map[string]any{"reset_token": token, "reset_expiry": expiry}).
		Error; err != nil {
		return err
	}
	mailer.New().SendPasswordReset(user.Email, token)
	return nil
}

func ResetPassword(token, newPassword string) error {
	db := db.GetDb()
	var user models.User
	if err := db.
		Where("reset_token = ? AND reset_expiry > ?", token, time.Now()).
		First(&user).
		Error; err != nil {
		return errors.New("invalid or expired reset token")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.
		Model(&models.User{}).
		Where(&models.User{ID: user.ID}).
		Updates(map[string]any{
			"password_hash": string(hash),
			"reset_token":   nil,
			"reset_expiry":  nil,
		}).Error
}
