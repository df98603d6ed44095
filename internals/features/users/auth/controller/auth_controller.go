package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gerejaku_backend/internals/configs"
	"gerejaku_backend/internals/features/users/auth/dto"
	userModel "gerejaku_backend/internals/features/users/user/model"
	helper "gerejaku_backend/internals/helpers"
)

const accessTTL = 24 * time.Hour

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/public/auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing userModel.UserModel
	err := ac.DB.First(&existing, "user_email = ?", req.Email).Error
	if err == nil {
		return helper.Error(c, fiber.StatusConflict, "Email sudah terdaftar")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] Gagal cek email:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses pendaftaran")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("[ERROR] Gagal hash password:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses pendaftaran")
	}
	hashStr := string(hashed)

	user := userModel.UserModel{
		UserName:     req.Name,
		UserEmail:    req.Email,
		UserPassword: &hashStr,
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		log.Println("[ERROR] Gagal membuat user:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses pendaftaran")
	}

	log.Printf("[SUCCESS] User terdaftar: %s\n", user.UserEmail)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pendaftaran berhasil, menunggu approval admin", fiber.Map{
		"user_id": user.UserID,
		"status":  user.UserStatus,
	})
}

// POST /api/public/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ac.DB.First(&user, "user_email = ?", req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		log.Println("[ERROR] Gagal ambil user:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	if user.UserPassword == nil {
		// akun provisioned webhook: login lewat provider, bukan password
		return helper.Error(c, fiber.StatusUnauthorized, "Akun ini login lewat identity provider")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.UserPassword), []byte(req.Password)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, err := issueAccessToken(&user)
	if err != nil {
		log.Println("[ERROR] Gagal buat token:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	log.Printf("[SUCCESS] Login: %s (role=%s)\n", user.UserEmail, user.UserRole)
	return helper.Success(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(accessTTL.Seconds()),
	})
}

func issueAccessToken(user *userModel.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.UserID.String(),
		"role":    user.UserRole,
		"exp":     time.Now().Add(accessTTL).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
