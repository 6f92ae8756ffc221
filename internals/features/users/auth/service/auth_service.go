package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"surveyku_backend/internals/configs"
	"surveyku_backend/internals/features/users/auth/dto"
	"surveyku_backend/internals/features/users/auth/model"
)

const accessTTLDefault = 24 * time.Hour

func nowUTC() time.Time { return time.Now().UTC() }

/* ==========================
   Password helpers
========================== */

func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// Password acak untuk akun yang dibuat lewat Google (tidak pernah dipakai login manual)
func generateDummyPassword() string {
	b := make([]byte, 24)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

/* ==========================
   Token issuing
========================== */

func issueAccessToken(user model.UserModel) (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}

	claims := jwt.MapClaims{
		"user_id":   user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"iat":       nowUTC().Unix(),
		"exp":       nowUTC().Add(accessTTLDefault).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func toUserResponse(u model.UserModel) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID.String(),
		UserName: u.UserName,
		Email:    u.Email,
		Role:     u.Role,
	}
}

/* ==========================
   REGISTER / LOGIN
========================== */

func Register(db *gorm.DB, input dto.RegisterRequest) (dto.UserResponse, error) {
	passwordHash, err := HashPassword(input.Password)
	if err != nil {
		return dto.UserResponse{}, fiber.NewError(fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := model.UserModel{
		UserName: input.UserName,
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Password: passwordHash,
		IsActive: true,
	}
	user.SetDefaultValues()

	if err := db.Create(&user).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return dto.UserResponse{}, fiber.NewError(fiber.StatusBadRequest, "Email sudah terdaftar")
		}
		return dto.UserResponse{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat user")
	}
	return toUserResponse(user), nil
}

func Login(db *gorm.DB, input dto.LoginRequest) (dto.LoginResponse, error) {
	var user model.UserModel
	err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(input.Email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.LoginResponse{}, fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
		}
		return dto.LoginResponse{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	if !CheckPassword(user.Password, input.Password) {
		return dto.LoginResponse{}, fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !user.IsActive {
		return dto.LoginResponse{}, fiber.NewError(fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	token, err := issueAccessToken(user)
	if err != nil {
		return dto.LoginResponse{}, err
	}
	return dto.LoginResponse{AccessToken: token, User: toUserResponse(user)}, nil
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, input dto.LoginGoogleRequest) (dto.LoginResponse, error) {
	if configs.GoogleClientID == "" {
		return dto.LoginResponse{}, fiber.NewError(fiber.StatusServiceUnavailable, "Login Google tidak tersedia")
	}

	// Verifikasi token Google
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return dto.LoginResponse{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid Google ID Token")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return dto.LoginResponse{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	email, name, googleID := claimSet.Email, claimSet.Name, claimSet.Sub

	var user model.UserModel
	err = db.Where("google_id = ?", googleID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// User belum ada -> buat baru
		user = model.UserModel{
			UserName: name,
			Email:    strings.ToLower(email),
			Password: generateDummyPassword(),
			GoogleID: &googleID,
			IsActive: true,
		}
		user.SetDefaultValues()
		if err := db.Create(&user).Error; err != nil {
			low := strings.ToLower(err.Error())
			if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
				return dto.LoginResponse{}, fiber.NewError(fiber.StatusBadRequest, "Email sudah terdaftar")
			}
			return dto.LoginResponse{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat user Google")
		}
	} else if err != nil {
		return dto.LoginResponse{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	if !user.IsActive {
		return dto.LoginResponse{}, fiber.NewError(fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	token, err := issueAccessToken(user)
	if err != nil {
		return dto.LoginResponse{}, err
	}
	return dto.LoginResponse{AccessToken: token, User: toUserResponse(user)}, nil
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, tokenString string) error {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	_, _ = parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})

	expiredAt := nowUTC().Add(accessTTLDefault)
	if expFloat, ok := claims["exp"].(float64); ok {
		expiredAt = time.Unix(int64(expFloat), 0)
	}

	entry := model.TokenBlacklist{Token: tokenString, ExpiredAt: expiredAt}
	if err := db.Create(&entry).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return nil // sudah di-blacklist, idempotent
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal logout")
	}
	return nil
}
