package services

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/arvindpj/treknest/internal/models"
)

// UserStore is the persistence surface the auth flow needs.
type UserStore interface {
	Insert(ctx context.Context, u *models.User) error
	ByEmail(ctx context.Context, email string) (models.User, error)
	ByID(ctx context.Context, id string) (models.User, error)
	Set(ctx context.Context, id string, fields bson.M) (bool, error)
}

type AuthService struct {
	users    UserStore
	secret   string
	tokenTTL time.Duration
	validate *validator.Validate
}

func NewAuthService(users UserStore, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		secret:   secret,
		tokenTTL: tokenTTL,
		validate: validator.New(),
	}
}

// HashPassword hashes a password using bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifyPassword compares a plain password with a hashed password.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateJWT issues an HS256 token carrying the user id and role.
func (s *AuthService) GenerateJWT(userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// Register creates an account and returns the stored user plus a fresh token.
// The duplicate-email check is enforced by the unique index on users.email,
// so two concurrent registrations of the same address cannot both succeed.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, string, error) {
	if err := s.validate.Struct(req); err != nil {
		return models.User{}, "", asValidationError(err)
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return models.User{}, "", err
	}

	now := time.Now()
	user := models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  hashed,
		Role:      models.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.users.Insert(ctx, &user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, "", ErrDuplicateEmail
		}
		return models.User{}, "", err
	}

	token, err := s.GenerateJWT(user.ID.Hex(), user.Role)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password produce the same error so callers cannot probe for accounts.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, string, error) {
	if err := s.validate.Struct(req); err != nil {
		return models.User{}, "", asValidationError(err)
	}

	user, err := s.users.ByEmail(ctx, req.Email)
	if err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if !VerifyPassword(req.Password, user.Password) {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := s.GenerateJWT(user.ID.Hex(), user.Role)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

func (s *AuthService) Me(ctx context.Context, userID string) (models.User, error) {
	user, err := s.users.ByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// UpdateProfile applies a self-service edit. Role changes are ignored here;
// only UpdateUser (admin route) may change roles.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, req models.UpdateUserRequest) (models.User, error) {
	req.Role = ""
	return s.applyUserUpdate(ctx, userID, req)
}

// UpdateUser is the admin edit of any account, including its role.
func (s *AuthService) UpdateUser(ctx context.Context, userID string, req models.UpdateUserRequest) (models.User, error) {
	return s.applyUserUpdate(ctx, userID, req)
}

func (s *AuthService) applyUserUpdate(ctx context.Context, userID string, req models.UpdateUserRequest) (models.User, error) {
	if err := s.validate.Struct(req); err != nil {
		return models.User{}, asValidationError(err)
	}

	fields := bson.M{"updatedAt": time.Now()}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Email != "" {
		fields["email"] = req.Email
	}
	if req.Role != "" {
		fields["role"] = req.Role
	}
	if req.Password != "" {
		hashed, err := HashPassword(req.Password)
		if err != nil {
			return models.User{}, err
		}
		fields["password"] = hashed
	}

	matched, err := s.users.Set(ctx, userID, fields)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	if !matched {
		return models.User{}, ErrNotFound
	}
	return s.users.ByID(ctx, userID)
}
