package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nitishmehan/Eatsy/entity"
	"github.com/nitishmehan/Eatsy/repository"
	"github.com/nitishmehan/Eatsy/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles signup, login and profile updates.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

type SignupInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
	Role     string

	Restaurant entity.Restaurant // vendor signups only
}

// Signup creates a customer or vendor account. Vendor signups must carry
// the restaurant attributes; customer signups never store them.
func (s *AuthService) Signup(in SignupInput) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" || strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: missing required fields", ErrValidation)
	}
	if in.Role != entity.RoleCustomer && in.Role != entity.RoleVendor {
		return nil, fmt.Errorf("%w: role must be customer or vendor", ErrValidation)
	}
	if len(in.Password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: email already registered", ErrValidation)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var user *entity.User
	if in.Role == entity.RoleVendor {
		r := in.Restaurant
		if strings.TrimSpace(r.Name) == "" || len(r.Cuisine) == 0 ||
			r.PriceRange == "" || strings.TrimSpace(r.Address) == "" {
			return nil, fmt.Errorf("%w: missing required vendor fields", ErrValidation)
		}
		if !entity.ValidPriceRange(r.PriceRange) {
			return nil, fmt.Errorf("%w: invalid price range", ErrValidation)
		}
		user = entity.NewVendor(email, string(hashed), strings.TrimSpace(in.Name),
			strings.TrimSpace(in.Phone), r)
	} else {
		user = entity.NewCustomer(email, string(hashed), strings.TrimSpace(in.Name),
			strings.TrimSpace(in.Phone))
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email already registered", ErrValidation)
		}
		return nil, err
	}
	return user, nil
}

// Login checks the password and issues a session token.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

type ProfileUpdate struct {
	Name            string
	Phone           string
	CurrentPassword string
	NewPassword     string
}

// UpdateProfile changes name/phone; a password change requires the current
// password to verify.
func (s *AuthService) UpdateProfile(userID uint, in ProfileUpdate) (*entity.User, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{"name": strings.TrimSpace(in.Name)}
	if in.Phone != "" {
		updates["phone"] = strings.TrimSpace(in.Phone)
	}

	if in.NewPassword != "" {
		if in.CurrentPassword == "" {
			return nil, fmt.Errorf("%w: current password is required", ErrValidation)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.CurrentPassword)); err != nil {
			return nil, fmt.Errorf("%w: current password is incorrect", ErrValidation)
		}
		if len(in.NewPassword) < 6 {
			return nil, fmt.Errorf("%w: new password must be at least 6 characters", ErrValidation)
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password"] = string(hashed)
	}

	if err := s.userRepo.Update(userID, updates); err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(userID)
}
