package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/Ayushchugh15/SPRA/internal/config"
	"github.com/Ayushchugh15/SPRA/internal/entity"
	"github.com/Ayushchugh15/SPRA/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials 用户名或密码错误
var ErrInvalidCredentials = errors.New("用户名或密码错误")

type AuthService struct {
	userRepo *repository.UserRepository
	jwtCfg   config.JWTConfig
}

func NewAuthService(userRepo *repository.UserRepository, jwtCfg config.JWTConfig) *AuthService {
	return &AuthService{userRepo: userRepo, jwtCfg: jwtCfg}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// Register 创建用户。系统内还没有任何用户时，第一个注册者自动成为admin；
// 之后的创建只能由admin发起（byAdmin），角色默认operator。
func (s *AuthService) Register(req RegisterRequest, byAdmin bool) (*entity.User, error) {
	count, err := s.userRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("读取用户失败: %w", err)
	}

	role := req.Role
	switch {
	case count == 0:
		role = entity.RoleAdmin
	case !byAdmin:
		return nil, fmt.Errorf("只有管理员可以创建用户")
	case role == "":
		role = entity.RoleOperator
	}
	switch role {
	case entity.RoleAdmin, entity.RoleOperator, entity.RoleViewer:
	default:
		return nil, fmt.Errorf("非法的角色: %s", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("密码加密失败: %w", err)
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         role,
		IsActive:     true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("创建用户失败: %w", err)
	}
	return user, nil
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 校验密码并签发JWT
func (s *AuthService) Login(req LoginRequest) (*entity.User, string, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, "", fmt.Errorf("账号已停用")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.userRepo.Update(user); err != nil {
		return nil, "", fmt.Errorf("更新登录时间失败: %w", err)
	}

	token, err := s.issueToken(user, now)
	if err != nil {
		return nil, "", fmt.Errorf("签发token失败: %w", err)
	}
	return user, token, nil
}

func (s *AuthService) issueToken(user *entity.User, now time.Time) (string, error) {
	expire := s.jwtCfg.AccessTokenExpire
	if expire <= 0 {
		expire = 24 * time.Hour
	}
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"uid":   user.ID,
		"name":  user.FullName,
		"email": user.Email,
		"role":  user.Role,
		"iss":   s.jwtCfg.Issuer,
		"iat":   now.Unix(),
		"exp":   now.Add(expire).Unix(),
		"jti":   uuid.New().String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtCfg.Secret))
}

func (s *AuthService) GetUser(id string) (*entity.User, error) {
	return s.userRepo.GetByID(id)
}

func (s *AuthService) ListUsers(page, size int) ([]entity.User, int64, error) {
	return s.userRepo.List(page, size)
}
