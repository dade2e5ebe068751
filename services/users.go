package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"bizlink/models"
	"bizlink/store"

	"golang.org/x/crypto/argon2"
)

// UserService - каталог пользователей: регистрация, вход, токены.
// Сессионный провайдер внешний; здесь только то, что нужно middleware
// для разрешения bearer-токенов.
type UserService struct {
	users store.UserStore
}

func NewUserService(users store.UserStore) *UserService {
	return &UserService{users: users}
}

// Register создает профиль пользователя с argon2id-хешом пароля
func (us *UserService) Register(ctx context.Context, user *models.User) (int64, error) {
	if user.Nickname == "" || user.Password == "" {
		return 0, errors.New("nickname and password are required")
	}

	if _, err := us.users.GetByNickname(ctx, user.Nickname); err == nil {
		return 0, store.ErrConflict
	} else if !errors.Is(err, store.ErrNotFound) {
		return 0, err
	}

	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return 0, err
	}
	hash := argon2.IDKey([]byte(user.Password), salt, 1, 64*1024, 4, 32)
	user.Password = hex.EncodeToString(salt) + "$" + hex.EncodeToString(hash)

	if err := us.users.Create(ctx, user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

// Login проверяет пароль и выдает новый токен, сбрасывая старые
func (us *UserService) Login(ctx context.Context, nickname, password string) (string, error) {
	user, err := us.users.GetByNickname(ctx, nickname)
	if err != nil {
		return "", err
	}

	parts := strings.Split(user.Password, "$")
	if len(parts) != 2 {
		return "", errors.New("invalid password format")
	}
	salt, err := hex.DecodeString(parts[0])
	if err != nil {
		return "", err
	}
	hash := argon2.IDKey([]byte(password), salt, 1, 64*1024, 4, 32)
	if hex.EncodeToString(hash) != parts[1] {
		return "", errors.New("invalid password")
	}

	if err := us.users.DeleteTokens(ctx, user.ID); err != nil {
		return "", err
	}
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	token := hex.EncodeToString(tokenBytes)
	if err := us.users.CreateToken(ctx, &models.UserTokens{UserID: user.ID, Token: token}); err != nil {
		return "", err
	}
	return token, nil
}

// Logout удаляет все токены пользователя
func (us *UserService) Logout(ctx context.Context, userID int64) error {
	return us.users.DeleteTokens(ctx, userID)
}

// ResolveToken возвращает id пользователя по токену
func (us *UserService) ResolveToken(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, store.ErrNotFound
	}
	return us.users.GetUserIDByToken(ctx, token)
}

// GetUserByID возвращает профиль пользователя
func (us *UserService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return us.users.GetByID(ctx, id)
}
