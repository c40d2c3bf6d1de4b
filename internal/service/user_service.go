package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"habit_keep/internal/middleware"
	"habit_keep/internal/model"
	"habit_keep/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

type userService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	mailer   Mailer
	hashCost int
}

func NewUserService(db *gorm.DB, userRepo repository.UserRepository, mailer Mailer) UserService {
	return &userService{
		db:       db,
		userRepo: userRepo,
		mailer:   mailer,
		hashCost: bcrypt.DefaultCost,
	}
}

// Register はユーザーを登録し、ウェルカムメールを送信します。
// メール送信の失敗は登録結果に影響しません。
func (s *userService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	var newUser *model.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.userRepo.FindByEmail(ctx, tx, email)
		if err == nil {
			logger.Warn("Email already exists", "email", email)
			return model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "email", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check email existence", "error", err)
			return internalError("サーバー内部でエラーが発生しました。", err)
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
		if err != nil {
			logger.Error("Failed to hash password", "error", err)
			return internalError("パスワードの処理中にエラーが発生しました。", err)
		}

		user := &model.User{
			UserID:       uuid.New(),
			Name:         strings.TrimSpace(req.Name),
			Email:        email,
			PasswordHash: string(hashed),
			Avatar:       model.DefaultAvatar,
		}
		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Conflict during user creation (race condition)", "error", err)
				return model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "email", model.ErrConflict)
			}
			logger.Error("Failed to create user in DB", "error", err)
			return internalError("ユーザーの作成に失敗しました。", err)
		}
		newUser = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	subject := "Welcome to habit_keep"
	body := fmt.Sprintf("Hi %s,\n\nyour account is ready. Pick a habit and start your first streak today.\n", newUser.Name)
	if err := s.mailer.Send(ctx, newUser.Email, subject, body); err != nil {
		logger.Warn("Failed to send welcome email", "error", err, "user_id", newUser.UserID)
	}

	logger.Info("User registered", "user_id", newUser.UserID)
	return newUser, nil
}

func (s *userService) GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, userNotFound()
		}
		logger.Error("Failed to find user", "error", err, "user_id", userID)
		return nil, internalError("ユーザーの取得に失敗しました。", err)
	}
	return user, nil
}

// ensureUserExists はユーザーが存在しない場合 NotFound の AppError を返します。
func ensureUserExists(ctx context.Context, db *gorm.DB, userRepo repository.UserRepository, userID uuid.UUID) error {
	exists, err := userRepo.Exists(ctx, db, userID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to check user existence", "error", err, "user_id", userID)
		return internalError("ユーザーの確認に失敗しました。", err)
	}
	if !exists {
		return userNotFound()
	}
	return nil
}
