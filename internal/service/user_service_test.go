package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"habit_keep/internal/middleware"
	"habit_keep/internal/model"
	"habit_keep/internal/repository/mocks"
	"habit_keep/internal/service"
	servicemocks "habit_keep/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type UserServiceTestSuite struct {
	suite.Suite

	db           *gorm.DB
	mockUserRepo *mocks.UserRepository
	mockMailer   *servicemocks.Mailer
	userService  service.UserService
	ctx          context.Context
}

func (s *UserServiceTestSuite) SetupSuite() {
	// リポジトリはモックなので、トランザクションを張れればよい
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	s.db = db
	s.ctx = middleware.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *UserServiceTestSuite) TearDownSuite() {
	if sqlDB, err := s.db.DB(); err == nil {
		sqlDB.Close()
	}
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockUserRepo = new(mocks.UserRepository)
	s.mockMailer = new(servicemocks.Mailer)
	s.userService = service.NewUserService(s.db, s.mockUserRepo, s.mockMailer)
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) TestRegister() {
	testCases := []struct {
		name        string
		req         *model.RegisterRequest
		setupMocks  func()
		checkResult func(user *model.User, err error)
	}{
		{
			name: "正常系: 登録してウェルカムメールを送信",
			req:  &model.RegisterRequest{Name: " Hanako ", Email: "Hanako@Example.com ", Password: "password123"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "hanako@example.com").Return(nil, model.ErrNotFound).Once()
				s.mockUserRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.User")).Return(nil).Once()
				s.mockMailer.On("Send", mock.Anything, "hanako@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return(nil).Once()
			},
			checkResult: func(user *model.User, err error) {
				s.Require().NoError(err)
				s.NotEqual(uuid.Nil, user.UserID)
				s.Equal("Hanako", user.Name)
				s.Equal("hanako@example.com", user.Email)
				s.Equal(model.DefaultAvatar, user.Avatar)
				s.NoError(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
			},
		},
		{
			name: "正常系: メール送信の失敗は登録に影響しない",
			req:  &model.RegisterRequest{Name: "Taro", Email: "taro@example.com", Password: "password123"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "taro@example.com").Return(nil, model.ErrNotFound).Once()
				s.mockUserRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.User")).Return(nil).Once()
				s.mockMailer.On("Send", mock.Anything, "taro@example.com", mock.Anything, mock.Anything).Return(errors.New("ses unavailable")).Once()
			},
			checkResult: func(user *model.User, err error) {
				s.Require().NoError(err)
				s.Equal("taro@example.com", user.Email)
			},
		},
		{
			name: "異常系: Emailが重複している",
			req:  &model.RegisterRequest{Name: "Taro", Email: "taro@example.com", Password: "password123"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "taro@example.com").Return(&model.User{}, nil).Once()
			},
			checkResult: func(user *model.User, err error) {
				s.Nil(user)
				s.ErrorIs(err, model.ErrConflict)
				var appErr *model.AppError
				s.Require().ErrorAs(err, &appErr)
				s.Equal("DUPLICATE_EMAIL", appErr.Code)
				s.Equal("email", appErr.Field)
			},
		},
		{
			name: "異常系: 作成時の一意制約違反",
			req:  &model.RegisterRequest{Name: "Taro", Email: "taro@example.com", Password: "password123"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "taro@example.com").Return(nil, model.ErrNotFound).Once()
				s.mockUserRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.User")).Return(model.ErrConflict).Once()
			},
			checkResult: func(user *model.User, err error) {
				s.Nil(user)
				s.ErrorIs(err, model.ErrConflict)
			},
		},
		{
			name: "異常系: DBエラー",
			req:  &model.RegisterRequest{Name: "Taro", Email: "taro@example.com", Password: "password123"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "taro@example.com").
					Return(nil, errors.Join(model.ErrStorage, errors.New("connection refused"))).Once()
			},
			checkResult: func(user *model.User, err error) {
				s.Nil(user)
				s.ErrorIs(err, model.ErrStorage)
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			tc.setupMocks()

			user, err := s.userService.Register(s.ctx, tc.req)
			tc.checkResult(user, err)

			s.mockUserRepo.AssertExpectations(s.T())
			s.mockMailer.AssertExpectations(s.T())
		})
	}
}

func (s *UserServiceTestSuite) TestGetUser() {
	userID := uuid.New()

	s.Run("正常系: ユーザーを取得", func() {
		s.SetupTest()
		s.mockUserRepo.On("FindByID", mock.Anything, mock.Anything, userID).Return(&model.User{UserID: userID, Name: "Hanako"}, nil).Once()

		user, err := s.userService.GetUser(s.ctx, userID)
		s.Require().NoError(err)
		s.Equal("Hanako", user.Name)
	})

	s.Run("異常系: 存在しない", func() {
		s.SetupTest()
		s.mockUserRepo.On("FindByID", mock.Anything, mock.Anything, userID).Return(nil, model.ErrNotFound).Once()

		user, err := s.userService.GetUser(s.ctx, userID)
		s.Nil(user)
		s.ErrorIs(err, model.ErrNotFound)
		var appErr *model.AppError
		s.Require().ErrorAs(err, &appErr)
		s.Equal("USER_NOT_FOUND", appErr.Code)
	})
}
