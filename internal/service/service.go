package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ardiansk/shop-service/internal/auth"
	"github.com/ardiansk/shop-service/internal/middleware"
	"github.com/ardiansk/shop-service/internal/models"
	"github.com/ardiansk/shop-service/internal/repository"
	"github.com/ardiansk/shop-service/internal/utils/email"
	"github.com/sirupsen/logrus"
)

// ErrInvalidCredentials is returned on any failed login. "No such user" and
// "wrong password" are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service handles business logic
type Service struct {
	repo   *repository.Repository
	hasher *auth.Hasher
	tokens *auth.TokenManager
	mail   *email.Sender // nil when SMTP is not configured
	log    *logrus.Logger
}

// NewService initializes a new service
func NewService(repo *repository.Repository, hasher *auth.Hasher, tokens *auth.TokenManager, mail *email.Sender, log *logrus.Logger) *Service {
	return &Service{repo: repo, hasher: hasher, tokens: tokens, mail: mail, log: log}
}

// Register creates a new user with hashed password. The lookup ahead of the
// insert is a fast path only; the unique index on users.email is what
// actually guarantees one user per email.
func (s *Service) Register(ctx context.Context, name, userEmail, password string) (*models.User, error) {
	if _, err := s.repo.FindUserByEmail(ctx, userEmail); err == nil {
		return nil, repository.ErrDuplicateEmail
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	hashedPassword, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         name,
		Email:        userEmail,
		PasswordHash: hashedPassword,
		Role:         models.DefaultRole,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	if s.mail != nil {
		// Best effort; Sender logs its own failures.
		go func() { _ = s.mail.SendWelcome(user.Email, user.Name) }()
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, nil
}

// Login authenticates a user and returns a session token
func (s *Service) Login(ctx context.Context, userEmail, password string) (string, *models.User, error) {
	user, err := s.repo.FindUserByEmail(ctx, userEmail)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Email)
	return token, user, nil
}

// Profile returns the user the current request was authenticated as
func (s *Service) Profile(ctx context.Context) (*models.User, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("user ID not found in context")
	}
	return s.repo.FindUserByID(ctx, userID)
}

// ListProducts returns the catalog, seeding a sample product when the table
// is still empty.
func (s *Service) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		sample := &models.Product{Name: "Produk Contoh", Price: 10000, Stock: 50}
		if err := s.repo.CreateProduct(ctx, sample); err != nil {
			return nil, err
		}
		s.log.Info("Product table was empty, seeded a sample product")
		products = []models.Product{*sample}
	}
	return products, nil
}

// SalesSummary returns the weekly sales report. The numbers are the fixed
// example series from the project report; a real aggregation query would
// replace them once order data exists.
func (s *Service) SalesSummary() *models.SalesSummary {
	return &models.SalesSummary{
		Labels: []string{"Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu", "Minggu"},
		Datasets: []models.SalesDataset{
			{
				Label:           "Penjualan (Rp)",
				Data:            []float64{120000, 190000, 300000, 500000, 230000, 700000, 450000},
				BackgroundColor: "rgba(75, 192, 192, 0.6)",
				BorderColor:     "rgba(75, 192, 192, 1)",
				BorderWidth:     1,
			},
		},
	}
}
