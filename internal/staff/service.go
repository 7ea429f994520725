package staff

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"kopige-pos/internal/logger"
	"kopige-pos/internal/store"

	"go.uber.org/zap"
)

const Collection = "users"

type Service interface {
	List(ctx context.Context) ([]*User, error)
	Get(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, input NewUserInput) (*User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*User, error)
	Delete(ctx context.Context, id string) error

	// Login verifies credentials and returns a signed token plus the
	// authenticated user for display.
	Login(ctx context.Context, email, password string) (string, *User, error)
}

type service struct {
	store store.Store
}

func NewService(st store.Store) Service {
	return &service{store: st}
}

func (s *service) List(ctx context.Context) ([]*User, error) {
	docs, err := s.store.ListAll(ctx, Collection)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedFetchUsers, err)
	}

	users := make([]*User, 0, len(docs))
	for _, doc := range docs {
		var u User
		if err := doc.Decode(&u); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedFetchUsers, err)
		}
		u.ID = doc.ID
		users = append(users, &u)
	}

	return users, nil
}

func (s *service) Get(ctx context.Context, id string) (*User, error) {
	doc, err := s.store.Get(ctx, Collection, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedFetchUsers, err)
	}

	var u User
	if err := doc.Decode(&u); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedFetchUsers, err)
	}
	u.ID = doc.ID

	return &u, nil
}

func (s *service) Create(ctx context.Context, input NewUserInput) (*User, error) {
	if err := validateNewUser(input); err != nil {
		return nil, err
	}

	existing, err := s.findByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedCreateUser, err)
	}

	user := &User{
		Name:         input.Name,
		Email:        strings.ToLower(input.Email),
		Role:         input.Role,
		Status:       input.Status,
		PhoneNumber:  input.PhoneNumber,
		JoinDate:     time.Now().UTC(),
		ImageURL:     input.ImageURL,
		PasswordHash: hash,
	}

	id, err := s.store.Create(ctx, Collection, user)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedCreateUser, err)
	}
	user.ID = id

	logger.FromCtx(ctx).Info("staff user created",
		zap.String("user_id", id),
		zap.String("role", string(user.Role)),
	)

	return user, nil
}

func (s *service) Update(ctx context.Context, id string, input UpdateUserInput) (*User, error) {
	if input.Role != nil && !input.Role.Valid() {
		return nil, ErrInvalidRole
	}
	if input.Status != nil && !input.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	err := s.store.Update(ctx, Collection, id, input)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedUpdateUser, err)
	}

	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	err := s.store.Delete(ctx, Collection, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedDeleteUser, err)
	}
	return nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, *User, error) {
	user, err := s.findByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil || !CheckPasswordHash(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}
	if user.Status != StatusActive {
		return "", nil, ErrInactiveUser
	}

	token, err := GenerateJWT(user.ID, string(user.Role), user.Email)
	if err != nil {
		return "", nil, err
	}

	logger.FromCtx(ctx).Info("staff login",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)

	return token, user, nil
}

func (s *service) findByEmail(ctx context.Context, email string) (*User, error) {
	users, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	email = strings.ToLower(email)
	for _, u := range users {
		if strings.ToLower(u.Email) == email {
			return u, nil
		}
	}
	return nil, nil
}

func validateNewUser(input NewUserInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(input.Email) == "" {
		return ErrEmailRequired
	}
	if input.Password == "" {
		return ErrPasswordRequired
	}
	if !input.Role.Valid() {
		return ErrInvalidRole
	}
	if !input.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}
