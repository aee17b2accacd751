package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"vidyalaya_backend/internals/features/users/user/dto"
	"vidyalaya_backend/internals/features/users/user/model"
)

type UserStore interface {
	Insert(ctx context.Context, m *model.UserModel) error
	FindByID(ctx context.Context, schoolID, id uuid.UUID) (*model.UserModel, error)
	List(ctx context.Context, schoolID uuid.UUID) ([]model.UserModel, error)
	Save(ctx context.Context, m *model.UserModel) error
	Delete(ctx context.Context, schoolID, id uuid.UUID) error
}

type UserService struct {
	store    UserStore
	validate *validator.Validate
}

func NewUserService(store UserStore) *UserService {
	return &UserService{store: store, validate: validator.New()}
}

func (s *UserService) Create(ctx context.Context, schoolID uuid.UUID, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	m := req.ToModel(schoolID)
	m.UserPassword = string(hash)
	if err := s.store.Insert(ctx, m); err != nil {
		return nil, err
	}
	return dto.NewUserResponse(m), nil
}

// List returns accounts ordered by name ascending.
func (s *UserService) List(ctx context.Context, schoolID uuid.UUID) ([]*dto.UserResponse, error) {
	ms, err := s.store.List(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponses(ms), nil
}

func (s *UserService) GetByID(ctx context.Context, schoolID, id uuid.UUID) (*dto.UserResponse, error) {
	m, err := s.store.FindByID(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponse(m), nil
}

func (s *UserService) Update(ctx context.Context, schoolID, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	m, err := s.store.FindByID(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}
	req.ApplyToModel(m)
	if req.UserPassword != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.UserPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		m.UserPassword = string(hash)
	}
	if err := s.store.Save(ctx, m); err != nil {
		return nil, err
	}
	return dto.NewUserResponse(m), nil
}

func (s *UserService) Delete(ctx context.Context, schoolID, id uuid.UUID) error {
	return s.store.Delete(ctx, schoolID, id)
}
