package service

import (
	"context"
	"strings"
	"time"

	"github.com/munjed80/Fancy-foods-app/internal/dto"
	"github.com/munjed80/Fancy-foods-app/internal/model"
	"github.com/munjed80/Fancy-foods-app/internal/repository"
)

type ClientService interface {
	Create(ctx context.Context, input dto.ClientInput) (*dto.ClientResponse, error)
	Update(ctx context.Context, id uint, input dto.ClientInput) (*dto.ClientResponse, error)
	Get(ctx context.Context, id uint) (*dto.ClientResponse, error)
	List(ctx context.Context, query string) ([]dto.ClientResponse, error)
	Delete(ctx context.Context, id uint) error
}

type clientService struct {
	repo repository.ClientRepository
}

func NewClientService(repo repository.ClientRepository) ClientService {
	return &clientService{repo: repo}
}

func applyClientInput(c *model.Client, input dto.ClientInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return newValidationError("name", "client name is required")
	}
	c.Name = name
	c.Phone = input.Phone
	c.Whatsapp = input.Whatsapp
	c.Email = input.Email
	c.City = input.City
	c.Notes = input.Notes
	return nil
}

func (s *clientService) Create(ctx context.Context, input dto.ClientInput) (*dto.ClientResponse, error) {
	var c model.Client
	if err := applyClientInput(&c, input); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, err
	}
	return clientToResponse(&c), nil
}

func (s *clientService) Update(ctx context.Context, id uint, input dto.ClientInput) (*dto.ClientResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	if err := applyClientInput(c, input); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return clientToResponse(c), nil
}

func (s *clientService) Get(ctx context.Context, id uint) (*dto.ClientResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return clientToResponse(c), nil
}

func (s *clientService) List(ctx context.Context, query string) ([]dto.ClientResponse, error) {
	clients, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		result = append(result, *clientToResponse(&clients[i]))
	}
	return result, nil
}

func (s *clientService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func clientToResponse(c *model.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Whatsapp:  c.Whatsapp,
		Email:     c.Email,
		City:      c.City,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
