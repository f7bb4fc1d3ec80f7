package directory

import (
	"context"
	"fmt"

	"github.com/helloakshay27/hi-society-backend-go/internal/domain/checklist"
	"github.com/helloakshay27/hi-society-backend-go/internal/domain/user"
)

// Service exposes the reference data the patrol draft flow reads: the
// assignable-user directory and the checklist templates.
type Service interface {
	ListUsers(ctx context.Context) (user.ListUsersResponse, error)
	ListChecklists(ctx context.Context, checkType string) ([]checklist.ChecklistResponse, error)
	GetChecklist(ctx context.Context, id int64) (checklist.ChecklistResponse, error)
}

type serviceImpl struct {
	userRepo      user.Repository
	checklistRepo checklist.Repository
}

func NewDirectoryService(userRepo user.Repository, checklistRepo checklist.Repository) Service {
	return &serviceImpl{
		userRepo:      userRepo,
		checklistRepo: checklistRepo,
	}
}

// ListUsers implements Service.
func (s *serviceImpl) ListUsers(ctx context.Context) (user.ListUsersResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return user.ListUsersResponse{}, fmt.Errorf("failed to list users: %w", err)
	}

	resp := user.ListUsersResponse{Users: []user.UserResponse{}}
	for _, u := range users {
		resp.Users = append(resp.Users, user.UserResponse{
			ID:       u.ID,
			FullName: u.FullName,
			Email:    u.Email,
		})
	}
	return resp, nil
}

// ListChecklists implements Service.
func (s *serviceImpl) ListChecklists(ctx context.Context, checkType string) ([]checklist.ChecklistResponse, error) {
	if checkType == "" {
		checkType = checklist.CheckTypePatrolling
	}
	checklists, err := s.checklistRepo.ListByCheckType(ctx, checkType)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklists: %w", err)
	}

	resp := []checklist.ChecklistResponse{}
	for _, c := range checklists {
		resp = append(resp, checklist.ToChecklistResponse(c))
	}
	return resp, nil
}

// GetChecklist implements Service.
func (s *serviceImpl) GetChecklist(ctx context.Context, id int64) (checklist.ChecklistResponse, error) {
	c, err := s.checklistRepo.GetByID(ctx, id)
	if err != nil {
		return checklist.ChecklistResponse{}, err
	}
	return checklist.ToChecklistResponse(c), nil
}
