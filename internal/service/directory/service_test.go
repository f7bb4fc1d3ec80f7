package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helloakshay27/hi-society-backend-go/internal/domain/checklist"
	"github.com/helloakshay27/hi-society-backend-go/internal/domain/user"
)

type fakeUserRepo struct {
	users []user.User
	err   error
}

func (f *fakeUserRepo) List(_ context.Context) ([]user.User, error) {
	return f.users, f.err
}

func (f *fakeUserRepo) GetByIDs(_ context.Context, _ []int64) ([]user.User, error) {
	return f.users, f.err
}

type fakeChecklistRepo struct {
	byType map[string][]checklist.Checklist
	byID   map[int64]checklist.Checklist
}

func (f *fakeChecklistRepo) ListByCheckType(_ context.Context, checkType string) ([]checklist.Checklist, error) {
	return f.byType[checkType], nil
}

func (f *fakeChecklistRepo) GetByID(_ context.Context, id int64) (checklist.Checklist, error) {
	c, ok := f.byID[id]
	if !ok {
		return checklist.Checklist{}, checklist.ErrChecklistNotFound
	}
	return c, nil
}

func TestListUsers(t *testing.T) {
	svc := NewDirectoryService(&fakeUserRepo{users: []user.User{
		{ID: 101, FullName: "Amit Sharma", Email: "amit@example.com"},
	}}, &fakeChecklistRepo{})

	resp, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Users, 1)
	assert.Equal(t, "Amit Sharma", resp.Users[0].FullName)
}

func TestListUsersWrapsRepoError(t *testing.T) {
	svc := NewDirectoryService(&fakeUserRepo{err: errors.New("boom")}, &fakeChecklistRepo{})

	_, err := svc.ListUsers(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list users")
}

func TestListChecklistsDefaultsToPatrolling(t *testing.T) {
	repo := &fakeChecklistRepo{byType: map[string][]checklist.Checklist{
		checklist.CheckTypePatrolling: {{ID: 5, Name: "Gate Checks", CheckType: checklist.CheckTypePatrolling}},
	}}
	svc := NewDirectoryService(&fakeUserRepo{}, repo)

	resp, err := svc.ListChecklists(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Gate Checks", resp[0].Name)
}

func TestGetChecklistNotFound(t *testing.T) {
	svc := NewDirectoryService(&fakeUserRepo{}, &fakeChecklistRepo{byID: map[int64]checklist.Checklist{}})

	_, err := svc.GetChecklist(context.Background(), 99)
	assert.ErrorIs(t, err, checklist.ErrChecklistNotFound)
}
