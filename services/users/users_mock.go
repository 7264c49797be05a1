package users

import (
	"context"

	"github.com/stretchr/testify/mock"

	"closurerelay/models"
)

// MockUsersService is a mock implementation of the UsersService interface
type MockUsersService struct {
	mock.Mock
}

func (m *MockUsersService) ResolveSubmitter(ctx context.Context, userID string) models.SubmitterIdentity {
	args := m.Called(ctx, userID)
	return args.Get(0).(models.SubmitterIdentity)
}
