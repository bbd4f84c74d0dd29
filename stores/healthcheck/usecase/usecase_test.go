package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/escrow/base/ctx"
	"github.com/x-xyz/escrow/domain/healthcheck/mocks"
)

func TestCheck(t *testing.T) {
	errDown := errors.New("down")

	repo := mocks.NewHealthCheckRepo(t)
	repo.On("PingDB", mock.Anything).Return(nil).Once()
	repo.On("PingCache", mock.Anything).Return(nil).Once()
	require.NoError(t, New(repo).Check(ctx.Background()))

	repo = mocks.NewHealthCheckRepo(t)
	repo.On("PingDB", mock.Anything).Return(errDown).Once()
	require.ErrorIs(t, New(repo).Check(ctx.Background()), errDown)

	repo = mocks.NewHealthCheckRepo(t)
	repo.On("PingDB", mock.Anything).Return(nil).Once()
	repo.On("PingCache", mock.Anything).Return(errDown).Once()
	require.ErrorIs(t, New(repo).Check(ctx.Background()), errDown)
}
