package usecase

import (
	"golang.org/x/xerrors"

	"github.com/x-xyz/escrow/base/ctx"
	hcdomain "github.com/x-xyz/escrow/domain/healthcheck"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) Check(context ctx.Ctx) error {
	if err := im.repo.PingDB(context); err != nil {
		return xerrors.Errorf("mongo: %w", err)
	}
	// the resolve guard degrades without redis, so it still fails the check
	if err := im.repo.PingCache(context); err != nil {
		return xerrors.Errorf("redis: %w", err)
	}
	return nil
}
