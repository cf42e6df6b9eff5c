package usecase

import (
	"github.com/nghia89/landingpage-wedding-sub000/internal/booking/repository"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/dateparse"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/log"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/mailer"
)

// implUseCase is the private implementation of booking.UseCase.
type implUseCase struct {
	repo       repository.Repository
	l          log.Logger
	mail       mailer.Mailer
	dates      *dateparse.Parser
	notifyAddr string
}

// New creates a new booking UseCase implementation. notifyAddr is the studio
// inbox that receives a heads-up for every new consultation request.
func New(repo repository.Repository, l log.Logger, mail mailer.Mailer, dates *dateparse.Parser, notifyAddr string) *implUseCase {
	return &implUseCase{
		repo:       repo,
		l:          l,
		mail:       mail,
		dates:      dates,
		notifyAddr: notifyAddr,
	}
}
