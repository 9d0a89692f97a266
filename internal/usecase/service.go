package usecase

import (
	"trek-booking/internal/data/repository"
	"trek-booking/pkg/mailer"
	"trek-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Trek    TrekService
	Guide   GuideService
	Blog    BlogService
	Booking BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, mail mailer.Mailer, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, mail, log),
		User:    NewUserService(repo.User, log),
		Trek:    NewTrekService(repo.Trek, log),
		Guide:   NewGuideService(repo.Guide, log),
		Blog:    NewBlogService(repo.Blog, log),
		Booking: NewBookingService(repo, log),
	}
}
