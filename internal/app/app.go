package app

import (
	"context"
	"fmt"

	"dad-circles-backend/internal/config"
	"dad-circles-backend/internal/logger"
	"dad-circles-backend/internal/notification"
	"dad-circles-backend/internal/repository"
	"dad-circles-backend/internal/runlock"
	"dad-circles-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// App holds the wired services shared by the HTTP server and the matcher CLI
type App struct {
	Members  *service.MemberService
	Groups   *service.GroupService
	Matching *service.MatchingService

	// Redis is nil when REDIS_URL is unset
	Redis *redis.Client
}

// New wires repositories, the run lock, the mail sender and the services
func New(ctx context.Context, cfg *config.Config, db *gorm.DB) (*App, error) {
	log := logger.New()

	settings, err := cfg.MatchingSettings()
	if err != nil {
		return nil, err
	}

	memberRepo := repository.NewMemberRepository(db)
	groupRepo := repository.NewGroupRepository(db)

	a := &App{}
	var locker runlock.Locker
	if cfg.RedisURL != "" {
		client, err := runlock.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect run lock redis: %w", err)
		}
		a.Redis = client
		locker = runlock.NewRedisLocker(client, runlock.DefaultTTL)
		log.Info("matching run lock: redis")
	} else {
		locker = runlock.NewLocalLocker()
		log.Info("matching run lock: in-process")
	}

	sender, err := newSender(cfg)
	if err != nil {
		a.Close()
		return nil, err
	}
	notifier := notification.NewGroupNotifier(sender, cfg.SiteName, cfg.NotifyTimeout())

	a.Members = service.NewMemberService(memberRepo, validator.New())
	a.Groups = service.NewGroupService(groupRepo, memberRepo, notifier)
	a.Matching = service.NewMatchingService(memberRepo, groupRepo, locker, settings, cfg.MatchParallelism)
	return a, nil
}

// newSender picks SMTP when configured and otherwise logs outgoing mail
func newSender(cfg *config.Config) (notification.Sender, error) {
	if cfg.SMTPHost == "" {
		if cfg.IsProduction() {
			logger.New().Warn("SMTP_HOST not set; introductions will only be logged")
		}
		return notification.NewLogSender(), nil
	}
	return notification.NewSMTPSender(notification.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	})
}

// Close releases the redis connection, if any
func (a *App) Close() {
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
}
