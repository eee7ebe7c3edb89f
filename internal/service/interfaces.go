package service

import (
	"context"

	"dad-circles-backend/internal/notification"
	"dad-circles-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// MemberServiceInterface defines the interface for member service
type MemberServiceInterface interface {
	CreateMember(req *CreateMemberRequest) (*MemberResponse, error)
	GetMemberByID(id uuid.UUID) (*MemberResponse, error)
	ListUnmatched(filter *repository.LocationFilter) ([]MemberResponse, error)
}

// GroupServiceInterface defines the interface for group service
type GroupServiceInterface interface {
	GetGroupByID(id uuid.UUID) (*GroupResponse, error)
	ListGroups(status string, page, pageSize int) (*GroupListResponse, error)
	Approve(ctx context.Context, id uuid.UUID) (*ApproveResult, error)
	Delete(ctx context.Context, id uuid.UUID) (*DeleteResult, error)
}

// MatchingServiceInterface defines the interface for matching passes
type MatchingServiceInterface interface {
	RunPass(ctx context.Context, req *RunPassRequest) (*PassSummary, error)
}

// IntroductionNotifier sends the group introduction to every member
type IntroductionNotifier interface {
	SendIntroduction(ctx context.Context, intro notification.Introduction) (*notification.DeliveryReport, error)
}
