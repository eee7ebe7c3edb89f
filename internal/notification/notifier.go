package notification

import (
	"context"
	"errors"
	"sync"
	"time"

	"dad-circles-backend/internal/logger"
)

const DefaultTimeout = 10 * time.Second

// GroupNotifier fans an introduction out to every recipient concurrently,
// each delivery bounded by its own timeout.
type GroupNotifier struct {
	sender   Sender
	siteName string
	timeout  time.Duration
}

// NewGroupNotifier creates a notifier sending through sender
func NewGroupNotifier(sender Sender, siteName string, timeout time.Duration) *GroupNotifier {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if siteName == "" {
		siteName = "Dad Circles"
	}
	return &GroupNotifier{sender: sender, siteName: siteName, timeout: timeout}
}

// SendIntroduction delivers the introduction and reports per-recipient outcomes.
// Individual delivery failures are reported, not returned as an error.
func (n *GroupNotifier) SendIntroduction(ctx context.Context, intro Introduction) (*DeliveryReport, error) {
	if n.sender == nil {
		return nil, errors.New("notification sender is not configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"group_id":   intro.GroupID,
		"recipients": len(intro.Recipients),
	})

	report := &DeliveryReport{}
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, recipient := range intro.Recipients {
		wg.Add(1)
		go func(r Recipient) {
			defer wg.Done()
			err := n.deliver(ctx, intro, r)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.WithField("member_id", r.MemberID).WithError(err).Warn("introduction not delivered")
				report.Failed = append(report.Failed, DeliveryFailure{MemberID: r.MemberID, Email: r.Email, Error: err.Error()})
				return
			}
			report.Delivered = append(report.Delivered, r.MemberID)
		}(recipient)
	}
	wg.Wait()

	log.WithFields(map[string]interface{}{
		"delivered": len(report.Delivered),
		"failed":    len(report.Failed),
	}).Info("introduction fan-out finished")
	return report, nil
}

func (n *GroupNotifier) deliver(ctx context.Context, intro Introduction, r Recipient) error {
	if r.Email == "" {
		return errors.New("recipient has no email address")
	}
	email, err := BuildIntroductionEmail(introductionData(n.siteName, intro, r))
	if err != nil {
		return err
	}

	sendCtx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- n.sender.Send(sendCtx, email) }()

	select {
	case err := <-done:
		return err
	case <-sendCtx.Done():
		return sendCtx.Err()
	}
}
