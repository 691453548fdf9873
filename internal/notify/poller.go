package notify

import (
	"context"
	"time"

	"taskdeck/internal/model"
)

// Run performs one immediate check, then one per interval, until ctx
// is cancelled. The caller binds ctx to the owning view's lifetime so
// no recurring work outlives it.
func (p *Poller) Run(ctx context.Context) {
	p.check(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.check(ctx)
		}
	}
}

// check runs one due-task sweep. While the panel is open it also
// refreshes the cached batch; while closed the server-side detection
// is enough. Every failure here is logged and swallowed.
func (p *Poller) check(ctx context.Context) {
	if p.gate != nil && !p.gate() {
		return
	}

	p.mu.Lock()
	if p.checking {
		p.mu.Unlock()
		return
	}
	p.checking = true
	open := p.panelOpen
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.checking = false
		p.mu.Unlock()
	}()

	if p.limiter.Allow() {
		created, err := p.repo.CheckDueTasks(ctx)
		if err != nil {
			p.l.Warnf(ctx, "notify: due-task check failed: %v", err)
		} else if created > 0 {
			p.l.Infof(ctx, "notify: backend created %d reminders", created)
		}
	}

	if open {
		if _, err := p.Fetch(ctx); err != nil {
			p.l.Warnf(ctx, "notify: refresh failed: %v", err)
		}
	}
}

// SetPanelOpen records whether the notification panel is visible and
// refreshes the cache when it opens.
func (p *Poller) SetPanelOpen(ctx context.Context, open bool) {
	p.mu.Lock()
	p.panelOpen = open
	p.mu.Unlock()

	if open {
		if _, err := p.Fetch(ctx); err != nil {
			p.l.Warnf(ctx, "notify: fetch on panel open failed: %v", err)
		}
	}
}

// Fetch reloads the notification cache from the backend.
func (p *Poller) Fetch(ctx context.Context) ([]model.Notification, error) {
	batch, err := p.repo.ListNotifications(ctx)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.notifications = batch
	p.mu.Unlock()

	p.notifyChanged()
	return p.Notifications(), nil
}

// MarkRead marks one notification as read, backend first.
func (p *Poller) MarkRead(ctx context.Context, id string) error {
	if err := p.repo.MarkRead(ctx, id); err != nil {
		p.l.Warnf(ctx, "notify: mark read %s failed: %v", id, err)
		return err
	}

	p.mu.Lock()
	for i := range p.notifications {
		if p.notifications[i].ID == id {
			p.notifications[i].Read = true
			break
		}
	}
	p.mu.Unlock()

	p.notifyChanged()
	return nil
}

// MarkAllRead marks every notification as read. Idempotent: a second
// call changes nothing visible.
func (p *Poller) MarkAllRead(ctx context.Context) error {
	if err := p.repo.MarkAllRead(ctx); err != nil {
		p.l.Warnf(ctx, "notify: mark all read failed: %v", err)
		return err
	}

	p.mu.Lock()
	changed := false
	for i := range p.notifications {
		if !p.notifications[i].Read {
			p.notifications[i].Read = true
			changed = true
		}
	}
	p.mu.Unlock()

	if changed {
		p.notifyChanged()
	}
	return nil
}

// Delete removes one notification, backend first.
func (p *Poller) Delete(ctx context.Context, id string) error {
	if err := p.repo.Delete(ctx, id); err != nil {
		p.l.Warnf(ctx, "notify: delete %s failed: %v", id, err)
		return err
	}

	p.mu.Lock()
	for i := range p.notifications {
		if p.notifications[i].ID == id {
			p.notifications = append(p.notifications[:i], p.notifications[i+1:]...)
			break
		}
	}
	p.mu.Unlock()

	p.notifyChanged()
	return nil
}

// Notifications returns a snapshot of the cached batch.
func (p *Poller) Notifications() []model.Notification {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]model.Notification, len(p.notifications))
	copy(out, p.notifications)
	return out
}

// Unread derives the unread count from the cached batch.
func (p *Poller) Unread() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, notification := range p.notifications {
		if !notification.Read {
			n++
		}
	}
	return n
}
