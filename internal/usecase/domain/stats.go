package domain

import (
	"context"

	"tasksphere/internal/analytics"
	"tasksphere/internal/entities"
)

// Summary returns the headline metrics of a session.
func (u *Usecase) Summary(ctx context.Context, sessionID string) (entities.SummaryMetrics, error) {
	snap, err := u.snapshot(ctx, sessionID)
	if err != nil {
		return entities.SummaryMetrics{}, err
	}
	return analytics.Summarize(snap), nil
}

// Dashboard returns the landing view aggregates.
func (u *Usecase) Dashboard(ctx context.Context, sessionID string) (entities.Dashboard, error) {
	snap, err := u.snapshot(ctx, sessionID)
	if err != nil {
		return entities.Dashboard{}, err
	}
	return analytics.BuildDashboard(snap, recentProjects), nil
}

// Analytics returns the chart data of the analytics view.
func (u *Usecase) Analytics(ctx context.Context, sessionID string) (entities.Analytics, error) {
	snap, err := u.snapshot(ctx, sessionID)
	if err != nil {
		return entities.Analytics{}, err
	}
	return analytics.BuildAnalytics(snap), nil
}

func (u *Usecase) snapshot(ctx context.Context, sessionID string) (entities.Snapshot, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	store, err := u.store(ctx, sessionID)
	if err != nil {
		return entities.Snapshot{}, err
	}
	return store.Snapshot(ctx)
}
