package storage

import (
	"time"

	"github.com/renato0307/punch/internal/domain"
)

func timerModelToDomain(m ActiveTimerModel) domain.Timer {
	return domain.Timer{
		Billable:     m.Billable,
		Degraded:     m.Degraded,
		Description:  m.Description,
		ProjectID:    m.ProjectID,
		RemoteID:     m.RemoteID,
		StartedAt:    m.StartedAt.UTC(),
		State:        domain.TimerState(m.State),
		TaskID:       m.TaskID,
		TrackingType: domain.TrackingType(m.TrackingType),
		UserID:       m.UserID,
	}
}

func domainToTimerModel(t domain.Timer) ActiveTimerModel {
	return ActiveTimerModel{
		Billable:     t.Billable,
		Degraded:     t.Degraded,
		Description:  t.Description,
		ProjectID:    t.ProjectID,
		RemoteID:     t.RemoteID,
		StartedAt:    t.StartedAt.UTC(),
		State:        string(t.State),
		TaskID:       t.TaskID,
		TrackingType: string(t.TrackingType),
		UserID:       t.UserID,
	}
}

func entryModelToDomain(m TimeEntryModel) domain.TimeEntry {
	return domain.TimeEntry{
		Billable:      m.Billable,
		Description:   m.Description,
		Duration:      m.Duration,
		EndTime:       fromNullableTime(m.EndTime),
		ID:            m.ID,
		IsManualEntry: m.IsManualEntry,
		OwnerID:       m.OwnerID,
		OwnerName:     m.OwnerName,
		ProjectID:     m.ProjectID,
		ProjectName:   m.ProjectName,
		StartTime:     fromNullableTime(m.StartTime),
		Status:        domain.EntryStatus(m.Status),
		TaskID:        m.TaskID,
		TaskName:      m.TaskName,
		TrackingType:  domain.TrackingType(m.TrackingType),
		Unsynced:      m.Unsynced,
	}
}

func domainToEntryModel(scope string, e domain.TimeEntry) TimeEntryModel {
	return TimeEntryModel{
		Billable:      e.Billable,
		Description:   e.Description,
		Duration:      e.Duration,
		EndTime:       toNullableTime(e.EndTime),
		ID:            e.ID,
		IsManualEntry: e.IsManualEntry,
		OwnerID:       e.OwnerID,
		OwnerName:     e.OwnerName,
		ProjectID:     e.ProjectID,
		ProjectName:   e.ProjectName,
		Scope:         scope,
		StartTime:     toNullableTime(e.StartTime),
		Status:        string(e.Status),
		TaskID:        e.TaskID,
		TaskName:      e.TaskName,
		TrackingType:  string(e.TrackingType),
		Unsynced:      e.Unsynced,
	}
}

func toNullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	u := t.UTC()
	return &u
}

func fromNullableTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.UTC()
}
