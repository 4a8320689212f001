package services

import (
	"errors"
	"testing"

	"github.com/collabhub-dev/collabhub/internal/apperr"
	"github.com/collabhub-dev/collabhub/internal/models"
	"github.com/google/uuid"
)

func TestEventDeleteCascades(t *testing.T) {
	database := newTestDB(t)
	events := NewEventService(database)
	tasks := NewTaskService(database)

	event := seedEvent(t, database, "Doomed")
	column := seedColumn(t, database, event, "Todo")

	if _, err := tasks.Create(TaskInput{Title: "T1", EventID: event.ID, ColumnID: column.ID}); err != nil {
		t.Fatalf("Create task: %v", err)
	}

	other := seedEvent(t, database, "Survivor")
	otherColumn := seedColumn(t, database, other, "Todo")
	if _, err := tasks.Create(TaskInput{Title: "T2", EventID: other.ID, ColumnID: otherColumn.ID}); err != nil {
		t.Fatalf("Create task: %v", err)
	}

	if err := events.Delete(event.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if n := count(t, database, &models.Task{}, "event_id = ?", event.ID); n != 0 {
		t.Errorf("%d tasks survived event delete", n)
	}
	if n := count(t, database, &models.BoardColumn{}, "event_id = ?", event.ID); n != 0 {
		t.Errorf("%d columns survived event delete", n)
	}

	// The other event's rows are untouched.
	if n := count(t, database, &models.Task{}, "event_id = ?", other.ID); n != 1 {
		t.Errorf("unrelated tasks affected: %d", n)
	}
	if n := count(t, database, &models.BoardColumn{}, "event_id = ?", other.ID); n != 1 {
		t.Errorf("unrelated columns affected: %d", n)
	}
}

func TestEventDeleteMissing(t *testing.T) {
	database := newTestDB(t)
	events := NewEventService(database)

	err := events.Delete(uuid.New())

	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Status != 404 {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestEventUpdateReplaces(t *testing.T) {
	database := newTestDB(t)
	events := NewEventService(database)

	event, err := events.Create(EventInput{Title: "Launch", Description: "old", Order: 1})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := events.Update(event.ID, EventInput{Title: "Launch v2", Order: 3})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Title != "Launch v2" || updated.Description != "" || updated.OrderIndex != 3 {
		t.Errorf("update is full-replace; got %+v", updated)
	}
}
