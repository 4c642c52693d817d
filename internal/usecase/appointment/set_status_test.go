package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groomshop/grooming-scheduler/internal/apperr"
)

func TestSetStatusCompleteByAnyCaller(t *testing.T) {
	f := newFixture()
	f.oracle.discount = dec("5.00")
	created := createFor(t, f, 7)

	// user 9 does not own the appointment but may complete it
	got, err := f.setStatus.Execute(context.Background(), SetStatusInput{
		ID: created.ID, UserID: 9, Status: "Completed",
	})
	require.NoError(t, err)
	assert.Equal(t, "Completed", got.Status)

	// price fields untouched
	assert.True(t, got.BasePrice.Equal(created.BasePrice))
	assert.True(t, got.DiscountAmount.Equal(created.DiscountAmount))
	assert.True(t, got.FinalPrice.Equal(created.FinalPrice))
}

func TestSetStatusCancelOnlyByOwner(t *testing.T) {
	f := newFixture()
	created := createFor(t, f, 7)

	_, err := f.setStatus.Execute(context.Background(), SetStatusInput{
		ID: created.ID, UserID: 9, Status: "Cancelled",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))

	got, err := f.setStatus.Execute(context.Background(), SetStatusInput{
		ID: created.ID, UserID: 7, Status: "Cancelled",
	})
	require.NoError(t, err)
	assert.Equal(t, "Cancelled", got.Status)
}

func TestSetStatusRejectsInvalidValue(t *testing.T) {
	f := newFixture()
	created := createFor(t, f, 7)

	for _, bad := range []string{"", "Done", "pending"} {
		_, err := f.setStatus.Execute(context.Background(), SetStatusInput{
			ID: created.ID, UserID: 7, Status: bad,
		})
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindInvalidArgument))
	}
}

func TestSetStatusTerminalStatesAreFinal(t *testing.T) {
	f := newFixture()
	created := createFor(t, f, 7)

	_, err := f.setStatus.Execute(context.Background(), SetStatusInput{
		ID: created.ID, UserID: 7, Status: "Cancelled",
	})
	require.NoError(t, err)

	_, err = f.setStatus.Execute(context.Background(), SetStatusInput{
		ID: created.ID, UserID: 7, Status: "Pending",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidState))
	assert.True(t, apperr.IsCode(err, "terminal_status"))
}

func TestSetStatusMissingAppointment(t *testing.T) {
	f := newFixture()

	_, err := f.setStatus.Execute(context.Background(), SetStatusInput{
		ID: 404, UserID: 7, Status: "Completed",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestSetStatusCompletedArchivesHistory(t *testing.T) {
	f := newFixture()
	f.oracle.discount = dec("5.00")
	created := createFor(t, f, 7)

	f.sink.events = nil
	_, err := f.setStatus.Execute(context.Background(), SetStatusInput{
		ID: created.ID, UserID: 9, Status: "Completed",
	})
	require.NoError(t, err)

	require.Len(t, f.sink.events, 1)
	ev := f.sink.events[0]
	assert.Equal(t, "appointment_status_changed", ev.Action)

	require.NotNil(t, ev.History)
	assert.Equal(t, created.ID, ev.History.AppointmentID)
	assert.Equal(t, uint(7), ev.History.UserID)
	assert.Equal(t, uint(1), ev.History.ServiceTypeID)
	assert.Equal(t, testNow, ev.History.CompletedAt)
	assert.True(t, ev.History.BasePrice.Equal(dec("50.00")))
	assert.True(t, ev.History.DiscountAmount.Equal(dec("5.00")))
	assert.True(t, ev.History.FinalPrice.Equal(dec("45.00")))
}

func TestSetStatusRecompleteArchivesOnce(t *testing.T) {
	f := newFixture()
	created := createFor(t, f, 7)

	f.sink.events = nil
	_, err := f.setStatus.Execute(context.Background(), SetStatusInput{
		ID: created.ID, UserID: 9, Status: "Completed",
	})
	require.NoError(t, err)

	// re-asserting Completed later must not add a second snapshot
	f.withClock(testNow.AddDate(0, 0, 3))
	_, err = f.setStatus.Execute(context.Background(), SetStatusInput{
		ID: created.ID, UserID: 9, Status: "Completed",
	})
	require.NoError(t, err)

	var archived int
	for _, ev := range f.sink.events {
		if ev.History != nil {
			archived++
			assert.Equal(t, testNow, ev.History.CompletedAt)
		}
	}
	assert.Equal(t, 1, archived, "one completion must archive exactly one history snapshot")
}

func TestSetStatusCancelDoesNotArchive(t *testing.T) {
	f := newFixture()
	created := createFor(t, f, 7)

	f.sink.events = nil
	_, err := f.setStatus.Execute(context.Background(), SetStatusInput{
		ID: created.ID, UserID: 7, Status: "Cancelled",
	})
	require.NoError(t, err)

	require.Len(t, f.sink.events, 1)
	assert.Nil(t, f.sink.events[0].History)
}
