package commands_test

import (
	"testing"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/job"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApplyRouteCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	d := newDriver(t)
	first := jobIn(t, job.Assigned, kernel.NewUUID(), d.ID(), nil)
	second := jobIn(t, job.PickedUp, kernel.NewUUID(), d.ID(), nil)
	f := newUoWFixture(ctx)

	ids := []kernel.UUID{second.ID(), first.ID()}
	mock.InOrder(
		f.drivers.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		f.jobs.On("FindForDriverForUpdate", ctx, d.ID(), ids).Return([]*job.Job{first, second}, nil).Once(),
		f.jobs.On("Update", ctx, second).Return(nil).Once(),
		f.jobs.On("Update", ctx, first).Return(nil).Once(),
	)
	f.expectCommit(ctx)

	cmd, err := commands.NewApplyRouteCommand(d.ID(), []commands.RouteAssignment{
		{JobID: second.ID(), Sequence: 1},
		{JobID: first.ID(), Sequence: 3},
	})
	require.NoError(t, err)

	applied, err := commands.NewApplyRouteCommandHandler(f.factory(), fixedClock()).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, applied)
	assert.Equal(t, 1, *second.RouteSequence())
	assert.Equal(t, 3, *first.RouteSequence())
	f.assertExpectations(t)
}

func TestApplyRouteCommandHandler_Handle_DuplicateEntriesCountEach(t *testing.T) {
	ctx := t.Context()
	d := newDriver(t)
	j := jobIn(t, job.Assigned, kernel.NewUUID(), d.ID(), nil)
	f := newUoWFixture(ctx)
	f.drivers.On("Get", ctx, d.ID()).Return(d, nil).Once()
	f.jobs.On("FindForDriverForUpdate", ctx, d.ID(), []kernel.UUID{j.ID()}).Return([]*job.Job{j}, nil).Once()
	f.jobs.On("Update", ctx, j).Return(nil).Once()
	f.expectCommit(ctx)

	cmd, err := commands.NewApplyRouteCommand(d.ID(), []commands.RouteAssignment{
		{JobID: j.ID(), Sequence: 2},
		{JobID: j.ID(), Sequence: 5},
	})
	require.NoError(t, err)

	applied, err := commands.NewApplyRouteCommandHandler(f.factory(), fixedClock()).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, applied)
	assert.Equal(t, 5, *j.RouteSequence(), "last entry wins")
	f.assertExpectations(t)
}

func TestApplyRouteCommandHandler_Handle_ListsEveryMissingJobAndChangesNothing(t *testing.T) {
	ctx := t.Context()
	d := newDriver(t)
	owned := jobIn(t, job.Assigned, kernel.NewUUID(), d.ID(), nil)
	foreign := kernel.NewUUID()
	unknown := kernel.NewUUID()
	f := newUoWFixture(ctx)
	f.drivers.On("Get", ctx, d.ID()).Return(d, nil).Once()
	f.jobs.On("FindForDriverForUpdate", ctx, d.ID(), []kernel.UUID{foreign, owned.ID(), unknown}).
		Return([]*job.Job{owned}, nil).Once()

	cmd, err := commands.NewApplyRouteCommand(d.ID(), []commands.RouteAssignment{
		{JobID: foreign, Sequence: 1},
		{JobID: owned.ID(), Sequence: 2},
		{JobID: unknown, Sequence: 3},
	})
	require.NoError(t, err)

	_, err = commands.NewApplyRouteCommandHandler(f.factory(), fixedClock()).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	var notFound *errs.ObjectsNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, []string{foreign.String(), unknown.String()}, notFound.IDs)
	assert.Nil(t, owned.RouteSequence())
	f.jobs.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestApplyRouteCommandHandler_Handle_UnknownDriver(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	f := newUoWFixture(ctx)
	f.drivers.On("Get", ctx, driverID).Return(nil, errs.NewObjectNotFoundError("driver", driverID.String())).Once()

	cmd, err := commands.NewApplyRouteCommand(driverID, []commands.RouteAssignment{{JobID: kernel.NewUUID(), Sequence: 1}})
	require.NoError(t, err)

	_, err = commands.NewApplyRouteCommandHandler(f.factory(), fixedClock()).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.jobs.AssertNotCalled(t, "FindForDriverForUpdate", mock.Anything, mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestNewApplyRouteCommand_Validation(t *testing.T) {
	driverID := kernel.NewUUID()

	_, err := commands.NewApplyRouteCommand(driverID, nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewApplyRouteCommand(driverID, []commands.RouteAssignment{{JobID: kernel.NewUUID(), Sequence: 0}})
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = commands.NewApplyRouteCommand(kernel.UUID{}, []commands.RouteAssignment{{JobID: kernel.NewUUID(), Sequence: 1}})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
