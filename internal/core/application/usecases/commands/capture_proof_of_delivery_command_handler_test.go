package commands_test

import (
	"testing"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/job"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/pod"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCaptureProofOfDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	j := jobIn(t, job.Delivered, kernel.NewUUID(), kernel.NewUUID(), nil)
	loc, err := kernel.NewLocation(51.5, -0.12)
	require.NoError(t, err)
	f := newUoWFixture(ctx)

	mock.InOrder(
		f.jobs.On("GetForUpdate", ctx, j.ID()).Return(j, nil).Once(),
		f.proofs.On("ExistsForJob", ctx, j.ID()).Return(false, nil).Once(),
		f.proofs.On("Add", ctx, mock.AnythingOfType("*pod.ProofOfDelivery")).Return(nil).Once(),
	)
	f.expectCommit(ctx)

	cmd, err := commands.NewCaptureProofOfDeliveryCommand(j.ID(), " Mrs Hudson ", ptr("  "),
		[]string{"photos/door.jpg", ""}, &loc)
	require.NoError(t, err)

	proof, err := commands.NewCaptureProofOfDeliveryCommandHandler(f.factory(), fixedClock()).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, j.ID(), proof.JobID())
	assert.Equal(t, "Mrs Hudson", proof.Recipient())
	assert.Nil(t, proof.SignatureRef())
	assert.Equal(t, []string{"photos/door.jpg"}, proof.PhotoRefs())
	assert.Equal(t, now, proof.DeliveredAt())
	f.assertExpectations(t)
}

func TestCaptureProofOfDeliveryCommandHandler_Handle_SecondCaptureIsConflict(t *testing.T) {
	ctx := t.Context()
	j := jobIn(t, job.Delivered, kernel.NewUUID(), kernel.NewUUID(), nil)
	f := newUoWFixture(ctx)
	f.jobs.On("GetForUpdate", ctx, j.ID()).Return(j, nil).Once()
	f.proofs.On("ExistsForJob", ctx, j.ID()).Return(true, nil).Once()

	cmd, err := commands.NewCaptureProofOfDeliveryCommand(j.ID(), "Mrs Hudson", nil, nil, nil)
	require.NoError(t, err)

	_, err = commands.NewCaptureProofOfDeliveryCommandHandler(f.factory(), fixedClock()).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	f.proofs.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestCaptureProofOfDeliveryCommandHandler_Handle_MissingRecipient(t *testing.T) {
	ctx := t.Context()
	j := jobIn(t, job.InTransit, kernel.NewUUID(), kernel.NewUUID(), nil)
	f := newUoWFixture(ctx)
	f.jobs.On("GetForUpdate", ctx, j.ID()).Return(j, nil).Once()
	f.proofs.On("ExistsForJob", ctx, j.ID()).Return(false, nil).Once()

	cmd, err := commands.NewCaptureProofOfDeliveryCommand(j.ID(), "   ", nil, nil, nil)
	require.NoError(t, err)

	_, err = commands.NewCaptureProofOfDeliveryCommandHandler(f.factory(), fixedClock()).Handle(ctx, cmd)

	require.ErrorIs(t, err, pod.ErrRecipientIsRequired)
	f.assertExpectations(t)
}

func TestCaptureProofOfDeliveryCommandHandler_Handle_UnknownJob(t *testing.T) {
	ctx := t.Context()
	jobID := kernel.NewUUID()
	f := newUoWFixture(ctx)
	f.jobs.On("GetForUpdate", ctx, jobID).Return(nil, errs.NewObjectNotFoundError("job", jobID.String())).Once()

	cmd, err := commands.NewCaptureProofOfDeliveryCommand(jobID, "Mrs Hudson", nil, nil, nil)
	require.NoError(t, err)

	_, err = commands.NewCaptureProofOfDeliveryCommandHandler(f.factory(), fixedClock()).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.proofs.AssertNotCalled(t, "ExistsForJob", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}
