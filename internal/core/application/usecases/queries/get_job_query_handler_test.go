package queries_test

import (
	"testing"

	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/pod"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetJobQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	readers := newFakeReaders()
	j := assignedJob(t, kernel.NewUUID(), "a", "b")
	readers.jobs.On("Get", ctx, j.ID()).Return(j, nil).Once()

	query, err := queries.NewGetJobQuery(j.ID())
	require.NoError(t, err)

	got, err := queries.NewGetJobQueryHandler(readers).Handle(ctx, query)

	require.NoError(t, err)
	assert.Same(t, j, got)
	readers.assertExpectations(t)
}

func TestGetProofOfDeliveryQueryHandler_Handle(t *testing.T) {
	t.Run("returns the proof", func(t *testing.T) {
		ctx := t.Context()
		readers := newFakeReaders()
		j := assignedJob(t, kernel.NewUUID(), "a", "b")
		proof, err := pod.NewProofOfDelivery(kernel.NewUUID(), j.ID(), "Jo", nil, nil, now, nil)
		require.NoError(t, err)
		readers.jobs.On("Get", ctx, j.ID()).Return(j, nil).Once()
		readers.proofs.On("GetByJobID", ctx, j.ID()).Return(proof, nil).Once()

		query, err := queries.NewGetProofOfDeliveryQuery(j.ID())
		require.NoError(t, err)

		got, err := queries.NewGetProofOfDeliveryQueryHandler(readers).Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, "Jo", got.Recipient())
		readers.assertExpectations(t)
	})

	t.Run("unknown job is reported before the proof lookup", func(t *testing.T) {
		ctx := t.Context()
		readers := newFakeReaders()
		id := kernel.NewUUID()
		readers.jobs.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("job", id.String())).Once()

		query, err := queries.NewGetProofOfDeliveryQuery(id)
		require.NoError(t, err)

		_, err = queries.NewGetProofOfDeliveryQueryHandler(readers).Handle(ctx, query)

		var notFound *errs.ObjectNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "job", notFound.ParamName)
		readers.proofs.AssertNotCalled(t, "GetByJobID", mock.Anything, mock.Anything)
	})
}
