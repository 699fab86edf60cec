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

func TestRecordPaymentOutcomeCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		name      string
		prepare   func(t *testing.T, j *job.Job)
		succeeded bool
		want      job.PaymentStatus
		wantErr   error
	}{
		{
			name:      "pending intent succeeds",
			prepare:   func(t *testing.T, j *job.Job) { require.NoError(t, j.StartPayment("pi_1", now)) },
			succeeded: true,
			want:      job.PaymentPaid,
		},
		{
			name:      "pending intent fails",
			prepare:   func(t *testing.T, j *job.Job) { require.NoError(t, j.StartPayment("pi_1", now)) },
			succeeded: false,
			want:      job.PaymentFailed,
		},
		{
			name:      "failure after settlement is a conflict",
			prepare:   func(t *testing.T, j *job.Job) { require.NoError(t, j.MarkPaid("pi_1", now)) },
			succeeded: false,
			want:      job.PaymentPaid,
			wantErr:   errs.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			j := jobIn(t, job.InTransit, kernel.NewUUID(), kernel.NewUUID(), ptr(12.0))
			tt.prepare(t, j)
			f := newUoWFixture(ctx)
			f.jobs.On("GetForUpdate", ctx, j.ID()).Return(j, nil).Once()
			if tt.wantErr == nil {
				f.jobs.On("Update", ctx, j).Return(nil).Once()
				f.expectCommit(ctx)
			}

			cmd, err := commands.NewRecordPaymentOutcomeCommand(j.ID(), tt.succeeded, "")
			require.NoError(t, err)

			_, err = commands.NewRecordPaymentOutcomeCommandHandler(f.factory(), fixedClock()).Handle(ctx, cmd)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				f.jobs.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, j.PaymentStatus())
			assert.Equal(t, "pi_1", *j.PaymentReference())
			f.assertExpectations(t)
		})
	}
}
