package score_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"vigia/internal/audit"
	"vigia/internal/score"
	"vigia/internal/score/mocks"
	id "vigia/pkg/domain"
	dErrors "vigia/pkg/domain-errors"
)

type auditRecorder struct {
	events []audit.Event
}

func (r *auditRecorder) Emit(_ context.Context, event audit.Event) {
	r.events = append(r.events, event)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fullProfile(profile *mocks.MockProfileSource) {
	profile.EXPECT().GetStreakCount(gomock.Any(), gomock.Any()).Return(10, nil)
	profile.EXPECT().GetMotivationDeclared(gomock.Any(), gomock.Any()).Return(true, nil)
	profile.EXPECT().GetAverageSkillRating(gomock.Any(), gomock.Any()).Return(5.0, nil)
	profile.EXPECT().CountAvailabilityBlocks(gomock.Any(), gomock.Any()).Return(2, nil)
	profile.EXPECT().CountGeoZones(gomock.Any(), gomock.Any()).Return(1, nil)
}

func TestRecalculatePersistsAndAudits(t *testing.T) {
	ctrl := gomock.NewController(t)
	profile := mocks.NewMockProfileSource(ctrl)
	writer := mocks.NewMockScoreWriter(ctrl)
	recorder := &auditRecorder{}
	svc := score.NewService(profile, writer, recorder, discardLogger(), nil)

	coordinatorID := id.NewCoordinatorID()
	fullProfile(profile)
	writer.EXPECT().UpdateScore(gomock.Any(), coordinatorID, 100).Return(nil)

	result, err := svc.Recalculate(context.Background(), coordinatorID)
	require.NoError(t, err)
	assert.Equal(t, 100, result.Score)
	assert.True(t, result.ScorePersisted)

	require.Len(t, recorder.events, 1)
	event := recorder.events[0]
	assert.Equal(t, audit.ActionRecalcScore, event.Action)
	assert.Equal(t, coordinatorID, event.CoordinatorID)
	assert.Equal(t, 100, event.Details["score"])
	assert.Equal(t, true, event.Details["persisted"])
}

// A failed profile write degrades to score_persisted=false; the audit entry
// still records the attempted score.
func TestRecalculateWriteFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	profile := mocks.NewMockProfileSource(ctrl)
	writer := mocks.NewMockScoreWriter(ctrl)
	recorder := &auditRecorder{}
	svc := score.NewService(profile, writer, recorder, discardLogger(), nil)

	coordinatorID := id.NewCoordinatorID()
	fullProfile(profile)
	writer.EXPECT().UpdateScore(gomock.Any(), coordinatorID, 100).Return(errors.New("connection reset"))

	result, err := svc.Recalculate(context.Background(), coordinatorID)
	require.NoError(t, err)
	assert.Equal(t, 100, result.Score)
	assert.False(t, result.ScorePersisted)

	require.Len(t, recorder.events, 1)
	assert.Equal(t, 100, recorder.events[0].Details["score"])
	assert.Equal(t, false, recorder.events[0].Details["persisted"])
}

func TestRecalculateGatherFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	profile := mocks.NewMockProfileSource(ctrl)
	writer := mocks.NewMockScoreWriter(ctrl)
	recorder := &auditRecorder{}
	svc := score.NewService(profile, writer, recorder, discardLogger(), nil)

	upstream := errors.New("db down")
	profile.EXPECT().GetStreakCount(gomock.Any(), gomock.Any()).Return(0, upstream)
	profile.EXPECT().GetMotivationDeclared(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
	profile.EXPECT().GetAverageSkillRating(gomock.Any(), gomock.Any()).Return(0.0, nil).AnyTimes()
	profile.EXPECT().CountAvailabilityBlocks(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	profile.EXPECT().CountGeoZones(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()

	_, err := svc.Recalculate(context.Background(), id.NewCoordinatorID())
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnavailable))
	assert.Empty(t, recorder.events)
}

func TestRecalculateRequiresCoordinator(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := score.NewService(
		mocks.NewMockProfileSource(ctrl),
		mocks.NewMockScoreWriter(ctrl),
		&auditRecorder{},
		discardLogger(),
		nil,
	)

	_, err := svc.Recalculate(context.Background(), id.CoordinatorID{})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
}
