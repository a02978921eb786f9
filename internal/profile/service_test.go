package profile_test

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
	"vigia/internal/profile"
	"vigia/internal/profile/mocks"
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

func newService(t *testing.T) (*profile.Service, *mocks.MockSkillStore, *mocks.MockGeoStore, *auditRecorder) {
	t.Helper()
	ctrl := gomock.NewController(t)
	skills := mocks.NewMockSkillStore(ctrl)
	geo := mocks.NewMockGeoStore(ctrl)
	recorder := &auditRecorder{}
	return profile.NewService(skills, geo, recorder, discardLogger()), skills, geo, recorder
}

func TestUpsertSkillStoresAndAudits(t *testing.T) {
	svc, skills, _, recorder := newService(t)

	coordinatorID := id.NewCoordinatorID()
	skill := profile.Skill{Name: "primeros auxilios", Rating: 4}
	skills.EXPECT().UpsertSkill(gomock.Any(), coordinatorID, skill).Return(nil)

	require.NoError(t, svc.UpsertSkill(context.Background(), coordinatorID, skill))

	require.Len(t, recorder.events, 1)
	assert.Equal(t, audit.ActionUpdateSkill, recorder.events[0].Action)
	assert.Equal(t, "primeros auxilios", recorder.events[0].Details["skill_name"])
}

func TestUpsertSkillValidation(t *testing.T) {
	tests := []struct {
		name  string
		skill profile.Skill
	}{
		{"empty name", profile.Skill{Name: "", Rating: 3}},
		{"rating too low", profile.Skill{Name: "logistica", Rating: 0}},
		{"rating too high", profile.Skill{Name: "logistica", Rating: 6}},
		{"negative rating", profile.Skill{Name: "logistica", Rating: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, recorder := newService(t)

			err := svc.UpsertSkill(context.Background(), id.NewCoordinatorID(), tt.skill)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
			assert.Empty(t, recorder.events)
		})
	}
}

func TestReplaceZonesDeduplicates(t *testing.T) {
	svc, _, geo, recorder := newService(t)

	coordinatorID := id.NewCoordinatorID()
	geo.EXPECT().
		ReplaceZones(gomock.Any(), coordinatorID, []string{"norte", "sur"}).
		Return(nil)

	zones, err := svc.ReplaceZones(context.Background(), coordinatorID,
		[]string{"norte", " sur ", "norte", "", "sur"})
	require.NoError(t, err)
	assert.Equal(t, []string{"norte", "sur"}, zones)

	require.Len(t, recorder.events, 1)
	assert.Equal(t, audit.ActionUpdateGeo, recorder.events[0].Action)
	assert.Equal(t, []string{"norte", "sur"}, recorder.events[0].Details["zones"])
}

func TestReplaceZonesEmptySetClears(t *testing.T) {
	svc, _, geo, recorder := newService(t)

	coordinatorID := id.NewCoordinatorID()
	geo.EXPECT().ReplaceZones(gomock.Any(), coordinatorID, gomock.Len(0)).Return(nil)

	zones, err := svc.ReplaceZones(context.Background(), coordinatorID, []string{})
	require.NoError(t, err)
	assert.Empty(t, zones)
	require.Len(t, recorder.events, 1)
}

func TestReplaceZonesStoreFailure(t *testing.T) {
	svc, _, geo, recorder := newService(t)

	geo.EXPECT().ReplaceZones(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("deadlock"))

	_, err := svc.ReplaceZones(context.Background(), id.NewCoordinatorID(), []string{"norte"})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnavailable))
	assert.Empty(t, recorder.events)
}

func TestListSkills(t *testing.T) {
	svc, skills, _, _ := newService(t)

	coordinatorID := id.NewCoordinatorID()
	stored := []profile.Skill{{Name: "navegacion", Rating: 5}}
	skills.EXPECT().ListSkills(gomock.Any(), coordinatorID).Return(stored, nil)

	got, err := svc.ListSkills(context.Background(), coordinatorID)
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestProfileRequiresCoordinator(t *testing.T) {
	svc, _, _, _ := newService(t)
	ctx := context.Background()
	var nilID id.CoordinatorID

	_, err := svc.ListSkills(ctx, nilID)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))

	err = svc.UpsertSkill(ctx, nilID, profile.Skill{Name: "x", Rating: 3})
	assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))

	_, err = svc.ReplaceZones(ctx, nilID, nil)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
}
