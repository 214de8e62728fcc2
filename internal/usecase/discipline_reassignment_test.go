package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "ppmdesk.io/ppmdesk/internal/pkg/errors"
	"ppmdesk.io/ppmdesk/internal/provider"
	"ppmdesk.io/ppmdesk/internal/testutil"
)

func intPtr(v int) *int { return &v }

// AHU-01: PPM discipline 2, reactive 11, one plan link.
func ahuSession(t *testing.T) (*DisciplineSession, *provider.MockProvider) {
	t.Helper()
	mock := testutil.SeededProvider(t)
	current, err := mock.AssetDisciplines(context.Background(), 200)
	require.NoError(t, err)
	return NewDisciplineSession(mock, current), mock
}

func mutationCalls(mock *provider.MockProvider) []string {
	var out []string
	for _, c := range mock.Calls() {
		switch c {
		case "DeleteAssetServicePlanLinks", "UpdateAssetPPMDiscipline", "UpdateAssetReactiveDiscipline":
			out = append(out, c)
		}
	}
	return out
}

func linksOf(t *testing.T, mock *provider.MockProvider, asID int) int {
	t.Helper()
	links, err := mock.ServicePlansByAsset(context.Background(), asID)
	require.NoError(t, err)
	return len(links)
}

func TestDisciplineSession_InvalidTransitions(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		setup func(*DisciplineSession)
		event func(*DisciplineSession) error
	}{
		{name: "select while viewing", event: func(s *DisciplineSession) error { return s.Select(intPtr(1), nil) }},
		{name: "save while viewing", event: func(s *DisciplineSession) error { return s.Save(ctx) }},
		{name: "confirm while viewing", event: func(s *DisciplineSession) error { return s.Confirm(ctx) }},
		{name: "cancel while viewing", event: func(s *DisciplineSession) error { return s.Cancel() }},
		{
			name:  "edit while editing",
			setup: func(s *DisciplineSession) { _ = s.Edit() },
			event: func(s *DisciplineSession) error { return s.Edit() },
		},
		{
			name:  "confirm while editing",
			setup: func(s *DisciplineSession) { _ = s.Edit() },
			event: func(s *DisciplineSession) error { return s.Confirm(ctx) },
		},
		{
			name: "select while confirming",
			setup: func(s *DisciplineSession) {
				_ = s.Edit()
				_ = s.Select(intPtr(1), intPtr(11))
				_ = s.Save(ctx)
			},
			event: func(s *DisciplineSession) error { return s.Select(intPtr(3), nil) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := ahuSession(t)
			if tt.setup != nil {
				tt.setup(s)
			}
			before := s.State()
			err := tt.event(s)
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, before, s.State())
		})
	}
}

func TestDisciplineSession_ReactiveOnly(t *testing.T) {
	s, mock := ahuSession(t)
	ctx := context.Background()

	require.NoError(t, s.Edit())
	require.NoError(t, s.Select(intPtr(2), intPtr(12)))
	require.NoError(t, s.Save(ctx))

	assert.Equal(t, StateViewing, s.State())
	assert.Equal(t, []string{"UpdateAssetReactiveDiscipline"}, mutationCalls(mock))
	assert.Equal(t, 1, linksOf(t, mock, 200))

	_, reactive := s.Persisted()
	assert.Equal(t, 12, *reactive)
}

func TestDisciplineSession_NoChange(t *testing.T) {
	s, mock := ahuSession(t)

	require.NoError(t, s.Edit())
	require.NoError(t, s.Save(context.Background()))
	assert.Equal(t, StateViewing, s.State())
	assert.Empty(t, mutationCalls(mock))
}

func TestDisciplineSession_ConfirmPPMChange(t *testing.T) {
	s, mock := ahuSession(t)
	ctx := context.Background()

	require.NoError(t, s.Edit())
	require.NoError(t, s.Select(intPtr(1), intPtr(12)))
	require.NoError(t, s.Save(ctx))
	assert.Equal(t, StateConfirming, s.State())
	assert.Empty(t, mutationCalls(mock), "saving a PPM change must not call anything before confirmation")

	require.NoError(t, s.Confirm(ctx))
	assert.Equal(t, StateViewing, s.State())
	assert.Equal(t, 1, s.LinksRemoved())
	assert.Equal(t, []string{
		"DeleteAssetServicePlanLinks",
		"UpdateAssetPPMDiscipline",
		"UpdateAssetReactiveDiscipline",
	}, mutationCalls(mock))

	d, err := mock.AssetDisciplines(ctx, 200)
	require.NoError(t, err)
	assert.Equal(t, 1, *d.PPMDisciplineID)
	assert.Equal(t, 12, *d.ReactiveDisciplineID)
	assert.Zero(t, linksOf(t, mock, 200))
}

func TestDisciplineSession_ConfirmFailureKeepsDrafts(t *testing.T) {
	s, mock := ahuSession(t)
	ctx := context.Background()

	require.NoError(t, s.Edit())
	require.NoError(t, s.Select(intPtr(3), intPtr(11)))
	require.NoError(t, s.Save(ctx))

	mock.FailOn("UpdateAssetPPMDiscipline", apperrors.BadGateway(apperrors.CodeUpstreamUnavailable, "hasura unreachable"))
	err := s.Confirm(ctx)
	require.Error(t, err)

	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeReassignmentIncomplete, appErr.Code)
	assert.Equal(t, 502, appErr.HTTPStatus)
	assert.Equal(t, 1, appErr.Params["links_removed"])

	assert.Equal(t, StateConfirming, s.State())
	assert.Equal(t, err, s.LastError())
	ppm, _ := s.Drafts()
	assert.Equal(t, 3, *ppm)
	// The inconsistency window: links are gone, discipline unchanged.
	assert.Zero(t, linksOf(t, mock, 200))

	mock.FailOn("UpdateAssetPPMDiscipline", nil)
	require.NoError(t, s.Confirm(ctx))
	assert.Equal(t, StateViewing, s.State())
	assert.NoError(t, s.LastError())
}

func TestDisciplineSession_CancelReverts(t *testing.T) {
	s, mock := ahuSession(t)
	ctx := context.Background()

	require.NoError(t, s.Edit())
	require.NoError(t, s.Select(intPtr(1), intPtr(12)))
	require.NoError(t, s.Save(ctx))
	require.NoError(t, s.Cancel())

	assert.Equal(t, StateViewing, s.State())
	ppm, reactive := s.Drafts()
	assert.Equal(t, 2, *ppm)
	assert.Equal(t, 11, *reactive)
	assert.Empty(t, mutationCalls(mock))
}

func TestSameID(t *testing.T) {
	assert.True(t, sameID(nil, nil))
	assert.True(t, sameID(intPtr(1), intPtr(1)))
	assert.False(t, sameID(intPtr(1), nil))
	assert.False(t, sameID(nil, intPtr(1)))
	assert.False(t, sameID(intPtr(1), intPtr(2)))
}

func TestReassignDisciplineUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("ppm change requires confirmation", func(t *testing.T) {
		mock := testutil.SeededProvider(t)
		uc := NewReassignDisciplineUseCase(mock)

		_, err := uc.Execute(ctx, ReassignDisciplineInput{AssetID: 200, PPMDisciplineID: SomeID(intPtr(1))})
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeConfirmationRequired, appErr.Code)
		assert.Equal(t, 409, appErr.HTTPStatus)
		assert.Equal(t, 1, appErr.Params["links_to_drop"])
		assert.Empty(t, mutationCalls(mock))
	})

	t.Run("confirmed ppm change", func(t *testing.T) {
		mock := testutil.SeededProvider(t)
		uc := NewReassignDisciplineUseCase(mock)

		out, err := uc.Execute(ctx, ReassignDisciplineInput{AssetID: 200, PPMDisciplineID: SomeID(intPtr(1)), Confirm: true, RequestedBy: "alice"})
		require.NoError(t, err)
		assert.Equal(t, StateViewing, out.State)
		assert.Equal(t, 1, *out.PPMDisciplineID)
		assert.Equal(t, 11, *out.ReactiveDisciplineID)
		assert.Equal(t, 1, out.LinksRemoved)
	})

	t.Run("reactive only skips confirmation", func(t *testing.T) {
		mock := testutil.SeededProvider(t)
		uc := NewReassignDisciplineUseCase(mock)

		out, err := uc.Execute(ctx, ReassignDisciplineInput{AssetID: 201, ReactiveDisciplineID: SomeID(intPtr(11))})
		require.NoError(t, err)
		assert.Equal(t, 11, *out.ReactiveDisciplineID)
		assert.Zero(t, out.LinksRemoved)
		assert.Equal(t, []string{"UpdateAssetReactiveDiscipline"}, mutationCalls(mock))
	})

	t.Run("explicit null clears the ppm discipline", func(t *testing.T) {
		mock := testutil.SeededProvider(t)
		uc := NewReassignDisciplineUseCase(mock)

		var input ReassignDisciplineInput
		require.NoError(t, json.Unmarshal([]byte(`{"fk_disc_id": null, "confirm": true}`), &input))
		input.AssetID = 200

		out, err := uc.Execute(ctx, input)
		require.NoError(t, err)
		assert.Nil(t, out.PPMDisciplineID)
		assert.Equal(t, 11, *out.ReactiveDisciplineID)
		assert.Equal(t, 1, out.LinksRemoved)

		current, err := uc.Current(ctx, 200)
		require.NoError(t, err)
		assert.Nil(t, current.PPMDisciplineID)
	})

	t.Run("absent field keeps the ppm discipline", func(t *testing.T) {
		mock := testutil.SeededProvider(t)
		uc := NewReassignDisciplineUseCase(mock)

		var input ReassignDisciplineInput
		require.NoError(t, json.Unmarshal([]byte(`{"confirm": true}`), &input))
		input.AssetID = 200

		out, err := uc.Execute(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, 2, *out.PPMDisciplineID)
		assert.Empty(t, mutationCalls(mock))
	})

	t.Run("unknown asset", func(t *testing.T) {
		uc := NewReassignDisciplineUseCase(testutil.SeededProvider(t))
		_, err := uc.Execute(ctx, ReassignDisciplineInput{AssetID: 999, PPMDisciplineID: SomeID(intPtr(1))})
		assert.Equal(t, apperrors.CodeAssetNotFound, apperrors.CodeOf(err))
	})
}

func TestReassignDisciplineUseCase_Current(t *testing.T) {
	uc := NewReassignDisciplineUseCase(testutil.SeededProvider(t))

	out, err := uc.Current(context.Background(), 204)
	require.NoError(t, err)
	assert.Equal(t, StateViewing, out.State)
	assert.Equal(t, 3, *out.PPMDisciplineID)
	assert.Equal(t, 12, *out.ReactiveDisciplineID)

}
