// Package usecase provides the multi-step mutation flows of PPM Desk.
//
// Each flow issues independent GraphQL mutations. Nothing is rolled back
// when a later step fails; the failing step is reported with enough context
// for the operator to retry.
package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"ppmdesk.io/ppmdesk/internal/domain"
	"ppmdesk.io/ppmdesk/internal/governance/audit"
	apperrors "ppmdesk.io/ppmdesk/internal/pkg/errors"
	"ppmdesk.io/ppmdesk/internal/pkg/logger"
	"ppmdesk.io/ppmdesk/internal/provider"
)

// ReassignmentState is the state of a discipline edit.
type ReassignmentState string

const (
	StateViewing    ReassignmentState = "viewing"
	StateEditing    ReassignmentState = "editing"
	StateConfirming ReassignmentState = "confirming-discipline-change"
)

// ErrInvalidTransition is returned for an event the current state does not accept.
var ErrInvalidTransition = apperrors.New(apperrors.CodeInvalidTransition, "event not allowed in the current state", http.StatusConflict)

// DisciplineSession is the edit/confirm flow for an asset's PPM and reactive
// disciplines. Changing the PPM discipline removes every service plan link
// of the asset, so it needs an explicit confirmation.
//
//	viewing --Edit--> editing --Save(ppm changed)--> confirming --Confirm--> viewing
//	                  editing --Save(otherwise)----> viewing
//	editing|confirming --Cancel--> viewing
type DisciplineSession struct {
	assets  provider.AssetProvider
	assetID int

	persistedPPM, persistedReactive *int
	draftPPM, draftReactive         *int

	state        ReassignmentState
	lastErr      error
	linksRemoved int
}

// NewDisciplineSession starts a session in viewing for the persisted
// assignment.
func NewDisciplineSession(assets provider.AssetProvider, current domain.AssetDisciplines) *DisciplineSession {
	return &DisciplineSession{
		assets:            assets,
		assetID:           current.AssetID,
		persistedPPM:      current.PPMDisciplineID,
		persistedReactive: current.ReactiveDisciplineID,
		draftPPM:          current.PPMDisciplineID,
		draftReactive:     current.ReactiveDisciplineID,
		state:             StateViewing,
	}
}

// State returns the session's current state.
func (s *DisciplineSession) State() ReassignmentState { return s.state }

// Drafts returns the disciplines currently selected in the form.
func (s *DisciplineSession) Drafts() (ppm, reactive *int) { return s.draftPPM, s.draftReactive }

// Persisted returns the last saved disciplines.
func (s *DisciplineSession) Persisted() (ppm, reactive *int) {
	return s.persistedPPM, s.persistedReactive
}

// LastError is the error of the last failed save or confirm.
func (s *DisciplineSession) LastError() error { return s.lastErr }

// LinksRemoved is the number of plan links deleted by the last Confirm.
func (s *DisciplineSession) LinksRemoved() int { return s.linksRemoved }

// Edit opens the form with the persisted disciplines as drafts.
func (s *DisciplineSession) Edit() error {
	if s.state != StateViewing {
		return ErrInvalidTransition
	}
	s.draftPPM, s.draftReactive = s.persistedPPM, s.persistedReactive
	s.lastErr = nil
	s.state = StateEditing
	return nil
}

// Select replaces both drafts. Nil clears a discipline.
func (s *DisciplineSession) Select(ppm, reactive *int) error {
	if s.state != StateEditing {
		return ErrInvalidTransition
	}
	s.draftPPM, s.draftReactive = ppm, reactive
	return nil
}

// Save moves to confirming when the PPM discipline changed. Otherwise it
// persists a reactive-only change, if any, and returns to viewing. A failed
// reactive update keeps the session in editing.
func (s *DisciplineSession) Save(ctx context.Context) error {
	if s.state != StateEditing {
		return ErrInvalidTransition
	}
	if !sameID(s.draftPPM, s.persistedPPM) {
		s.state = StateConfirming
		return nil
	}
	if !sameID(s.draftReactive, s.persistedReactive) {
		if err := s.assets.UpdateAssetReactiveDiscipline(ctx, s.assetID, s.draftReactive); err != nil {
			s.lastErr = err
			return fmt.Errorf("update reactive discipline: %w", err)
		}
		s.persistedReactive = s.draftReactive
	}
	s.lastErr = nil
	s.state = StateViewing
	return nil
}

// Confirm deletes the asset's plan links, then updates the PPM and reactive
// disciplines. On failure the session stays in confirming with its drafts.
func (s *DisciplineSession) Confirm(ctx context.Context) error {
	if s.state != StateConfirming {
		return ErrInvalidTransition
	}

	n, err := s.assets.DeleteAssetServicePlanLinks(ctx, s.assetID)
	if err != nil {
		s.lastErr = err
		return fmt.Errorf("delete asset plan links: %w", err)
	}
	s.linksRemoved = n

	if err := s.assets.UpdateAssetPPMDiscipline(ctx, s.assetID, s.draftPPM); err != nil {
		return s.incomplete(ctx, "update ppm discipline", err)
	}
	if err := s.assets.UpdateAssetReactiveDiscipline(ctx, s.assetID, s.draftReactive); err != nil {
		return s.incomplete(ctx, "update reactive discipline", err)
	}

	s.persistedPPM, s.persistedReactive = s.draftPPM, s.draftReactive
	s.lastErr = nil
	s.state = StateViewing
	return nil
}

// incomplete reports a failure after the links were already removed.
func (s *DisciplineSession) incomplete(ctx context.Context, step string, cause error) error {
	logger.FromContext(ctx).Warn("Discipline reassignment left incomplete",
		zap.Int("as_id", s.assetID),
		zap.String("step", step),
		zap.Int("links_removed", s.linksRemoved),
		zap.Error(cause),
	)
	status := http.StatusBadGateway
	if appErr, ok := apperrors.IsAppError(cause); ok {
		status = appErr.HTTPStatus
	}
	s.lastErr = apperrors.Wrap(cause, apperrors.CodeReassignmentIncomplete,
		"service plan links were removed but the discipline update failed", status).
		WithParams(map[string]interface{}{
			"as_id":         s.assetID,
			"step":          step,
			"links_removed": s.linksRemoved,
		})
	return s.lastErr
}

// Cancel drops the drafts and returns to viewing without saving.
func (s *DisciplineSession) Cancel() error {
	if s.state != StateEditing && s.state != StateConfirming {
		return ErrInvalidTransition
	}
	s.draftPPM, s.draftReactive = s.persistedPPM, s.persistedReactive
	s.state = StateViewing
	return nil
}

func sameID(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// OptionalID is a nullable id that remembers whether the field was sent.
// An absent field leaves the discipline unchanged; null clears it.
type OptionalID struct {
	Set   bool
	Value *int
}

// SomeID returns a present OptionalID. A nil id means explicit null.
func SomeID(id *int) OptionalID { return OptionalID{Set: true, Value: id} }

func (o *OptionalID) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	var id int
	if err := json.Unmarshal(b, &id); err != nil {
		return err
	}
	o.Value = &id
	return nil
}

func (o OptionalID) MarshalJSON() ([]byte, error) { return json.Marshal(o.Value) }

// Or returns the sent value, or fallback when the field was absent.
func (o OptionalID) Or(fallback *int) *int {
	if o.Set {
		return o.Value
	}
	return fallback
}

// ReassignDisciplineInput represents one discipline change request.
type ReassignDisciplineInput struct {
	AssetID              int        `json:"-"`
	PPMDisciplineID      OptionalID `json:"fk_disc_id"`
	ReactiveDisciplineID OptionalID `json:"fk_r_disc_id"`
	Confirm              bool       `json:"confirm"`
	RequestedBy          string     `json:"-"`
}

// ReassignDisciplineOutput is the session after the request.
type ReassignDisciplineOutput struct {
	AssetID              int               `json:"as_id"`
	State                ReassignmentState `json:"state"`
	PPMDisciplineID      *int              `json:"fk_disc_id"`
	ReactiveDisciplineID *int              `json:"fk_r_disc_id"`
	LinksRemoved         int               `json:"links_removed"`
}

// ReassignDisciplineUseCase replays one stateless request against a fresh
// DisciplineSession.
type ReassignDisciplineUseCase struct {
	assets      provider.AssetProvider
	auditLogger *audit.Logger
}

// NewReassignDisciplineUseCase creates a new ReassignDisciplineUseCase.
func NewReassignDisciplineUseCase(assets provider.AssetProvider) *ReassignDisciplineUseCase {
	return &ReassignDisciplineUseCase{assets: assets}
}

// WithAuditLogger sets the audit logger (optional dependency).
func (uc *ReassignDisciplineUseCase) WithAuditLogger(al *audit.Logger) *ReassignDisciplineUseCase {
	uc.auditLogger = al
	return uc
}

// Current returns the persisted assignment, as a viewing session.
func (uc *ReassignDisciplineUseCase) Current(ctx context.Context, asID int) (*ReassignDisciplineOutput, error) {
	current, err := uc.assets.AssetDisciplines(ctx, asID)
	if err != nil {
		return nil, fmt.Errorf("load asset disciplines: %w", err)
	}
	return outputOf(NewDisciplineSession(uc.assets, current)), nil
}

// Execute loads the persisted disciplines, edits and saves. A PPM
// discipline change without Confirm returns CONFIRMATION_REQUIRED with the
// number of plan links that would be removed.
func (uc *ReassignDisciplineUseCase) Execute(ctx context.Context, input ReassignDisciplineInput) (*ReassignDisciplineOutput, error) {
	current, err := uc.assets.AssetDisciplines(ctx, input.AssetID)
	if err != nil {
		return nil, fmt.Errorf("load asset disciplines: %w", err)
	}

	session := NewDisciplineSession(uc.assets, current)
	if err := session.Edit(); err != nil {
		return nil, err
	}
	ppm := input.PPMDisciplineID.Or(current.PPMDisciplineID)
	reactive := input.ReactiveDisciplineID.Or(current.ReactiveDisciplineID)
	if err := session.Select(ppm, reactive); err != nil {
		return nil, err
	}
	if err := session.Save(ctx); err != nil {
		return nil, err
	}

	if session.State() == StateConfirming {
		if !input.Confirm {
			links, err := uc.assets.ServicePlansByAsset(ctx, input.AssetID)
			if err != nil {
				return nil, fmt.Errorf("count asset plan links: %w", err)
			}
			return nil, apperrors.Conflict(apperrors.CodeConfirmationRequired,
				"changing the PPM discipline removes the asset from its service plans").
				WithParams(map[string]interface{}{
					"as_id":         input.AssetID,
					"links_to_drop": len(links),
				})
		}
		if err := session.Confirm(ctx); err != nil {
			return nil, err
		}
	}

	out := outputOf(session)
	logger.FromContext(ctx).Info("Asset disciplines saved",
		zap.Int("as_id", input.AssetID),
		zap.Int("links_removed", out.LinksRemoved),
	)
	if uc.auditLogger != nil {
		uc.auditLogger.LogAction(ctx, "asset.reassign_discipline", "asset", strconv.Itoa(input.AssetID), input.RequestedBy,
			map[string]interface{}{
				"fk_disc_id":    out.PPMDisciplineID,
				"fk_r_disc_id":  out.ReactiveDisciplineID,
				"links_removed": out.LinksRemoved,
			})
	}
	return out, nil
}

func outputOf(s *DisciplineSession) *ReassignDisciplineOutput {
	ppm, reactive := s.Persisted()
	return &ReassignDisciplineOutput{
		AssetID:              s.assetID,
		State:                s.State(),
		PPMDisciplineID:      ppm,
		ReactiveDisciplineID: reactive,
		LinksRemoved:         s.LinksRemoved(),
	}
}
