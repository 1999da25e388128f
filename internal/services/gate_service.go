package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/fintechlabs/go-wallet-gate/internal/common"
	"github.com/fintechlabs/go-wallet-gate/internal/common/log"
	"github.com/fintechlabs/go-wallet-gate/internal/models"
)

const pinLength = 6

// GateService runs the PIN confirmation protocol. At most one session may be
// awaiting a pin or committing at any time.
type GateService interface {
	// SubmitIntent validates the intent and opens a confirmation session in
	// AWAITING_PIN. Fails with ErrSessionAlreadyActive while another session
	// is still awaiting a pin or committing.
	SubmitIntent(ctx context.Context, req models.SubmitIntentRequest) (*models.SessionResponse, error)

	// EnterPinDigits replaces the session pin buffer with the digits of the
	// given input. Non-digit characters are dropped and the buffer is capped
	// at six digits, mirroring a numeric pin pad.
	EnterPinDigits(ctx context.Context, sessionID string, req models.EnterPinRequest) (*models.SessionResponse, error)

	// Confirm commits the session intent. The pin buffer must hold exactly
	// six digits; on a shorter buffer the session stays in AWAITING_PIN and
	// ErrPinFormatInvalid is returned. A failed commit is recoverable: the
	// session returns to AWAITING_PIN with an empty buffer so the caller can
	// retry or cancel.
	Confirm(ctx context.Context, sessionID string) (*models.TransactionRecordResponse, error)

	// Cancel aborts a session that is still awaiting a pin.
	Cancel(ctx context.Context, sessionID string) (*models.SessionResponse, error)

	// Get returns the current session when its id matches.
	Get(ctx context.Context, sessionID string) (*models.SessionResponse, error)
}

type gate struct {
	service

	mu      sync.Mutex
	current *models.ConfirmationSession
}

var _ GateService = (*gate)(nil)

func newGate(common *service) *gate {
	return &gate{service: *common}
}

func (g *gate) SubmitIntent(ctx context.Context, req models.SubmitIntentRequest) (*models.SessionResponse, error) {
	intent, err := req.ToIntent()
	if err != nil {
		return nil, common.WrapError{Causer: common.ErrInvalidIntent, Err: err}
	}

	if err := intent.Validate(); err != nil {
		return nil, common.WrapError{Causer: common.ErrInvalidIntent, Err: err}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.current != nil && !g.current.Terminal() {
		return nil, common.ErrSessionAlreadyActive
	}

	session := &models.ConfirmationSession{
		ID:        g.srv.idgenerator.Generate("cs"),
		Intent:    intent,
		State:     models.SessionAwaitingPin,
		CreatedAt: time.Now(),
	}
	g.current = session

	log.Info(ctx, "[GATE]",
		log.String("sessionId", session.ID),
		log.String("kind", string(intent.Kind)),
		log.String("message", "session opened"))

	res := session.ToResponse()
	return &res, nil
}

func (g *gate) EnterPinDigits(_ context.Context, sessionID string, req models.EnterPinRequest) (*models.SessionResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	session, err := g.activeSession(sessionID)
	if err != nil {
		return nil, err
	}

	if session.State != models.SessionAwaitingPin {
		return nil, common.ErrSessionAlreadyActive
	}

	session.PinBuffer = sanitizePinDigits(req.Digits)

	res := session.ToResponse()
	return &res, nil
}

func (g *gate) Confirm(ctx context.Context, sessionID string) (*models.TransactionRecordResponse, error) {
	g.mu.Lock()

	session, err := g.activeSession(sessionID)
	if err != nil {
		g.mu.Unlock()
		return nil, err
	}

	if session.State != models.SessionAwaitingPin {
		g.mu.Unlock()
		return nil, common.ErrSessionAlreadyActive
	}

	if len(session.PinBuffer) != pinLength {
		g.mu.Unlock()
		return nil, common.ErrPinFormatInvalid
	}

	// Leaving AWAITING_PIN: the buffer is wiped no matter how the commit
	// ends. Only the format is checked; this gate has no pin vault.
	session.PinBuffer = ""
	session.State = models.SessionCommitting
	intent := session.Intent
	g.mu.Unlock()

	// Once committing, the session owns the outcome. A client disconnect or
	// handler timeout must not abort a settlement that has been entered.
	record, commitErr := g.srv.Executor.Execute(context.WithoutCancel(ctx), intent)

	g.mu.Lock()
	defer g.mu.Unlock()

	if commitErr != nil {
		// Recoverable: back to AWAITING_PIN, buffer already wiped. The
		// session keeps the intent so the caller can re-enter the pin and
		// retry, or cancel.
		session.State = models.SessionAwaitingPin
		log.Warn(ctx, "[GATE]",
			log.String("sessionId", session.ID),
			log.String("kind", string(intent.Kind)),
			log.Err(commitErr))
		return nil, common.WrapError{Causer: common.ErrCommitFailed, Err: commitErr}
	}

	session.State = models.SessionSucceeded
	log.Info(ctx, "[GATE]",
		log.String("sessionId", session.ID),
		log.String("recordId", record.ID),
		log.String("message", "commit succeeded"))

	res := record.ToResponse()
	return &res, nil
}

func (g *gate) Cancel(ctx context.Context, sessionID string) (*models.SessionResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	session, err := g.activeSession(sessionID)
	if err != nil {
		return nil, err
	}

	if session.State != models.SessionAwaitingPin {
		return nil, common.ErrIllegalCancellation
	}

	session.PinBuffer = ""
	session.State = models.SessionCancelled

	log.Info(ctx, "[GATE]",
		log.String("sessionId", session.ID),
		log.String("message", "session cancelled"))

	res := session.ToResponse()
	return &res, nil
}

func (g *gate) Get(_ context.Context, sessionID string) (*models.SessionResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	session, err := g.activeSession(sessionID)
	if err != nil {
		return nil, err
	}

	res := session.ToResponse()
	return &res, nil
}

func (g *gate) activeSession(sessionID string) (*models.ConfirmationSession, error) {
	if g.current == nil || g.current.ID != sessionID {
		return nil, common.ErrSessionNotFound
	}
	return g.current, nil
}

func sanitizePinDigits(input string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, input)

	if len(digits) > pinLength {
		digits = digits[:pinLength]
	}
	return digits
}
