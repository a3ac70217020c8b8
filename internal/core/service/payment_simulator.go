package service

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/beautybook/marketplace/internal/core/domain"
	"github.com/beautybook/marketplace/internal/core/ports"
	"github.com/beautybook/marketplace/internal/pkg/metrics"
)

// PaymentSimulator runs the mobile-money dialog:
// collecting phone -> submitting -> succeeded | failed.
// Attempts live in memory only. They disappear when the dialog is closed or,
// for dialogs nobody closes, once Evict finds them idle.
type PaymentSimulator struct {
	clock    ports.Clock
	random   ports.Random
	observer ports.PaymentObserver
	logger   zerolog.Logger

	mu       sync.Mutex
	attempts map[string]*domain.PaymentAttempt
	lastTxMs int64
}

func NewPaymentSimulator(clock ports.Clock, random ports.Random, observer ports.PaymentObserver, logger zerolog.Logger) *PaymentSimulator {
	return &PaymentSimulator{
		clock:    clock,
		random:   random,
		observer: observer,
		logger:   logger,
		attempts: make(map[string]*domain.PaymentAttempt),
	}
}

func (p *PaymentSimulator) Start(_ context.Context, input ports.StartPaymentInput) (*domain.PaymentAttempt, error) {
	if input.BookingID == "" {
		return nil, domain.ErrBookingNotFound
	}
	now := p.clock.Now().UTC()
	attempt := &domain.PaymentAttempt{
		ID:        uuid.New().String(),
		SessionID: input.SessionID,
		BookingID: input.BookingID,
		Amount:    input.Amount,
		State:     domain.PaymentCollectingPhone,
		Outcome:   domain.OutcomePending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	p.mu.Lock()
	p.attempts[attempt.ID] = attempt
	p.mu.Unlock()
	metrics.ActivePaymentAttempts.Inc()

	p.logger.Info().Str("session_id", input.SessionID).Str("attempt_id", attempt.ID).Str("booking_id", input.BookingID).Msg("payment started")
	return snapshot(attempt), nil
}

// EnterPhone records the phone number and PIN. Only a non-empty phone is required.
func (p *PaymentSimulator) EnterPhone(_ context.Context, sessionID, attemptID, phone, pin string) (*domain.PaymentAttempt, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, domain.ErrInvalidPhone
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	attempt, err := p.owned(sessionID, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.State != domain.PaymentCollectingPhone {
		return nil, domain.ErrInvalidTransition
	}
	attempt.PhoneNumber = phone
	attempt.Pin = pin
	attempt.UpdatedAt = p.clock.Now().UTC()
	return snapshot(attempt), nil
}

// Confirm submits the payment. The caller must then schedule Settle.
func (p *PaymentSimulator) Confirm(_ context.Context, sessionID, attemptID string) (*domain.PaymentAttempt, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	attempt, err := p.owned(sessionID, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.State == domain.PaymentCollectingPhone && attempt.PhoneNumber == "" {
		return nil, domain.ErrInvalidPhone
	}
	if err := attempt.Apply(domain.EventConfirm, p.clock.Now().UTC()); err != nil {
		return nil, err
	}

	p.logger.Info().Str("session_id", sessionID).Str("attempt_id", attemptID).Msg("payment submitted")
	return snapshot(attempt), nil
}

// Settle waits out the simulated round trip, then resolves the attempt. The
// wait is not interruptible: once submitted, a payment always settles.
func (p *PaymentSimulator) Settle(ctx context.Context, attemptID string) (*domain.PaymentAttempt, error) {
	p.mu.Lock()
	attempt, ok := p.attempts[attemptID]
	var state domain.PaymentState
	if ok {
		state = attempt.State
	}
	p.mu.Unlock()
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	if state != domain.PaymentSubmitting {
		return nil, domain.ErrInvalidTransition
	}

	<-p.clock.After(domain.PaymentSubmitDelay)
	return p.Resolve(ctx, attemptID)
}

// Resolve draws the outcome of a submitted attempt without waiting. Callers
// that schedule their own delay use it directly. A second resolution of the
// same attempt fails with ErrInvalidTransition.
func (p *PaymentSimulator) Resolve(ctx context.Context, attemptID string) (*domain.PaymentAttempt, error) {
	p.mu.Lock()
	attempt, ok := p.attempts[attemptID]
	if !ok {
		p.mu.Unlock()
		return nil, domain.ErrPaymentNotFound
	}
	if attempt.State != domain.PaymentSubmitting {
		p.mu.Unlock()
		return nil, domain.ErrInvalidTransition
	}

	succeeded := p.random.Float64() > domain.PaymentFailureThreshold
	now := p.clock.Now().UTC()
	var err error
	if succeeded {
		receipt := &domain.PaymentReceipt{
			BookingID:     attempt.BookingID,
			Amount:        attempt.Amount,
			PhoneNumber:   attempt.PhoneNumber,
			TransactionID: p.nextTransactionID(now.UnixMilli()),
			Timestamp:     now.Format(domain.ReceiptTimeLayout),
		}
		if err = attempt.Apply(domain.EventSucceed, now); err == nil {
			attempt.Receipt = receipt
		}
	} else if err = attempt.Apply(domain.EventDecline, now); err == nil {
		attempt.Error = domain.PaymentDeclinedMessage
	}
	result := snapshot(attempt)
	p.mu.Unlock()

	log := p.logger.With().Str("session_id", result.SessionID).Str("attempt_id", attemptID).Logger()
	if err != nil {
		log.Error().Err(err).Msg("payment resolution rejected")
		return nil, err
	}

	metrics.PaymentsSettledTotal.WithLabelValues(string(result.Outcome)).Inc()
	if !succeeded {
		log.Info().Msg("payment declined")
		return result, nil
	}

	log.Info().Str("transaction_id", result.Receipt.TransactionID).Msg("payment succeeded")
	if p.observer != nil {
		if err := p.observer.PaymentSucceeded(ctx, result.SessionID, *result.Receipt); err != nil {
			log.Error().Err(err).Msg("payment success callback failed")
		}
	}
	return result, nil
}

func (p *PaymentSimulator) Get(_ context.Context, sessionID, attemptID string) (*domain.PaymentAttempt, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	attempt, err := p.owned(sessionID, attemptID)
	if err != nil {
		return nil, err
	}
	return snapshot(attempt), nil
}

// Retry returns a failed attempt to phone collection with everything cleared.
func (p *PaymentSimulator) Retry(_ context.Context, sessionID, attemptID string) (*domain.PaymentAttempt, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	attempt, err := p.owned(sessionID, attemptID)
	if err != nil {
		return nil, err
	}
	if err := attempt.Reset(p.clock.Now().UTC()); err != nil {
		return nil, err
	}
	p.logger.Info().Str("session_id", sessionID).Str("attempt_id", attemptID).Msg("payment retry")
	return snapshot(attempt), nil
}

// Close discards the dialog. It is refused while a submission is in flight.
func (p *PaymentSimulator) Close(_ context.Context, sessionID, attemptID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	attempt, err := p.owned(sessionID, attemptID)
	if err != nil {
		return err
	}
	if !attempt.State.Closable() {
		return domain.ErrPaymentInProgress
	}
	delete(p.attempts, attemptID)
	metrics.ActivePaymentAttempts.Dec()
	return nil
}

// Evict drops attempts untouched for at least ttl and returns how many went.
// Submitting attempts are kept until they settle.
func (p *PaymentSimulator) Evict(ttl time.Duration) int {
	cutoff := p.clock.Now().UTC().Add(-ttl)

	p.mu.Lock()
	defer p.mu.Unlock()
	evicted := 0
	for id, attempt := range p.attempts {
		if attempt.State == domain.PaymentSubmitting || attempt.UpdatedAt.After(cutoff) {
			continue
		}
		delete(p.attempts, id)
		evicted++
	}
	if evicted > 0 {
		metrics.ActivePaymentAttempts.Sub(float64(evicted))
		p.logger.Debug().Int("evicted", evicted).Msg("idle payment attempts evicted")
	}
	return evicted
}

// RunEviction calls Evict every ttl/2 until ctx is done.
func (p *PaymentSimulator) RunEviction(ctx context.Context, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-p.clock.After(ttl / 2):
			p.Evict(ttl)
		}
	}
}

// owned must be called with p.mu held. Attempts of other sessions are reported
// as missing.
func (p *PaymentSimulator) owned(sessionID, attemptID string) (*domain.PaymentAttempt, error) {
	attempt, ok := p.attempts[attemptID]
	if !ok || attempt.SessionID != sessionID {
		return nil, domain.ErrPaymentNotFound
	}
	return attempt, nil
}

// nextTransactionID must be called with p.mu held. Two settlements in the same
// millisecond get consecutive ids.
func (p *PaymentSimulator) nextTransactionID(ms int64) string {
	if ms <= p.lastTxMs {
		ms = p.lastTxMs + 1
	}
	p.lastTxMs = ms
	return domain.TransactionIDPrefix + strconv.FormatInt(ms, 10)
}

func snapshot(a *domain.PaymentAttempt) *domain.PaymentAttempt {
	clone := *a
	if a.Receipt != nil {
		receipt := *a.Receipt
		clone.Receipt = &receipt
	}
	return &clone
}
