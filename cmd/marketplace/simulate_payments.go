package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/beautybook/marketplace/internal/core/domain"
	"github.com/beautybook/marketplace/internal/core/ports"
	"github.com/beautybook/marketplace/internal/core/service"
)

func simulatePaymentsCmd() *cobra.Command {
	var (
		runs    int
		workers int
		seed    uint64
	)
	cmd := &cobra.Command{
		Use:   "simulate-payments",
		Short: "Run the payment simulator many times and report the outcome distribution",
		Long: `Drive the payment dialog end to end without the settlement delay and report
the observed success rate. Fails if any two receipts share a transaction id.

Examples:
  marketplace simulate-payments --runs 100000
  marketplace simulate-payments --workers 16 --seed 42`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if runs <= 0 || workers <= 0 {
				return errors.New("--runs and --workers must be positive")
			}
			report, err := simulatePayments(cmd.Context(), runs, workers, seed)
			if err != nil {
				return err
			}
			return report.print(cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVarP(&runs, "runs", "n", 10000, "number of payments to settle")
	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "concurrent sessions")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "seed of the outcome draw")
	return cmd
}

// instantClock fires every timer immediately.
type instantClock struct{}

func (instantClock) Now() time.Time { return time.Now() }

func (instantClock) After(time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- time.Now()
	return ch
}

// lockedRandom serialises a seeded source for concurrent settlements.
type lockedRandom struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func (r *lockedRandom) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Float64()
}

// receiptLog is the success observer; it records every transaction id.
type receiptLog struct {
	mu         sync.Mutex
	ids        map[string]struct{}
	duplicates int
}

func (l *receiptLog) PaymentSucceeded(_ context.Context, _ string, receipt domain.PaymentReceipt) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, seen := l.ids[receipt.TransactionID]; seen {
		l.duplicates++
	}
	l.ids[receipt.TransactionID] = struct{}{}
	return nil
}

type simulationReport struct {
	Runs       int
	Succeeded  int
	Declined   int
	Duplicates int
	Elapsed    time.Duration
}

func (r simulationReport) print(w io.Writer) error {
	rate := float64(r.Succeeded) / float64(r.Runs)
	_, err := fmt.Fprintf(w,
		"runs=%d succeeded=%d declined=%d success_rate=%.4f expected=%.4f duplicate_tx_ids=%d elapsed=%s\n",
		r.Runs, r.Succeeded, r.Declined, rate, 1-domain.PaymentFailureThreshold, r.Duplicates, r.Elapsed.Round(time.Millisecond))
	if err != nil {
		return err
	}
	if r.Duplicates > 0 {
		return fmt.Errorf("%d duplicate transaction ids", r.Duplicates)
	}
	return nil
}

func simulatePayments(ctx context.Context, runs, workers int, seed uint64) (simulationReport, error) {
	receipts := &receiptLog{ids: make(map[string]struct{}, runs)}
	random := &lockedRandom{rnd: rand.New(rand.NewPCG(seed, seed))}
	sim := service.NewPaymentSimulator(instantClock{}, random, receipts, zerolog.Nop())

	jobs := make(chan int)
	var (
		mu       sync.Mutex
		report   = simulationReport{Runs: runs}
		firstErr error
		wg       sync.WaitGroup
	)
	start := time.Now()

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(sessionID string) {
			defer wg.Done()
			for range jobs {
				attempt, err := settleOnce(ctx, sim, sessionID)
				mu.Lock()
				switch {
				case err != nil:
					if firstErr == nil {
						firstErr = err
					}
				case errors.Is(attempt.Err(), domain.ErrPaymentDeclined):
					report.Declined++
				default:
					report.Succeeded++
				}
				mu.Unlock()
			}
		}(uuid.NewString())
	}

	for i := 0; i < runs; i++ {
		if ctx.Err() != nil {
			break
		}
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return report, firstErr
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}
	report.Duplicates = receipts.duplicates
	report.Elapsed = time.Since(start)
	return report, nil
}

// settleOnce walks one attempt through the whole dialog and closes it.
func settleOnce(ctx context.Context, payments ports.PaymentService, sessionID string) (*domain.PaymentAttempt, error) {
	attempt, err := payments.Start(ctx, ports.StartPaymentInput{SessionID: sessionID, BookingID: uuid.NewString(), Amount: 1500})
	if err != nil {
		return nil, err
	}
	if _, err := payments.EnterPhone(ctx, sessionID, attempt.ID, "+254700000000", "1234"); err != nil {
		return nil, err
	}
	if _, err := payments.Confirm(ctx, sessionID, attempt.ID); err != nil {
		return nil, err
	}
	settled, err := payments.Settle(ctx, attempt.ID)
	if err != nil {
		return nil, err
	}
	if err := payments.Close(ctx, sessionID, attempt.ID); err != nil {
		return nil, err
	}
	return settled, nil
}
