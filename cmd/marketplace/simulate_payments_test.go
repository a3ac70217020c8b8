package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestSimulatePayments(t *testing.T) {
	report, err := simulatePayments(context.Background(), 5000, 8, 7)
	if err != nil {
		t.Fatalf("simulation failed: %v", err)
	}
	if report.Succeeded+report.Declined != report.Runs {
		t.Fatalf("outcomes do not add up: %+v", report)
	}
	rate := float64(report.Succeeded) / float64(report.Runs)
	if rate < 0.87 || rate > 0.93 {
		t.Fatalf("success rate %.4f outside the expected band", rate)
	}
	if report.Duplicates != 0 {
		t.Fatalf("expected unique transaction ids, got %d duplicates", report.Duplicates)
	}
}

func TestSimulatePaymentsCmd_Output(t *testing.T) {
	cmd := simulatePaymentsCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--runs", "200", "--workers", "2"})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if !strings.Contains(out.String(), "runs=200") || !strings.Contains(out.String(), "duplicate_tx_ids=0") {
		t.Fatalf("unexpected output: %s", out.String())
	}
}

func TestSimulatePaymentsCmd_RejectsBadFlags(t *testing.T) {
	cmd := simulatePaymentsCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--runs", "0"})

	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Fatal("expected an error for --runs 0")
	}
}
