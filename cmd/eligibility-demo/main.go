// main runs the fixed eligibility demonstration: two hardcoded student
// records pushed through the three rules, console output only.
//
// The sequence is deliberately not parameterized — no flags, no config,
// no database. It exists to show the engine's moving parts:
//
//	Scenario 1 — the basic rules: Andi against the credit limit,
//	             Budi against the Algoritma prerequisite.
//	Scenario 2 — extensibility: the payment rule is injected into the
//	             same coordinator type the other rules used, which is
//	             untouched by the addition.
//
// Every line goes out in the classic "<timestamp> - <LEVEL> - <message>"
// format. The process always exits 0: a failed check is a logged
// outcome, not a program error.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dwikurnia/eligibility-api/internal/eligibility"
	"github.com/dwikurnia/eligibility-api/internal/logging"
	"github.com/dwikurnia/eligibility-api/internal/types"
)

func main() {
	// All slog calls in the engine flow through the classic handler.
	slog.SetDefault(slog.New(
		logging.NewClassicHandler(os.Stdout, slog.LevelInfo),
	))

	// Sample records. Andi has overloaded his semester; Budi has passed
	// the prerequisite but not settled his tuition.
	andi := types.StudentRecord{
		Name:          "Andi",
		CreditsTaken:  24,
		CoursesPassed: []string{"Algoritma"},
		PaymentStatus: "lunas",
	}
	budi := types.StudentRecord{
		Name:          "Budi",
		CreditsTaken:  20,
		CoursesPassed: []string{"Algoritma"},
		PaymentStatus: "belum_lunas",
	}

	results := eligibility.NewSlogResultLogger(nil)

	fmt.Println("\n=== SCENARIO 1: credit-limit & prerequisite checks ===")

	// Andi against the 22-credit ceiling → fails (24 > 22).
	creditService := eligibility.NewService(eligibility.CreditLimitRule{}, results)
	if _, err := creditService.Process(andi, eligibility.IntRequirement(22)); err != nil {
		slog.Error("credit check aborted", slog.String("error", err.Error()))
	}

	// Budi against the Algoritma prerequisite → passes.
	prereqService := eligibility.NewService(eligibility.PrerequisiteRule{}, results)
	if _, err := prereqService.Process(budi, eligibility.StringRequirement("Algoritma")); err != nil {
		slog.Error("prerequisite check aborted", slog.String("error", err.Error()))
	}

	fmt.Println("\n=== SCENARIO 2: adding a rule without touching the coordinator ===")

	// The payment rule is new; the Service is the same type as above,
	// unchanged. Budi owes tuition → fails.
	paymentService := eligibility.NewService(eligibility.PaymentRule{}, results)
	if _, err := paymentService.Process(budi, eligibility.StringRequirement("lunas")); err != nil {
		slog.Error("payment check aborted", slog.String("error", err.Error()))
	}
}
