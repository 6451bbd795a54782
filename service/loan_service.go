package service

import (
	"math"

	"commute-agent/domain"
	"commute-agent/logger"
)

// LoanService computes fixed-payment installment schedules.
type LoanService struct {
	logger logger.Logger
}

func NewLoanService(log logger.Logger) *LoanService {
	return &LoanService{logger: log}
}

// annuityPayment is the unrounded monthly installment.
func annuityPayment(principal float64, termMonths int, monthlyRate float64) float64 {
	n := float64(termMonths)
	growth := math.Pow(1+monthlyRate, n)
	if monthlyRate == 0 || growth == 1 {
		return principal / n
	}
	return principal * monthlyRate * growth / (growth - 1)
}

func monthlyRateOf(annualRatePercent float64) float64 {
	return annualRatePercent / 100 / 12
}

// Amortize builds the schedule for a principal in won. Degenerate arguments
// are clamped instead of rejected: term below 1 becomes 1, negative principal
// and rate become 0.
func (s *LoanService) Amortize(principalWon float64, termMonths int, annualRatePercent float64) domain.LoanSchedule {
	if termMonths < 1 {
		s.logger.Warn("loan term clamped", map[string]interface{}{"termMonths": termMonths})
		termMonths = 1
	}
	if principalWon < 0 {
		s.logger.Warn("negative loan principal clamped", map[string]interface{}{"principal": principalWon})
		principalWon = 0
	}
	if annualRatePercent < 0 {
		annualRatePercent = 0
	}

	r := monthlyRateOf(annualRatePercent)
	payment := annuityPayment(principalWon, termMonths, r)
	total := payment * float64(termMonths)

	principal := roundWon(principalWon)
	totalPayment := roundWon(total)
	interest := totalPayment - principal
	if r == 0 {
		interest = 0
	}

	return domain.LoanSchedule{
		MonthlyPayment: roundWon(payment),
		TotalPayment:   totalPayment,
		TotalInterest:  interest,
		Principal:      principal,
		TermMonths:     termMonths,
		MonthlyRate:    r,
	}
}

// CalculateLoan validates a standalone request (principal in 만원) and
// amortizes it.
func (s *LoanService) CalculateLoan(input domain.LoanInput) (domain.LoanSchedule, error) {
	if err := ValidateLoanInput(input); err != nil {
		return domain.LoanSchedule{}, err
	}
	return s.Amortize(toWon(input.Principal), input.TermMonths, input.AnnualRatePercent), nil
}

// loanPrincipalWon is the financed part of the car price, 0 for cash.
func loanPrincipalWon(in domain.InputRecord) float64 {
	if !in.IsInstallment() {
		return 0
	}
	return toWon(in.CarPrice) * (1 - in.Installment.DownPaymentPercent/100)
}

// ScheduleFor returns the installment schedule of in, or nil for a cash purchase.
func (s *LoanService) ScheduleFor(in domain.InputRecord) *domain.LoanSchedule {
	if !in.IsInstallment() {
		return nil
	}
	schedule := s.Amortize(loanPrincipalWon(in), in.Installment.TermMonths, in.Installment.AnnualRatePercent)
	return &schedule
}
