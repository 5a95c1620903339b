package usecase

import (
	"edusphere/domain"
	"time"
)

// AggregateStudentFees reduces one student's fee records into the derived
// per-student summary. Nothing is persisted; callers re-derive on every read.
func AggregateStudentFees(studentID string, fees []domain.Fee) domain.StudentFeeSummary {
	summary := domain.StudentFeeSummary{StudentID: studentID}

	for _, fee := range fees {
		if fee.StudentID != studentID {
			continue
		}

		summary.TotalFees += fee.Amount
		summary.TotalRecords++

		switch fee.Status {
		case domain.FeeStatusPaid:
			summary.PaidFees += fee.Amount
			summary.PaidRecords++
		case domain.FeeStatusPending:
			summary.PendingFees += fee.Amount
			summary.PendingRecords++
		case domain.FeeStatusOverdue:
			summary.OverdueAmount += fee.Amount
			summary.OverdueRecords++
		}
	}

	if summary.TotalFees > 0 {
		summary.PaymentPercentage = summary.PaidFees / summary.TotalFees * 100
	}

	return summary
}

// AggregateSchoolFees reduces a school's fee records and student roster
// into the school-wide summary: totals per status, collection rate, the
// trailing six calendar months of collections, and the per-student
// breakdown. Students with no fee records are excluded from the breakdown
// but still count in the coverage denominator.
func AggregateSchoolFees(fees []domain.Fee, roster []domain.User, now time.Time) domain.SchoolFeeSummary {
	summary := domain.SchoolFeeSummary{
		MonthlyCollection: make([]domain.MonthlyCollection, 0, 6),
		PerStudent:        []domain.StudentFeeSummary{},
	}

	for _, fee := range fees {
		summary.TotalAmount += fee.Amount
		summary.TotalRecords++

		switch fee.Status {
		case domain.FeeStatusPaid:
			summary.CollectedAmount += fee.Amount
			summary.PaidRecords++
		case domain.FeeStatusPending:
			summary.PendingAmount += fee.Amount
			summary.PendingRecords++
		case domain.FeeStatusOverdue:
			summary.OverdueAmount += fee.Amount
			summary.OverdueRecords++
		}
	}

	if summary.TotalAmount > 0 {
		summary.CollectionRate = summary.CollectedAmount / summary.TotalAmount * 100
	}

	// Trailing 6 calendar months, oldest first.
	for i := 5; i >= 0; i-- {
		bucket := now.AddDate(0, -i, 0)
		label := bucket.Format("Jan 2006")

		var amount float64
		for _, fee := range fees {
			if fee.Status != domain.FeeStatusPaid || fee.PaidDate == nil {
				continue
			}
			if fee.PaidDate.Month() == bucket.Month() && fee.PaidDate.Year() == bucket.Year() {
				amount += fee.Amount
			}
		}

		summary.MonthlyCollection = append(summary.MonthlyCollection, domain.MonthlyCollection{
			Month:  label,
			Amount: amount,
		})
	}

	var covered int
	for _, student := range roster {
		studentSummary := AggregateStudentFees(student.ID, fees)
		if studentSummary.TotalRecords == 0 {
			continue
		}
		covered++

		studentSummary.StudentName = student.Name
		studentSummary.StudentEmail = student.Email
		summary.PerStudent = append(summary.PerStudent, studentSummary)
	}

	if len(roster) > 0 {
		summary.Coverage = float64(covered) / float64(len(roster)) * 100
	}

	return summary
}
