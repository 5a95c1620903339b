package usecase

import (
	"edusphere/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func feeRecord(studentID, status string, amount float64, paidDate *time.Time) domain.Fee {
	return domain.Fee{
		ID:        studentID + "-" + status,
		StudentID: studentID,
		SchoolID:  "school-1",
		Amount:    amount,
		DueDate:   time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:    status,
		PaidDate:  paidDate,
		CreatedAt: time.Now(),
	}
}

func student(id, name string) domain.User {
	return domain.User{
		ID:       id,
		Name:     name,
		Email:    name + "@school.test",
		Role:     domain.RoleStudent,
		SchoolID: strPtr("school-1"),
	}
}

func TestAggregateSchoolFeesPartition(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	paidAt := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)

	fees := []domain.Fee{
		feeRecord("s1", domain.FeeStatusPaid, 100, &paidAt),
		feeRecord("s1", domain.FeeStatusPending, 200, nil),
		feeRecord("s2", domain.FeeStatusOverdue, 50, nil),
		feeRecord("s2", domain.FeeStatusPaid, 150, &paidAt),
	}

	summary := AggregateSchoolFees(fees, []domain.User{student("s1", "alice"), student("s2", "bob")}, now)

	assert.Equal(t, 500.0, summary.TotalAmount)
	assert.Equal(t, 250.0, summary.CollectedAmount)
	assert.Equal(t, 200.0, summary.PendingAmount)
	assert.Equal(t, 50.0, summary.OverdueAmount)
	assert.Equal(t, summary.TotalAmount, summary.CollectedAmount+summary.PendingAmount+summary.OverdueAmount)
	assert.Equal(t, 4, summary.TotalRecords)
	assert.Equal(t, 2, summary.PaidRecords)
	assert.Equal(t, 1, summary.PendingRecords)
	assert.Equal(t, 1, summary.OverdueRecords)
	assert.InDelta(t, 50.0, summary.CollectionRate, 1e-9)
}

func TestAggregateSchoolFeesEmpty(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	summary := AggregateSchoolFees(nil, nil, now)

	assert.Equal(t, 0.0, summary.TotalAmount)
	assert.Equal(t, 0.0, summary.CollectedAmount)
	assert.Equal(t, 0.0, summary.PendingAmount)
	assert.Equal(t, 0.0, summary.OverdueAmount)
	assert.Equal(t, 0.0, summary.CollectionRate)
	assert.Empty(t, summary.PerStudent)
	assert.Len(t, summary.MonthlyCollection, 6)
	for _, bucket := range summary.MonthlyCollection {
		assert.Equal(t, 0.0, bucket.Amount)
	}
}

func TestAggregateSchoolFeesAllPaid(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	paidAt := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	fees := []domain.Fee{
		feeRecord("s1", domain.FeeStatusPaid, 300, &paidAt),
		feeRecord("s2", domain.FeeStatusPaid, 700, &paidAt),
	}

	summary := AggregateSchoolFees(fees, []domain.User{student("s1", "alice"), student("s2", "bob")}, now)

	assert.InDelta(t, 100.0, summary.CollectionRate, 1e-9)
	assert.Equal(t, 0.0, summary.PendingAmount)
	assert.Equal(t, 0.0, summary.OverdueAmount)
}

func TestAggregateSchoolFeesMonthlyBuckets(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	january := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)
	may := time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC)
	june := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	lastYear := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC) // outside the window

	fees := []domain.Fee{
		feeRecord("s1", domain.FeeStatusPaid, 100, &january),
		feeRecord("s2", domain.FeeStatusPaid, 250, &may),
		feeRecord("s3", domain.FeeStatusPaid, 400, &june),
		feeRecord("s4", domain.FeeStatusPaid, 999, &lastYear),
		feeRecord("s5", domain.FeeStatusPending, 50, nil),
	}

	summary := AggregateSchoolFees(fees, nil, now)

	assert.Len(t, summary.MonthlyCollection, 6)
	assert.Equal(t, "Jan 2026", summary.MonthlyCollection[0].Month)
	assert.Equal(t, 100.0, summary.MonthlyCollection[0].Amount)
	assert.Equal(t, "May 2026", summary.MonthlyCollection[4].Month)
	assert.Equal(t, 250.0, summary.MonthlyCollection[4].Amount)
	assert.Equal(t, "Jun 2026", summary.MonthlyCollection[5].Month)
	assert.Equal(t, 400.0, summary.MonthlyCollection[5].Amount)

	// months with no collections stay present with a zero amount
	assert.Equal(t, "Feb 2026", summary.MonthlyCollection[1].Month)
	assert.Equal(t, 0.0, summary.MonthlyCollection[1].Amount)
}

func TestAggregateSchoolFeesCoverage(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	paidAt := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	fees := []domain.Fee{
		feeRecord("s1", domain.FeeStatusPaid, 100, &paidAt),
	}
	roster := []domain.User{
		student("s1", "alice"),
		student("s2", "bob"),
		student("s3", "carol"),
		student("s4", "dave"),
	}

	summary := AggregateSchoolFees(fees, roster, now)

	// students without records are excluded from the breakdown but count
	// in the coverage denominator
	assert.Len(t, summary.PerStudent, 1)
	assert.Equal(t, "s1", summary.PerStudent[0].StudentID)
	assert.Equal(t, "alice", summary.PerStudent[0].StudentName)
	assert.InDelta(t, 25.0, summary.Coverage, 1e-9)
}

func TestAggregateStudentFees(t *testing.T) {
	fees := []domain.Fee{
		feeRecord("s1", domain.FeeStatusPaid, 100, nil),
		feeRecord("s1", domain.FeeStatusPending, 200, nil),
		feeRecord("s2", domain.FeeStatusPaid, 5000, nil), // other student, ignored
	}

	summary := AggregateStudentFees("s1", fees)

	assert.Equal(t, 300.0, summary.TotalFees)
	assert.Equal(t, 100.0, summary.PaidFees)
	assert.Equal(t, 200.0, summary.PendingFees)
	assert.Equal(t, 0.0, summary.OverdueAmount)
	assert.Equal(t, 2, summary.TotalRecords)
	assert.InDelta(t, 33.3333, summary.PaymentPercentage, 0.001)
}

func TestAggregateStudentFeesNoRecords(t *testing.T) {
	summary := AggregateStudentFees("s1", nil)

	assert.Equal(t, 0.0, summary.TotalFees)
	assert.Equal(t, 0.0, summary.PaymentPercentage)
	assert.Equal(t, 0, summary.TotalRecords)
}
