package domain

import (
	"context"
	"time"
)

const (
	CertificateStatusPending   = "pending"
	CertificateStatusApproved  = "approved"
	CertificateStatusRejected  = "rejected"
	CertificateStatusGenerated = "generated"
)

type CertificateRequest struct {
	ID                string     `json:"id"`
	StudentID         string     `json:"student_id" valid:"required~Student ID is required"`
	SchoolID          string     `json:"school_id" valid:"required~School ID is required"`
	CertificateType   string     `json:"certificate_type" valid:"required~Certificate type is required,in(bonafide|character|transfer|conduct|study|migration)~Invalid certificate type"`
	Purpose           string     `json:"purpose" valid:"required~Purpose is required"`
	AdditionalDetails *string    `json:"additional_details,omitempty"`
	Status            string     `json:"status"`
	RequestedAt       time.Time  `json:"requested_at"`
	ReviewedAt        *time.Time `json:"reviewed_at,omitempty"`
	ReviewedBy        *string    `json:"reviewed_by,omitempty"`
	RejectionReason   *string    `json:"rejection_reason,omitempty"`
	CertificateNumber *string    `json:"certificate_number,omitempty"`
}

// GeneratedCertificate carries the assigned certificate number together
// with a QR PNG encoding it for offline verification.
type GeneratedCertificate struct {
	Request CertificateRequest `json:"request"`
	QRPNG   []byte             `json:"qr_png"`
}

type CertificateRepo interface {
	Insert(ctx context.Context, request *CertificateRequest) error
	GetByID(ctx context.Context, id string) (*CertificateRequest, error)
	GetBySchool(ctx context.Context, schoolID string) (*[]CertificateRequest, error)
	GetByStudent(ctx context.Context, studentID string) (*[]CertificateRequest, error)
	Update(ctx context.Context, request *CertificateRequest) error
	CountGeneratedInYear(ctx context.Context, schoolID string, year int) (int, error)
}

type CertificateUseCase interface {
	RequestCertificate(ctx context.Context, actor Claims, request *CertificateRequest) error
	GetSchoolRequests(ctx context.Context, schoolID string) (*[]CertificateRequest, error)
	GetStudentRequests(ctx context.Context, studentID string) (*[]CertificateRequest, error)
	ApproveRequest(ctx context.Context, actor Claims, id string) (*CertificateRequest, error)
	RejectRequest(ctx context.Context, actor Claims, id, reason string) (*CertificateRequest, error)
	GenerateCertificate(ctx context.Context, actor Claims, id string) (*GeneratedCertificate, error)
}
