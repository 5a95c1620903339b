package usecase

import (
	"context"
	"edusphere/config"
	"edusphere/domain"
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

type certificateUC struct {
	certRepo domain.CertificateRepo
	notifUC  domain.NotificationUseCase
	TimeOut  time.Duration
}

func NewCertificateUseCase(repo domain.CertificateRepo, notifUC domain.NotificationUseCase, timeOut time.Duration) domain.CertificateUseCase {
	return &certificateUC{
		certRepo: repo,
		notifUC:  notifUC,
		TimeOut:  timeOut,
	}
}

func (cUC *certificateUC) RequestCertificate(ctx context.Context, actor domain.Claims, request *domain.CertificateRequest) error {
	ctx, cancel := context.WithTimeout(ctx, cUC.TimeOut)
	defer cancel()

	request.ID = uuid.NewString()
	request.StudentID = actor.UserID
	if actor.SchoolID != nil {
		request.SchoolID = *actor.SchoolID
	}
	request.Status = domain.CertificateStatusPending
	request.RequestedAt = time.Now()

	if _, err := govalidator.ValidateStruct(request); err != nil {
		return err
	}

	return cUC.certRepo.Insert(ctx, request)
}

func (cUC *certificateUC) GetSchoolRequests(ctx context.Context, schoolID string) (*[]domain.CertificateRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, cUC.TimeOut)
	defer cancel()

	return cUC.certRepo.GetBySchool(ctx, schoolID)
}

func (cUC *certificateUC) GetStudentRequests(ctx context.Context, studentID string) (*[]domain.CertificateRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, cUC.TimeOut)
	defer cancel()

	return cUC.certRepo.GetByStudent(ctx, studentID)
}

func (cUC *certificateUC) ApproveRequest(ctx context.Context, actor domain.Claims, id string) (*domain.CertificateRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, cUC.TimeOut)
	defer cancel()

	request, err := cUC.certRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if request.Status != domain.CertificateStatusPending {
		return nil, fmt.Errorf("only a pending request can be approved")
	}

	now := time.Now()
	request.Status = domain.CertificateStatusApproved
	request.ReviewedAt = &now
	request.ReviewedBy = &actor.UserID
	request.RejectionReason = nil

	if err := cUC.certRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	if err := cUC.notifUC.NotifyCertificateStatus(ctx, request.StudentID, request.CertificateType, request.Status, request.ID, nil); err != nil {
		config.GetLogrusInstance().Errorf("certificate approval notification failed: %v", err)
	}

	return request, nil
}

func (cUC *certificateUC) RejectRequest(ctx context.Context, actor domain.Claims, id, reason string) (*domain.CertificateRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, cUC.TimeOut)
	defer cancel()

	if reason == "" {
		return nil, fmt.Errorf("a rejection reason is required")
	}

	request, err := cUC.certRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if request.Status != domain.CertificateStatusPending {
		return nil, fmt.Errorf("only a pending request can be rejected")
	}

	now := time.Now()
	request.Status = domain.CertificateStatusRejected
	request.ReviewedAt = &now
	request.ReviewedBy = &actor.UserID
	request.RejectionReason = &reason

	if err := cUC.certRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	if err := cUC.notifUC.NotifyCertificateStatus(ctx, request.StudentID, request.CertificateType, request.Status, request.ID, &reason); err != nil {
		config.GetLogrusInstance().Errorf("certificate rejection notification failed: %v", err)
	}

	return request, nil
}

// GenerateCertificate assigns the next CERT-{year}-{seq} number to an
// approved request and returns a QR PNG encoding it for verification.
func (cUC *certificateUC) GenerateCertificate(ctx context.Context, actor domain.Claims, id string) (*domain.GeneratedCertificate, error) {
	ctx, cancel := context.WithTimeout(ctx, cUC.TimeOut)
	defer cancel()

	request, err := cUC.certRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if request.Status != domain.CertificateStatusApproved {
		return nil, fmt.Errorf("only an approved request can be generated")
	}

	now := time.Now()
	seq, err := cUC.certRepo.CountGeneratedInYear(ctx, request.SchoolID, now.Year())
	if err != nil {
		return nil, err
	}

	number := fmt.Sprintf("CERT-%d-%04d", now.Year(), seq+1)
	request.Status = domain.CertificateStatusGenerated
	request.ReviewedAt = &now
	request.ReviewedBy = &actor.UserID
	request.CertificateNumber = &number

	if err := cUC.certRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	png, err := qrcode.Encode(number, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("could not encode verification QR: %v", err)
	}

	if err := cUC.notifUC.NotifyCertificateStatus(ctx, request.StudentID, request.CertificateType, request.Status, request.ID, nil); err != nil {
		config.GetLogrusInstance().Errorf("certificate generation notification failed: %v", err)
	}

	return &domain.GeneratedCertificate{
		Request: *request,
		QRPNG:   png,
	}, nil
}
