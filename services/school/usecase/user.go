package usecase

import (
	"context"
	"edusphere/config"
	"edusphere/domain"
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type userUC struct {
	userRepo   domain.UserRepo
	schoolRepo domain.SchoolRepo
	notifUC    domain.NotificationUseCase
	TimeOut    time.Duration
}

func NewUserUseCase(repo domain.UserRepo, schoolRepo domain.SchoolRepo, notifUC domain.NotificationUseCase, timeOut time.Duration) domain.UserUseCase {
	return &userUC{
		userRepo:   repo,
		schoolRepo: schoolRepo,
		notifUC:    notifUC,
		TimeOut:    timeOut,
	}
}

// CreateUser registers the account, writes the in-app welcome notification
// and mails the welcome email. Both welcomes are best-effort: a failure is
// logged and does not undo the registration.
func (uUC *userUC) CreateUser(ctx context.Context, actor domain.Claims, payload *domain.CreateUserPayload) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, uUC.TimeOut)
	defer cancel()

	if _, err := govalidator.ValidateStruct(payload); err != nil {
		return nil, err
	}

	if actor.Role != domain.RoleSuperAdmin && actor.Role != domain.RolePrincipal {
		return nil, fmt.Errorf("only a principal or super admin can create users")
	}

	// A principal can only register users into their own school.
	if actor.Role == domain.RolePrincipal {
		if actor.SchoolID == nil || payload.SchoolID == nil || *payload.SchoolID != *actor.SchoolID {
			return nil, fmt.Errorf("cannot create a user outside your school")
		}
	}

	if _, err := uUC.userRepo.FindUserByEmail(ctx, payload.Email); err == nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         payload.Name,
		Email:        payload.Email,
		Password:     string(hashed),
		Role:         payload.Role,
		SchoolID:     payload.SchoolID,
		Phone:        payload.Phone,
		ClassID:      payload.ClassID,
		RollNumber:   payload.RollNumber,
		IsFirstLogin: true,
		CreatedAt:    time.Now(),
	}

	if err := uUC.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	if err := uUC.notifUC.NotifyWelcome(ctx, user.ID, user.Name, user.Role); err != nil {
		config.GetLogrusInstance().Errorf("welcome notification failed for user %s: %v", user.ID, err)
	}

	schoolName := "EduSphere"
	if user.SchoolID != nil {
		if school, err := uUC.schoolRepo.GetByID(ctx, *user.SchoolID); err == nil {
			schoolName = school.Name
		}
	}
	if err := config.SendWelcomeEmail(user.Name, user.Email, user.Role, schoolName); err != nil {
		config.GetLogrusInstance().Errorf("welcome email failed for user %s: %v", user.ID, err)
	}

	return user, nil
}

func (uUC *userUC) GetUser(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, uUC.TimeOut)
	defer cancel()

	return uUC.userRepo.GetUserByID(ctx, id)
}

func (uUC *userUC) GetSchoolUsers(ctx context.Context, schoolID string) (*[]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, uUC.TimeOut)
	defer cancel()

	return uUC.userRepo.GetSchoolUsers(ctx, schoolID)
}

func (uUC *userUC) GetSchoolStudents(ctx context.Context, schoolID string) (*[]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, uUC.TimeOut)
	defer cancel()

	return uUC.userRepo.GetSchoolUsersByRole(ctx, schoolID, domain.RoleStudent)
}

// ResolveNotificationRecipients returns the ids of every user of the
// school except super admins: the fan-out recipient set for school-wide
// events.
func (uUC *userUC) ResolveNotificationRecipients(ctx context.Context, schoolID string) ([]string, error) {
	users, err := uUC.userRepo.GetSchoolUsers(ctx, schoolID)
	if err != nil {
		return nil, err
	}

	var recipients []string
	for _, user := range *users {
		if user.Role == domain.RoleSuperAdmin {
			continue
		}
		recipients = append(recipients, user.ID)
	}

	return recipients, nil
}
