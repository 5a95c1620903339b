package usecase

import (
	"context"
	"edusphere/config"
	"edusphere/domain"
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
)

var holidayTypeLabels = map[string]string{
	domain.HolidayTypeNational:  "National Holiday",
	domain.HolidayTypeReligious: "Religious Holiday",
	domain.HolidayTypeSchool:    "School Holiday",
	domain.HolidayTypeEmergency: "Emergency Closure",
}

type holidayUC struct {
	holidayRepo domain.HolidayRepo
	userUC      domain.UserUseCase
	notifUC     domain.NotificationUseCase
	TimeOut     time.Duration
}

func NewHolidayUseCase(repo domain.HolidayRepo, userUC domain.UserUseCase, notifUC domain.NotificationUseCase, timeOut time.Duration) domain.HolidayUseCase {
	return &holidayUC{
		holidayRepo: repo,
		userUC:      userUC,
		notifUC:     notifUC,
		TimeOut:     timeOut,
	}
}

// CreateHoliday persists the holiday, fans the announcement out to every
// non-super-admin user of the school, then flips notification_sent. The
// fan-out and the flag write are two independent writes with no
// compensation between them.
func (hUC *holidayUC) CreateHoliday(ctx context.Context, actor domain.Claims, holiday *domain.Holiday) error {
	ctx, cancel := context.WithTimeout(ctx, hUC.TimeOut)
	defer cancel()

	if holiday.Title == "" || holiday.Date.IsZero() {
		return fmt.Errorf("title and date are required")
	}

	holiday.ID = uuid.NewString()
	holiday.CreatedBy = actor.UserID
	holiday.CreatedAt = time.Now()
	holiday.NotificationSent = false

	if _, err := govalidator.ValidateStruct(holiday); err != nil {
		return err
	}

	if err := hUC.holidayRepo.Insert(ctx, holiday); err != nil {
		return err
	}

	if err := hUC.fanOutAnnouncement(ctx, holiday); err != nil {
		config.GetLogrusInstance().Errorf("holiday announcement fan-out failed: %v", err)
		return nil
	}

	if err := hUC.holidayRepo.SetNotificationSent(ctx, holiday.ID); err != nil {
		config.GetLogrusInstance().Errorf("could not set notification sent flag: %v", err)
		return nil
	}
	holiday.NotificationSent = true

	return nil
}

func (hUC *holidayUC) GetSchoolHolidays(ctx context.Context, schoolID string) (*[]domain.Holiday, error) {
	ctx, cancel := context.WithTimeout(ctx, hUC.TimeOut)
	defer cancel()

	return hUC.holidayRepo.GetBySchool(ctx, schoolID)
}

// UpdateHoliday saves the edit and fans out an update warning, but only
// when the date or the title actually changed.
func (hUC *holidayUC) UpdateHoliday(ctx context.Context, actor domain.Claims, holiday *domain.Holiday) error {
	ctx, cancel := context.WithTimeout(ctx, hUC.TimeOut)
	defer cancel()

	previous, err := hUC.holidayRepo.GetByID(ctx, holiday.ID)
	if err != nil {
		return err
	}

	holiday.SchoolID = previous.SchoolID
	holiday.CreatedBy = previous.CreatedBy
	holiday.CreatedAt = previous.CreatedAt
	holiday.NotificationSent = previous.NotificationSent

	if _, err := govalidator.ValidateStruct(holiday); err != nil {
		return err
	}

	if err := hUC.holidayRepo.Update(ctx, holiday); err != nil {
		return err
	}

	changed := !previous.Date.Equal(holiday.Date) || previous.Title != holiday.Title
	if !changed {
		return nil
	}

	recipients, err := hUC.userUC.ResolveNotificationRecipients(ctx, holiday.SchoolID)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("Holiday Updated: %s", holiday.Title)
	message := fmt.Sprintf("Holiday details have been updated. New date: %s. %s",
		holiday.Date.Format("02/01/2006"), holiday.Description)

	_, err = hUC.notifUC.CreateForMany(ctx, recipients, title, message, domain.CategoryWarning, nil)
	return err
}

// DeleteHoliday removes the holiday and fans out a cancellation notice
// referencing the original date.
func (hUC *holidayUC) DeleteHoliday(ctx context.Context, actor domain.Claims, id string) error {
	ctx, cancel := context.WithTimeout(ctx, hUC.TimeOut)
	defer cancel()

	holiday, err := hUC.holidayRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := hUC.holidayRepo.Delete(ctx, id); err != nil {
		return err
	}

	recipients, err := hUC.userUC.ResolveNotificationRecipients(ctx, holiday.SchoolID)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("Holiday Cancelled: %s", holiday.Title)
	message := fmt.Sprintf("The holiday scheduled for %s has been cancelled. Please check the updated schedule.",
		holiday.Date.Format("02/01/2006"))

	_, err = hUC.notifUC.CreateForMany(ctx, recipients, title, message, domain.CategoryError, nil)
	return err
}

// ResendNotifications re-runs the announcement fan-out for a holiday whose
// notification_sent flag is still false.
func (hUC *holidayUC) ResendNotifications(ctx context.Context, actor domain.Claims, id string) error {
	ctx, cancel := context.WithTimeout(ctx, hUC.TimeOut)
	defer cancel()

	holiday, err := hUC.holidayRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if holiday.NotificationSent {
		return fmt.Errorf("notifications already sent for this holiday")
	}

	if err := hUC.fanOutAnnouncement(ctx, holiday); err != nil {
		return err
	}

	return hUC.holidayRepo.SetNotificationSent(ctx, holiday.ID)
}

func (hUC *holidayUC) fanOutAnnouncement(ctx context.Context, holiday *domain.Holiday) error {
	recipients, err := hUC.userUC.ResolveNotificationRecipients(ctx, holiday.SchoolID)
	if err != nil {
		return err
	}

	label, ok := holidayTypeLabels[holiday.Type]
	if !ok {
		label = "Holiday"
	}

	title := fmt.Sprintf("Holiday Announced: %s", holiday.Title)
	message := fmt.Sprintf("%s on %s. %s", label, holiday.Date.Format("02/01/2006"), holiday.Description)

	_, err = hUC.notifUC.CreateForMany(ctx, recipients, title, message, domain.CategoryInfo, nil)
	return err
}
