package application

import (
	"context"
	"errors"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"union-portal/internal/domain"
	"union-portal/internal/repository"
	"union-portal/internal/service/email"
)

var ErrApplicationNotFound = errors.New("application not found")

const minMotivationLength = 20

// SheetAppender forwards an accepted application row to the recruiters'
// spreadsheet.
type SheetAppender interface {
	Append(ctx context.Context, app domain.Application) error
}

type Service interface {
	Submit(ctx context.Context, input domain.CreateApplicationInput) (*domain.Application, error)
	List(ctx context.Context, status *domain.ApplicationStatus, params domain.PaginationParams) (domain.PaginatedResponse[domain.Application], error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) (*domain.Application, error)
}

type service struct {
	appRepo  repository.ApplicationRepository
	sheets   SheetAppender
	emailSvc email.Service
}

func NewService(appRepo repository.ApplicationRepository, sheets SheetAppender, emailSvc email.Service) Service {
	return &service{
		appRepo:  appRepo,
		sheets:   sheets,
		emailSvc: emailSvc,
	}
}

// Submit persists the application, then forwards it to the spreadsheet and
// sends the confirmation email. The database row is authoritative; a failed
// forward is logged and retried by hand from the admin panel, not by code.
func (s *service) Submit(ctx context.Context, input domain.CreateApplicationInput) (*domain.Application, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	app := &domain.Application{
		ID:         uuid.New(),
		FullName:   strings.TrimSpace(input.FullName),
		Email:      strings.TrimSpace(input.Email),
		StudentID:  strings.TrimSpace(input.StudentID),
		Department: strings.TrimSpace(input.Department),
		Motivation: strings.TrimSpace(input.Motivation),
		Status:     domain.ApplicationReceived,
	}

	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	if s.sheets != nil {
		if err := s.sheets.Append(ctx, *app); err != nil {
			log.Printf("Failed to forward application %s to sheet: %v", app.ID, err)
		}
	}

	if s.emailSvc != nil {
		go func() {
			if err := s.emailSvc.SendApplicationReceived(context.Background(), app.Email, app.FullName); err != nil {
				log.Printf("Failed to send application confirmation email: %v", err)
			}
		}()
	}

	return app, nil
}

func (s *service) List(ctx context.Context, status *domain.ApplicationStatus, params domain.PaginationParams) (domain.PaginatedResponse[domain.Application], error) {
	apps, total, err := s.appRepo.List(ctx, status, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Application]{}, err
	}
	params.Validate()
	return domain.NewPaginatedResponse(apps, params.Page, params.PageSize, total), nil
}

func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) (*domain.Application, error) {
	if !status.IsValid() {
		return nil, domain.NewValidationError(domain.FieldIssue{Field: "status", Message: "unknown status"})
	}

	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}

	if err := s.appRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	app.Status = status

	if s.emailSvc != nil && (status == domain.ApplicationAccepted || status == domain.ApplicationRejected) {
		go func() {
			if err := s.emailSvc.SendApplicationStatus(context.Background(), app.Email, app.FullName, string(status)); err != nil {
				log.Printf("Failed to send application status email: %v", err)
			}
		}()
	}

	return app, nil
}

func validate(input domain.CreateApplicationInput) error {
	var issues []domain.FieldIssue

	if strings.TrimSpace(input.FullName) == "" {
		issues = append(issues, domain.FieldIssue{Field: "full_name", Message: "full name is required"})
	}

	emailAddr := strings.TrimSpace(input.Email)
	if emailAddr == "" {
		issues = append(issues, domain.FieldIssue{Field: "email", Message: "email is required"})
	} else if !strings.Contains(emailAddr, "@") {
		issues = append(issues, domain.FieldIssue{Field: "email", Message: "email is invalid"})
	}

	if strings.TrimSpace(input.StudentID) == "" {
		issues = append(issues, domain.FieldIssue{Field: "student_id", Message: "student id is required"})
	}
	if strings.TrimSpace(input.Department) == "" {
		issues = append(issues, domain.FieldIssue{Field: "department", Message: "department is required"})
	}
	if utf8.RuneCountInString(strings.TrimSpace(input.Motivation)) < minMotivationLength {
		issues = append(issues, domain.FieldIssue{Field: "motivation", Message: "motivation is too short"})
	}

	if len(issues) > 0 {
		return domain.NewValidationError(issues...)
	}
	return nil
}
