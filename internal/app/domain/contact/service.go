// Package contact handles "Probetraining" requests from the landing page.
package contact

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/youcan-kampfsport/website/internal/app/models"
)

// SportSource supplies the discipline names a request may pick from.
type SportSource interface {
	SportTypes(ctx context.Context) ([]models.SportType, error)
}

// ValidationError lists the rejected form fields.
type ValidationError struct {
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return fmt.Sprintf("invalid fields: %s", strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() error { return models.ErrValidation }

// Service validates, screens and stores trial requests.
type Service struct {
	store    Store
	sports   SportSource
	spam     *SpamFilter
	validate *validator.Validate
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(store Store, sports SportSource, spam *SpamFilter, logger *zap.Logger) *Service {
	return &Service{
		store:    store,
		sports:   sports,
		spam:     spam,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
		now:      time.Now,
	}
}

// Submit stores a request after validation and spam screening. Validation
// failures wrap models.ErrValidation, spam wraps models.ErrSpam.
func (s *Service) Submit(ctx context.Context, in models.TrialRequestInput) (models.TrialRequest, error) {
	l := s.logger.With(zap.String("method", "Submit"))
	in = normalize(in)

	fields := s.fieldErrors(in)
	if in.Discipline != "" && in.Discipline != models.DisciplineUndecided {
		ok, err := s.knownDiscipline(ctx, in.Discipline)
		if err != nil {
			return models.TrialRequest{}, err
		}
		if !ok {
			fields = append(fields, models.FieldError{Field: "discipline", Message: "Bitte wähle eine Kampfsportart aus der Liste."})
		}
	}
	if len(fields) > 0 {
		l.Debug("Trial request rejected", zap.Int("fields", len(fields)))
		return models.TrialRequest{}, &ValidationError{Fields: fields}
	}

	if term, hit := s.spam.Match(in.FirstName + " " + in.LastName + " " + in.Message); hit {
		l.Info("Trial request flagged as spam", zap.String("term", term))
		return models.TrialRequest{}, fmt.Errorf("matched %q: %w", term, models.ErrSpam)
	}

	req := models.TrialRequest{
		ID:         uuid.New(),
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		Phone:      in.Phone,
		Discipline: in.Discipline,
		Message:    in.Message,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.store.Save(ctx, req); err != nil {
		return models.TrialRequest{}, fmt.Errorf("save trial request: %w", err)
	}
	l.Info("Trial request stored", zap.String("id", req.ID.String()), zap.String("discipline", req.Discipline))
	return req, nil
}

// Recent lists stored requests, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]models.TrialRequest, error) {
	return s.store.Recent(ctx, limit)
}

// Count reports how many requests are stored.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}

func normalize(in models.TrialRequestInput) models.TrialRequestInput {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Discipline = strings.TrimSpace(in.Discipline)
	in.Message = strings.TrimSpace(in.Message)
	return in
}

var fieldMessages = map[string]string{
	"first_name": "Bitte gib deinen Vornamen an.",
	"last_name":  "Bitte gib deinen Nachnamen an.",
	"email":      "Bitte gib eine gültige E-Mail-Adresse an.",
	"phone":      "Die Telefonnummer ist zu lang.",
	"message":    "Die Nachricht darf höchstens 2000 Zeichen lang sein.",
}

var structFields = map[string]string{
	"FirstName": "first_name",
	"LastName":  "last_name",
	"Email":     "email",
	"Phone":     "phone",
	"Message":   "message",
}

func (s *Service) fieldErrors(in models.TrialRequestInput) []models.FieldError {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []models.FieldError{{Field: "form", Message: "Ungültige Eingabe."}}
	}
	var out []models.FieldError
	for _, fe := range verrs {
		name := structFields[fe.StructField()]
		if slices.ContainsFunc(out, func(f models.FieldError) bool { return f.Field == name }) {
			continue
		}
		out = append(out, models.FieldError{Field: name, Message: fieldMessages[name]})
	}
	return out
}

func (s *Service) knownDiscipline(ctx context.Context, name string) (bool, error) {
	sports, err := s.sports.SportTypes(ctx)
	if err != nil {
		return false, fmt.Errorf("load disciplines: %w", err)
	}
	return slices.ContainsFunc(sports, func(st models.SportType) bool { return st.Name == name }), nil
}
