package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"alfredoptarigan/job-portal/internal/models"
	"alfredoptarigan/job-portal/internal/repositories"
)

type CompanyService interface {
	Create(ctx context.Context, callerID uuid.UUID, req models.CompanyRequest) (*models.Company, error)
	Update(ctx context.Context, callerID, companyID uuid.UUID, req models.CompanyRequest) (*models.Company, error)
	Get(ctx context.Context, companyID uuid.UUID) (*models.Company, error)
	ListMine(ctx context.Context, callerID uuid.UUID) ([]models.Company, error)
	Jobs(ctx context.Context, companyID uuid.UUID) (*models.CompanyJobs, error)
}

type companyService struct {
	store     repositories.Store
	validator InputValidator
}

func NewCompanyService(store repositories.Store, validator InputValidator) CompanyService {
	return &companyService{store: store, validator: validator}
}

func (s *companyService) Create(ctx context.Context, callerID uuid.UUID, req models.CompanyRequest) (*models.Company, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	var created *models.Company
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		caller, err := tx.Users().FindByID(callerID)
		if err != nil {
			return notFoundOr(err, "user not found", "failed to load user")
		}
		if !caller.IsRecruiter() {
			return Forbidden("only recruiters can create companies")
		}

		taken, err := tx.Companies().ExistsByNameOrEmail(req.Name, req.Email, nil)
		if err != nil {
			return Internal("failed to check company uniqueness", err)
		}
		if taken {
			return Conflict("a company with this name or email already exists")
		}

		now := time.Now()
		company := &models.Company{
			ID:          uuid.New(),
			Name:        req.Name,
			Email:       req.Email,
			Description: req.Description,
			Website:     req.Website,
			Location:    req.Location,
			OwnerID:     callerID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := tx.Companies().Create(company); err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				return Conflict("a company with this name or email already exists")
			}
			return Internal("failed to create company", err)
		}
		created = company
		return nil
	})
	if err != nil {
		return nil, passThrough("failed to create company", err)
	}

	log.Info().Str("company_id", created.ID.String()).Str("owner_id", callerID.String()).Msg("company created")
	return created, nil
}

func (s *companyService) Update(ctx context.Context, callerID, companyID uuid.UUID, req models.CompanyRequest) (*models.Company, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	store := s.store.WithContext(ctx)

	company, err := store.Companies().FindByID(companyID)
	if err != nil {
		return nil, notFoundOr(err, "company not found", "failed to load company")
	}
	if err := ensureOwner(company.OwnerID, callerID, "update this company"); err != nil {
		return nil, err
	}

	taken, err := store.Companies().ExistsByNameOrEmail(req.Name, req.Email, &company.ID)
	if err != nil {
		return nil, Internal("failed to check company uniqueness", err)
	}
	if taken {
		return nil, Conflict("a company with this name or email already exists")
	}

	company.Name = req.Name
	company.Email = req.Email
	company.Description = req.Description
	company.Website = req.Website
	company.Location = req.Location

	if err := store.Companies().Update(company); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, Conflict("a company with this name or email already exists")
		}
		return nil, notFoundOr(err, "company not found", "failed to update company")
	}
	return company, nil
}

func (s *companyService) Get(ctx context.Context, companyID uuid.UUID) (*models.Company, error) {
	company, err := s.store.WithContext(ctx).Companies().FindByID(companyID)
	if err != nil {
		return nil, notFoundOr(err, "company not found", "failed to load company")
	}
	return company, nil
}

func (s *companyService) ListMine(ctx context.Context, callerID uuid.UUID) ([]models.Company, error) {
	companies, err := s.store.WithContext(ctx).Companies().FindByOwner(callerID)
	if err != nil {
		return nil, Internal("failed to load companies", err)
	}
	if companies == nil {
		companies = []models.Company{}
	}
	return companies, nil
}

// Jobs derives the open/closed partition from the soft-delete flag, so every
// job lands in exactly one list.
func (s *companyService) Jobs(ctx context.Context, companyID uuid.UUID) (*models.CompanyJobs, error) {
	store := s.store.WithContext(ctx)

	if _, err := store.Companies().FindByID(companyID); err != nil {
		return nil, notFoundOr(err, "company not found", "failed to load company")
	}

	jobs, err := store.Jobs().FindByCompany(companyID)
	if err != nil {
		return nil, Internal("failed to load company jobs", err)
	}

	result := &models.CompanyJobs{
		CompanyID:  companyID,
		OpenJobs:   []uuid.UUID{},
		ClosedJobs: []uuid.UUID{},
	}
	for _, j := range jobs {
		if j.IsDeleted {
			result.ClosedJobs = append(result.ClosedJobs, j.ID)
		} else {
			result.OpenJobs = append(result.OpenJobs, j.ID)
		}
	}
	return result, nil
}
