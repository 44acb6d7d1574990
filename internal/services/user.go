package services

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"alfredoptarigan/job-portal/internal/models"
	"alfredoptarigan/job-portal/internal/repositories"
)

type UserService interface {
	Register(ctx context.Context, req models.RegisterUserRequest) (*models.User, error)
	Get(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req models.UpdateProfileRequest) (*models.User, error)
	UploadResume(ctx context.Context, userID uuid.UUID, file *multipart.FileHeader) (*models.UploadResponse, error)
}

type userService struct {
	store       repositories.Store
	validator   InputValidator
	storage     StorageService
	pdfParser   PDFParserService
	maxFileSize int64
}

func NewUserService(
	store repositories.Store,
	validator InputValidator,
	storage StorageService,
	pdfParser PDFParserService,
	maxFileSize int64,
) UserService {
	return &userService{
		store:       store,
		validator:   validator,
		storage:     storage,
		pdfParser:   pdfParser,
		maxFileSize: maxFileSize,
	}
}

// Register stores a user record. Credentials live with the authentication
// provider, not here.
func (s *userService) Register(ctx context.Context, req models.RegisterUserRequest) (*models.User, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	store := s.store.WithContext(ctx)

	exists, err := store.Users().ExistsByEmail(req.Email)
	if err != nil {
		return nil, Internal("failed to check email", err)
	}
	if exists {
		return nil, Conflict("a user with this email already exists")
	}

	now := time.Now()
	user := &models.User{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Role:      req.Role,
		Skills:    pq.StringArray{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := store.Users().Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, Conflict("a user with this email already exists")
		}
		return nil, Internal("failed to create user", err)
	}

	log.Info().Str("user_id", user.ID.String()).Str("role", string(user.Role)).Msg("user registered")
	return user, nil
}

func (s *userService) Get(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.store.WithContext(ctx).Users().FindByID(userID)
	if err != nil {
		return nil, notFoundOr(err, "user not found", "failed to load user")
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req models.UpdateProfileRequest) (*models.User, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	store := s.store.WithContext(ctx)

	user, err := store.Users().FindByID(userID)
	if err != nil {
		return nil, notFoundOr(err, "user not found", "failed to load user")
	}

	user.Name = req.Name
	user.Phone = req.Phone
	user.Bio = req.Bio
	user.Resume = req.Resume
	user.ResumeName = req.ResumeName
	user.TotalExperienceYears = req.TotalExperienceYears
	user.Skills = pq.StringArray(trimAll(req.Skills))
	user.Location = strings.TrimSpace(req.Location)

	if err := store.Users().Update(user); err != nil {
		return nil, notFoundOr(err, "user not found", "failed to update profile")
	}
	return user, nil
}

// UploadResume stores a PDF resume and points the profile at it. The file is
// removed again if it is not a readable PDF or the profile update fails.
func (s *userService) UploadResume(ctx context.Context, userID uuid.UUID, file *multipart.FileHeader) (*models.UploadResponse, error) {
	if file == nil {
		return nil, Unprocessable("resume file is required")
	}
	if file.Size > s.maxFileSize {
		return nil, Unprocessable("resume file too large, max size: %d bytes", s.maxFileSize)
	}

	store := s.store.WithContext(ctx)

	user, err := store.Users().FindByID(userID)
	if err != nil {
		return nil, notFoundOr(err, "user not found", "failed to load user")
	}

	path, err := s.storage.SaveResume(file, user.ID)
	if err != nil {
		return nil, Unprocessable("failed to save resume: %v", err)
	}

	content, err := s.pdfParser.Inspect(path)
	if err != nil {
		s.removeFile(path)
		return nil, Unprocessable("resume is not a readable PDF: %v", err)
	}

	user.Resume = path
	user.ResumeName = file.Filename
	if err := store.Users().Update(user); err != nil {
		s.removeFile(path)
		return nil, notFoundOr(err, "user not found", "failed to update profile")
	}

	log.Info().Str("user_id", user.ID.String()).Int("pages", content.PageCount).Msg("resume uploaded")

	return &models.UploadResponse{
		Resume:     user.Resume,
		ResumeName: user.ResumeName,
		PageCount:  content.PageCount,
	}, nil
}

func (s *userService) removeFile(path string) {
	if err := s.storage.DeleteFile(path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to clean up resume file")
	}
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
