package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"alfredoptarigan/job-portal/internal/models"
	"alfredoptarigan/job-portal/internal/repositories"
)

// memStore is an in-memory repositories.Store. Transaction restores a
// snapshot when fn fails.
type memStore struct {
	data *memData
}

type savedKey struct {
	userID uuid.UUID
	jobID  uuid.UUID
}

type memData struct {
	users         map[uuid.UUID]models.User
	companies     map[uuid.UUID]models.Company
	jobs          map[uuid.UUID]models.Job
	applications  map[uuid.UUID]models.Application
	notifications []models.Notification
	saved         map[savedKey]models.SavedJob
	savedOrder    []savedKey

	failNotifications bool
}

func newMemStore() *memStore {
	return &memStore{data: &memData{
		users:        map[uuid.UUID]models.User{},
		companies:    map[uuid.UUID]models.Company{},
		jobs:         map[uuid.UUID]models.Job{},
		applications: map[uuid.UUID]models.Application{},
		saved:        map[savedKey]models.SavedJob{},
	}}
}

func (d *memData) clone() memData {
	c := memData{
		users:             make(map[uuid.UUID]models.User, len(d.users)),
		companies:         make(map[uuid.UUID]models.Company, len(d.companies)),
		jobs:              make(map[uuid.UUID]models.Job, len(d.jobs)),
		applications:      make(map[uuid.UUID]models.Application, len(d.applications)),
		notifications:     append([]models.Notification(nil), d.notifications...),
		saved:             make(map[savedKey]models.SavedJob, len(d.saved)),
		savedOrder:        append([]savedKey(nil), d.savedOrder...),
		failNotifications: d.failNotifications,
	}
	for k, v := range d.users {
		c.users[k] = v
	}
	for k, v := range d.companies {
		c.companies[k] = v
	}
	for k, v := range d.jobs {
		c.jobs[k] = v
	}
	for k, v := range d.applications {
		c.applications[k] = v
	}
	for k, v := range d.saved {
		c.saved[k] = v
	}
	return c
}

func (s *memStore) WithContext(ctx context.Context) repositories.Store { return s }

func (s *memStore) Transaction(ctx context.Context, fn func(tx repositories.Store) error) error {
	snapshot := s.data.clone()
	if err := fn(s); err != nil {
		*s.data = snapshot
		return err
	}
	return nil
}

func (s *memStore) Users() repositories.UserRepository                 { return memUsers{s.data} }
func (s *memStore) Companies() repositories.CompanyRepository          { return memCompanies{s.data} }
func (s *memStore) Jobs() repositories.JobRepository                   { return memJobs{s.data} }
func (s *memStore) Applications() repositories.ApplicationRepository   { return memApplications{s.data} }
func (s *memStore) Notifications() repositories.NotificationRepository { return memNotifications{s.data} }
func (s *memStore) SavedJobs() repositories.SavedJobRepository         { return memSavedJobs{s.data} }

func notFound(what string) error {
	return fmt.Errorf("%s not found: %w", what, repositories.ErrNotFound)
}

type memUsers struct{ d *memData }

func (r memUsers) Create(u *models.User) error {
	for _, existing := range r.d.users {
		if existing.Email == u.Email {
			return fmt.Errorf("user already exists: %w", repositories.ErrDuplicate)
		}
	}
	r.d.users[u.ID] = *u
	return nil
}

func (r memUsers) FindByID(id uuid.UUID) (*models.User, error) {
	u, ok := r.d.users[id]
	if !ok {
		return nil, notFound("user")
	}
	return &u, nil
}

func (r memUsers) ExistsByEmail(email string) (bool, error) {
	for _, u := range r.d.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r memUsers) Update(u *models.User) error {
	existing, ok := r.d.users[u.ID]
	if !ok {
		return notFound("user")
	}
	existing.Name = u.Name
	existing.Phone = u.Phone
	existing.Bio = u.Bio
	existing.Resume = u.Resume
	existing.ResumeName = u.ResumeName
	existing.TotalExperienceYears = u.TotalExperienceYears
	existing.Skills = u.Skills
	existing.Location = u.Location
	r.d.users[u.ID] = existing
	return nil
}

type memCompanies struct{ d *memData }

func (r memCompanies) Create(c *models.Company) error {
	for _, existing := range r.d.companies {
		if existing.Name == c.Name || existing.Email == c.Email {
			return fmt.Errorf("company already exists: %w", repositories.ErrDuplicate)
		}
	}
	r.d.companies[c.ID] = *c
	return nil
}

func (r memCompanies) FindByID(id uuid.UUID) (*models.Company, error) {
	c, ok := r.d.companies[id]
	if !ok {
		return nil, notFound("company")
	}
	return &c, nil
}

func (r memCompanies) FindByOwner(ownerID uuid.UUID) ([]models.Company, error) {
	var out []models.Company
	for _, c := range r.d.companies {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r memCompanies) ExistsByNameOrEmail(name, email string, exclude *uuid.UUID) (bool, error) {
	for _, c := range r.d.companies {
		if exclude != nil && c.ID == *exclude {
			continue
		}
		if c.Name == name || c.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r memCompanies) Update(c *models.Company) error {
	if _, ok := r.d.companies[c.ID]; !ok {
		return notFound("company")
	}
	r.d.companies[c.ID] = *c
	return nil
}

type memJobs struct{ d *memData }

func (r memJobs) Create(j *models.Job) error {
	r.d.jobs[j.ID] = *j
	return nil
}

func (r memJobs) FindByID(id uuid.UUID) (*models.Job, error) {
	j, ok := r.d.jobs[id]
	if !ok {
		return nil, notFound("job")
	}
	return &j, nil
}

func (r memJobs) FindActiveByID(id uuid.UUID) (*models.Job, error) {
	j, ok := r.d.jobs[id]
	if !ok || j.IsDeleted {
		return nil, notFound("job")
	}
	return &j, nil
}

func (r memJobs) FindActiveByIDs(ids []uuid.UUID) ([]models.Job, error) {
	var out []models.Job
	for _, id := range ids {
		if j, ok := r.d.jobs[id]; ok && !j.IsDeleted {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r memJobs) FindActive(filter models.JobFilter) ([]models.Job, int64, error) {
	var matched []models.Job
	for _, j := range r.d.jobs {
		if j.IsDeleted {
			continue
		}
		if filter.Keyword != "" && !strings.Contains(strings.ToLower(j.Title), strings.ToLower(filter.Keyword)) {
			continue
		}
		if filter.JobType != "" && j.JobType != filter.JobType {
			continue
		}
		if filter.CompanyID != nil && j.CompanyID != *filter.CompanyID {
			continue
		}
		matched = append(matched, j)
	}
	sort.Slice(matched, func(a, b int) bool { return matched[a].CreatedAt.After(matched[b].CreatedAt) })

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r memJobs) FindByCompany(companyID uuid.UUID) ([]models.Job, error) {
	var out []models.Job
	for _, j := range r.d.jobs {
		if j.CompanyID == companyID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r memJobs) Update(j *models.Job) error {
	existing, ok := r.d.jobs[j.ID]
	if !ok || existing.IsDeleted {
		return notFound("job")
	}
	r.d.jobs[j.ID] = *j
	return nil
}

func (r memJobs) SoftDelete(id uuid.UUID) error {
	j, ok := r.d.jobs[id]
	if !ok || j.IsDeleted {
		return notFound("job")
	}
	j.IsDeleted = true
	r.d.jobs[id] = j
	return nil
}

type memApplications struct{ d *memData }

func (r memApplications) Create(a *models.Application) error {
	for _, existing := range r.d.applications {
		if existing.JobID == a.JobID && existing.ApplicantID == a.ApplicantID {
			return fmt.Errorf("application already exists: %w", repositories.ErrDuplicate)
		}
	}
	r.d.applications[a.ID] = *a
	return nil
}

func (r memApplications) FindByID(id uuid.UUID) (*models.Application, error) {
	a, ok := r.d.applications[id]
	if !ok {
		return nil, notFound("application")
	}
	return &a, nil
}

func (r memApplications) Exists(jobID, applicantID uuid.UUID) (bool, error) {
	for _, a := range r.d.applications {
		if a.JobID == jobID && a.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}

func (r memApplications) FindByJob(jobID uuid.UUID) ([]models.Application, error) {
	var out []models.Application
	for _, a := range r.d.applications {
		if a.JobID == jobID {
			a.Applicant = r.d.users[a.ApplicantID]
			out = append(out, a)
		}
	}
	return out, nil
}

func (r memApplications) FindByApplicant(applicantID uuid.UUID) ([]models.Application, error) {
	var out []models.Application
	for _, a := range r.d.applications {
		if a.ApplicantID == applicantID {
			a.Job = r.d.jobs[a.JobID]
			out = append(out, a)
		}
	}
	return out, nil
}

func (r memApplications) UpdateStatusFrom(id uuid.UUID, from, to models.ApplicationStatus) (bool, error) {
	a, ok := r.d.applications[id]
	if !ok || a.Status != from {
		return false, nil
	}
	a.Status = to
	r.d.applications[id] = a
	return true, nil
}

type memNotifications struct{ d *memData }

func (r memNotifications) Append(n *models.Notification) error {
	if r.d.failNotifications {
		return errors.New("notification store unavailable")
	}
	r.d.notifications = append(r.d.notifications, *n)
	return nil
}

func (r memNotifications) FindByUser(userID uuid.UUID) ([]models.Notification, error) {
	var out []models.Notification
	for i := len(r.d.notifications) - 1; i >= 0; i-- {
		if r.d.notifications[i].UserID == userID {
			out = append(out, r.d.notifications[i])
		}
	}
	return out, nil
}

func (r memNotifications) MarkAllSeen(userID uuid.UUID) (int64, error) {
	var n int64
	for i := range r.d.notifications {
		if r.d.notifications[i].UserID == userID && !r.d.notifications[i].Seen {
			r.d.notifications[i].Seen = true
			n++
		}
	}
	return n, nil
}

func (r memNotifications) DeleteSeen(userID uuid.UUID) (int64, error) {
	var n int64
	kept := r.d.notifications[:0]
	for _, item := range r.d.notifications {
		if item.UserID == userID && item.Seen {
			n++
			continue
		}
		kept = append(kept, item)
	}
	r.d.notifications = kept
	return n, nil
}

type memSavedJobs struct{ d *memData }

func (r memSavedJobs) Create(s *models.SavedJob) error {
	key := savedKey{s.UserID, s.JobID}
	if _, ok := r.d.saved[key]; ok {
		return fmt.Errorf("saved job already exists: %w", repositories.ErrDuplicate)
	}
	r.d.saved[key] = *s
	r.d.savedOrder = append(r.d.savedOrder, key)
	return nil
}

func (r memSavedJobs) Exists(userID, jobID uuid.UUID) (bool, error) {
	_, ok := r.d.saved[savedKey{userID, jobID}]
	return ok, nil
}

func (r memSavedJobs) Delete(userID, jobID uuid.UUID) error {
	key := savedKey{userID, jobID}
	if _, ok := r.d.saved[key]; !ok {
		return notFound("saved job")
	}
	delete(r.d.saved, key)
	for i, k := range r.d.savedOrder {
		if k == key {
			r.d.savedOrder = append(r.d.savedOrder[:i], r.d.savedOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (r memSavedJobs) FindJobIDsByUser(userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for i := len(r.d.savedOrder) - 1; i >= 0; i-- {
		if r.d.savedOrder[i].userID == userID {
			ids = append(ids, r.d.savedOrder[i].jobID)
		}
	}
	return ids, nil
}
