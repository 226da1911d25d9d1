package services

import (
	"context"

	"github.com/rajni12071985-debug/pragati/internal/app/models"
	"github.com/rajni12071985-debug/pragati/internal/pkg/apperrors"
)

// In-memory doubles for the narrow repository interfaces the services
// consume. They enforce the same sentinel errors the real repositories
// return, so service behaviour under not-found and conflict paths can be
// exercised without a database.

type fakeStudents struct {
	byID   map[string]*models.Student
	byRoll map[string]*models.Student

	// teams, when linked, feeds the leader counter.
	teams *fakeTeams
}

func newFakeStudents(students ...*models.Student) *fakeStudents {
	f := &fakeStudents{
		byID:   make(map[string]*models.Student),
		byRoll: make(map[string]*models.Student),
	}
	for _, s := range students {
		f.byID[s.ID] = s
		f.byRoll[s.RollNumber] = s
	}
	return f
}

func (f *fakeStudents) GetByID(_ context.Context, id string) (*models.Student, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return s, nil
}

func (f *fakeStudents) GetByRollNumber(_ context.Context, rollNumber string) (*models.Student, error) {
	s, ok := f.byRoll[rollNumber]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return s, nil
}

func (f *fakeStudents) Create(_ context.Context, student *models.Student) error {
	if _, ok := f.byRoll[student.RollNumber]; ok {
		return apperrors.ErrResourceAlreadyExists
	}
	f.byID[student.ID] = student
	f.byRoll[student.RollNumber] = student
	return nil
}

func (f *fakeStudents) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.byID)), nil
}

func (f *fakeStudents) CountByBranch(_ context.Context, branch string) (int64, error) {
	var count int64
	for _, s := range f.byID {
		if s.Branch == branch {
			count++
		}
	}
	return count, nil
}

func (f *fakeStudents) CountLeaders(_ context.Context) (int64, error) {
	if f.teams == nil {
		return 0, nil
	}
	leaders := make(map[string]bool)
	for _, team := range f.teams.byID {
		leaders[team.LeaderID] = true
	}
	return int64(len(leaders)), nil
}

type fakeTeams struct {
	byID    map[string]*models.Team
	members map[string]map[string]bool
}

func newFakeTeams(teams ...*models.Team) *fakeTeams {
	f := &fakeTeams{
		byID:    make(map[string]*models.Team),
		members: make(map[string]map[string]bool),
	}
	for _, team := range teams {
		f.byID[team.ID] = team
		roster := make(map[string]bool)
		for _, id := range team.MemberIDs {
			roster[id] = true
		}
		f.members[team.ID] = roster
	}
	return f
}

func (f *fakeTeams) GetByID(_ context.Context, id string) (*models.Team, error) {
	team, ok := f.byID[id]
	if !ok {
		return nil, apperrors.ErrTeamNotFound
	}
	return team, nil
}

func (f *fakeTeams) IsMember(_ context.Context, teamID, studentID string) (bool, error) {
	if team, ok := f.byID[teamID]; ok && team.LeaderID == studentID {
		return true, nil
	}
	return f.members[teamID][studentID], nil
}

func (f *fakeTeams) Create(_ context.Context, team *models.Team) error {
	f.byID[team.ID] = team
	roster := make(map[string]bool)
	for _, id := range team.MemberIDs {
		roster[id] = true
	}
	f.members[team.ID] = roster
	return nil
}

func (f *fakeTeams) List(_ context.Context, _ string) ([]models.Team, error) {
	teams := make([]models.Team, 0, len(f.byID))
	for _, team := range f.byID {
		teams = append(teams, *team)
	}
	return teams, nil
}

func (f *fakeTeams) UpdateStatus(_ context.Context, id string, status models.Status) error {
	team, ok := f.byID[id]
	if !ok {
		return apperrors.ErrTeamNotFound
	}
	team.Status = status
	if status == models.StatusRejected {
		team.MemberIDs = nil
		f.members[id] = make(map[string]bool)
	}
	return nil
}

func (f *fakeTeams) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return apperrors.ErrTeamNotFound
	}
	delete(f.byID, id)
	delete(f.members, id)
	return nil
}

func (f *fakeTeams) RemoveMember(_ context.Context, teamID, studentID string) error {
	if !f.members[teamID][studentID] {
		return apperrors.NewResourceNotFoundError("member not found on this team")
	}
	delete(f.members[teamID], studentID)
	team := f.byID[teamID]
	for i, id := range team.MemberIDs {
		if id == studentID {
			team.MemberIDs = append(team.MemberIDs[:i], team.MemberIDs[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeTeams) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.byID)), nil
}

func (f *fakeTeams) ListApprovedByStudent(_ context.Context, studentID string) ([]models.Team, error) {
	var teams []models.Team
	for _, team := range f.byID {
		if team.Status != models.StatusApproved {
			continue
		}
		if team.LeaderID == studentID || f.members[team.ID][studentID] {
			teams = append(teams, *team)
		}
	}
	return teams, nil
}

type fakeRequests struct {
	byID  map[string]*models.TeamRequest
	teams *fakeTeams

	approved []string
	rejected []string
}

// newFakeRequests links the request store to a team store so Approve can
// mirror the real repository's status-flip-plus-roster-insert transaction.
func newFakeRequests(teams *fakeTeams, requests ...*models.TeamRequest) *fakeRequests {
	f := &fakeRequests{byID: make(map[string]*models.TeamRequest), teams: teams}
	for _, r := range requests {
		f.byID[r.ID] = r
	}
	return f
}

func (f *fakeRequests) GetByID(_ context.Context, id string) (*models.TeamRequest, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, apperrors.ErrRequestNotFound
	}
	return r, nil
}

func (f *fakeRequests) FindPending(_ context.Context, teamID, studentID string) (*models.TeamRequest, error) {
	for _, r := range f.byID {
		if r.TeamID == teamID && r.StudentID == studentID && r.Status == models.StatusPending {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRequests) Create(_ context.Context, request *models.TeamRequest) error {
	for _, r := range f.byID {
		if r.TeamID == request.TeamID && r.StudentID == request.StudentID && r.Status == models.StatusPending {
			return apperrors.ErrResourceAlreadyExists
		}
	}
	f.byID[request.ID] = request
	return nil
}

func (f *fakeRequests) ListPendingByTeam(_ context.Context, teamID string) ([]models.TeamRequest, error) {
	var requests []models.TeamRequest
	for _, r := range f.byID {
		if r.TeamID == teamID && r.Status == models.StatusPending {
			requests = append(requests, *r)
		}
	}
	return requests, nil
}

func (f *fakeRequests) ListAll(_ context.Context) ([]models.TeamRequest, error) {
	requests := make([]models.TeamRequest, 0, len(f.byID))
	for _, r := range f.byID {
		requests = append(requests, *r)
	}
	return requests, nil
}

func (f *fakeRequests) resolve(id string, status models.Status) error {
	r, ok := f.byID[id]
	if !ok {
		return apperrors.ErrRequestNotFound
	}
	if r.Status != models.StatusPending {
		return apperrors.ErrRequestAlreadyResolved
	}
	r.Status = status
	return nil
}

func (f *fakeRequests) Approve(_ context.Context, requestID string) error {
	if err := f.resolve(requestID, models.StatusApproved); err != nil {
		return err
	}
	r := f.byID[requestID]
	if f.teams != nil {
		if team, ok := f.teams.byID[r.TeamID]; ok && !f.teams.members[r.TeamID][r.StudentID] {
			f.teams.members[r.TeamID][r.StudentID] = true
			team.MemberIDs = append(team.MemberIDs, r.StudentID)
		}
	}
	f.approved = append(f.approved, requestID)
	return nil
}

func (f *fakeRequests) Reject(_ context.Context, requestID string) error {
	if err := f.resolve(requestID, models.StatusRejected); err != nil {
		return err
	}
	f.rejected = append(f.rejected, requestID)
	return nil
}

func (f *fakeRequests) CountByStatus(_ context.Context, status models.Status) (int64, error) {
	var count int64
	for _, r := range f.byID {
		if r.Status == status {
			count++
		}
	}
	return count, nil
}

type fakeNotifications struct {
	created    []*models.Notification
	broadcasts []string
	failWith   error
}

func (f *fakeNotifications) Create(_ context.Context, n *models.Notification) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.created = append(f.created, n)
	return nil
}

func (f *fakeNotifications) CreateForAllStudents(_ context.Context, title, _ string, _ models.NotificationType, _ string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.broadcasts = append(f.broadcasts, title)
	return nil
}

type fakeEvents struct {
	byID          map[string]*models.Event
	interested    map[string]map[string]bool
	interestCalls int
}

func newFakeEvents(events ...*models.Event) *fakeEvents {
	f := &fakeEvents{
		byID:       make(map[string]*models.Event),
		interested: make(map[string]map[string]bool),
	}
	for _, e := range events {
		f.byID[e.ID] = e
		f.interested[e.ID] = make(map[string]bool)
	}
	return f
}

func (f *fakeEvents) GetAll(_ context.Context) ([]models.Event, error) {
	events := make([]models.Event, 0, len(f.byID))
	for _, e := range f.byID {
		events = append(events, *e)
	}
	return events, nil
}

func (f *fakeEvents) GetByID(_ context.Context, id string) (*models.Event, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	return e, nil
}

func (f *fakeEvents) Create(_ context.Context, event *models.Event) error {
	f.byID[event.ID] = event
	f.interested[event.ID] = make(map[string]bool)
	return nil
}

func (f *fakeEvents) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return apperrors.ErrEventNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeEvents) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.byID)), nil
}

func (f *fakeEvents) SetInterest(_ context.Context, eventID, studentID string, interested bool) error {
	f.interestCalls++
	f.interested[eventID][studentID] = interested
	return nil
}

func (f *fakeEvents) ListInterestedStudents(_ context.Context, eventID string) ([]models.Student, error) {
	var students []models.Student
	for id, in := range f.interested[eventID] {
		if in {
			students = append(students, models.Student{ID: id})
		}
	}
	return students, nil
}

type fakePhotos struct {
	byID  map[string]*models.Photo
	likes map[string]map[string]bool
}

func newFakePhotos(photos ...*models.Photo) *fakePhotos {
	f := &fakePhotos{
		byID:  make(map[string]*models.Photo),
		likes: make(map[string]map[string]bool),
	}
	for _, p := range photos {
		f.byID[p.ID] = p
		f.likes[p.ID] = make(map[string]bool)
	}
	return f
}

func (f *fakePhotos) GetAll(_ context.Context) ([]models.Photo, error) {
	photos := make([]models.Photo, 0, len(f.byID))
	for _, p := range f.byID {
		photos = append(photos, *p)
	}
	return photos, nil
}

func (f *fakePhotos) Create(_ context.Context, photo *models.Photo) error {
	f.byID[photo.ID] = photo
	f.likes[photo.ID] = make(map[string]bool)
	return nil
}

func (f *fakePhotos) Delete(_ context.Context, id string) (string, error) {
	p, ok := f.byID[id]
	if !ok {
		return "", apperrors.ErrPhotoNotFound
	}
	delete(f.byID, id)
	return p.URL, nil
}

func (f *fakePhotos) ToggleLike(_ context.Context, photoID, studentID string) (bool, int64, error) {
	if _, ok := f.byID[photoID]; !ok {
		return false, 0, apperrors.ErrPhotoNotFound
	}
	liked := !f.likes[photoID][studentID]
	if liked {
		f.likes[photoID][studentID] = true
	} else {
		delete(f.likes[photoID], studentID)
	}
	return liked, int64(len(f.likes[photoID])), nil
}

type fakeAdmins struct {
	admin *models.Admin
}

func (f *fakeAdmins) Get(_ context.Context) (*models.Admin, error) {
	if f.admin == nil {
		return nil, apperrors.ErrResourceNotFound
	}
	return f.admin, nil
}
