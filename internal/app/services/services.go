package services

import (
	"errors"

	"github.com/pharmahub/backend/internal/app/repositories"
	"github.com/pharmahub/backend/internal/pkg/apperrors"
	"github.com/pharmahub/backend/internal/pkg/auth"
	"github.com/pharmahub/backend/internal/pkg/filestorage"
)

// Services defined in this package:
// - AuthService: admin login and session tokens
// - FileService: admin uploads and the files table
// - JobService, AnnouncementService, InternshipService, DidYouKnowService
// - LectureService: lectures with optional PDF material
// - PharmaHubService: forum questions, comments and stats

// Services holds all the service instances
type Services struct {
	Auth         AuthService
	Files        FileService
	Jobs         JobService
	Announcement AnnouncementService
	Internships  InternshipService
	DidYouKnow   DidYouKnowService
	Lectures     LectureService
	PharmaHub    PharmaHubService
}

// NewServices wires every service to its repositories
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, storage filestorage.FileStorage) *Services {
	return &Services{
		Auth:         NewAuthService(repos.UserRepository, jwtService),
		Files:        NewFileService(repos.FileRepository, storage),
		Jobs:         NewJobService(repos.JobRepository),
		Announcement: NewAnnouncementService(repos.AnnouncementRepository),
		Internships:  NewInternshipService(repos.InternshipRepository),
		DidYouKnow:   NewDidYouKnowService(repos.DidYouKnowRepository),
		Lectures:     NewLectureService(repos.LectureRepository, storage),
		PharmaHub:    NewPharmaHubService(repos.QuestionRepository, repos.CommentRepository),
	}
}

// notFound replaces a repository not-found error with a user-facing message
func notFound(err error, message string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.NewResourceNotFoundError(message)
	}
	return err
}
