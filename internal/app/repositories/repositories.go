package repositories

import (
	"github.com/pharmahub/backend/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	FileRepository         *FileRepository
	JobRepository          *JobRepository
	AnnouncementRepository *AnnouncementRepository
	InternshipRepository   *InternshipRepository
	DidYouKnowRepository   *DidYouKnowRepository
	LectureRepository      *LectureRepository
	QuestionRepository     *QuestionRepository
	CommentRepository      *CommentRepository
	PublicRepository       *PublicRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.DB) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(database),
		FileRepository:         NewFileRepository(database),
		JobRepository:          NewJobRepository(database),
		AnnouncementRepository: NewAnnouncementRepository(database),
		InternshipRepository:   NewInternshipRepository(database),
		DidYouKnowRepository:   NewDidYouKnowRepository(database),
		LectureRepository:      NewLectureRepository(database),
		QuestionRepository:     NewQuestionRepository(database),
		CommentRepository:      NewCommentRepository(database),
		PublicRepository:       NewPublicRepository(database),
	}
}
