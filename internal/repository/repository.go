package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User        UserRepository
	Post        PostRepository
	Comment     CommentRepository
	Wall        WallRepository
	Application ApplicationRepository
	Media       MediaRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:        NewUserRepository(db),
		Post:        NewPostRepository(db),
		Comment:     NewCommentRepository(db),
		Wall:        NewWallRepository(db),
		Application: NewApplicationRepository(db),
		Media:       NewMediaRepository(db),
	}
}
