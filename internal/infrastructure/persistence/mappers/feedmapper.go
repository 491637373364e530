package mappers

import (
	"github.com/ridecrew/ridecrew/internal/domain/feed"
	"github.com/ridecrew/ridecrew/internal/infrastructure/persistence/models"
)

// PostToEntity converts a post model and its image rows to the domain entity.
func PostToEntity(model *models.PostModel, images []string) *feed.Post {
	return feed.ReconstructPost(model.ID, model.AuthorUserID, model.ClubID, model.Content, model.ContentHTML, images, model.CreatedAt)
}

func PostToModel(p *feed.Post) *models.PostModel {
	return &models.PostModel{
		ID:           p.ID(),
		AuthorUserID: p.AuthorUserID(),
		ClubID:       p.ClubID(),
		Content:      p.Content(),
		ContentHTML:  p.ContentHTML(),
		CreatedAt:    p.CreatedAt(),
	}
}

func CommentToEntity(model *models.PostCommentModel) *feed.Comment {
	return &feed.Comment{
		ID:          model.ID,
		PostID:      model.PostID,
		UserID:      model.UserID,
		Content:     model.Content,
		ContentHTML: model.ContentHTML,
		CreatedAt:   model.CreatedAt,
	}
}

func CommentToModel(c *feed.Comment) *models.PostCommentModel {
	return &models.PostCommentModel{
		ID:          c.ID,
		PostID:      c.PostID,
		UserID:      c.UserID,
		Content:     c.Content,
		ContentHTML: c.ContentHTML,
		CreatedAt:   c.CreatedAt,
	}
}
