package dto

import "github.com/yigit/sporthub/internal/app/models"

// CreateTextPostRequest is the body of POST /posts-txt
type CreateTextPostRequest struct {
	Text        string `json:"text" form:"text" binding:"required" example:"hi"`
	Description string `json:"description" form:"description" binding:"required" example:"d"`
}

type CreateTextPostResponse struct {
	Message string `json:"message" example:"post created successfully"`
	PostID  int64  `json:"postId" example:"3"`
}

// TextPostListResponse is one page of text posts. NextPage is null when there
// is nothing more to fetch.
type TextPostListResponse struct {
	Posts    []models.TextPost `json:"posts"`
	NextPage *int              `json:"nextPage"`
}

// CreateMediaPostRequest holds the non-file fields of POST /posts-media
type CreateMediaPostRequest struct {
	Description string `form:"description" binding:"required"`
}

type CreateMediaPostResponse struct {
	Message     string `json:"message" example:"media post created successfully"`
	PostMediaID int64  `json:"postMediaId" example:"4"`
}

type MediaPostListResponse struct {
	Posts    []models.MediaPost `json:"posts"`
	NextPage *int               `json:"nextPage"`
}
