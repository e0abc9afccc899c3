package dto

// UploadResponse is returned after a standalone upload.
type UploadResponse struct {
	Message string `json:"message" example:"media uploaded successfully"`
	MediaID int64  `json:"mediaId" example:"12"`
}
