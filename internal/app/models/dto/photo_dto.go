package dto

// CreatePhotoRequest adds a photo to the feed (admin only). URL may be
// omitted when the photo file is uploaded as multipart form data instead.
type CreatePhotoRequest struct {
	EventName   string `json:"eventName" form:"eventName" binding:"required"`
	Description string `json:"description" form:"description"`
	URL         string `json:"url" form:"url" binding:"omitempty,url"`
}

// PhotoLikeResponse reports the like state after a toggle
type PhotoLikeResponse struct {
	Message string `json:"message"`
	Liked   bool   `json:"liked"`
	Likes   int    `json:"likes"`
}
