package dto

// DidYouKnowRequest is the body of fact create and update calls
type DidYouKnowRequest struct {
	Title    string  `json:"title" binding:"required" example:"هل تعلم؟"`
	Content  string  `json:"content" binding:"required"`
	Category string  `json:"category" binding:"required" example:"علم الأدوية"`
	ImageURL *string `json:"image_url"`
	Status   string  `json:"status" example:"active"`
}
