package dto

// LectureRequest is the multipart (or JSON) body of lecture create and
// update calls. The optional PDF arrives in the "pdf" file field.
type LectureRequest struct {
	Title       string  `json:"title" form:"title" binding:"required"`
	Description string  `json:"description" form:"description" binding:"required"`
	Type        string  `json:"type" form:"type" binding:"required" example:"محاضرة نظرية"`
	Mode        string  `json:"mode" form:"mode" binding:"required" example:"حضوري"`
	Date        string  `json:"date" form:"date" binding:"required" example:"2025-02-15"`
	Location    string  `json:"location" form:"location" binding:"required"`
	Time        *string `json:"time" form:"time"`
	Instructor  *string `json:"instructor" form:"instructor"`
	VideoURL    *string `json:"video_url" form:"video_url"`
}
