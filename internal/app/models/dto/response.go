package dto

// OKResponse is the {ok:true} acknowledgement used by the auth and admin routes
type OKResponse struct {
	OK bool `json:"ok" example:"true"`
}

// OKIDResponse acknowledges a create in the admin CRUD routes
type OKIDResponse struct {
	OK bool  `json:"ok" example:"true"`
	ID int64 `json:"id" example:"7"`
}

// UploadResponse is returned after a successful admin upload
type UploadResponse struct {
	OK  bool   `json:"ok" example:"true"`
	URL string `json:"url" example:"/uploads/1736935200000_brochure.pdf"`
}

// IDData wraps a newly created id
type IDData struct {
	ID int64 `json:"id" example:"7"`
}

// ListResponse is the {success, data, count} envelope of the list routes
type ListResponse struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data"`
	Count   int         `json:"count" example:"3"`
}

// DataResponse is the {success, data} envelope of single item routes
type DataResponse struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// MessageResponse is a {success, message} acknowledgement
type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"تم تحديث الوظيفة بنجاح"`
}

// PlainMessageResponse is a bare {message} acknowledgement
type PlainMessageResponse struct {
	Message string `json:"message" example:"Question deleted successfully"`
}

// CreatedResponse is the {id, message} body returned when a lecture is created
type CreatedResponse struct {
	ID      int64  `json:"id" example:"7"`
	Message string `json:"message" example:"Lecture created successfully"`
}

// NewListResponse builds a list envelope; count follows the slice length
func NewListResponse(data interface{}, count int) ListResponse {
	return ListResponse{Success: true, Data: data, Count: count}
}

// NewCreatedResponse builds the 201 envelope {success, message, data:{id}}
func NewCreatedResponse(id int64, message string) DataResponse {
	return DataResponse{Success: true, Message: message, Data: IDData{ID: id}}
}
