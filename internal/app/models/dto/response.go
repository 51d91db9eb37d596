package dto

// APIResponse is the envelope for successful requests.
type APIResponse struct {
	Data interface{} `json:"data"`
}

// NewAPIResponse wraps payload data in the standard envelope.
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{Data: data}
}
