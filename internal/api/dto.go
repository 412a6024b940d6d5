package api

// Request DTOs

type CreateUserRequest struct {
	Name string `json:"name" validate:"required"`
}

// LoginRequest intentionally has no validate tags: a blank name must map to
// 401, not 400.
type LoginRequest struct {
	Name string `json:"name"`
}

type CreateThreadRequest struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Comment string  `json:"comment"`
}

type UpdateThreadPositionRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Response DTOs

type MessageResponse struct {
	Message string `json:"message"`
}

type CreateImageResponse struct {
	Id  string `json:"id"`
	Url string `json:"url"`
}
