package request_models

// Presence is checked by the account service so both endpoints report the
// same message; binding only enforces the JSON shape.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type SignUpRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}
