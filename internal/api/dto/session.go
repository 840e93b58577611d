package dto

type SessionRequest struct {
	Secret string `json:"secret"`
}

type SessionResponse struct {
	Token string `json:"token"`
}
