package auth

type (
	LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	LoginResponse struct {
		Token    string `json:"token"`
		Username string `json:"username"`
		Name     string `json:"name"`
	}
)
