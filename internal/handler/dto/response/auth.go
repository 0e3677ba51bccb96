package response

import "gembank/internal/usecase/commands"

type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func FromLoginResult(r *commands.LoginResult) LoginResponse {
	return LoginResponse{
		Token: r.Token,
		Email: r.Email,
		Role:  r.Role,
	}
}
