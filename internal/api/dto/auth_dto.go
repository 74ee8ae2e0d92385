package dto

type RegisterDTO struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string `json:"message"`
	UserID  uint   `json:"user_id"`
	Token   string `json:"token"`
}

type ForgetPasswordDTO struct {
	Email string `json:"email"`
}

type VerifyOTPDTO struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type ResetPasswordDTO struct {
	Email        string `json:"email"`
	NewPassword  string `json:"new_password"`
	NewPassword2 string `json:"new_password2"`
}

type DeleteUserDTO struct {
	UserID uint `json:"user_id"`
}

type UserProfileDTO struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
