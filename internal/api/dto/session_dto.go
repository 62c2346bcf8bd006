package dto

// LoginForm is posted by the login view.
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// SignupForm is posted by the signup view.
type SignupForm struct {
	Username    string `form:"username"`
	Email       string `form:"email"`
	Password    string `form:"password"`
	PhoneNumber string `form:"phoneNumber"`
}
