package dto

type LoginInput struct {
	Username string
	Password string
}

type SessionOutput struct {
	Token string
}
