package user

type UserResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}
