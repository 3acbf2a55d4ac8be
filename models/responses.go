package models

// MessageResponse is the generic {success, message} envelope used for errors
// and simple acknowledgements.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// AuthResponse is returned whenever a session token is issued.
type AuthResponse struct {
	Success bool   `json:"success"`
	User    User   `json:"user"`
	Token   string `json:"token"`
}

// UserResponse wraps a single user.
type UserResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

// UsersPage is a paginated list of users.
type UsersPage struct {
	Success     bool   `json:"success"`
	Users       []User `json:"users"`
	TotalUsers  int64  `json:"totalUsers"`
	TotalPages  int64  `json:"totalPages"`
	CurrentPage int    `json:"currentPage"`
}

// BlogResponse wraps a single blog.
type BlogResponse struct {
	Success bool `json:"success"`
	Blog    Blog `json:"blog"`
}

// BlogsPage is a paginated list of blogs.
type BlogsPage struct {
	Success     bool   `json:"success"`
	Blogs       []Blog `json:"blogs"`
	TotalBlogs  int64  `json:"totalBlogs"`
	TotalPages  int64  `json:"totalPages"`
	CurrentPage int    `json:"currentPage"`
}
