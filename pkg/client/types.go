package client

import (
	"io"
	"time"
)

type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == "admin"
}

type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

type Material struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

type Lecture struct {
	ID               string     `json:"id"`
	Category         string     `json:"category"`
	Series           string     `json:"series"`
	Number           string     `json:"number"`
	Instructor       string     `json:"instructor"`
	Description      string     `json:"description"`
	Duration         string     `json:"duration,omitempty"`
	YoutubeEmbedLink string     `json:"youtubeEmbedLink,omitempty"`
	DriveEmbedLink   string     `json:"driveEmbedLink,omitempty"`
	RegisterDate     time.Time  `json:"registerDate"`
	Materials        []Material `json:"materials"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

type LectureSummary struct {
	ID           string    `json:"id"`
	Category     string    `json:"category"`
	Series       string    `json:"series"`
	Number       string    `json:"number"`
	Instructor   string    `json:"instructor"`
	Duration     string    `json:"duration,omitempty"`
	RegisterDate time.Time `json:"registerDate"`
}

type Pagination struct {
	CurrentPage int    `json:"currentPage"`
	TotalPages  int    `json:"totalPages"`
	Category    string `json:"category"`
	PageSize    int    `json:"pageSize"`
	TotalItems  int64  `json:"totalItems"`
	SortBy      string `json:"sortBy"`
}

type LecturePage struct {
	Items      []LectureSummary `json:"items"`
	Pagination Pagination       `json:"pagination"`
}

// ListOptions are the query parameters of GET /lectures. Zero values are
// left to the server defaults.
type ListOptions struct {
	Category string
	Page     int
	PageSize int
	SortBy   string
}

// LectureForm carries the text fields of a lecture mutation. Empty fields
// are not sent, so on update they keep their stored value.
type LectureForm struct {
	Category         string
	Series           string
	Number           string
	Instructor       string
	Description      string
	Duration         string
	YoutubeEmbedLink string
	DriveEmbedLink   string
}

func (f LectureForm) fields() [][2]string {
	return [][2]string{
		{"category", f.Category},
		{"series", f.Series},
		{"number", f.Number},
		{"instructor", f.Instructor},
		{"description", f.Description},
		{"duration", f.Duration},
		{"youtubeEmbedLink", f.YoutubeEmbedLink},
		{"driveEmbedLink", f.DriveEmbedLink},
	}
}

// File is one material upload.
type File struct {
	Name    string
	Content io.Reader
}

type DeleteResponse struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}
