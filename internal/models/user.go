package models

import "time"

// User is a quiz participant, unique by normalized email.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	ParentName   string    `json:"parentName"`
	CollegeName  string    `json:"collegeName"`
	MobileNumber string    `json:"mobileNumber"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"createdAt"`
}

type NewUser struct {
	Name         string
	ParentName   string
	CollegeName  string
	MobileNumber string
	Email        string
}
