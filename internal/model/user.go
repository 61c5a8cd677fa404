package model

import "sheetcrm/internal/record"

// User is a staff account stored in the Users worksheet
type User struct {
	ID             string `json:"id"`
	Role           string `json:"role"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	LoginEmail     string `json:"login_email"`
	HashedPassword string `json:"hashed_password"`
}

// UserColumns is the fixed column order of the Users worksheet
var UserColumns = []string{"id", "role", "name", "phone", "login_email", "hashed_password"}

func (u User) ToRow() []string {
	return []string{u.ID, u.Role, u.Name, u.Phone, u.LoginEmail, u.HashedPassword}
}

func UserFromRecord(r record.Record) (User, error) {
	var u User
	var err error
	if u.ID, err = r.String("id"); err != nil {
		return u, err
	}
	if u.Role, err = r.String("role"); err != nil {
		return u, err
	}
	if u.Name, err = r.String("name"); err != nil {
		return u, err
	}
	if u.Phone, err = r.String("phone"); err != nil {
		return u, err
	}
	if u.LoginEmail, err = r.String("login_email"); err != nil {
		return u, err
	}
	if u.HashedPassword, err = r.String("hashed_password"); err != nil {
		return u, err
	}
	return u, nil
}
