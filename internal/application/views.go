package application

import (
	"github.com/craftd/orgauth/internal/domain/entity"
)

// UserView is the only user shape that leaves the service. It has no
// password field at all, so a digest cannot leak through serialization.
type UserView struct {
	UserID    string `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func NewUserView(u *entity.User) UserView {
	return UserView{
		UserID:    u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
	}
}

type OrganisationView struct {
	OrgID       string `json:"orgId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func NewOrganisationView(o *entity.Organisation) OrganisationView {
	return OrganisationView{OrgID: o.ID, Name: o.Name, Description: o.Description}
}
