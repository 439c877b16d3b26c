package models

// User represents a single profile record in the directory.
type User struct {
	ID        int     `json:"id" yaml:"id"`
	FirstName string  `json:"firstName" yaml:"firstName"`
	LastName  string  `json:"lastName" yaml:"lastName"`
	Height    float64 `json:"height" yaml:"height"`
	Weight    float64 `json:"weight" yaml:"weight"`
	Gender    string  `json:"gender" yaml:"gender"`
	Location  string  `json:"location" yaml:"location"`
	Photo     *string `json:"photo,omitempty" yaml:"photo,omitempty"`
}

// CreateUserRequest is the payload accepted when creating a user.
// Numeric fields are pointers so that a missing value can be told apart from zero.
type CreateUserRequest struct {
	FirstName string   `json:"firstName" validate:"required"`
	LastName  string   `json:"lastName" validate:"required"`
	Height    *float64 `json:"height" validate:"required"`
	Weight    *float64 `json:"weight" validate:"required"`
	Gender    string   `json:"gender" validate:"required"`
	Location  string   `json:"location" validate:"required"`
	Photo     *string  `json:"photo,omitempty"`
}

// ToUser builds a record without an id; the store assigns one.
func (r CreateUserRequest) ToUser() User {
	u := User{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Gender:    r.Gender,
		Location:  r.Location,
		Photo:     r.Photo,
	}
	if r.Height != nil {
		u.Height = *r.Height
	}
	if r.Weight != nil {
		u.Weight = *r.Weight
	}
	return u
}

// UserPatch is a partial update. Nil fields are left untouched on merge.
type UserPatch struct {
	FirstName *string  `json:"firstName,omitempty" validate:"omitempty,min=1"`
	LastName  *string  `json:"lastName,omitempty" validate:"omitempty,min=1"`
	Height    *float64 `json:"height,omitempty" validate:"omitempty,min=100,max=250"`
	Weight    *float64 `json:"weight,omitempty" validate:"omitempty,min=30,max=300"`
	Gender    *string  `json:"gender,omitempty" validate:"omitempty,min=1"`
	Location  *string  `json:"location,omitempty" validate:"omitempty,min=1"`
	Photo     *string  `json:"photo,omitempty"`
}

// Apply merges the patch onto u field by field and returns the result.
func (p UserPatch) Apply(u User) User {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Height != nil {
		u.Height = *p.Height
	}
	if p.Weight != nil {
		u.Weight = *p.Weight
	}
	if p.Gender != nil {
		u.Gender = *p.Gender
	}
	if p.Location != nil {
		u.Location = *p.Location
	}
	if p.Photo != nil {
		photo := *p.Photo
		u.Photo = &photo
	}
	return u
}

// IsEmpty reports whether the patch carries no fields.
func (p UserPatch) IsEmpty() bool {
	return p == UserPatch{}
}

// UserPage is one page of the collection together with the size of the whole collection.
type UserPage struct {
	Data  []User `json:"data"`
	Total int    `json:"total"`
}
