package model

type Business struct {
	Name         string
	Tagline      string
	Phone        string
	PhoneDisplay string
	ContactEmail string
	PublicEmail  string
	Location     string
	ServiceArea  []string
}

type Highlight struct {
	Title       string
	Description string
}

type Service struct {
	Name        string
	Description string
	Details     []string
}

type Step struct {
	Title       string
	Description string
}

type Testimonial struct {
	Quote string
	Name  string
}
