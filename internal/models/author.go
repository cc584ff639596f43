package models

type Author struct {
	ID        int64       `json:"id"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Bio       string      `json:"bio"`
	Books     []BookTitle `json:"books"`
}

func (a Author) FullName() string { return a.FirstName + " " + a.LastName }

// BookTitle is the title/isbn pair listed under authors and genres.
type BookTitle struct {
	Title string `json:"title"`
	ISBN  string `json:"isbn"`
}
