package models

type Publisher struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	City       string   `json:"city"`
	BookTitles []string `json:"book_titles"`
}

type Series struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	BookTitles  []string `json:"book_titles"`
}

type Genre struct {
	ID    int64       `json:"id"`
	Name  string      `json:"name"`
	Books []BookTitle `json:"books"`
}

type Editor struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	BookTitles []string `json:"book_titles"`
}
