package models

type Book struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	ISBN            string  `json:"isbn"`
	PublicationYear int     `json:"publication_year"`
	AuthorID        int64   `json:"author_id"`
	PublisherID     int64   `json:"publisher_id"`
	SeriesID        *int64  `json:"series_id"`
	EditorIDs       []int64 `json:"editor_ids"`
	GenreIDs        []int64 `json:"genre_ids"`
}

// BookDetail is the expanded panel of a book row with relations resolved
// to display names.
type BookDetail struct {
	Book
	AuthorName    string          `json:"author_name"`
	PublisherName string          `json:"publisher_name"`
	SeriesName    string          `json:"series_name,omitempty"`
	EditorNames   []string        `json:"editor_names"`
	GenreNames    []string        `json:"genre_names"`
	Reviews       []ReviewSummary `json:"reviews"`
}

type ReviewSummary struct {
	ID      int64  `json:"id"`
	Rating  int    `json:"rating"`
	Snippet string `json:"snippet"`
}
