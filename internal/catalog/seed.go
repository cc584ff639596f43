package catalog

import (
	"fmt"
	"time"

	"github.com/5w1tchy/nexus-admin/internal/models"
)

type dataset struct {
	books         []models.Book
	authors       []models.Author
	publishers    []models.Publisher
	series        []models.Series
	genres        []models.Genre
	editors       []models.Editor
	contracts     []models.Contract
	reviews       []models.Review
	comments      []models.Comment
	users         []models.User
	notifications []models.Notification
	transactions  []models.Transaction
}

func ptr[T any](v T) *T { return &v }

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// seedData is the mock back office the admin starts with. Notification
// timestamps are relative to now.
func seedData(now time.Time) dataset {
	authors := []models.Author{
		{ID: 201, FirstName: "Laura", LastName: "Gallego",
			Bio: `Autora española de literatura juvenil, conocida por su saga "Memorias de Idhún".`,
			Books: []models.BookTitle{
				{Title: "Finis Mundi", ISBN: "978-84-239-6500-1"},
				{Title: "La Emperatriz de los Etéreos", ISBN: "978-84-239-6501-8"},
			}},
		{ID: 202, FirstName: "Haruki", LastName: "Murakami",
			Bio: "Escritor japonés cuyas obras exploran la soledad, la música y el surrealismo.",
			Books: []models.BookTitle{
				{Title: "Tokio Blues", ISBN: "978-0-307-59371-3"},
				{Title: "1Q84", ISBN: "978-0-307-95996-5"},
				{Title: "Kafka en la Orilla", ISBN: "978-0-307-27515-3"},
			}},
		{ID: 203, FirstName: "Gabriel García", LastName: "Márquez",
			Bio:   "Novelista colombiano, Premio Nobel de Literatura en 1982.",
			Books: []models.BookTitle{{Title: "Cien Años de Soledad", ISBN: "978-84-9793-688-6"}}},
		{ID: 204, FirstName: "Jane", LastName: "Austen",
			Bio:   `Novelista británica. Su obra más famosa es "Orgullo y Prejuicio".`,
			Books: []models.BookTitle{}},
		{ID: 205, FirstName: "George R.R.", LastName: "Martin",
			Bio: `Autor estadounidense, creador de la saga "Canción de Hielo y Fuego".`,
			Books: []models.BookTitle{
				{Title: "Juego de Tronos", ISBN: "978-84-9793-689-3"},
				{Title: "Choque de Reyes", ISBN: "978-84-9793-690-9"},
			}},
		{ID: 206, FirstName: "Isaac", LastName: "Asimov",
			Bio:   "Escritor y bioquímico, maestro de la ciencia ficción clásica.",
			Books: []models.BookTitle{{Title: "Fundación", ISBN: "978-8445075677"}}},
		{ID: 207, FirstName: "J.R.R.", LastName: "Tolkien",
			Bio:   "Filólogo británico, autor de la mitología de la Tierra Media.",
			Books: []models.BookTitle{{Title: "La Comunidad del Anillo", ISBN: "978-8445000570"}}},
	}

	publishers := []models.Publisher{
		{ID: 401, Name: "Editorial Planeta", City: "Barcelona", BookTitles: []string{"Cien Años de Soledad", "La Casa de los Espíritus"}},
		{ID: 402, Name: "Penguin Random House", City: "New York", BookTitles: []string{"The Martian", "Orgullo y Prejuicio", "Juego de Tronos", "Fundación"}},
		{ID: 403, Name: "Satori Ediciones", City: "Gijón", BookTitles: []string{"Música en el Viento", "El Libro de Arena"}},
		{ID: 404, Name: "HarperCollins", City: "London", BookTitles: []string{"The Silent Patient"}},
		{ID: 405, Name: "Alfaguara", City: "Madrid", BookTitles: []string{}},
		{ID: 406, Name: "Minotauro", City: "Buenos Aires", BookTitles: []string{"La Comunidad del Anillo"}},
	}

	series := []models.Series{
		{ID: 501, Name: "El Señor de los Anillos",
			Description: "La épica fantasía de Tolkien sobre la Tierra Media y la lucha por destruir el Anillo Único.",
			BookTitles:  []string{"La Comunidad del Anillo", "Las Dos Torres", "El Retorno del Rey"}},
		{ID: 502, Name: "Canción de Hielo y Fuego",
			Description: "Una saga de fantasía épica con múltiples tramas, intrigas políticas y magia.",
			BookTitles:  []string{"Juego de Tronos", "Choque de Reyes", "Tormenta de Espadas"}},
		{ID: 503, Name: "The Witcher",
			Description: "Las aventuras del brujo Geralt de Rivia, cazador de monstruos a sueldo.",
			BookTitles:  []string{"El Último Deseo", "La Espada del Destino"}},
		{ID: 504, Name: "Fundación",
			Description: "La obra de ciencia ficción de Isaac Asimov sobre la caída de un imperio galáctico.",
			BookTitles:  []string{"Fundación"}},
	}

	genres := []models.Genre{
		{ID: 101, Name: "Ficción Contemporánea", Books: []models.BookTitle{{Title: "Cien Años de Soledad", ISBN: "978-8497592939"}}},
		{ID: 102, Name: "Thriller Psicológico", Books: []models.BookTitle{{Title: "El Paciente Silencioso", ISBN: "978-1-56619-909-4"}}},
		{ID: 103, Name: "Fantasía Épica", Books: []models.BookTitle{
			{Title: "La Comunidad del Anillo", ISBN: "978-8445000570"},
			{Title: "Juego de Tronos", ISBN: "978-8496208940"},
		}},
		{ID: 104, Name: "Ciencia Ficción Clásica", Books: []models.BookTitle{{Title: "Fundación", ISBN: "978-8445075677"}}},
		{ID: 105, Name: "Romance Histórico", Books: []models.BookTitle{}},
		{ID: 106, Name: "Biografía y Memorias", Books: []models.BookTitle{{Title: "Una Vida", ISBN: "978-1-56619-901-0"}}},
		{ID: 107, Name: "Poesía Lírica", Books: []models.BookTitle{{Title: "El Viento y el Mar", ISBN: "978-1-56619-902-1"}}},
		{ID: 108, Name: "Misterio y Crimen", Books: []models.BookTitle{{Title: "El Caso del Hotel", ISBN: "978-1-56619-903-2"}}},
		{ID: 109, Name: "Literatura Juvenil", Books: []models.BookTitle{{Title: "Finis Mundi", ISBN: "978-84-239-6500-1"}}},
		{ID: 110, Name: "Terror y Horror", Books: []models.BookTitle{{Title: "La Casa Oscura", ISBN: "978-1-56619-905-4"}}},
	}

	editors := []models.Editor{
		{ID: 601, Name: "María García", BookTitles: []string{"La Comunidad del Anillo", "Fundación"}},
		{ID: 602, Name: "Carlos Sánchez", BookTitles: []string{"Cien Años de Soledad", "El Amor en los Tiempos del Cólera"}},
		{ID: 603, Name: "Elena López", BookTitles: []string{"Juego de Tronos", "Choque de Reyes"}},
		{ID: 604, Name: "Ricardo Morales", BookTitles: []string{"The Silent Patient", "Fundación"}},
		{ID: 605, Name: "Ana Torres", BookTitles: []string{}},
	}

	books := []models.Book{
		{ID: 1, Title: "Fundación", ISBN: "978-8445075677", PublicationYear: 1951,
			AuthorID: 206, PublisherID: 402, SeriesID: ptr[int64](504),
			EditorIDs: []int64{601, 604}, GenreIDs: []int64{104}},
		{ID: 2, Title: "Cien Años de Soledad", ISBN: "978-8497592939", PublicationYear: 1967,
			AuthorID: 203, PublisherID: 401,
			EditorIDs: []int64{602}, GenreIDs: []int64{101}},
		{ID: 3, Title: "La Comunidad del Anillo", ISBN: "978-8445000570", PublicationYear: 1954,
			AuthorID: 207, PublisherID: 406, SeriesID: ptr[int64](501),
			EditorIDs: []int64{601}, GenreIDs: []int64{103}},
		{ID: 4, Title: "Juego de Tronos", ISBN: "978-8496208940", PublicationYear: 1996,
			AuthorID: 205, PublisherID: 402, SeriesID: ptr[int64](502),
			EditorIDs: []int64{603}, GenreIDs: []int64{103}},
	}

	contractAuthor := func(a models.Author) models.ContractAuthor {
		return models.ContractAuthor{ID: a.ID, FirstName: a.FirstName, LastName: a.LastName}
	}
	contracts := []models.Contract{
		{ID: 301, DateSigned: "2023-10-15", Royalty: 15, Author: contractAuthor(authors[0])},
		{ID: 302, DateSigned: "2022-04-20", Royalty: 12, Author: contractAuthor(authors[1])},
		{ID: 303, DateSigned: "2024-01-01", Royalty: 18, Author: contractAuthor(authors[2])},
		{ID: 304, DateSigned: "2023-11-30", Royalty: 10, Author: contractAuthor(authors[4])},
		{ID: 305, DateSigned: "2021-08-05", Royalty: 20, Author: contractAuthor(authors[0])},
	}

	reviews := []models.Review{
		{ID: 701, Rating: 5,
			Body:      "Una de las mejores novelas de ciencia ficción de todos los tiempos. Asimov crea un universo complejo con la psicohistoria como eje central.",
			CreatedAt: mustTime("2024-01-09T10:00:00Z"),
			Book: models.ReviewBook{ID: 1, Title: "Fundación", PublicationYear: 1951, ISBN: "978-8445075677",
				PublisherName: "Penguin Random House", EditorNames: []string{"María García", "Ricardo Morales"}},
			Comments: []models.ReviewComment{
				{ID: 1, Author: "Alex V.", Text: "Totalmente de acuerdo, una obra maestra.", Date: mustTime("2024-01-10T00:00:00Z")},
				{ID: 2, Author: "Laura P.", Text: "El final me pareció un poco flojo, pero el desarrollo es genial.", Date: mustTime("2024-01-11T00:00:00Z")},
			}},
		{ID: 702, Rating: 4,
			Body:      "García Márquez en su cumbre. El realismo mágico es perfecto, aunque tantos personajes con el mismo nombre confunden.",
			CreatedAt: mustTime("2024-02-15T15:30:00Z"),
			Book: models.ReviewBook{ID: 2, Title: "Cien Años de Soledad", PublicationYear: 1967, ISBN: "978-8497592939",
				PublisherName: "Editorial Planeta", EditorNames: []string{"Carlos Sánchez"}},
			Comments: []models.ReviewComment{}},
		{ID: 703, Rating: 2,
			Body:      "No me convenció. La trama es demasiado lenta en los primeros capítulos y perdí el interés antes de la mitad.",
			CreatedAt: mustTime("2024-03-20T08:15:00Z"),
			Book: models.ReviewBook{ID: 4, Title: "Juego de Tronos", PublicationYear: 1996, ISBN: "978-8496208940",
				PublisherName: "Penguin Random House", EditorNames: []string{"Elena López"}},
			Comments: []models.ReviewComment{}},
	}

	comments := []models.Comment{
		{ID: 801, Content: "Totalmente de acuerdo, la psicohistoria es el motor narrativo más interesante de la obra.",
			CreatedAt: mustTime("2024-05-01T10:30:00Z"), Author: "Alex V.",
			Review: reviewRef(reviews[0])},
		{ID: 802, Content: "Entiendo lo de la lentitud, pero el desarrollo de personajes lo compensa con creces.",
			CreatedAt: mustTime("2024-05-05T12:00:00Z"), Author: "Felipe M.",
			Review: reviewRef(reviews[2])},
		{ID: 803, Content: "El realismo mágico es complicado, pero es lo que hace única la novela.",
			CreatedAt: mustTime("2024-05-10T14:45:00Z"), Author: "Laura P.",
			Review: reviewRef(reviews[1])},
	}

	users := []models.User{
		{ID: 901, Email: "alice@example.com", Username: "alice_reads", FollowingIDs: []int64{902, 903}, FollowerIDs: []int64{902}},
		{ID: 902, Email: "bob@example.com", Username: "bob_writer", FollowingIDs: []int64{901, 904}, FollowerIDs: []int64{901, 903}},
		{ID: 903, Email: "charlie@example.com", Username: "charlie_critic", FollowingIDs: []int64{902}, FollowerIDs: []int64{901, 904}},
		{ID: 904, Email: "diana@example.com", Username: "diana_bookworm", FollowingIDs: []int64{903}, FollowerIDs: []int64{902, 903}},
		{ID: 905, Email: "eve@example.com", Username: "eve_rookie", FollowingIDs: []int64{}, FollowerIDs: []int64{}},
	}

	notify := func(id int64, t models.NotificationType, msg, link string, age time.Duration, read bool) models.Notification {
		return models.Notification{ID: id, Message: msg, Type: t, Icon: t.Icon(), Timestamp: now.Add(-age), Read: read, Link: link}
	}
	notifications := []models.Notification{
		notify(1, models.NotifyManuscript, `Nuevo manuscrito asignado para revisión: "El Viaje del Quetzal".`, "/manuscripts/101", time.Hour, false),
		notify(2, models.NotifyReview, `La revisión de "Crónicas de Ébano" ha sido completada por el autor.`, "/manuscripts/203", 2*time.Hour, false),
		notify(3, models.NotifySystem, "Actualización del sistema: mejoras en la velocidad de carga del dashboard.", "/reports/system-update", 3*time.Hour, true),
		notify(4, models.NotifyAlert, "ALERTA: el servidor de archivos adjuntos alcanzó el 90% de capacidad.", "/settings/storage", 24*time.Hour, true),
	}

	return dataset{
		books:         books,
		authors:       authors,
		publishers:    publishers,
		series:        series,
		genres:        genres,
		editors:       editors,
		contracts:     contracts,
		reviews:       reviews,
		comments:      comments,
		users:         users,
		notifications: notifications,
		transactions:  seedTransactions(20),
	}
}

// seedTransactions builds n rows; every third fails, evens complete.
func seedTransactions(n int) []models.Transaction {
	out := make([]models.Transaction, 0, n)
	for k := 0; k < n; k++ {
		status := models.TxPending
		switch {
		case k%3 == 0:
			status = models.TxFailed
		case k%2 == 0:
			status = models.TxCompleted
		}
		out = append(out, models.Transaction{
			ID:     int64(k + 1),
			Code:   fmt.Sprintf("TRX-%d", k+1),
			Name:   fmt.Sprintf("Usuario %d", k+1),
			Amount: float64((k*379 + 113) % 1000),
			Status: status,
		})
	}
	return out
}
