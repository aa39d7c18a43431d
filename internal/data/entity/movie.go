package entity

type Movie struct {
	Base
	Title       string `db:"title"`
	Genre       Genre  `db:"genre"`
	ReleaseYear *int   `db:"release_year"`
	Rating      Rating `db:"rating"`
	Review      string `db:"review"`
	CreatedByID int64  `db:"created_by"`

	// Owner carries the joined users row on reads. Never written back.
	Owner *User
}
