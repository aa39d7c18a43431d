package entity

type Genre string

const (
	GenreAction      Genre = "ACTION"
	GenreComedy      Genre = "COMEDY"
	GenreDrama       Genre = "DRAMA"
	GenreFantasy     Genre = "FANTASY"
	GenreHorror      Genre = "HORROR"
	GenreMystery     Genre = "MYSTERY"
	GenreRomance     Genre = "ROMANCE"
	GenreThriller    Genre = "THRILLER"
	GenreSciFi       Genre = "SCI_FI"
	GenreDocumentary Genre = "DOCUMENTARY"
	GenreAnimation   Genre = "ANIMATION"
	GenreOther       Genre = "OTHER"
)

// Genres lists every accepted genre value.
var Genres = []Genre{
	GenreAction,
	GenreComedy,
	GenreDrama,
	GenreFantasy,
	GenreHorror,
	GenreMystery,
	GenreRomance,
	GenreThriller,
	GenreSciFi,
	GenreDocumentary,
	GenreAnimation,
	GenreOther,
}

// ParseGenre validates a wire string against the closed genre set.
// An empty string falls back to OTHER.
func ParseGenre(s string) (Genre, bool) {
	if s == "" {
		return GenreOther, true
	}
	for _, g := range Genres {
		if string(g) == s {
			return g, true
		}
	}
	return "", false
}

func (g Genre) Valid() bool {
	_, ok := ParseGenre(string(g))
	return ok && g != ""
}
