package store

// Language represents a row in the languages table.
type Language struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Word represents a row in the words table. LangID references languages.id.
type Word struct {
	ID     int64  `db:"id" json:"id"`
	Name   string `db:"name" json:"name"`
	Means  string `db:"means" json:"means"`
	LangID int64  `db:"lang_id" json:"lang_id"`
}

// AddLanguage is the payload for creating a language.
type AddLanguage struct {
	Name string `json:"name"`
}

// UpdateLanguage is the payload for renaming a language.
type UpdateLanguage struct {
	Name string `json:"name"`
}

// AddWord is the payload for creating a word. The owning language comes from the path.
type AddWord struct {
	Name  string `json:"name"`
	Means string `json:"means"`
}

// UpdateWord is the payload for replacing a word's name and meaning.
type UpdateWord struct {
	Name  string `json:"name"`
	Means string `json:"means"`
}
