package models

type Category struct {
	ID   int    `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type NewCategory struct {
	Name string `json:"name"`
}
