package models

import "time"

// Article is a row of 'articles'. Date is free text as submitted.
type Article struct {
	IDArticle   int64     `json:"id_article" db:"id_article" example:"5"`
	Titre       string    `json:"titre" db:"titre"`
	Description string    `json:"description" db:"description"`
	Corps       string    `json:"corps" db:"corps"`
	Sport       string    `json:"sport" db:"sport" example:"football"`
	Date        string    `json:"date" db:"date" example:"2024-06-01"`
	IDMedia     int64     `json:"id_media" db:"id_media"`
	Auteur      string    `json:"auteur" db:"auteur" example:"alice"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
