package entity

import (
	"time"
)

// Article is a listing owned by exactly one account. OwnerID never changes
// after creation; only the owner may delete the article.
type Article struct {
	ID          int64     `bson:"_id" json:"id"`
	OwnerID     int64     `bson:"owner_id" json:"owner_id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Price       float64   `bson:"price" json:"price"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
