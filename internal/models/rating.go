package models

// RatingKind identifies which kind of entity is being rated.
type RatingKind string

const (
	RatingKindPost    RatingKind = "post"
	RatingKindComment RatingKind = "comment"
)

// RatingPolarity identifies the direction of a rating toggle.
type RatingPolarity string

const (
	RatingLike    RatingPolarity = "like"
	RatingDislike RatingPolarity = "dislike"
)

// RatingCounts holds the like and dislike counts of a rated entity.
type RatingCounts struct {
	Likes    int `json:"likes" db:"likes"`       // Number of users in the like set
	Dislikes int `json:"dislikes" db:"dislikes"` // Number of users in the dislike set
}
