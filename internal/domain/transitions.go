package domain

// State transitions applied optimistically around like/comment calls.
// Each takes the prior value and returns a new one; server-derived values
// are never mutated in place.

// ApplyLikeToggle returns the article with the like state flipped for the
// current user. Reversing a failed call is another ApplyLikeToggle with the
// opposite flag; the count never goes below zero.
func ApplyLikeToggle(article Article, liked bool) Article {
	next := article
	if liked {
		next.Likes = article.Likes + 1
	} else if article.Likes > 0 {
		next.Likes = article.Likes - 1
	}
	next.Tags = append([]string(nil), article.Tags...)
	next.Comments = append([]Comment(nil), article.Comments...)
	return next
}

// AppendComment returns the article with the comment appended. Comment order
// is server-assigned insertion order, so optimistic appends go at the end.
func AppendComment(article Article, comment Comment) Article {
	next := article
	next.Tags = append([]string(nil), article.Tags...)
	next.Comments = append(append([]Comment(nil), article.Comments...), comment)
	return next
}
