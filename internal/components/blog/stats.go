package blog

import "github.com/andrasnagy-data/bloglist/internal/shared/model"

// TotalLikes sums the likes of posts.
func TotalLikes(posts []model.Post) int {
	total := 0
	for _, p := range posts {
		total += p.Likes
	}
	return total
}

// FavoriteBlog returns the first post holding the highest like count, nil for no posts.
func FavoriteBlog(posts []model.Post) *FavoriteOut {
	if len(posts) == 0 {
		return nil
	}
	best := posts[0]
	for _, p := range posts[1:] {
		if p.Likes > best.Likes {
			best = p
		}
	}
	return &FavoriteOut{Title: best.Title, Author: best.Author, Likes: best.Likes}
}

// groupByAuthor folds posts per author, keeping authors in order of first appearance.
func groupByAuthor(posts []model.Post, weight func(model.Post) int) (authors []string, totals map[string]int) {
	totals = make(map[string]int)
	for _, p := range posts {
		if _, seen := totals[p.Author]; !seen {
			authors = append(authors, p.Author)
		}
		totals[p.Author] += weight(p)
	}
	return authors, totals
}

func top(authors []string, totals map[string]int) (string, int) {
	best := authors[0]
	for _, a := range authors[1:] {
		if totals[a] > totals[best] {
			best = a
		}
	}
	return best, totals[best]
}

// MostBlogs returns the author with the most posts. Ties go to the author seen first.
func MostBlogs(posts []model.Post) *AuthorBlogsOut {
	if len(posts) == 0 {
		return nil
	}
	author, n := top(groupByAuthor(posts, func(model.Post) int { return 1 }))
	return &AuthorBlogsOut{Author: author, Blogs: n}
}

// MostLikes returns the author whose posts collected the most likes. Ties go to the author seen first.
func MostLikes(posts []model.Post) *AuthorLikesOut {
	if len(posts) == 0 {
		return nil
	}
	author, n := top(groupByAuthor(posts, func(p model.Post) int { return p.Likes }))
	return &AuthorLikesOut{Author: author, Likes: n}
}
