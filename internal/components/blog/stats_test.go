package blog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrasnagy-data/bloglist/internal/shared/model"
)

var (
	onePost = []model.Post{
		{ID: "5a422a851b54a676234d17f7", Title: "React patterns", Author: "Michael Chan", URL: "https://reactpatterns.com/", Likes: 7},
	}

	manyPosts = []model.Post{
		{ID: "5a422a851b54a676234d17f7", Title: "React patterns", Author: "Michael Chan", URL: "https://reactpatterns.com/", Likes: 7},
		{ID: "5a422aa71b54a676234d17f8", Title: "Go To Statement Considered Harmful", Author: "Edsger W. Dijkstra", URL: "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html", Likes: 5},
		{ID: "5a422b3a1b54a676234d17f9", Title: "Canonical string reduction", Author: "Edsger W. Dijkstra", URL: "http://www.cs.utexas.edu/~EWD/transcriptions/EWD08xx/EWD808.html", Likes: 12},
		{ID: "5a422b891b54a676234d17fa", Title: "First class tests", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2017/05/05/TestDefinitions.htmll", Likes: 10},
		{ID: "5a422ba71b54a676234d17fb", Title: "TDD harms architecture", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2017/03/03/TDD-Harms-Architecture.html", Likes: 0},
		{ID: "5a422bc61b54a676234d17fc", Title: "Type wars", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2016/05/01/TypeWars.html", Likes: 2},
	}
)

func prepend(p model.Post, posts []model.Post) []model.Post {
	return append([]model.Post{p}, posts...)
}

func TestTotalLikes(t *testing.T) {
	assert.Equal(t, 0, TotalLikes(nil))
	assert.Equal(t, 7, TotalLikes(onePost))
	assert.Equal(t, 36, TotalLikes(manyPosts))
}

func TestFavoriteBlog(t *testing.T) {
	assert.Nil(t, FavoriteBlog(nil))
	assert.Equal(t, &FavoriteOut{Title: "React patterns", Author: "Michael Chan", Likes: 7}, FavoriteBlog(onePost))
	assert.Equal(t, &FavoriteOut{Title: "Canonical string reduction", Author: "Edsger W. Dijkstra", Likes: 12}, FavoriteBlog(manyPosts))

	tied := prepend(model.Post{Title: "Test blog", Author: "Billy Smith", URL: "https://billysblog.com/test-blog", Likes: 12}, manyPosts)
	assert.Equal(t, &FavoriteOut{Title: "Test blog", Author: "Billy Smith", Likes: 12}, FavoriteBlog(tied))
}

func TestMostBlogs(t *testing.T) {
	assert.Nil(t, MostBlogs(nil))
	assert.Equal(t, &AuthorBlogsOut{Author: "Michael Chan", Blogs: 1}, MostBlogs(onePost))
	assert.Equal(t, &AuthorBlogsOut{Author: "Robert C. Martin", Blogs: 3}, MostBlogs(manyPosts))

	tied := prepend(model.Post{Title: "Test blog", Author: "Edsger W. Dijkstra", URL: "https://example.com/example-blog", Likes: 12}, manyPosts)
	assert.Equal(t, &AuthorBlogsOut{Author: "Edsger W. Dijkstra", Blogs: 3}, MostBlogs(tied))
}

func TestMostLikes(t *testing.T) {
	assert.Nil(t, MostLikes(nil))
	assert.Equal(t, &AuthorLikesOut{Author: "Michael Chan", Likes: 7}, MostLikes(onePost))
	assert.Equal(t, &AuthorLikesOut{Author: "Edsger W. Dijkstra", Likes: 17}, MostLikes(manyPosts))

	tied := prepend(model.Post{Title: "Test blog", Author: "Michael Chan", URL: "https://example.com/example-blog", Likes: 10}, manyPosts)
	assert.Equal(t, &AuthorLikesOut{Author: "Michael Chan", Likes: 17}, MostLikes(tied))
}
