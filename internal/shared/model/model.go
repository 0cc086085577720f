package model

type (
	// User is a registered account. Blogs holds the ids of the posts the user created, in creation order.
	User struct {
		ID           string
		Username     string
		Name         string
		PasswordHash string
		Blogs        []string
	}

	// Post is a blog entry owned by the user whose id is in UserID.
	Post struct {
		ID     string
		Title  string
		Author string
		URL    string
		Likes  int
		UserID string
	}

	// PostFields are the mutable parts of a Post.
	PostFields struct {
		Title  string
		Author string
		URL    string
		Likes  int
	}
)
