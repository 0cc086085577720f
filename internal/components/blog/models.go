package blog

type (
	// CreatePostIn is the body of POST /api/blogs. Likes is a pointer so that an absent
	// field can be told apart from an explicit zero.
	CreatePostIn struct {
		Title  string `json:"title"`
		Author string `json:"author"`
		URL    string `json:"url"`
		Likes  *int   `json:"likes,omitempty"`
	}

	// UpdatePostIn replaces every editable field of a post.
	UpdatePostIn struct {
		Title  string `json:"title"`
		Author string `json:"author"`
		URL    string `json:"url"`
		Likes  *int   `json:"likes,omitempty"`
	}

	PostOut struct {
		ID     string `json:"id"`
		Title  string `json:"title"`
		Author string `json:"author"`
		URL    string `json:"url"`
		Likes  int    `json:"likes"`
		User   string `json:"user"`
	}

	UserSummary struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Name     string `json:"name"`
	}

	// PostWithUserOut is a list entry; User is null when the owner no longer resolves.
	PostWithUserOut struct {
		ID     string       `json:"id"`
		Title  string       `json:"title"`
		Author string       `json:"author"`
		URL    string       `json:"url"`
		Likes  int          `json:"likes"`
		User   *UserSummary `json:"user"`
	}

	FavoriteOut struct {
		Title  string `json:"title"`
		Author string `json:"author"`
		Likes  int    `json:"likes"`
	}

	AuthorBlogsOut struct {
		Author string `json:"author"`
		Blogs  int    `json:"blogs"`
	}

	AuthorLikesOut struct {
		Author string `json:"author"`
		Likes  int    `json:"likes"`
	}

	StatsOut struct {
		TotalLikes   int             `json:"totalLikes"`
		FavoriteBlog *FavoriteOut    `json:"favoriteBlog"`
		MostBlogs    *AuthorBlogsOut `json:"mostBlogs"`
		MostLikes    *AuthorLikesOut `json:"mostLikes"`
	}
)
