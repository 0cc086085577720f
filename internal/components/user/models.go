package user

type (
	CreateUserIn struct {
		Username string `json:"username"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}

	// CreateUserOut never carries password material.
	CreateUserOut struct {
		ID       string   `json:"id"`
		Username string   `json:"username"`
		Name     string   `json:"name"`
		Blogs    []string `json:"blogs"`
	}

	PostSummary struct {
		ID     string `json:"id"`
		Title  string `json:"title"`
		Author string `json:"author"`
		URL    string `json:"url"`
	}

	UserOut struct {
		ID       string        `json:"id"`
		Username string        `json:"username"`
		Name     string        `json:"name"`
		Blogs    []PostSummary `json:"blogs"`
	}
)
