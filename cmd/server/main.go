// Bloglist serves a JSON API for sharing blog links between registered users.
package main

import (
	"go.uber.org/fx"

	"github.com/andrasnagy-data/bloglist/internal/components/auth"
	"github.com/andrasnagy-data/bloglist/internal/components/blog"
	"github.com/andrasnagy-data/bloglist/internal/components/user"
	"github.com/andrasnagy-data/bloglist/internal/server"
	"github.com/andrasnagy-data/bloglist/internal/shared/config"
	"github.com/andrasnagy-data/bloglist/internal/shared/database"
	"github.com/andrasnagy-data/bloglist/internal/shared/logging"
	"github.com/andrasnagy-data/bloglist/internal/shared/middleware"
	"github.com/andrasnagy-data/bloglist/internal/shared/token"
)

func main() {
	fx.New(
		fx.Provide(
			config.NewConfig,
			logging.NewLogger,
			database.NewStore,
			token.NewService,
			middleware.NewAuthenticator,
			server.NewServer,
			server.NewHealthSrvc,
			server.NewHealthHandler,
			blog.NewBlogService,
			fx.Annotate(blog.NewRouter, fx.ResultTags(`name:"blogRouter"`)),
			user.NewUserService,
			fx.Annotate(user.NewRouter, fx.ResultTags(`name:"userRouter"`)),
			auth.NewAuthService,
			fx.Annotate(auth.NewRouter, fx.ResultTags(`name:"loginRouter"`)),
		),
		fx.Invoke(server.Register),
	).Run()
}
