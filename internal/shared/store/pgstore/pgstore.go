package pgstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andrasnagy-data/bloglist/internal/shared/model"
	"github.com/andrasnagy-data/bloglist/internal/shared/store"
)

const uniqueViolation = "23505"

const schema = `
CREATE TABLE IF NOT EXISTS users (
	seq           BIGSERIAL,
	id            TEXT PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	name          TEXT NOT NULL DEFAULT '',
	password_hash TEXT NOT NULL,
	blogs         TEXT[] NOT NULL DEFAULT '{}'
);

CREATE TABLE IF NOT EXISTS posts (
	seq     BIGSERIAL,
	id      TEXT PRIMARY KEY,
	title   TEXT NOT NULL,
	author  TEXT NOT NULL DEFAULT '',
	url     TEXT NOT NULL,
	likes   INTEGER NOT NULL DEFAULT 0,
	user_id TEXT NOT NULL REFERENCES users(id)
);`

type Store struct {
	pool *pgxpool.Pool
}

var _ store.Store = (*Store)(nil)

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// EnsureSchema creates the tables if they do not exist. There is no migration path beyond that.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, schema)
	return err
}

func (s *Store) Ping(ctx context.Context) error {
	var res int
	if err := s.pool.QueryRow(ctx, "SELECT 1").Scan(&res); err != nil {
		return err
	}
	return nil
}

func (s *Store) Close(context.Context) error {
	s.pool.Close()
	return nil
}

// canonicalID accepts any form uuid.Parse does and returns the hyphenated lower-case text stored in id columns.
func canonicalID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", store.ErrInvalidID
	}
	return parsed.String(), nil
}

func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	id := uuid.New().String()
	blogs := u.Blogs
	if blogs == nil {
		blogs = []string{}
	}

	stmt := `
	INSERT INTO users (id, username, name, password_hash, blogs)
	VALUES ($1, $2, $3, $4, $5)`

	_, err := s.pool.Exec(ctx, stmt, id, u.Username, u.Name, u.PasswordHash, blogs)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return store.ErrDuplicateUsername
		}
		return err
	}

	u.ID = id
	u.Blogs = blogs
	return nil
}

const userColumns = `id, username, name, password_hash, blogs`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.Name, &u.PasswordHash, &u.Blogs)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	if u.Blogs == nil {
		u.Blogs = []string{}
	}
	return &u, nil
}

func (s *Store) FindUserByID(ctx context.Context, id string) (*model.User, error) {
	id, err := canonicalID(id)
	if err != nil {
		return nil, err
	}
	return scanUser(s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (s *Store) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return scanUser(s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
}

func (s *Store) queryUsers(ctx context.Context, stmt string, args ...any) ([]model.User, error) {
	rows, err := s.pool.Query(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (s *Store) FindUsersByIDs(ctx context.Context, ids []string) ([]model.User, error) {
	return s.queryUsers(ctx, `SELECT `+userColumns+` FROM users WHERE id = ANY($1) ORDER BY seq`, ids)
}

func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.queryUsers(ctx, `SELECT `+userColumns+` FROM users ORDER BY seq`)
}

func (s *Store) AppendUserPost(ctx context.Context, userID, postID string) error {
	userID, err := canonicalID(userID)
	if err != nil {
		return err
	}

	result, err := s.pool.Exec(ctx, `UPDATE users SET blogs = array_append(blogs, $2) WHERE id = $1`, userID, postID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) CreatePost(ctx context.Context, p *model.Post) error {
	owner, err := canonicalID(p.UserID)
	if err != nil {
		return err
	}
	id := uuid.New().String()

	stmt := `
	INSERT INTO posts (id, title, author, url, likes, user_id)
	VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := s.pool.Exec(ctx, stmt, id, p.Title, p.Author, p.URL, p.Likes, owner); err != nil {
		return err
	}
	p.ID = id
	p.UserID = owner
	return nil
}

const postColumns = `id, title, author, url, likes, user_id`

func scanPost(row pgx.Row) (*model.Post, error) {
	var p model.Post
	err := row.Scan(&p.ID, &p.Title, &p.Author, &p.URL, &p.Likes, &p.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *Store) FindPostByID(ctx context.Context, id string) (*model.Post, error) {
	id, err := canonicalID(id)
	if err != nil {
		return nil, err
	}
	return scanPost(s.pool.QueryRow(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id))
}

func (s *Store) queryPosts(ctx context.Context, stmt string, args ...any) ([]model.Post, error) {
	rows, err := s.pool.Query(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []model.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

func (s *Store) FindPostsByIDs(ctx context.Context, ids []string) ([]model.Post, error) {
	return s.queryPosts(ctx, `SELECT `+postColumns+` FROM posts WHERE id = ANY($1) ORDER BY seq`, ids)
}

func (s *Store) ListPosts(ctx context.Context) ([]model.Post, error) {
	return s.queryPosts(ctx, `SELECT `+postColumns+` FROM posts ORDER BY seq`)
}

func (s *Store) UpdatePost(ctx context.Context, id string, fields model.PostFields) (*model.Post, error) {
	id, err := canonicalID(id)
	if err != nil {
		return nil, err
	}

	stmt := `
	UPDATE posts
	SET title = $2, author = $3, url = $4, likes = $5
	WHERE id = $1
	RETURNING ` + postColumns

	return scanPost(s.pool.QueryRow(ctx, stmt, id, fields.Title, fields.Author, fields.URL, fields.Likes))
}

func (s *Store) DeletePost(ctx context.Context, id string) error {
	id, err := canonicalID(id)
	if err != nil {
		return err
	}

	result, err := s.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
