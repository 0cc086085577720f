package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/andrasnagy-data/bloglist/internal/shared/model"
	"github.com/andrasnagy-data/bloglist/internal/shared/store"
)

const (
	usersCollection = "users"
	postsCollection = "blogs"
)

type (
	Store struct {
		client *mongo.Client
		users  *mongo.Collection
		posts  *mongo.Collection
	}

	userDoc struct {
		ID           primitive.ObjectID   `bson:"_id,omitempty"`
		Username     string               `bson:"username"`
		Name         string               `bson:"name"`
		PasswordHash string               `bson:"passwordHash"`
		Blogs        []primitive.ObjectID `bson:"blogs"`
	}

	postDoc struct {
		ID     primitive.ObjectID `bson:"_id,omitempty"`
		Title  string             `bson:"title"`
		Author string             `bson:"author"`
		URL    string             `bson:"url"`
		Likes  int                `bson:"likes"`
		User   primitive.ObjectID `bson:"user"`
	}
)

var _ store.Store = (*Store)(nil)

// Open creates a client for uri. The driver dials lazily, so an unreachable server is only
// reported by Ping or EnsureIndexes.
func Open(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	db := client.Database(database)
	return &Store{
		client: client,
		users:  db.Collection(usersCollection),
		posts:  db.Collection(postsCollection),
	}, nil
}

// EnsureIndexes creates the unique username index backing ErrDuplicateUsername.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, store.ErrInvalidID
	}
	return oid, nil
}

// parseIDs drops ids that cannot be ObjectIDs; they cannot match any document.
func parseIDs(ids []string) []primitive.ObjectID {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	return oids
}

func (d userDoc) toModel() model.User {
	blogs := make([]string, 0, len(d.Blogs))
	for _, b := range d.Blogs {
		blogs = append(blogs, b.Hex())
	}
	return model.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		Name:         d.Name,
		PasswordHash: d.PasswordHash,
		Blogs:        blogs,
	}
}

func (d postDoc) toModel() model.Post {
	return model.Post{
		ID:     d.ID.Hex(),
		Title:  d.Title,
		Author: d.Author,
		URL:    d.URL,
		Likes:  d.Likes,
		UserID: d.User.Hex(),
	}
}

func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	doc := userDoc{
		ID:           primitive.NewObjectID(),
		Username:     u.Username,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Blogs:        parseIDs(u.Blogs),
	}

	if _, err := s.users.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return store.ErrDuplicateUsername
		}
		return err
	}

	u.ID = doc.ID.Hex()
	if u.Blogs == nil {
		u.Blogs = []string{}
	}
	return nil
}

func (s *Store) findUser(ctx context.Context, filter bson.M) (*model.User, error) {
	var doc userDoc
	if err := s.users.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	u := doc.toModel()
	return &u, nil
}

func (s *Store) FindUserByID(ctx context.Context, id string) (*model.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.findUser(ctx, bson.M{"_id": oid})
}

func (s *Store) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.findUser(ctx, bson.M{"username": username})
}

func (s *Store) findUsers(ctx context.Context, filter bson.M) ([]model.User, error) {
	cursor, err := s.users.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var docs []userDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	users := make([]model.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toModel())
	}
	return users, nil
}

func (s *Store) FindUsersByIDs(ctx context.Context, ids []string) ([]model.User, error) {
	return s.findUsers(ctx, bson.M{"_id": bson.M{"$in": parseIDs(ids)}})
}

func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.findUsers(ctx, bson.M{})
}

func (s *Store) AppendUserPost(ctx context.Context, userID, postID string) error {
	uid, err := parseID(userID)
	if err != nil {
		return err
	}
	pid, err := parseID(postID)
	if err != nil {
		return err
	}

	res, err := s.users.UpdateByID(ctx, uid, bson.M{"$push": bson.M{"blogs": pid}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) CreatePost(ctx context.Context, p *model.Post) error {
	owner, err := parseID(p.UserID)
	if err != nil {
		return err
	}

	doc := postDoc{
		ID:     primitive.NewObjectID(),
		Title:  p.Title,
		Author: p.Author,
		URL:    p.URL,
		Likes:  p.Likes,
		User:   owner,
	}
	if _, err := s.posts.InsertOne(ctx, doc); err != nil {
		return err
	}

	p.ID = doc.ID.Hex()
	return nil
}

func (s *Store) FindPostByID(ctx context.Context, id string) (*model.Post, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var doc postDoc
	if err := s.posts.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	p := doc.toModel()
	return &p, nil
}

func (s *Store) findPosts(ctx context.Context, filter bson.M) ([]model.Post, error) {
	cursor, err := s.posts.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var docs []postDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	posts := make([]model.Post, 0, len(docs))
	for _, d := range docs {
		posts = append(posts, d.toModel())
	}
	return posts, nil
}

func (s *Store) FindPostsByIDs(ctx context.Context, ids []string) ([]model.Post, error) {
	return s.findPosts(ctx, bson.M{"_id": bson.M{"$in": parseIDs(ids)}})
}

func (s *Store) ListPosts(ctx context.Context) ([]model.Post, error) {
	return s.findPosts(ctx, bson.M{})
}

func (s *Store) UpdatePost(ctx context.Context, id string, fields model.PostFields) (*model.Post, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{
		"title":  fields.Title,
		"author": fields.Author,
		"url":    fields.URL,
		"likes":  fields.Likes,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc postDoc
	if err := s.posts.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	p := doc.toModel()
	return &p, nil
}

func (s *Store) DeletePost(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := s.posts.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
