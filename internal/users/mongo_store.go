package users

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/orgdb/pkg/dbrouter"
)

// MongoStore keeps users in the "users" collection of the routed database.
type MongoStore struct {
	database dbrouter.DatabaseFunc
}

// NewMongoStore returns a store that resolves its database through database on every call.
func NewMongoStore(database dbrouter.DatabaseFunc) *MongoStore {
	return &MongoStore{database: database}
}

// Create inserts u and returns it with its generated identifier.
func (s *MongoStore) Create(ctx context.Context, u User) (User, error) {
	doc, err := toDocument(u)
	if err != nil {
		return User{}, err
	}

	if _, err := s.database(ctx).Collection(Collection).InsertOne(ctx, doc); err != nil {
		return User{}, errors.Join(ErrCreateUser, err)
	}
	return doc.user(), nil
}

// List returns every user of the routed database. The result is never nil.
func (s *MongoStore) List(ctx context.Context) ([]User, error) {
	cur, err := s.database(ctx).Collection(Collection).Find(ctx, bson.D{})
	if err != nil {
		return nil, errors.Join(ErrListUsers, err)
	}

	var docs []document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Join(ErrListUsers, err)
	}

	out := make([]User, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.user())
	}
	return out, nil
}
