// Package users stores user records in whatever database the request is routed to.
//
// Stores take a database (or database name) strategy from package dbrouter
// and never look at the tenant themselves.
package users

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Collection is the collection name inside every tenant database.
const Collection = "users"

var (
	// ErrCreateUser wraps storage failures while inserting a user.
	ErrCreateUser = errors.New("users: create failed")
	// ErrListUsers wraps storage failures while reading users.
	ErrListUsers = errors.New("users: list failed")
	// ErrInvalidID is returned when a client-supplied id is not a hex ObjectID.
	ErrInvalidID = errors.New("users: invalid id")
)

// User is a user record as exposed over HTTP.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Store creates and lists users in the current request's database.
type Store interface {
	Create(ctx context.Context, u User) (User, error)
	List(ctx context.Context) ([]User, error)
}

// document is the stored shape; _id is an ObjectID so records inserted by
// other tools decode cleanly.
type document struct {
	ID    bson.ObjectID `bson:"_id,omitempty"`
	Name  string        `bson:"name"`
	Email string        `bson:"email"`
	Role  string        `bson:"role"`
}

func toDocument(u User) (document, error) {
	d := document{Name: u.Name, Email: u.Email, Role: u.Role}
	if u.ID == "" {
		d.ID = bson.NewObjectID()
		return d, nil
	}
	id, err := bson.ObjectIDFromHex(u.ID)
	if err != nil {
		return document{}, errors.Join(ErrInvalidID, err)
	}
	d.ID = id
	return d, nil
}

func (d document) user() User {
	return User{ID: d.ID.Hex(), Name: d.Name, Email: d.Email, Role: d.Role}
}
