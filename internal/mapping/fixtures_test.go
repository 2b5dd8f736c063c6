package mapping

import (
	"reflect"
	"strings"
)

type Author struct {
	ID   int
	Name string
}

type Comment struct {
	ID     int
	PostID int
	Body   string
}

type Stamp struct {
	CreatedBy string
}

type Note struct {
	Stamp
	ID int
}

type Post struct {
	ID       int
	Title    string
	AuthorID int
	Author   *Author
	Comments []Comment
	secret   string
}

func knownTypes() map[string]reflect.Type {
	return map[string]reflect.Type{
		"mapping.Author":  reflect.TypeFor[Author](),
		"mapping.Comment": reflect.TypeFor[Comment](),
		"mapping.Post":    reflect.TypeFor[Post](),
		"mapping.Note":    reflect.TypeFor[Note](),
		"mapping.Naming":  reflect.TypeFor[string](),
	}
}

func testFuncs() *TransformRegistry {
	r := NewTransformRegistry()
	_ = r.Add("strings.ToLower", strings.ToLower)
	_ = r.Add("trim", strings.TrimSpace)

	return r
}
