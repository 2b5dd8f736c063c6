package schema_test

import (
	"database/sql"
	"fmt"
	"reflect"
	"time"

	"remapper/schema"
)

func ExampleClassify() {
	for _, t := range []reflect.Type{
		reflect.TypeFor[int](),
		reflect.TypeFor[*string](),
		reflect.TypeFor[time.Time](),
		reflect.TypeFor[Desglose](),
		reflect.TypeFor[*Desglose](),
		reflect.TypeFor[Named](),
		reflect.TypeFor[[]*Item](),
		reflect.TypeFor[[]string](),
		reflect.TypeFor[sql.NullString](),
		reflect.TypeFor[map[string]int](),
		nil,
	} {
		fmt.Println(schema.Classify(t))
	}
	// Output:
	// ShapeScalar
	// ShapeScalar
	// ShapeScalar
	// ShapeStruct
	// ShapeStructPtr
	// ShapeInterface
	// ShapeSlice
	// ShapeOther
	// ShapeStruct
	// ShapeOther
	// ShapeUnknown
}

func ExampleNaming() {
	for _, n := range []schema.Naming{schema.Identity, schema.LowerCamel, schema.UpperCamel, schema.SnakeCase} {
		fmt.Println(n, n.Apply("CreatedAt"), n.Apply("PostID"))
	}
	// Output:
	// identity CreatedAt PostID
	// lower_camel createdAt postId
	// upper_camel CreatedAt PostId
	// snake_case created_at post_id
}

func ExampleTarget() {
	fmt.Println(schema.TypeOf[Item]())
	fmt.Println(schema.ByAlias("many1"))
	fmt.Println(schema.Target{}, schema.Target{}.IsZero())
	// Output:
	// schema_test.Item
	// alias:many1
	// <inferred> true
}
