// Package mapping provides the YAML schema file model, its loader, structural
// validation, and the registry of named column transforms.
//
// A schema file declares, per target type, which raw record keys feed which
// properties and how relations to other target types are resolved.
//
// # Schema Overview
//
//	version: "1"
//	naming: snake_case          # default raw key derivation for all schemas
//	schemas:
//	  - type: blog.Post
//	    columns:
//	      - ID                                  # key derived from the property
//	      - Title: headline                     # shorthand: property -> raw key
//	      - property: Slug                      # full form
//	        name: title
//	        transform: slugify
//	    many_to_one:
//	      - property: Author
//	        type: blog.Author                   # or alias: authors
//	        own_key: AuthorID
//	        match_key: id
//	      - property: Stats                     # embedded: columns under "stats."
//	        prefix: stats
//	    one_to_many:
//	      - property: Comments
//	        alias: comments
//	        own_key: ID
//	        inverse_key: post_id
//	transforms:
//	  - name: slugify
//	    func: strings.ToLower                   # defaults to name
//
// # Relations
//
//   - many_to_one with both own_key and match_key joins against a source
//     record set; without them the relation is embedded in the same record
//     under a dotted prefix (prefix defaults to the property key).
//   - one_to_many always joins; a relation missing own_key or inverse_key
//     never expands, which validation reports as a warning.
//
// # Type Names
//
// Types are referenced by the names their registry knows them under:
// "blog.Post" (package alias), "remapper/examples/blog.Post" (full path)
// or "Post" (name only, when unambiguous).
package mapping
