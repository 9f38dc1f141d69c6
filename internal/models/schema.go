package models

// Schema names a table and the column order its tuples are written in.
// Bulk loading formats records against Columns, so the order here is the
// order of every tuple handed to the COPY statement.
type Schema struct {
	Table   string
	Columns []string
}

var (
	TopicSchema = Schema{
		Table:   "topics",
		Columns: []string{"slug", "description"},
	}
	UserSchema = Schema{
		Table:   "users",
		Columns: []string{"username", "name", "avatar_url"},
	}
	ArticleSchema = Schema{
		Table:   "articles",
		Columns: []string{"title", "body", "votes", "topic", "author", "created_at"},
	}
	CommentSchema = Schema{
		Table:   "comments",
		Columns: []string{"author", "article_id", "votes", "created_at", "body"},
	}
)

// SeedOrder is the insertion order that satisfies every foreign key.
var SeedOrder = []Schema{TopicSchema, UserSchema, ArticleSchema, CommentSchema}
