package query

// Listing defaults applied when a parameter is omitted.
const (
	DefaultSortBy = "created_at"
	DefaultOrder  = "desc"
	DefaultLimit  = "10"
	DefaultPage   = "1"
)

// ArticleList is a validated article listing request.
type ArticleList struct {
	Topic  string // empty means unfiltered
	Sort   SortColumn
	Dir    Direction
	Limit  Count
	Offset Count
}

// NewArticleList validates the structural parameters of a listing in a
// fixed order: sort column, then direction, then limit and page. The first
// failure is returned. Topic is data and is bound, so it is not checked
// here.
func NewArticleList(topic, sortBy, order, limit, page string) (*ArticleList, error) {
	sortBy = orDefault(sortBy, DefaultSortBy)
	order = orDefault(order, DefaultOrder)
	limit = orDefault(limit, DefaultLimit)
	page = orDefault(page, DefaultPage)

	col, err := ParseSortColumn(sortBy)
	if err != nil {
		return nil, err
	}
	dir, err := ParseDirection(order)
	if err != nil {
		return nil, err
	}
	lim, err := ParseCount(limit)
	if err != nil {
		return nil, err
	}
	pg, err := ParseCount(page)
	if err != nil {
		return nil, err
	}
	off, err := Offset(pg, lim)
	if err != nil {
		return nil, err
	}

	return &ArticleList{
		Topic:  topic,
		Sort:   col,
		Dir:    dir,
		Limit:  lim,
		Offset: off,
	}, nil
}

// Select builds the aggregate listing query.
func (q *ArticleList) Select() (string, []any) {
	var b Builder
	b.SQL("SELECT articles.author, articles.title, articles.article_id, articles.topic, " +
		"articles.created_at, articles.votes, COUNT(comments.article_id)::INT AS comment_count " +
		"FROM articles LEFT JOIN comments ON articles.article_id = comments.article_id")
	q.where(&b)
	b.SQL(" GROUP BY articles.article_id")
	b.OrderBy(q.Sort, q.Dir)
	if q.Sort.Name() != "article_id" {
		// ties on the sort column are broken by id so pages are stable
		b.SQL(", articles.article_id ASC")
	}
	b.Limit(q.Limit)
	b.Offset(q.Offset)
	return b.Build()
}

// Count builds the total-count query over the same filter, ignoring
// pagination.
func (q *ArticleList) Count() (string, []any) {
	var b Builder
	b.SQL("SELECT COUNT(*)::INT FROM articles")
	q.where(&b)
	return b.Build()
}

func (q *ArticleList) where(b *Builder) {
	if q.Topic != "" {
		b.SQL(" WHERE articles.topic = ").Arg(q.Topic)
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
