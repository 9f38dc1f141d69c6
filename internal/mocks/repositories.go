package mocks

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/lib/pq"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/query"
	"github.com/news-api/internal/repository"
)

// MockStore is the in-memory state shared by the mock repositories so that
// existence checks, aggregates and cascades see each other's writes.
type MockStore struct {
	mu sync.Mutex

	Topics   map[string]*models.Topic
	Users    map[string]*models.User
	Articles map[int]*models.Article
	Comments map[int]*models.Comment

	nextArticleID int
	nextCommentID int

	// Err, when set, is returned by every operation (simulated outage)
	Err error
	// Writes records the name of every mutating call, in order
	Writes []string
	// Now stamps created_at on inserts
	Now func() time.Time
}

// NewMockStore creates an empty store
func NewMockStore() *MockStore {
	return &MockStore{
		Topics:        make(map[string]*models.Topic),
		Users:         make(map[string]*models.User),
		Articles:      make(map[int]*models.Article),
		Comments:      make(map[int]*models.Comment),
		nextArticleID: 1,
		nextCommentID: 1,
		Now:           time.Now,
	}
}

// NewMockRepositories wires every mock repository to one store
func NewMockRepositories(store *MockStore) *repository.Repositories {
	return &repository.Repositories{
		Exists:  &MockExistenceChecker{Store: store},
		Topic:   &MockTopicRepository{Store: store},
		User:    &MockUserRepository{Store: store},
		Article: &MockArticleRepository{Store: store},
		Comment: &MockCommentRepository{Store: store},
		Admin:   &MockAdminRepository{Store: store},
	}
}

// AddTopic seeds a topic directly
func (s *MockStore) AddTopic(slug, description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Topics[slug] = &models.Topic{Slug: slug, Description: description}
}

// AddUser seeds a user directly
func (s *MockStore) AddUser(username, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Users[username] = &models.User{Username: username, Name: name}
}

// AddArticle seeds an article directly and returns its id
func (s *MockStore) AddArticle(a models.Article) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ArticleID = s.nextArticleID
	s.nextArticleID++
	s.Articles[a.ArticleID] = &a
	return a.ArticleID
}

// AddComment seeds a comment directly and returns its id
func (s *MockStore) AddComment(c models.Comment) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.CommentID = s.nextCommentID
	s.nextCommentID++
	s.Comments[c.CommentID] = &c
	return c.CommentID
}

// WriteCount returns how many mutating calls reached the store
func (s *MockStore) WriteCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Writes)
}

func (s *MockStore) commentCount(articleID int) int {
	n := 0
	for _, c := range s.Comments {
		if c.ArticleID == articleID {
			n++
		}
	}
	return n
}

func (s *MockStore) article(id int) *models.Article {
	a, ok := s.Articles[id]
	if !ok {
		return nil
	}
	out := *a
	out.CommentCount = s.commentCount(id)
	return &out
}

// MockExistenceChecker is a mock implementation of ExistenceChecker
type MockExistenceChecker struct {
	Store *MockStore
	Calls []string
}

func (m *MockExistenceChecker) Exists(ctx context.Context, entity repository.Entity, column string, value any) (bool, error) {
	s := m.Store
	s.mu.Lock()
	defer s.mu.Unlock()
	m.Calls = append(m.Calls, string(entity)+"."+column)
	if s.Err != nil {
		return false, s.Err
	}

	switch entity {
	case repository.EntityTopic:
		_, ok := s.Topics[value.(string)]
		return ok, nil
	case repository.EntityUser:
		_, ok := s.Users[value.(string)]
		return ok, nil
	case repository.EntityArticle:
		_, ok := s.Articles[value.(int)]
		return ok, nil
	case repository.EntityComment:
		_, ok := s.Comments[value.(int)]
		return ok, nil
	}
	return false, nil
}

// MockTopicRepository is a mock implementation of TopicRepository
type MockTopicRepository struct {
	Store *MockStore
}

func (m *MockTopicRepository) List(ctx context.Context) ([]*models.Topic, error) {
	s := m.Store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	topics := make([]*models.Topic, 0, len(s.Topics))
	for _, t := range s.Topics {
		topics = append(topics, t)
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].Slug < topics[j].Slug })
	return topics, nil
}

func (m *MockTopicRepository) Create(ctx context.Context, topic *models.Topic) error {
	s := m.Store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Writes = append(s.Writes, "topic.create")
	t := *topic
	s.Topics[t.Slug] = &t
	return nil
}

func (m *MockTopicRepository) Count(ctx context.Context) (int, error) {
	s := m.Store
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Topics), s.Err
}

func (m *MockTopicRepository) BatchInsert(ctx context.Context, rows [][]any) (int, error) {
	s := m.Store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	s.Writes = append(s.Writes, "topic.batch")
	for _, row := range rows {
		slug := row[0].(string)
		s.Topics[slug] = &models.Topic{Slug: slug, Description: row[1].(string)}
	}
	return len(rows), nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Store *MockStore
}

func (m *MockUserRepository) List(ctx context.Context) ([]*models.User, error) {
	s := m.Store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	users := make([]*models.User, 0, len(s.Users))
	for _, u := range s.Users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	s := m.Store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Users[username], nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	s := m.Store
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Users), s.Err
}

func (m *MockUserRepository) BatchInsert(ctx context.Context, rows [][]any) (int, error) {
	s := m.Store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	s.Writes = append(s.Writes, "user.batch")
	for _, row := range rows {
		u := &models.User{Username: row[0].(string), Name: row[1].(string)}
		if avatar, ok := row[2].(string); ok {
			u.AvatarURL = &avatar
		}
		s.Users[u.Username] = u
	}
	return len(rows), nil
}

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	Store *MockStore
	// LastList is the most recent validated listing request
	LastList *query.ArticleList
}

func (m *MockArticleRepository) filtered(q *query.ArticleList) []*models.Article {
	var out []*models.Article
	for id := range m.Store.Articles {
		a := m.Store.article(id)
		if q.Topic == "" || a.Topic == q.Topic {
			out = append(out, a)
		}
	}
	return out
}

func (m *MockArticleRepository) List(ctx context.Context, q *query.ArticleList) ([]*models.ArticleSummary, error) {
	s := m.Store
	s.mu.Lock()
	defer s.mu.Unlock()
	m.LastList = q
	if s.Err != nil {
		return nil, s.Err
	}

	articles := m.filtered(q)
	desc := q.Dir.String() == "DESC"
	sort.SliceStable(articles, func(i, j int) bool {
		c := compareArticles(articles[i], articles[j], q.Sort.Name())
		if c == 0 {
			return articles[i].ArticleID < articles[j].ArticleID
		}
		if desc {
			return c > 0
		}
		return c < 0
	})

	start := q.Offset.Int()
	if start > len(articles) {
		start = len(articles)
	}
	end := start + q.Limit.Int()
	if end > len(articles) {
		end = len(articles)
	}

	page := make([]*models.ArticleSummary, 0, end-start)
	for _, a := range articles[start:end] {
		page = append(page, &models.ArticleSummary{
			Author:       a.Author,
			Title:        a.Title,
			ArticleID:    a.ArticleID,
			Topic:        a.Topic,
			CreatedAt:    a.CreatedAt,
			Votes:        a.Votes,
			CommentCount: a.CommentCount,
		})
	}
	return page, nil
}

func compareArticles(a, b *models.Article, column string) int {
	switch column {
	case "author":
		return strings.Compare(a.Author, b.Author)
	case "title":
		return strings.Compare(a.Title, b.Title)
	case "topic":
		return strings.Compare(a.Topic, b.Topic)
	case "article_id":
		return a.ArticleID - b.ArticleID
	case "votes":
		return a.Votes - b.Votes
	case "comment_count":
		return a.CommentCount - b.CommentCount
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}

func (m *MockArticleRepository) CountMatching(ctx context.Context, q *query.ArticleList) (int, error) {
	s := m.Store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	return len(m.filtered(q)), nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int) (*models.Article, error) {
	s := m.Store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.article(id), nil
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) error {
	s := m.Store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Writes = append(s.Writes, "article.create")
	article.ArticleID = s.nextArticleID
	s.nextArticleID++
	article.Votes = 0
	article.CreatedAt = s.Now()
	article.CommentCount = 0
	stored := *article
	s.Articles[stored.ArticleID] = &stored
	return nil
}

func (m *MockArticleRepository) IncrementVotes(ctx context.Context, id, inc int) (*models.Article, error) {
	s := m.Store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	s.Writes = append(s.Writes, "article.votes")
	a, ok := s.Articles[id]
	if !ok {
		return nil, nil
	}
	votes, err := addVotes(a.Votes, inc)
	if err != nil {
		return nil, err
	}
	a.Votes = votes
	return s.article(id), nil
}

func (m *MockArticleRepository) UpdateBody(ctx context.Context, id int, body string) (*models.Article, error) {
	s := m.Store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	s.Writes = append(s.Writes, "article.body")
	a, ok := s.Articles[id]
	if !ok {
		return nil, nil
	}
	a.Body = body
	return s.article(id), nil
}

func (m *MockArticleRepository) Delete(ctx context.Context, id int) error {
	s := m.Store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Writes = append(s.Writes, "article.delete")
	delete(s.Articles, id)
	for cid, c := range s.Comments {
		if c.ArticleID == id {
			delete(s.Comments, cid)
		}
	}
	return nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	s := m.Store
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Articles), s.Err
}

func (m *MockArticleRepository) GetAllIDs(ctx context.Context) ([]int, error) {
	s := m.Store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	ids := make([]int, 0, len(s.Articles))
	for id := range s.Articles {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}

func (m *MockArticleRepository) BatchInsert(ctx context.Context, rows [][]any) (int, error) {
	s := m.Store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	s.Writes = append(s.Writes, "article.batch")
	for _, row := range rows {
		a := &models.Article{
			ArticleID: s.nextArticleID,
			Title:     row[0].(string),
			Body:      row[1].(string),
			Votes:     row[2].(int),
			Topic:     row[3].(string),
			Author:    row[4].(string),
			CreatedAt: row[5].(time.Time),
		}
		s.nextArticleID++
		s.Articles[a.ArticleID] = a
	}
	return len(rows), nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	Store *MockStore
}

func (m *MockCommentRepository) ListByArticle(ctx context.Context, articleID int) ([]*models.Comment, error) {
	s := m.Store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	comments := []*models.Comment{}
	for _, c := range s.Comments {
		if c.ArticleID == articleID {
			out := *c
			comments = append(comments, &out)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		if comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CommentID > comments[j].CommentID
		}
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	s := m.Store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Writes = append(s.Writes, "comment.create")
	comment.CommentID = s.nextCommentID
	s.nextCommentID++
	comment.Votes = 0
	comment.CreatedAt = s.Now()
	stored := *comment
	s.Comments[stored.CommentID] = &stored
	return nil
}

func (m *MockCommentRepository) IncrementVotes(ctx context.Context, id, inc int) (*models.Comment, error) {
	s := m.Store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	s.Writes = append(s.Writes, "comment.votes")
	c, ok := s.Comments[id]
	if !ok {
		return nil, nil
	}
	votes, err := addVotes(c.Votes, inc)
	if err != nil {
		return nil, err
	}
	c.Votes = votes
	out := *c
	return &out, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int) error {
	s := m.Store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Writes = append(s.Writes, "comment.delete")
	delete(s.Comments, id)
	return nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int, error) {
	s := m.Store
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Comments), s.Err
}

func (m *MockCommentRepository) BatchInsert(ctx context.Context, rows [][]any) (int, error) {
	s := m.Store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	s.Writes = append(s.Writes, "comment.batch")
	for _, row := range rows {
		c := &models.Comment{
			CommentID: s.nextCommentID,
			Author:    row[0].(string),
			ArticleID: row[1].(int),
			Votes:     row[2].(int),
			CreatedAt: row[3].(time.Time),
			Body:      row[4].(string),
		}
		s.nextCommentID++
		s.Comments[c.CommentID] = c
	}
	return len(rows), nil
}

// MockAdminRepository is a mock implementation of AdminRepository
type MockAdminRepository struct {
	Store *MockStore
}

func (m *MockAdminRepository) Truncate(ctx context.Context) error {
	s := m.Store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Writes = append(s.Writes, "truncate")
	s.Topics = make(map[string]*models.Topic)
	s.Users = make(map[string]*models.User)
	s.Articles = make(map[int]*models.Article)
	s.Comments = make(map[int]*models.Comment)
	s.nextArticleID = 1
	s.nextCommentID = 1
	return nil
}

// addVotes fails the way the INT votes column does when the sum overflows
func addVotes(votes, inc int) (int, error) {
	sum := int64(votes) + int64(inc)
	if sum < math.MinInt32 || sum > math.MaxInt32 {
		return 0, &pq.Error{Code: "22003", Message: "integer out of range"}
	}
	return int(sum), nil
}
