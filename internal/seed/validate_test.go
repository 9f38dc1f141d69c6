package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_BundledDatasets(t *testing.T) {
	for _, name := range []string{"test", "development"} {
		ds, err := LoadDataset(Fixtures(), name)
		require.NoError(t, err)
		assert.NoError(t, Validate(ds), name)
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	ds := &Dataset{
		Topics: []Record{{"slug": "mitch", "description": "d"}, {"slug": "mitch", "description": "again"}},
		Users:  []Record{{"username": "lurker", "name": "n", "avatar_url": "not a url"}},
		Articles: []Record{
			{"title": "t", "body": "b", "topic": "dogs", "author": "lurker", "created_at": 0},
		},
		Comments: []Record{{"body": "c", "author": "ghost", "article_id": 1, "created_at": 0}},
	}

	err := Validate(ds)
	var dsErr *DatasetError
	require.ErrorAs(t, err, &dsErr)

	fields := make([]string, 0, len(dsErr.Errors))
	for _, e := range dsErr.Errors {
		fields = append(fields, e.Table+"."+e.Field)
	}
	assert.Equal(t, []string{"topics.slug", "users.avatar_url", "articles.topic", "articles.author", "comments.author"}, fields)
	assert.Equal(t, 2, dsErr.Errors[0].Line)
	assert.Contains(t, err.Error(), "dataset has 5 invalid field(s)")
}

func TestDatasetError_Truncates(t *testing.T) {
	ds := &Dataset{}
	for range 15 {
		ds.Topics = append(ds.Topics, Record{})
	}

	err := Validate(ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "and 20 more")
}
