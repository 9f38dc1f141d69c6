package seed

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
)

//go:embed data
var fixtures embed.FS

// Fixtures is the bundled dataset tree: data/<dataset>/<table>.json
func Fixtures() fs.FS {
	sub, _ := fs.Sub(fixtures, "data")
	return sub
}

// Dataset holds the records of every table
type Dataset struct {
	Topics   []Record
	Users    []Record
	Articles []Record
	Comments []Record
}

// LoadDataset reads <name>/{topics,users,articles,comments}.json from fsys
func LoadDataset(fsys fs.FS, name string) (*Dataset, error) {
	var ds Dataset
	files := []struct {
		table string
		dst   *[]Record
	}{
		{"topics", &ds.Topics},
		{"users", &ds.Users},
		{"articles", &ds.Articles},
		{"comments", &ds.Comments},
	}

	for _, f := range files {
		file := path.Join(name, f.table+".json")
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		records, err := decodeRecords(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", file, err)
		}
		*f.dst = records
	}
	return &ds, nil
}

// decodeRecords keeps integral numbers as int so they match the column types
func decodeRecords(data []byte) ([]Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var records []Record
	if err := dec.Decode(&records); err != nil {
		return nil, err
	}
	for _, rec := range records {
		for k, v := range rec {
			num, ok := v.(json.Number)
			if !ok {
				continue
			}
			if i, err := num.Int64(); err == nil {
				rec[k] = int(i)
			} else if f, err := num.Float64(); err == nil {
				rec[k] = f
			}
		}
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}
