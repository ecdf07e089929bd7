package commands

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/karlseguin/mcli/outputs"
	"github.com/karlseguin/mcli/pager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContext struct {
	out     string
	format  string
	timing  bool
	pager   pager.Preference
	queries []string
	args    []interface{}
	rows    [][]string
	exited  bool
}

func (c *fakeContext) WriteString(s string) { c.out += s }
func (c *fakeContext) Timing(on bool) { c.timing = on }
func (c *fakeContext) Pager(p pager.Preference) { c.pager = p }
func (c *fakeContext) Query(q string) { c.queries = append(c.queries, q) }
func (c *fakeContext) Schema() string { return "test" }
func (c *fakeContext) Exit() { c.exited = true }

func (c *fakeContext) Format(name string) error {
	if _, ok := outputs.Lookup(name); !ok {
		return errors.New("invalid format")
	}
	c.format = name
	return nil
}

func (c *fakeContext) Rows(query string, args ...interface{}) ([][]string, error) {
	c.args = args
	return c.rows, nil
}

func TestQuit(t *testing.T) {
	c := &fakeContext{}
	Quit{}.Execute(c, "")
	assert.True(t, c.exited)
}

func TestFormat(t *testing.T) {
	c := &fakeContext{}
	Format{}.Execute(c, " CSV ")
	assert.Equal(t, "csv", c.format)
	Format{}.Execute(c, "xml")
	assert.Equal(t, "csv", c.format)
}

func TestExpanded(t *testing.T) {
	c := &fakeContext{}
	Expanded{}.Execute(c, "on")
	assert.Equal(t, outputs.FORMAT_EXPANDED, c.format)
	Expanded{}.Execute(c, "off")
	assert.Equal(t, outputs.FORMAT_TABLE, c.format)
	assert.Equal(t, "Expanded display is on\nExpanded display is off\n", c.out)
}

func TestTiming(t *testing.T) {
	c := &fakeContext{}
	Timing{}.Execute(c, "ON")
	assert.True(t, c.timing)
	Timing{}.Execute(c, "maybe")
	assert.True(t, c.timing)
	Timing{}.Execute(c, "off")
	assert.False(t, c.timing)
}

func TestPager(t *testing.T) {
	c := &fakeContext{}
	Pager{}.Execute(c, "always")
	assert.Equal(t, pager.Always, c.pager)
	Pager{}.Execute(c, "sometimes")
	assert.Equal(t, pager.Always, c.pager)
	NoPager{}.Execute(c, "")
	assert.Equal(t, pager.Never, c.pager)
	Pager{}.Execute(c, "")
	assert.Equal(t, pager.Auto, c.pager)
	assert.Equal(t, "Pager is always\nPager is never\nPager is auto\n", c.out)
}

func TestSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.sql")
	require.NoError(t, os.WriteFile(path, []byte("select 1;\nselect 2;"), 0600))

	c := &fakeContext{}
	Source{}.Execute(c, path)
	assert.Equal(t, []string{"select 1;\nselect 2;"}, c.queries)

	Source{}.Execute(c, filepath.Join(t.TempDir(), "missing.sql"))
	assert.Len(t, c.queries, 1)
}

func TestDescribe_List(t *testing.T) {
	c := &fakeContext{}
	Describe{}.Execute(c, "")
	require.Len(t, c.queries, 1)
	assert.Contains(t, c.queries[0], "where table_schema = 'test'")
}

func TestDescribe_Table(t *testing.T) {
	c := &fakeContext{rows: [][]string{
		{"id", "int", "NO", "NULL"},
		{"name", "varchar", "YES", "'none'"},
	}}
	Describe{}.Execute(c, "other.users;")
	assert.Equal(t, []interface{}{"other", "users"}, c.args)
	assert.Equal(t, "create table other.users (\n  id int not null,\n  name varchar null default 'none'\n)\n", c.out)
}

func TestDescribe_Unknown(t *testing.T) {
	c := &fakeContext{}
	Describe{}.Execute(c, "nope")
	assert.Equal(t, []interface{}{"test", "nope"}, c.args)
	assert.Equal(t, "unknown nope\n", c.out)
}
