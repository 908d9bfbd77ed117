// Package policy evaluates package records against a static deprecation policy.
// It flags packages below a known minimum supported version, pre-release
// versions, and packages whose name marks them as deprecated or legacy.
package policy

import (
	"sort"

	"github.com/iancoleman/orderedmap"
)

// defaultMinimumVersions lists well-known packages and the minimum version
// still considered supported. Names are lowercase; versions are plain
// dot-separated numbers. This is configuration data, not logic.
var defaultMinimumVersions = []struct {
	name    string
	minimum string
}{
	{"requests", "2.0.0"},
	{"django", "3.0.0"},
	{"flask", "2.0.0"},
	{"numpy", "1.20.0"},
	{"tensorflow", "2.0.0"},
	{"pandas", "1.0.0"},
	{"matplotlib", "3.0.0"},
	{"scikit-learn", "0.22.0"},
	{"fastapi", "0.68.0"},
	{"pytorch", "1.8.0"},
	{"scipy", "1.6.0"},
	{"pillow", "8.0.0"},
	{"sqlalchemy", "1.4.0"},
	{"beautifulsoup4", "4.9.0"},
	{"selenium", "4.0.0"},
	{"pytest", "6.0.0"},
	{"jupyter", "1.0.0"},
	{"notebook", "6.0.0"},
	{"ipython", "7.0.0"},
	{"aiohttp", "3.7.0"},
	{"tornado", "6.1.0"},
	{"celery", "5.0.0"},
	{"redis", "3.5.0"},
	{"psycopg2", "2.8.0"},
	{"pymongo", "3.11.0"},
	{"sqlite3", "3.35.0"},
	{"pygame", "2.0.0"},
	{"opencv-python", "4.5.0"},
	{"tqdm", "4.60.0"},
	{"loguru", "0.5.0"},
	{"rich", "9.0.0"},
	{"click", "8.0.0"},
	{"typer", "0.3.0"},
	{"pydantic", "1.8.0"},
	{"marshmallow", "3.12.0"},
	{"gunicorn", "20.1.0"},
	{"uvicorn", "0.13.0"},
	{"django-rest-framework", "3.12.0"},
	{"flask-restful", "0.3.9"},
	{"graphene", "3.0.0"},
	{"plotly", "5.0.0"},
	{"seaborn", "0.11.0"},
	{"bokeh", "2.4.0"},
	{"streamlit", "1.0.0"},
	{"dash", "2.0.0"},
	{"airflow", "2.2.0"},
	{"prefect", "0.15.0"},
	{"luigi", "3.0.0"},
	{"mlflow", "1.23.0"},
	{"transformers", "4.15.0"},
	{"spacy", "3.2.0"},
	{"nltk", "3.6.0"},
	{"gensim", "4.1.0"},
	{"elasticsearch", "7.15.0"},
	{"kafka-python", "2.0.0"},
	{"boto3", "1.20.0"},
	{"azure-storage-blob", "12.9.0"},
	{"google-cloud-storage", "2.0.0"},
	{"twisted", "22.0.0"},
	{"asyncio", "3.4.0"},
	{"virtualenv", "20.10.0"},
	{"pipenv", "2022.0.0"},
	{"poetry", "1.2.0"},
}

// Table is the static mapping from lowercase package names to the minimum
// supported version. It preserves declaration order so the policy command
// and JSON export list entries deterministically.
//
// A Table is built once and never mutated afterwards.
//
// Fields: This type has no exported fields.
type Table struct {
	entries *orderedmap.OrderedMap
}

// NewTable builds the policy table from the built-in entries plus any
// additional entries from configuration.
//
// Additional entries are merged after the built-in ones, so a config entry
// for a known package overrides its built-in minimum. Names are expected
// lowercase; callers normalize before lookup.
//
// Parameters:
//   - additional: Extra name -> minimum-version entries, may be nil
//
// Returns:
//   - *Table: The immutable policy table
func NewTable(additional map[string]string) *Table {
	entries := orderedmap.New()
	for _, e := range defaultMinimumVersions {
		entries.Set(e.name, e.minimum)
	}
	// Deterministic merge order for config extras
	extras := orderedmap.New()
	for name, minimum := range additional {
		extras.Set(name, minimum)
	}
	extras.SortKeys(sort.Strings)
	for _, name := range extras.Keys() {
		if v, ok := extras.Get(name); ok {
			entries.Set(name, v)
		}
	}
	return &Table{entries: entries}
}

// DefaultTable returns the built-in policy table with no additions.
//
// Returns:
//   - *Table: The immutable built-in policy table
func DefaultTable() *Table {
	return NewTable(nil)
}

// MinimumVersion looks up the minimum supported version for a package.
//
// Parameters:
//   - name: Lowercase package name
//
// Returns:
//   - string: The minimum supported version, empty if the package is unknown
//   - bool: true if the package is in the table
func (t *Table) MinimumVersion(name string) (string, bool) {
	v, ok := t.entries.Get(name)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Len returns the number of entries in the table.
//
// Returns:
//   - int: Entry count
func (t *Table) Len() int {
	return len(t.entries.Keys())
}

// Names returns the package names in table order.
//
// Returns:
//   - []string: Lowercase package names in declaration order
func (t *Table) Names() []string {
	keys := t.entries.Keys()
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}
