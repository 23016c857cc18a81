package intent

// #region imports
import (
	_ "embed"
	"fmt"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"
)

// #endregion

//go:embed tables.yaml
var defaultTablesYAML []byte

// #region table-types

// Table holds one identity's trigger words and compiled pattern.
type Table struct {
	Keywords []string
	Pattern  *regexp.Regexp
}

// Tables is the full trigger-table set. Built once at startup, read-only after.
type Tables map[Identity]Table

// rawTable is the YAML shape before pattern compilation.
type rawTable struct {
	Keywords []string `yaml:"keywords"`
	Pattern  string   `yaml:"pattern"`
}

// #endregion

// #region load

// ParseTables compiles a trigger-table set from YAML. Every identity must
// carry at least one keyword and a valid pattern.
func ParseTables(data []byte) (Tables, error) {
	var raw map[Identity]rawTable
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse trigger tables: %w", err)
	}

	tables := make(Tables, len(raw))
	for id, rt := range raw {
		if len(rt.Keywords) == 0 {
			return nil, fmt.Errorf("identity %q: no keywords", id)
		}
		re, err := regexp.Compile("(?i)" + rt.Pattern)
		if err != nil {
			return nil, fmt.Errorf("identity %q: compile pattern: %w", id, err)
		}
		tables[id] = Table{Keywords: rt.Keywords, Pattern: re}
	}
	return tables, nil
}

// DefaultTables parses the embedded trigger tables. Panics on a corrupt
// embed, which can only happen at build time.
func DefaultTables() Tables {
	tables, err := ParseTables(defaultTablesYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded trigger tables invalid: %v", err))
	}
	return tables
}

// #endregion

// #region identities

// Identities returns the table's identities in stable sorted order.
func (t Tables) Identities() []Identity {
	ids := make([]Identity, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// #endregion
