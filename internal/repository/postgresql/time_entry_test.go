package postgresql

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeEntryWriteQueries_SelectFromCTE(t *testing.T) {
	queries := map[string]string{
		"create": createTimeEntryQuery,
		"close":  closeTimeEntryQuery,
	}

	for name, query := range queries {
		t.Run(name, func(t *testing.T) {
			normalized := strings.Join(strings.Fields(query), " ")
			assert.Contains(t, normalized, "WITH te AS (")
			assert.Contains(t, normalized, "FROM te LEFT JOIN employees e ON e.id = te.employee_id")
			assert.NotContains(t, normalized, "FROM time_entries te",
				"the outer select must read the written row, not the table snapshot")
		})
	}
}
