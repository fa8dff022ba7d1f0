package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldVersion, oldCommit, oldDate })

	Version, Commit, Date = "1.2.3", "abc123", "2024-03-09"
	assert.Equal(t, "propconv version 1.2.3\nCommit: abc123\nBuilt:  2024-03-09\n", Info())

	Commit, Date = "", ""
	assert.Equal(t, "propconv version 1.2.3\n", Info())
}
