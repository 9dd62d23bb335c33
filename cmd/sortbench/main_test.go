package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsort/sorting"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--log-level", "error"))
	err := root.Execute()
	return out.String(), err
}

func TestRun_CSVWithHistory(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "focos.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(
		"municipio,frp\nCaxias,12.5\nBalsas,3\nCodó,7\nBacabal,\n"), 0o600))
	db := filepath.Join(dir, "runs.db")

	out, err := execute(t, "run", "--csv", csvPath, "--field", "frp",
		"--algorithms", "merge,insertion", "--history", db, "--show", "2", "--rank-by", "comparisons")
	require.NoError(t, err, out)
	assert.Contains(t, out, "field: frp")
	assert.Contains(t, out, "merge")
	assert.Contains(t, out, "insertion")
	assert.Contains(t, out, "ranking by comparisons")
	assert.NotContains(t, out, "bubble")
	assert.Contains(t, out, "first 2 records")

	hist, err := execute(t, "history", "--history", db, "--limit", "5")
	require.NoError(t, err, hist)
	lines := strings.Split(strings.TrimSpace(hist), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "ALGORITHM")
	assert.Contains(t, lines[1], "insertion")
	assert.Contains(t, lines[2], "merge")
}

func TestRun_CommaFromConfig(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "focos.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("municipio;frp\nCaxias;12.5\nBalsas;3\n"), 0o600))
	cfgPath := filepath.Join(dir, "sortbench.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[dataset]\ncomma = \";\"\nfield = \"frp\"\n"), 0o600))

	out, err := execute(t, "run", "--config", cfgPath, "--csv", csvPath, "--algorithms", "quick", "--show", "1")
	require.NoError(t, err, out)
	assert.Contains(t, out, "records: 2")
	assert.Contains(t, out, "Balsas")
}

func TestRun_Generated(t *testing.T) {
	out, err := execute(t, "run", "--size", "50", "--shape", "reversed", "--seed", "3")
	require.NoError(t, err, out)
	for _, name := range []string{"bubble", "insertion", "merge", "quick"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "generated:reversed(n=50,seed=3)")
}

func TestRun_Errors(t *testing.T) {
	_, err := execute(t, "run", "--shape", "zigzag")
	assert.Error(t, err)

	_, err = execute(t, "run", "--algorithms", "bogo")
	assert.Error(t, err)

	_, err = execute(t, "run", "--size", "10", "--max-depth", "-1")
	assert.ErrorIs(t, err, sorting.ErrOptionViolation)

	_, err = execute(t, "run", "--csv", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)

	_, err = execute(t, "history")
	assert.ErrorIs(t, err, errNoHistory)

	_, err = execute(t, "foci")
	assert.ErrorIs(t, err, errNoInput)
}

func TestRun_MaxDepthZeroFromConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "sortbench.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("quick:\n  max_depth: -3\n"), 0o600))

	_, err := execute(t, "run", "--config", cfgPath, "--size", "10")
	assert.ErrorIs(t, err, sorting.ErrOptionViolation, "negative depth in a file is rejected, not repaired")

	require.NoError(t, os.WriteFile(cfgPath, []byte("quick:\n  max_depth: 0\n"), 0o600))
	out, err := execute(t, "run", "--config", cfgPath, "--size", "10", "--algorithms", "quick")
	require.NoError(t, err, out)
}

func TestHistory_ShowsRecordsAndDropped(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "focos.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("id,frp\na,\nb,2\nc,1\n"), 0o600))
	db := filepath.Join(dir, "runs.db")

	out, err := execute(t, "run", "--csv", csvPath, "--field", "frp", "--algorithms", "quick", "--history", db)
	require.NoError(t, err, out)

	hist, err := execute(t, "history", "--history", db)
	require.NoError(t, err, hist)
	lines := strings.Split(strings.TrimSpace(hist), "\n")
	require.Len(t, lines, 2)
	head, row := strings.Fields(lines[0]), strings.Fields(lines[1])
	col := func(name string) string {
		for i, h := range head {
			if h == name {
				// WHEN renders as several words ("now" or "N seconds ago")
				return row[len(row)-(len(head)-i)]
			}
		}
		t.Fatalf("column %s missing", name)
		return ""
	}
	assert.Equal(t, "3", col("INPUT"))
	assert.Equal(t, "2", col("RECORDS"))
	assert.Equal(t, "1", col("DROPPED"))
}

func TestRun_ConcatenatesFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "focos_2023.csv")
	b := filepath.Join(dir, "focos_2024.csv")
	require.NoError(t, os.WriteFile(a, []byte("municipio,frp\nCaxias,12\nBalsas,3\n"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte("municipio,frp\nCodó,7\n"), 0o600))

	out, err := execute(t, "run", "--csv", a, "--csv", b, "--field", "frp", "--algorithms", "merge")
	require.NoError(t, err, out)
	assert.Contains(t, out, "records: 3")
	assert.Contains(t, out, a+" + "+b)
}

func TestFoci_Table(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "focos_2023.csv")
	b := filepath.Join(dir, "focos_2024.csv")
	require.NoError(t, os.WriteFile(a, []byte(
		"datahora,municipio\n2023/12/30 17:10:00,Caxias\n2023/12/31 01:00:00,Balsas\n"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte(
		"datahora,municipio\n2024/08/01 04:20:00,Codó\nsem data,Timon\n"), 0o600))

	out, err := execute(t, "foci", "--csv", a, "--csv", b)
	require.NoError(t, err, out)
	lines := strings.Split(out, "\n")
	assert.Equal(t, []string{"2023", "12", "2"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"2024", "08", "1"}, strings.Fields(lines[2]))
	assert.Contains(t, out, "TOTAL")
	assert.Equal(t, []string{"2023", "2"}, strings.Fields(lines[5]))
	assert.Equal(t, []string{"2024", "1"}, strings.Fields(lines[6]))
	assert.Contains(t, out, `date column "datahora", 1 rows skipped`)
}
