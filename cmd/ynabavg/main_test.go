package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurifrl/ynabavg/pkg/config"
)

const register = `Account,Flag,Date,Payee,Category Group/Category,Category Group,Category,Memo,Outflow,Inflow,Cleared
Checking,,2023-12-28,Landlord,Bills: Rent,Bills,Rent,,900.00,0.00,Cleared
Checking,,2024-01-01,Landlord,Bills: Rent,Bills,Rent,,900.00,0.00,Cleared
Checking,,2024-02-15,Market,Everyday: Groceries,Everyday,Groceries,,30.00,0.00,Cleared
Checking,,2024-03-31,Market,Everyday: Groceries,Everyday,Groceries,,60.00,0.00,Cleared
Checking,,2024-04-02,Market,Everyday: Groceries,Everyday,Groceries,,99.00,0.00,Cleared
`

func setup(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("YNAB_API_TOKEN", "")
	t.Setenv("YNAB_BUDGET_ID", "")

	path := filepath.Join(dir, "register.csv")
	require.NoError(t, os.WriteFile(path, []byte(register), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunFromRegisterFileJSON(t *testing.T) {
	path := setup(t)

	out, err := execute(t, "1", "3", "--file", path, "--as-of", "2024-04-17", "--json")
	require.NoError(t, err)

	var got []struct {
		Months   int                `json:"months"`
		Averages map[string]float64 `json:"averages"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)

	assert.Equal(t, 3, got[0].Months)
	assert.Equal(t, map[string]float64{"Rent": -300, "Groceries": -30}, got[0].Averages)
	assert.Equal(t, 1, got[1].Months)
	assert.Equal(t, map[string]float64{"Groceries": -60}, got[1].Averages)
}

func TestRunFromRegisterFileText(t *testing.T) {
	path := setup(t)

	out, err := execute(t, "1", "--file", path, "--as-of", "2024-04-17")
	require.NoError(t, err)
	assert.Contains(t, out, "Last month (2024-03-01 – 2024-03-31)")
	assert.Contains(t, out, "Groceries: -60.00\n")
	assert.NotContains(t, out, "Rent")
}

func TestRunRequiresCredentials(t *testing.T) {
	setup(t)

	_, err := execute(t, "3")
	assert.ErrorIs(t, err, config.ErrMissingToken)
}

func TestRunRejectsInvalidMonths(t *testing.T) {
	path := setup(t)

	_, err := execute(t, "0", "--file", path)
	assert.Error(t, err)

	_, err = execute(t, "three", "--file", path)
	assert.Error(t, err)
}

func TestRunRejectsJSONWithOutput(t *testing.T) {
	path := setup(t)

	out, err := execute(t, "1", "--file", path, "--as-of", "2024-04-17", "--json", "-o", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json")
	assert.Contains(t, err.Error(), "output")
	assert.Empty(t, out)

	out, err = execute(t, "1", "--file", path, "--as-of", "2024-04-17", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "months: 1")
}

func TestParseMonths(t *testing.T) {
	got, err := parseMonths(nil)
	require.NoError(t, err)
	assert.Equal(t, []int{12}, got)

	got, err = parseMonths([]string{"3", "1", "12"})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 12}, got)

	_, err = parseMonths([]string{"-1"})
	assert.Error(t, err)
}

func TestReferenceDate(t *testing.T) {
	fixed := time.Date(2025, time.June, 3, 10, 0, 0, 0, time.UTC)
	got, err := referenceDate("", func() time.Time { return fixed })
	require.NoError(t, err)
	assert.Equal(t, fixed, got)

	got, err = referenceDate("2024-04-17", nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.April, 17, 0, 0, 0, 0, time.Local), got)

	_, err = referenceDate("17/04/2024", nil)
	assert.Error(t, err)
}
