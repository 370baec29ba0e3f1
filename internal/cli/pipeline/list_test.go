package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/hirepaso/internal/api"
	"github.com/thenoetrevino/hirepaso/internal/cli"
	"github.com/thenoetrevino/hirepaso/internal/testutil"
	clitest "github.com/thenoetrevino/hirepaso/internal/testutil/cli"
)

func sampleVacancies() []api.VacancyDTO {
	salary := 90000.0
	return []api.VacancyDTO{
		{ID: "12", Title: "Backend Engineer", Location: "Remote", SalaryFrom: &salary, Currency: "USD", EmploymentType: "full_time"},
		{ID: "13", Title: "Designer"},
		{ID: "14", Title: "Recruiter"},
	}
}

func TestListVacancies_JSON(t *testing.T) {
	ctx, fake, appInstance := clitest.SetupCLITest(t)
	appInstance.Config.API.OrganisationID = "9"
	fake.SetVacancies(sampleVacancies()...)

	cmd := ListCmd()
	cmd.SetContext(ctx)
	output, err := testutil.ExecuteCommand(t, cmd, "--json")
	require.NoError(t, err)

	result := testutil.ParseJSON(t, output)
	assert.Equal(t, true, result["success"])

	vacancies := result["data"].(map[string]any)["vacancies"].([]any)
	require.Len(t, vacancies, 3)
	first := vacancies[0].(map[string]any)
	assert.Equal(t, "12", first["id"])
	assert.Equal(t, "Backend Engineer", first["title"])
	assert.Equal(t, float64(90000), first["salary_from"])

	queries := fake.ListQueries()
	require.Len(t, queries, 1)
	assert.Equal(t, "9", queries[0].Get("organisation_id"))
	assert.Equal(t, "false", queries[0].Get("include_archived"))
	assert.Equal(t, "100", queries[0].Get("limit"))
}

func TestListVacancies_FlagsReachTheService(t *testing.T) {
	ctx, fake, _ := clitest.SetupCLITest(t)
	fake.SetVacancies(sampleVacancies()...)

	cmd := ListCmd()
	cmd.SetContext(ctx)
	output, err := testutil.ExecuteCommand(t, cmd, "--org", "4", "--archived", "--skip", "1", "--limit", "1", "--quiet")
	require.NoError(t, err)

	assert.Equal(t, "13\n", output)

	q := fake.ListQueries()[0]
	assert.Equal(t, "4", q.Get("organisation_id"))
	assert.Equal(t, "true", q.Get("include_archived"))
	assert.Equal(t, "1", q.Get("skip"))
}

func TestListVacancies_Human(t *testing.T) {
	ctx, fake, _ := clitest.SetupCLITest(t)
	fake.SetVacancies(sampleVacancies()...)

	cmd := ListCmd()
	cmd.SetContext(ctx)
	output, err := testutil.ExecuteCommand(t, cmd)
	require.NoError(t, err)

	assert.Contains(t, output, "Vacancies (3)")
	assert.Contains(t, output, "Backend Engineer")
	assert.Contains(t, output, "from 90000 USD")
}

func TestListVacancies_Empty(t *testing.T) {
	ctx, _, _ := clitest.SetupCLITest(t)

	cmd := ListCmd()
	cmd.SetContext(ctx)
	output, err := testutil.ExecuteCommand(t, cmd)
	require.NoError(t, err)

	assert.Contains(t, output, "No vacancies found")
}

func TestListVacancies_NegativeSkip(t *testing.T) {
	ctx, fake, _ := clitest.SetupCLITest(t)

	cmd := ListCmd()
	cmd.SetContext(ctx)
	output, err := testutil.ExecuteCommand(t, cmd, "--skip=-1", "--json")
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))

	errData := testutil.ParseJSON(t, output)["error"].(map[string]any)
	assert.Equal(t, "INVALID_PAGE", errData["code"])
	assert.Empty(t, fake.ListQueries())
}
