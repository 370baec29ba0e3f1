package cli

import (
	"context"
	"testing"

	"github.com/thenoetrevino/hirepaso/internal/app"
	"github.com/thenoetrevino/hirepaso/internal/cli"
	"github.com/thenoetrevino/hirepaso/internal/config"
	"github.com/thenoetrevino/hirepaso/internal/session"
	"github.com/thenoetrevino/hirepaso/internal/testutil"
)

// SetupCLITest starts a fake API, builds a logged-in App against it on an
// in-memory DB and returns a context that CLI commands will pick the App up from.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when internal/cli tests import testutil.
func SetupCLITest(t *testing.T) (context.Context, *testutil.FakeAPI, *app.App) {
	t.Helper()
	t.Setenv(session.EnvAccessToken, "")

	fake := testutil.NewFakeAPI(t)
	db := testutil.SetupTestDB(t)

	cfg := config.Default()
	cfg.API.BaseURL = fake.URL

	appInstance := app.New(cfg, db)
	if err := appInstance.Session.Update(context.Background(), session.Tokens{
		AccessToken:  "test-access",
		RefreshToken: "test-refresh",
	}); err != nil {
		t.Fatalf("Failed to seed session: %v", err)
	}

	ctx := cli.WithCLI(context.Background(), cli.FromApp(context.Background(), appInstance))
	return ctx, fake, appInstance
}
