package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glance/cmd/glance/commands"
	"go.trai.ch/glance/internal/app"
	"go.trai.ch/glance/internal/build"
)

type mockApp struct {
	serveFunc func(ctx context.Context, opts app.ServeOptions) error
}

func (m *mockApp) Serve(ctx context.Context, opts app.ServeOptions) error {
	if m.serveFunc != nil {
		return m.serveFunc(ctx, opts)
	}
	return nil
}

func fixedWd() (string, error) { return "/work", nil }

func TestCommands_Serve(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.ServeOptions
		called := false

		mock := &mockApp{
			serveFunc: func(_ context.Context, opts app.ServeOptions) error {
				captured = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock).WithGetwd(fixedWd).WithInteractive(true)
		cli.SetArgs([]string{"-c", "my.yaml", "--data", "weather.csv", "-a", ":9000", "--no-browser", "--log-json"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, app.ServeOptions{
			Cwd:        "/work",
			ConfigPath: "my.yaml",
			DataPath:   "weather.csv",
			Addr:       ":9000",
			NoBrowser:  true,
			LogJSON:    true,
		}, captured)
	})

	t.Run("defaults leave overrides empty", func(t *testing.T) {
		var captured app.ServeOptions
		mock := &mockApp{
			serveFunc: func(_ context.Context, opts app.ServeOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock).WithGetwd(fixedWd).WithInteractive(true)
		cli.SetArgs([]string{})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, app.ServeOptions{Cwd: "/work"}, captured)
	})

	t.Run("returns error on serve failure", func(t *testing.T) {
		mock := &mockApp{
			serveFunc: func(_ context.Context, _ app.ServeOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock).WithGetwd(fixedWd).WithInteractive(true)
		cli.SetArgs([]string{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("returns error when the working directory is unknown", func(t *testing.T) {
		mock := &mockApp{
			serveFunc: func(_ context.Context, _ app.ServeOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock).WithGetwd(func() (string, error) { return "", errors.New("gone") })
		cli.SetArgs([]string{})

		assert.ErrorContains(t, cli.Execute(context.Background()), "gone")
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		mock := &mockApp{
			serveFunc: func(_ context.Context, _ app.ServeOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock).WithGetwd(fixedWd).WithInteractive(true)
		cli.SetArgs([]string{"table"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_NonInteractiveSkipsBrowser(t *testing.T) {
	var captured app.ServeOptions
	mock := &mockApp{
		serveFunc: func(_ context.Context, opts app.ServeOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock).WithGetwd(fixedWd).WithInteractive(false)
	cli.SetArgs([]string{})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, captured.NoBrowser)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{
		serveFunc: func(_ context.Context, _ app.ServeOptions) error {
			panic("should not be called")
		},
	}

	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "glance version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", buf.String())
}

func TestCommands_Help(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--help"})

	require.NoError(t, cli.Execute(context.Background()))
	out := buf.String()
	for _, flag := range []string{"--config", "--data", "--addr", "--no-browser", "--version"} {
		assert.Contains(t, out, flag)
	}
}
