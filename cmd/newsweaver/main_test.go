package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	opts := Opts{
		Config: "non-existent-config.yml",
	}

	err := run(ctx, opts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	// create a temporary invalid config file
	tmpFile, err := os.CreateTemp("", "invalid-config-*.yml")
	require.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	// write invalid yaml
	_, err = tmpFile.WriteString("invalid: yaml: content: [")
	require.NoError(t, err)
	tmpFile.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	opts := Opts{
		Config: tmpFile.Name(),
	}

	err = run(ctx, opts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_ServerStartStop(t *testing.T) {
	// create temp directory for database
	tmpDir, err := os.MkdirTemp("", "newsweaver-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	// config dsn expands DB_PATH
	t.Setenv("DB_PATH", tmpDir)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	serverErr := make(chan error, 1)

	wd, err := os.Getwd()
	require.NoError(t, err)

	opts := Opts{
		Config: wd + "/testdata/test_config.yml",
	}

	go func() {
		if e := run(ctx, opts); e != nil && ctx.Err() == nil {
			serverErr <- e
		}
		close(serverErr)
	}()

	// wait for the server to come up
	var resp *http.Response
	require.Eventually(t, func() bool {
		var e error
		resp, e = http.Get("http://127.0.0.1:18765/ping")
		return e == nil
	}, 3*time.Second, 50*time.Millisecond)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "pong", string(body))

	// shutdown
	cancel()

	select {
	case err := <-serverErr:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Error("server shutdown timeout")
	}
}

func TestSetupLog(t *testing.T) {
	t.Run("debug mode enabled", func(t *testing.T) {
		setupLog(true)
	})

	t.Run("debug mode disabled", func(t *testing.T) {
		setupLog(false)
	})

	t.Run("with secrets", func(t *testing.T) {
		setupLog(true, "secret1", "secret2")
	})

	t.Run("empty secret skipped", func(t *testing.T) {
		setupLog(false, "")
	})
}
