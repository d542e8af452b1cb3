package importclient

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunSuccess(t *testing.T) {
	api := newFakeAPI(t)
	srv := api.start()
	path := writeArchive(t)

	var out bytes.Buffer
	err := Run(context.Background(), testOptions(srv.URL), path, &out, zap.NewNop())
	require.NoError(t, err)

	expected := "=== Document Upload Script ===\n" +
		"\n" +
		"Logging in...\n" +
		"Login successful!\n" +
		"\n" +
		"Uploading: " + path + "\n" +
		"File size: 0.00 MB\n" +
		"\n" +
		"=== Upload Results ===\n" +
		"Processed: 3 documents\n" +
		"No errors!\n" +
		"\n" +
		"Done!\n"
	assert.Equal(t, expected, out.String())
}

func TestRunWithErrors(t *testing.T) {
	api := newFakeAPI(t)
	api.importBody = `{"processed":2,"errors":["bad file A","bad file B"]}`
	srv := api.start()

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), testOptions(srv.URL), writeArchive(t), &out, nil))

	assert.Contains(t, out.String(), "Processed: 2 documents\n\nErrors (2):\n  1. bad file A\n  2. bad file B\n\nDone!\n")
	assert.NotContains(t, out.String(), "No errors!")
}

func TestRunMissingFile(t *testing.T) {
	api := newFakeAPI(t)
	srv := api.start()
	path := filepath.Join(t.TempDir(), "missing.zip")

	var out bytes.Buffer
	err := Run(context.Background(), testOptions(srv.URL), path, &out, nil)

	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.Equal(t, "Error: File not found: "+path+"\n", out.String())
	assert.Equal(t, int32(0), api.logins.Load())
	assert.Equal(t, int32(0), api.uploads.Load())
}

func TestRunRelativePath(t *testing.T) {
	api := newFakeAPI(t)
	srv := api.start()
	path := writeArchive(t)
	chdir(t, filepath.Dir(path))

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), testOptions(srv.URL), "documents.zip", &out, nil))

	assert.Contains(t, out.String(), "Uploading: "+path+"\n")
}

func TestRunLoginFailure(t *testing.T) {
	api := newFakeAPI(t)
	api.loginStatus = http.StatusUnauthorized
	api.loginBody = `{"error":"invalid credentials"}`
	srv := api.start()

	var out bytes.Buffer
	err := Run(context.Background(), testOptions(srv.URL), writeArchive(t), &out, nil)

	require.Error(t, err)
	assert.Contains(t, out.String(), "Login failed: ")
	assert.Contains(t, out.String(), "401 Unauthorized")
	assert.NotContains(t, out.String(), "Uploading:")
	assert.Equal(t, int32(1), api.logins.Load())
	assert.Equal(t, int32(0), api.uploads.Load())
}

func TestRunUploadFailure(t *testing.T) {
	api := newFakeAPI(t)
	api.importStatus = http.StatusBadRequest
	api.importBody = `{"error":"no file"}`
	srv := api.start()

	var out bytes.Buffer
	err := Run(context.Background(), testOptions(srv.URL), writeArchive(t), &out, nil)

	require.Error(t, err)
	assert.Contains(t, out.String(), "\nUpload failed!\nError: ")
	assert.Contains(t, out.String(), "400 Bad Request")
	assert.Contains(t, out.String(), "Response: {\"error\":\"no file\"}\n")
	assert.NotContains(t, out.String(), "Done!")
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
